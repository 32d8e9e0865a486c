package dto

import "time"

type NotificationResponse struct {
	ID               int       `json:"id"`
	Title            string    `json:"title"`
	Message          string    `json:"message"`
	NotificationType string    `json:"notification_type"`
	IsRead           bool      `json:"is_read"`
	AppointmentID    *int      `json:"appointment_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}
