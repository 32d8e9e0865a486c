package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification types
const (
	NotificationAppointmentReminder     = "appointment_reminder"
	NotificationAppointmentConfirmation = "appointment_confirmation"
	NotificationPrescriptionReady       = "prescription_ready"
	NotificationGeneral                 = "general"
)

// Notification is an in-app message for a user account
type Notification struct {
	ID               int       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Title            string    `gorm:"type:varchar(200);not null" json:"title"`
	Message          string    `gorm:"type:text;not null" json:"message"`
	NotificationType string    `gorm:"type:varchar(50);not null;default:'general'" json:"notification_type"`
	IsRead           *bool     `gorm:"not null;default:false;index" json:"is_read"`
	AppointmentID    *int      `gorm:"index" json:"appointment_id,omitempty"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	User        User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointment *Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (Notification) TableName() string {
	return "notifications"
}
