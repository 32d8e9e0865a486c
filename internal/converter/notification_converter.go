package converter

import (
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
)

// NotificationToResponse converts a Notification entity
func NotificationToResponse(n *entity.Notification) *dto.NotificationResponse {
	if n == nil {
		return nil
	}

	response := &dto.NotificationResponse{
		ID:               n.ID,
		Title:            n.Title,
		Message:          n.Message,
		NotificationType: n.NotificationType,
		AppointmentID:    n.AppointmentID,
		CreatedAt:        n.CreatedAt,
	}

	if n.IsRead != nil {
		response.IsRead = *n.IsRead
	}

	return response
}

// NotificationsToResponses converts a slice of notifications
func NotificationsToResponses(notifications []entity.Notification) []dto.NotificationResponse {
	responses := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, *NotificationToResponse(&notifications[i]))
	}
	return responses
}
