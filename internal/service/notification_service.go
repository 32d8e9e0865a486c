package service

import (
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// NotificationService writes in-app notifications inside the caller's
// transaction so a rolled-back operation never leaves a stray message.
type NotificationService interface {
	NotifyAppointmentConfirmed(tx *gorm.DB, userID uuid.UUID, appointmentID int) error
	NotifyAppointmentCompleted(tx *gorm.DB, userID uuid.UUID, appointmentID int) error
	NotifyPrescriptionReady(tx *gorm.DB, userID uuid.UUID, medicationName string) error
	Notify(tx *gorm.DB, userID uuid.UUID, title, message, notificationType string, appointmentID *int) error
}

type notificationService struct {
	log              *logrus.Logger
	notificationRepo repository.NotificationRepository
}

func NewNotificationService(log *logrus.Logger, notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationService{
		log:              log,
		notificationRepo: notificationRepo,
	}
}

func (s *notificationService) Notify(tx *gorm.DB, userID uuid.UUID, title, message, notificationType string, appointmentID *int) error {
	notification := &entity.Notification{
		UserID:           userID,
		Title:            title,
		Message:          message,
		NotificationType: notificationType,
		AppointmentID:    appointmentID,
	}

	if err := s.notificationRepo.Create(tx, notification); err != nil {
		s.log.Warnf("Failed to create notification: %+v", err)
		return err
	}
	return nil
}

func (s *notificationService) NotifyAppointmentConfirmed(tx *gorm.DB, userID uuid.UUID, appointmentID int) error {
	return s.Notify(tx, userID,
		"Appointment confirmed",
		"Your appointment has been confirmed.",
		entity.NotificationAppointmentConfirmation,
		&appointmentID,
	)
}

func (s *notificationService) NotifyAppointmentCompleted(tx *gorm.DB, userID uuid.UUID, appointmentID int) error {
	return s.Notify(tx, userID,
		"Appointment completed",
		"Your visit has been marked as completed. Thank you for coming in.",
		entity.NotificationGeneral,
		&appointmentID,
	)
}

func (s *notificationService) NotifyPrescriptionReady(tx *gorm.DB, userID uuid.UUID, medicationName string) error {
	return s.Notify(tx, userID,
		"Prescription ready",
		"A prescription for "+medicationName+" has been issued for you.",
		entity.NotificationPrescriptionReady,
		nil,
	)
}
