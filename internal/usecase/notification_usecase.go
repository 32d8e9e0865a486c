package usecase

import (
	"context"
	"errors"

	"clinic-backend/internal/converter"
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationUsecase interface {
	ListOwn(ctx context.Context, userID uuid.UUID) ([]dto.NotificationResponse, error)
	// MarkRead only touches notifications addressed to the caller.
	MarkRead(ctx context.Context, userID uuid.UUID, id int) error
}

type notificationUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	notificationRepo repository.NotificationRepository
}

func NewNotificationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	notificationRepo repository.NotificationRepository,
) NotificationUsecase {
	return &notificationUsecase{
		db:               db,
		log:              log,
		notificationRepo: notificationRepo,
	}
}

func (u *notificationUsecase) ListOwn(ctx context.Context, userID uuid.UUID) ([]dto.NotificationResponse, error) {
	notifications, err := u.notificationRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		return nil, err
	}
	return converter.NotificationsToResponses(notifications), nil
}

func (u *notificationUsecase) MarkRead(ctx context.Context, userID uuid.UUID, id int) error {
	affected, err := u.notificationRepo.MarkRead(u.db.WithContext(ctx), id, userID)
	if err != nil {
		u.log.Warnf("Failed to mark notification read: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
