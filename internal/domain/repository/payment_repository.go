package repository

import (
	"clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(db *gorm.DB, payment *entity.Payment) error
	FindByID(db *gorm.DB, actor *entity.Actor, id int) (*entity.Payment, error)
	FindByAppointmentID(db *gorm.DB, appointmentID int) (*entity.Payment, error)
	FindAll(db *gorm.DB, actor *entity.Actor) ([]entity.Payment, error)
	// UpdateStatus is conditional on the current status to keep the
	// pending/completed/failed/refunded machine race-free.
	UpdateStatus(db *gorm.DB, id int, from, to entity.PaymentStatus) (int64, error)
}
