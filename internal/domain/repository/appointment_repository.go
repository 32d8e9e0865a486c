package repository

import (
	"time"

	"clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, actor *entity.Actor, id int) (*entity.Appointment, error)
	FindAll(db *gorm.DB, actor *entity.Actor, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	// UpdateStatus moves the appointment only when it still is in the
	// expected status, so concurrent transitions cannot double-apply.
	UpdateStatus(db *gorm.DB, id int, from, to entity.AppointmentStatus) (int64, error)
	// FindActiveConflict looks up a non-cancelled appointment occupying
	// the same (doctor, date, time).
	FindActiveConflict(db *gorm.DB, doctorID int, date time.Time, timeOfDay string) (*entity.Appointment, error)
}
