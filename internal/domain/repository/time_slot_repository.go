package repository

import (
	"time"

	"clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type TimeSlotRepository interface {
	Create(db *gorm.DB, slot *entity.TimeSlot) error
	FindByID(db *gorm.DB, id int) (*entity.TimeSlot, error)
	FindByDoctorAndDate(db *gorm.DB, actor *entity.Actor, doctorID int, date time.Time) ([]entity.TimeSlot, error)
	// Claim binds an appointment to an available slot. The update is
	// conditional on is_available so two concurrent claims cannot both
	// win; zero affected rows means the slot was already taken.
	Claim(db *gorm.DB, slotID, appointmentID int) (int64, error)
	// Release clears the appointment link and reopens the slot.
	Release(db *gorm.DB, appointmentID int) (int64, error)
	Delete(db *gorm.DB, id int) (int64, error)
}
