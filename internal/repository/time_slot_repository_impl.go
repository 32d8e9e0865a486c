package repository

import (
	"errors"
	"time"

	"clinic-backend/internal/domain/entity"
	domainRepo "clinic-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type timeSlotRepository struct{}

func NewTimeSlotRepository() domainRepo.TimeSlotRepository {
	return &timeSlotRepository{}
}

func (r *timeSlotRepository) Create(db *gorm.DB, slot *entity.TimeSlot) error {
	return db.Create(slot).Error
}

func (r *timeSlotRepository) FindByID(db *gorm.DB, id int) (*entity.TimeSlot, error) {
	var slot entity.TimeSlot
	err := db.Where("id = ?", id).First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

func (r *timeSlotRepository) FindByDoctorAndDate(db *gorm.DB, actor *entity.Actor, doctorID int, date time.Time) ([]entity.TimeSlot, error) {
	query := scopeByDoctor(db, actor, "time_slots.doctor_id").
		Where("time_slots.doctor_id = ? AND time_slots.date = ?", doctorID, date.Format("2006-01-02"))

	// Anonymous callers only see slots that can still be booked.
	if actor == nil {
		query = query.Where("time_slots.is_available = ?", true)
	}

	var slots []entity.TimeSlot
	err := query.Order("time_slots.start_time ASC").Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *timeSlotRepository) Claim(db *gorm.DB, slotID, appointmentID int) (int64, error) {
	result := db.Model(&entity.TimeSlot{}).
		Where("id = ? AND is_available = ?", slotID, true).
		Updates(map[string]interface{}{
			"appointment_id": appointmentID,
			"is_available":   false,
		})
	return result.RowsAffected, result.Error
}

func (r *timeSlotRepository) Release(db *gorm.DB, appointmentID int) (int64, error) {
	result := db.Model(&entity.TimeSlot{}).
		Where("appointment_id = ?", appointmentID).
		Updates(map[string]interface{}{
			"appointment_id": nil,
			"is_available":   true,
		})
	return result.RowsAffected, result.Error
}

func (r *timeSlotRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.TimeSlot{})
	return result.RowsAffected, result.Error
}
