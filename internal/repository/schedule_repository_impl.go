package repository

import (
	"errors"

	"clinic-backend/internal/domain/entity"
	domainRepo "clinic-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type scheduleRepository struct{}

func NewScheduleRepository() domainRepo.ScheduleRepository {
	return &scheduleRepository{}
}

func (r *scheduleRepository) Create(db *gorm.DB, schedule *entity.Schedule) error {
	return db.Create(schedule).Error
}

func (r *scheduleRepository) FindByID(db *gorm.DB, id int) (*entity.Schedule, error) {
	var schedule entity.Schedule
	err := db.Preload("Doctor.User").Where("id = ?", id).First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) FindByDoctorID(db *gorm.DB, doctorID int) ([]entity.Schedule, error) {
	var schedules []entity.Schedule
	err := db.Where("doctor_id = ?", doctorID).
		Order("day_of_week ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) FindByDoctorAndDay(db *gorm.DB, doctorID, dayOfWeek int) (*entity.Schedule, error) {
	var schedule entity.Schedule
	err := db.Where("doctor_id = ? AND day_of_week = ?", doctorID, dayOfWeek).
		First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) FindAll(db *gorm.DB, actor *entity.Actor, filter *entity.ScheduleFilter) ([]entity.Schedule, error) {
	query := scopeByDoctor(db, actor, "schedules.doctor_id")

	if filter != nil {
		if filter.DoctorID != 0 {
			query = query.Where("schedules.doctor_id = ?", filter.DoctorID)
		}
		if filter.DayOfWeek != 0 {
			query = query.Where("schedules.day_of_week = ?", filter.DayOfWeek)
		}
		if filter.IsWorking != nil {
			query = query.Where("schedules.is_working = ?", *filter.IsWorking)
		}
	}

	var schedules []entity.Schedule
	err := query.
		Preload("Doctor.User").
		Order("doctor_id ASC, day_of_week ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) Update(db *gorm.DB, schedule *entity.Schedule) error {
	return db.Omit("Doctor").Save(schedule).Error
}

func (r *scheduleRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Schedule{})
	return result.RowsAffected, result.Error
}
