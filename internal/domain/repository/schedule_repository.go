package repository

import (
	"clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type ScheduleRepository interface {
	Create(db *gorm.DB, schedule *entity.Schedule) error
	FindByID(db *gorm.DB, id int) (*entity.Schedule, error)
	FindByDoctorID(db *gorm.DB, doctorID int) ([]entity.Schedule, error)
	FindByDoctorAndDay(db *gorm.DB, doctorID, dayOfWeek int) (*entity.Schedule, error)
	FindAll(db *gorm.DB, actor *entity.Actor, filter *entity.ScheduleFilter) ([]entity.Schedule, error)
	Update(db *gorm.DB, schedule *entity.Schedule) error
	Delete(db *gorm.DB, id int) (int64, error)
}
