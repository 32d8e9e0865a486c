package repository

import (
	"clinic-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByID(db *gorm.DB, actor *entity.Actor, id int) (*entity.Doctor, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Doctor, error)
	FindAll(db *gorm.DB, actor *entity.Actor, filter *entity.DoctorFilter) ([]entity.Doctor, int64, error)
	// FindPublic restricts to available and verified doctors.
	FindPublic(db *gorm.DB, filter *entity.DoctorFilter) ([]entity.Doctor, int64, error)
	FindPublicByID(db *gorm.DB, id int) (*entity.Doctor, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error
	Delete(db *gorm.DB, id int) (int64, error)
	// UpdateReviewStats overwrites the derived rating aggregate.
	UpdateReviewStats(db *gorm.DB, doctorID int, rating decimal.Decimal, reviewCount int) error
}
