package repository

import (
	"clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(db *gorm.DB, review *entity.DoctorReview) error
	FindByID(db *gorm.DB, actor *entity.Actor, id int) (*entity.DoctorReview, error)
	FindAll(db *gorm.DB, actor *entity.Actor, filter *entity.ReviewFilter) ([]entity.DoctorReview, error)
	// FindRatingsByDoctor returns every rating value for the doctor,
	// approved or not; the stored aggregate counts all rows.
	FindRatingsByDoctor(db *gorm.DB, doctorID int) ([]int, error)
	Update(db *gorm.DB, review *entity.DoctorReview) error
	Delete(db *gorm.DB, id int) (int64, error)
}
