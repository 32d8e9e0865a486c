package repository

import (
	"errors"

	"clinic-backend/internal/domain/entity"
	domainRepo "clinic-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type reviewRepository struct{}

func NewReviewRepository() domainRepo.ReviewRepository {
	return &reviewRepository{}
}

func (r *reviewRepository) Create(db *gorm.DB, review *entity.DoctorReview) error {
	return db.Create(review).Error
}

func (r *reviewRepository) FindByID(db *gorm.DB, actor *entity.Actor, id int) (*entity.DoctorReview, error) {
	var review entity.DoctorReview
	err := scopeReviews(db, actor).
		Preload("Doctor.User").Preload("Patient").
		Where("doctor_reviews.id = ?", id).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindAll(db *gorm.DB, actor *entity.Actor, filter *entity.ReviewFilter) ([]entity.DoctorReview, error) {
	query := scopeReviews(db, actor)

	if filter != nil {
		if filter.DoctorID != 0 {
			query = query.Where("doctor_reviews.doctor_id = ?", filter.DoctorID)
		}
		if filter.PatientID != 0 {
			query = query.Where("doctor_reviews.patient_id = ?", filter.PatientID)
		}
		if filter.IsApproved != nil {
			query = query.Where("doctor_reviews.is_approved = ?", *filter.IsApproved)
		}
	}

	var reviews []entity.DoctorReview
	err := query.
		Preload("Doctor.User").Preload("Patient").
		Order("doctor_reviews.created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) FindRatingsByDoctor(db *gorm.DB, doctorID int) ([]int, error) {
	var ratings []int
	err := db.Model(&entity.DoctorReview{}).
		Where("doctor_id = ?", doctorID).
		Pluck("rating", &ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *reviewRepository) Update(db *gorm.DB, review *entity.DoctorReview) error {
	return db.Omit("Doctor", "Patient", "Appointment").Save(review).Error
}

func (r *reviewRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.DoctorReview{})
	return result.RowsAffected, result.Error
}
