package repository

import (
	"errors"

	"clinic-backend/internal/domain/entity"
	domainRepo "clinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Create(doctor).Error
}

func (r *doctorRepository) FindByID(db *gorm.DB, actor *entity.Actor, id int) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := scopeDoctors(db, actor).
		Preload("User").Preload("Specialization").
		Where("doctors.id = ?", id).
		First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Preload("User").Preload("Specialization").
		Where("user_id = ?", userID).
		First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAll(db *gorm.DB, actor *entity.Actor, filter *entity.DoctorFilter) ([]entity.Doctor, int64, error) {
	query := scopeDoctors(db.Model(&entity.Doctor{}), actor).
		Joins("JOIN users ON users.id = doctors.user_id")

	query = applyDoctorFilter(query, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter != nil && filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Limit(filter.Limit).Offset((page - 1) * filter.Limit)
	}

	var doctors []entity.Doctor
	err := query.
		Preload("User").Preload("Specialization").
		Order("doctors.rating DESC, users.full_name ASC").
		Find(&doctors).Error
	if err != nil {
		return nil, 0, err
	}
	return doctors, total, nil
}

func (r *doctorRepository) FindPublic(db *gorm.DB, filter *entity.DoctorFilter) ([]entity.Doctor, int64, error) {
	return r.FindAll(db, nil, filter)
}

func (r *doctorRepository) FindPublicByID(db *gorm.DB, id int) (*entity.Doctor, error) {
	return r.FindByID(db, nil, id)
}

func applyDoctorFilter(query *gorm.DB, filter *entity.DoctorFilter) *gorm.DB {
	if filter == nil {
		return query
	}
	if filter.SpecializationID != 0 {
		query = query.Where("doctors.specialization_id = ?", filter.SpecializationID)
	}
	if filter.Name != "" {
		query = query.Where("users.full_name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.IsAvailable != nil {
		query = query.Where("doctors.is_available = ?", *filter.IsAvailable)
	}
	if filter.IsVerified != nil {
		query = query.Where("doctors.is_verified = ?", *filter.IsVerified)
	}
	return query
}

func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Omit("User", "Specialization").Save(doctor).Error
}

func (r *doctorRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Doctor{})
	return result.RowsAffected, result.Error
}

func (r *doctorRepository) UpdateReviewStats(db *gorm.DB, doctorID int, rating decimal.Decimal, reviewCount int) error {
	return db.Model(&entity.Doctor{}).
		Where("id = ?", doctorID).
		Updates(map[string]interface{}{
			"rating":       rating,
			"review_count": reviewCount,
		}).Error
}
