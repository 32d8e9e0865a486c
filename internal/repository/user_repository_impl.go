package repository

import (
	"errors"

	"clinic-backend/internal/domain/entity"
	domainRepo "clinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepository struct{}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(db *gorm.DB, user *entity.User) error {
	return db.Create(user).Error
}

func (r *userRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	var user entity.User
	err := db.Preload("Role").Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	err := db.Preload("Role").Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(db *gorm.DB, user *entity.User) error {
	return db.Omit("Role", "Doctor", "Patient").Save(user).Error
}

func (r *userRepository) MarkEmailVerified(db *gorm.DB, email string) (int64, error) {
	result := db.Model(&entity.User{}).
		Where("email = ?", email).
		Update("is_email_verified", true)
	return result.RowsAffected, result.Error
}

func (r *userRepository) UpdatePassword(db *gorm.DB, email string, hashedPassword string) (int64, error) {
	result := db.Model(&entity.User{}).
		Where("email = ?", email).
		Update("password", hashedPassword)
	return result.RowsAffected, result.Error
}
