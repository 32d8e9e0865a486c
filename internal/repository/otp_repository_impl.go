package repository

import (
	"errors"
	"time"

	"clinic-backend/internal/domain/entity"
	domainRepo "clinic-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type otpRepository struct{}

func NewOTPRepository() domainRepo.OTPRepository {
	return &otpRepository{}
}

func (r *otpRepository) Create(db *gorm.DB, otp *entity.OTP) error {
	return db.Create(otp).Error
}

func (r *otpRepository) FindValid(db *gorm.DB, email, code string, now time.Time) (*entity.OTP, error) {
	var otp entity.OTP
	err := db.Where("email = ? AND code = ? AND expires_at >= ?", email, code, now).
		First(&otp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &otp, nil
}

func (r *otpRepository) Delete(db *gorm.DB, id int) error {
	return db.Delete(&entity.OTP{}, id).Error
}

func (r *otpRepository) DeleteByEmail(db *gorm.DB, email string) error {
	return db.Where("email = ?", email).Delete(&entity.OTP{}).Error
}
