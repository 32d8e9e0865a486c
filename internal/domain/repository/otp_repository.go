package repository

import (
	"time"

	"clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type OTPRepository interface {
	Create(db *gorm.DB, otp *entity.OTP) error
	// FindValid returns the matching non-expired code or nil.
	FindValid(db *gorm.DB, email, code string, now time.Time) (*entity.OTP, error)
	// Delete consumes a code so it can never be replayed.
	Delete(db *gorm.DB, id int) error
	// DeleteByEmail drops any outstanding codes before issuing a new one.
	DeleteByEmail(db *gorm.DB, email string) error
}
