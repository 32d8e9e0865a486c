package entity

import "time"

// OTP is a short-lived one-time code proving control of an email address.
// Used for email verification and password reset. A row is deleted the
// moment it is successfully verified, so a consumed code can never replay.
type OTP struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string    `gorm:"type:varchar(255);not null;index" json:"email"`
	Code      string    `gorm:"type:char(6);not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (OTP) TableName() string {
	return "otps"
}

// IsValid reports whether the code is still inside its expiry window.
func (o *OTP) IsValid(now time.Time) bool {
	return !now.After(o.ExpiresAt)
}
