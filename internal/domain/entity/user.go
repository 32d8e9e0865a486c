package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents the centralized authentication table
type User struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RoleID          int       `gorm:"not null;index" json:"role_id"`
	Email           string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password        string    `gorm:"type:text;not null" json:"-"`
	FullName        string    `gorm:"type:varchar(255);not null" json:"full_name"`
	PhoneNumber     string    `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	IsEmailVerified bool      `gorm:"not null;default:false" json:"is_email_verified"`
	IsActive        *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role          Role           `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Doctor        *Doctor        `gorm:"foreignKey:UserID" json:"doctor,omitempty"`
	Patient       *Patient       `gorm:"foreignKey:UserID" json:"patient,omitempty"`
	Notifications []Notification `gorm:"foreignKey:UserID" json:"notifications,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns the ID so callers can reference the user inside
// the creating transaction.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
