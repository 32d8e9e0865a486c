package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient is the directory record appointments and reviews hang off.
// UserID is set when the patient registered a client account themselves;
// it stays nil for walk-ins entered by a manager.
type Patient struct {
	ID          int        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      *uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"user_id,omitempty"`
	FirstName   string     `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName    string     `gorm:"type:varchar(100);not null" json:"last_name"`
	Email       string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone       string     `gorm:"type:varchar(20)" json:"phone,omitempty"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Gender      string     `gorm:"type:varchar(10);not null;default:'other'" json:"gender"`
	Address     string     `gorm:"type:text" json:"address,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User         *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment  `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
	Reviews      []DoctorReview `gorm:"foreignKey:PatientID" json:"reviews,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// FullName joins first and last name
func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Gender constants
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)
