package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Doctor holds the professional profile tied 1-1 to a user account.
// Rating and ReviewCount are derived values recomputed from reviews.
type Doctor struct {
	ID               int             `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID           uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	SpecializationID int             `gorm:"not null;index" json:"specialization_id"`
	LicenseNumber    string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number"`
	ExperienceYears  int             `gorm:"not null;default:0" json:"experience_years"`
	Education        string          `gorm:"type:text" json:"education,omitempty"`
	Bio              string          `gorm:"type:text" json:"bio,omitempty"`
	OfficeNumber     string          `gorm:"type:varchar(10)" json:"office_number,omitempty"`
	ConsultationFee  decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"consultation_fee"`
	Rating           decimal.Decimal `gorm:"type:decimal(3,2);not null;default:0" json:"rating"`
	ReviewCount      int             `gorm:"not null;default:0" json:"review_count"`
	IsAvailable      *bool           `gorm:"not null;default:true;index" json:"is_available"`
	IsVerified       *bool           `gorm:"not null;default:false;index" json:"is_verified"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User           User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Specialization Specialization `gorm:"foreignKey:SpecializationID" json:"specialization,omitempty"`
	Schedules      []Schedule     `gorm:"foreignKey:DoctorID" json:"schedules,omitempty"`
	TimeSlots      []TimeSlot     `gorm:"foreignKey:DoctorID" json:"time_slots,omitempty"`
	Appointments   []Appointment  `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
	Reviews        []DoctorReview `gorm:"foreignKey:DoctorID" json:"reviews,omitempty"`
	Clinics        []DoctorClinic `gorm:"foreignKey:DoctorID" json:"clinics,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// IsPublic reports whether the doctor is visible to anonymous readers
func (d *Doctor) IsPublic() bool {
	return d.IsAvailable != nil && *d.IsAvailable && d.IsVerified != nil && *d.IsVerified
}
