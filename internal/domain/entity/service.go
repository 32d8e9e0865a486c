package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is a bookable medical service
type Service struct {
	ID               int             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Description      string          `gorm:"type:text" json:"description,omitempty"`
	Price            decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	DurationMinutes  int             `gorm:"not null;default:30" json:"duration_minutes"`
	SpecializationID *int            `gorm:"index" json:"specialization_id,omitempty"`
	IsActive         *bool           `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Specialization *Specialization `gorm:"foreignKey:SpecializationID" json:"specialization,omitempty"`
}

func (Service) TableName() string {
	return "services"
}
