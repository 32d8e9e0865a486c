package entity

import "time"

// Specialization is a medical specialty doctors and services belong to
type Specialization struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Icon        string    `gorm:"type:varchar(50)" json:"icon,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctors  []Doctor  `gorm:"foreignKey:SpecializationID" json:"doctors,omitempty"`
	Services []Service `gorm:"foreignKey:SpecializationID" json:"services,omitempty"`
}

func (Specialization) TableName() string {
	return "specializations"
}
