package entity

import "time"

// Section types for the landing page
const (
	SectionHero         = "hero"
	SectionFeatures     = "features"
	SectionServices     = "services"
	SectionAbout        = "about"
	SectionTestimonials = "testimonials"
	SectionContact      = "contact"
)

// Section is a landing-page content block managed from the console
type Section struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	SectionType  string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"section_type"`
	Title        string    `gorm:"type:varchar(255)" json:"title,omitempty"`
	Subtitle     string    `gorm:"type:varchar(500)" json:"subtitle,omitempty"`
	Description  string    `gorm:"type:text" json:"description,omitempty"`
	Content      JSON      `gorm:"type:jsonb" json:"content,omitempty"`
	IsActive     *bool     `gorm:"not null;default:true;index" json:"is_active"`
	DisplayOrder int       `gorm:"not null;default:0;index" json:"display_order"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Section) TableName() string {
	return "sections"
}
