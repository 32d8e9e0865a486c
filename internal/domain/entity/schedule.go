package entity

import "time"

// Schedule is a doctor's recurring weekly availability window.
// Unique per (doctor, day_of_week); day 1 is Monday, 7 is Sunday.
type Schedule struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  int       `gorm:"not null;uniqueIndex:idx_doctor_day" json:"doctor_id"`
	DayOfWeek int       `gorm:"not null;uniqueIndex:idx_doctor_day" json:"day_of_week"`
	StartTime string    `gorm:"type:time;not null" json:"start_time"`
	EndTime   string    `gorm:"type:time;not null" json:"end_time"`
	IsWorking *bool     `gorm:"not null;default:true" json:"is_working"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Schedule) TableName() string {
	return "schedules"
}

// ISOWeekday returns the schedule day (1=Monday..7=Sunday) for a date.
func ISOWeekday(date time.Time) int {
	wd := int(date.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
