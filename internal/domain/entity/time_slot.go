package entity

import "time"

// TimeSlot is a concrete bookable unit for a doctor on a specific date,
// materialized from the doctor's weekly schedule. Unique per
// (doctor, date, start_time). IsAvailable must be false exactly when
// AppointmentID is set; claim/release keep both sides in step.
type TimeSlot struct {
	ID            int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID      int       `gorm:"not null;uniqueIndex:idx_doctor_date_start" json:"doctor_id"`
	Date          time.Time `gorm:"type:date;not null;uniqueIndex:idx_doctor_date_start" json:"date"`
	StartTime     string    `gorm:"type:time;not null;uniqueIndex:idx_doctor_date_start" json:"start_time"`
	EndTime       string    `gorm:"type:time;not null" json:"end_time"`
	IsAvailable   *bool     `gorm:"not null;default:true;index" json:"is_available"`
	AppointmentID *int      `gorm:"uniqueIndex" json:"appointment_id,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor      Doctor       `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Appointment *Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (TimeSlot) TableName() string {
	return "time_slots"
}

// IsClaimed reports whether the slot is bound to an appointment
func (t *TimeSlot) IsClaimed() bool {
	return t.AppointmentID != nil
}
