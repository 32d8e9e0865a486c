package entity

import "time"

// DoctorReview is patient feedback on a doctor, optionally tied to an
// appointment. Unique per (doctor, patient, appointment). Only approved
// reviews are exposed publicly; the stored doctor aggregate counts all rows.
type DoctorReview struct {
	ID             int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID       int       `gorm:"not null;uniqueIndex:idx_doctor_patient_appt" json:"doctor_id"`
	PatientID      int       `gorm:"not null;uniqueIndex:idx_doctor_patient_appt" json:"patient_id"`
	AppointmentID  *int      `gorm:"uniqueIndex:idx_doctor_patient_appt" json:"appointment_id,omitempty"`
	Rating         int       `gorm:"not null" json:"rating"`
	WaitTimeRating *int      `json:"wait_time_rating,omitempty"`
	Comment        string    `gorm:"type:text" json:"comment,omitempty"`
	WouldRecommend *bool     `gorm:"not null;default:true" json:"would_recommend"`
	IsApproved     *bool     `gorm:"not null;default:false;index" json:"is_approved"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor      Doctor       `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient     Patient      `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Appointment *Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (DoctorReview) TableName() string {
	return "doctor_reviews"
}
