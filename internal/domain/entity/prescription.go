package entity

import "time"

// Prescription is a medication order issued by a doctor for a patient
type Prescription struct {
	ID             int       `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID      int       `gorm:"not null;index" json:"patient_id"`
	DoctorID       int       `gorm:"not null;index" json:"doctor_id"`
	AppointmentID  *int      `gorm:"index" json:"appointment_id,omitempty"`
	MedicationName string    `gorm:"type:varchar(200);not null" json:"medication_name"`
	Dosage         string    `gorm:"type:varchar(100);not null" json:"dosage"`
	Frequency      string    `gorm:"type:varchar(100);not null" json:"frequency"`
	Duration       string    `gorm:"type:varchar(100)" json:"duration,omitempty"`
	Instructions   string    `gorm:"type:text" json:"instructions,omitempty"`
	IsActive       *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient     Patient      `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor      Doctor       `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Appointment *Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}
