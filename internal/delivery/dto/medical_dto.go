package dto

import "time"

// Prescriptions

type CreatePrescriptionRequest struct {
	PatientID      int    `json:"patient_id" validate:"required,min=1"`
	DoctorID       int    `json:"doctor_id" validate:"required,min=1"`
	AppointmentID  *int   `json:"appointment_id" validate:"omitempty,min=1"`
	MedicationName string `json:"medication_name" validate:"required,max=200"`
	Dosage         string `json:"dosage" validate:"required,max=100"`
	Frequency      string `json:"frequency" validate:"required,max=100"`
	Duration       string `json:"duration" validate:"omitempty,max=100"`
	Instructions   string `json:"instructions" validate:"omitempty"`
}

type PrescriptionResponse struct {
	ID             int       `json:"id"`
	PatientID      int       `json:"patient_id"`
	Patient        string    `json:"patient,omitempty"`
	DoctorID       int       `json:"doctor_id"`
	Doctor         string    `json:"doctor,omitempty"`
	MedicationName string    `json:"medication_name"`
	Dosage         string    `json:"dosage"`
	Frequency      string    `json:"frequency"`
	Duration       string    `json:"duration,omitempty"`
	Instructions   string    `json:"instructions,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

// Medical records

type CreateMedicalRecordRequest struct {
	PatientID     int    `json:"patient_id" validate:"required,min=1"`
	DoctorID      *int   `json:"doctor_id" validate:"omitempty,min=1"`
	AppointmentID *int   `json:"appointment_id" validate:"omitempty,min=1"`
	Diagnosis     string `json:"diagnosis" validate:"omitempty"`
	Treatment     string `json:"treatment" validate:"omitempty"`
	Notes         string `json:"notes" validate:"omitempty"`
}

type MedicalRecordResponse struct {
	ID        int       `json:"id"`
	PatientID int       `json:"patient_id"`
	DoctorID  *int      `json:"doctor_id,omitempty"`
	Doctor    string    `json:"doctor,omitempty"`
	Diagnosis string    `json:"diagnosis,omitempty"`
	Treatment string    `json:"treatment,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
