package dto

import "time"

// Request DTOs

// CreateAppointmentRequest books either a concrete slot (TimeSlotID) or a
// free-form date and time.
type CreateAppointmentRequest struct {
	DoctorID        int    `json:"doctor_id" validate:"required,min=1"`
	PatientID       int    `json:"patient_id" validate:"omitempty,min=1"`
	TimeSlotID      *int   `json:"time_slot_id" validate:"omitempty,min=1"`
	ServiceID       *int   `json:"service_id" validate:"omitempty,min=1"`
	ClinicID        *int   `json:"clinic_id" validate:"omitempty,min=1"`
	Date            string `json:"date" validate:"omitempty,dateymd"`
	Time            string `json:"time" validate:"omitempty,hhmm"`
	Reason          string `json:"reason" validate:"omitempty,max=255"`
	Symptoms        string `json:"symptoms" validate:"omitempty"`
	DurationMinutes int    `json:"duration_minutes" validate:"omitempty,min=5,max=480"`
	IsUrgent        *bool  `json:"is_urgent"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed completed cancelled no_show"`
	Notes  string `json:"notes" validate:"omitempty"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              int       `json:"id"`
	DoctorID        int       `json:"doctor_id"`
	Doctor          string    `json:"doctor,omitempty"`
	PatientID       int       `json:"patient_id"`
	Patient         string    `json:"patient,omitempty"`
	Service         string    `json:"service,omitempty"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	Status          string    `json:"status"`
	Reason          string    `json:"reason,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	Symptoms        string    `json:"symptoms,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	IsUrgent        bool      `json:"is_urgent"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
