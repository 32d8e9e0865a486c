package dto

import "time"

// Request DTOs

type CreateReviewRequest struct {
	DoctorID       int    `json:"doctor_id" validate:"required,min=1"`
	PatientID      int    `json:"patient_id" validate:"omitempty,min=1"`
	AppointmentID  *int   `json:"appointment_id" validate:"omitempty,min=1"`
	Rating         int    `json:"rating" validate:"required,min=1,max=5"`
	WaitTimeRating *int   `json:"wait_time_rating" validate:"omitempty,min=1,max=5"`
	Comment        string `json:"comment" validate:"omitempty,max=2000"`
	WouldRecommend *bool  `json:"would_recommend"`
}

// Response DTOs

type ReviewResponse struct {
	ID             int       `json:"id"`
	DoctorID       int       `json:"doctor_id"`
	Doctor         string    `json:"doctor,omitempty"`
	PatientID      int       `json:"patient_id"`
	Patient        string    `json:"patient,omitempty"`
	AppointmentID  *int      `json:"appointment_id,omitempty"`
	Rating         int       `json:"rating"`
	WaitTimeRating *int      `json:"wait_time_rating,omitempty"`
	Comment        string    `json:"comment,omitempty"`
	WouldRecommend bool      `json:"would_recommend"`
	IsApproved     bool      `json:"is_approved"`
	CreatedAt      time.Time `json:"created_at"`
}
