package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

// CreateDoctorRequest provisions the doctor account and profile together.
type CreateDoctorRequest struct {
	Email            string  `json:"email" validate:"required,email"`
	Password         string  `json:"password" validate:"required,min=8"`
	FullName         string  `json:"full_name" validate:"required,min=2,max=255"`
	PhoneNumber      string  `json:"phone_number" validate:"omitempty,min=10,max=20"`
	SpecializationID int     `json:"specialization_id" validate:"required,min=1"`
	LicenseNumber    string  `json:"license_number" validate:"required,max=50"`
	ExperienceYears  int     `json:"experience_years" validate:"omitempty,gte=0,lte=80"`
	Education        string  `json:"education" validate:"omitempty"`
	Bio              string  `json:"bio" validate:"omitempty"`
	OfficeNumber     string  `json:"office_number" validate:"omitempty,max=10"`
	ConsultationFee  float64 `json:"consultation_fee" validate:"omitempty,gte=0"`
}

type UpdateDoctorRequest struct {
	SpecializationID int      `json:"specialization_id" validate:"omitempty,min=1"`
	ExperienceYears  *int     `json:"experience_years" validate:"omitempty,gte=0,lte=80"`
	Education        string   `json:"education" validate:"omitempty"`
	Bio              string   `json:"bio" validate:"omitempty"`
	OfficeNumber     string   `json:"office_number" validate:"omitempty,max=10"`
	ConsultationFee  *float64 `json:"consultation_fee" validate:"omitempty,gte=0"`
	IsAvailable      *bool    `json:"is_available"`
}

// Response DTOs

type DoctorResponse struct {
	ID              int             `json:"id"`
	FullName        string          `json:"full_name"`
	Email           string          `json:"email,omitempty"`
	Specialization  string          `json:"specialization"`
	LicenseNumber   string          `json:"license_number,omitempty"`
	ExperienceYears int             `json:"experience_years"`
	Education       string          `json:"education,omitempty"`
	Bio             string          `json:"bio,omitempty"`
	OfficeNumber    string          `json:"office_number,omitempty"`
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
	Rating          decimal.Decimal `json:"rating"`
	ReviewCount     int             `json:"review_count"`
	IsAvailable     bool            `json:"is_available"`
	IsVerified      bool            `json:"is_verified"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int64            `json:"total"`
}
