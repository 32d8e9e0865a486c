package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Specializations

type SpecializationRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"omitempty"`
	Icon        string `json:"icon" validate:"omitempty,max=50"`
}

type SpecializationResponse struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Icon        string    `json:"icon,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Services

type ServiceRequest struct {
	Name             string  `json:"name" validate:"required,min=2,max=255"`
	Description      string  `json:"description" validate:"omitempty"`
	Price            float64 `json:"price" validate:"required,gte=0"`
	DurationMinutes  int     `json:"duration_minutes" validate:"omitempty,min=5,max=480"`
	SpecializationID *int    `json:"specialization_id" validate:"omitempty,min=1"`
	IsActive         *bool   `json:"is_active"`
}

type ServiceResponse struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"duration_minutes"`
	Specialization  string          `json:"specialization,omitempty"`
	IsActive        bool            `json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Clinics

type ClinicRequest struct {
	Name         string                 `json:"name" validate:"required,min=2,max=200"`
	Address      string                 `json:"address" validate:"required"`
	Phone        string                 `json:"phone" validate:"omitempty,max=20"`
	Email        string                 `json:"email" validate:"omitempty,email"`
	WorkingHours map[string]interface{} `json:"working_hours" validate:"omitempty"`
	IsActive     *bool                  `json:"is_active"`
}

type ClinicResponse struct {
	ID           int                    `json:"id"`
	Name         string                 `json:"name"`
	Address      string                 `json:"address"`
	Phone        string                 `json:"phone,omitempty"`
	Email        string                 `json:"email,omitempty"`
	WorkingHours map[string]interface{} `json:"working_hours,omitempty"`
	IsActive     bool                   `json:"is_active"`
	Departments  []DepartmentResponse   `json:"departments,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

// Departments

type DepartmentRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=200"`
	Description  string `json:"description" validate:"omitempty"`
	HeadDoctorID *int   `json:"head_doctor_id" validate:"omitempty,min=1"`
}

type DepartmentResponse struct {
	ID           int       `json:"id"`
	ClinicID     int       `json:"clinic_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	HeadDoctorID *int      `json:"head_doctor_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Doctor-clinic affiliations

type AffiliationRequest struct {
	DoctorID     int  `json:"doctor_id" validate:"required,min=1"`
	ClinicID     int  `json:"clinic_id" validate:"required,min=1"`
	DepartmentID *int `json:"department_id" validate:"omitempty,min=1"`
}

type AffiliationResponse struct {
	ID         int    `json:"id"`
	DoctorID   int    `json:"doctor_id"`
	ClinicID   int    `json:"clinic_id"`
	Clinic     string `json:"clinic,omitempty"`
	Department string `json:"department,omitempty"`
	IsActive   bool   `json:"is_active"`
}
