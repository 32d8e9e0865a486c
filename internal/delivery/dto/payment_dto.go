package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CreatePaymentRequest struct {
	AppointmentID int     `json:"appointment_id" validate:"required,min=1"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" validate:"omitempty,max=50"`
}

type UpdatePaymentStatusRequest struct {
	Status        string `json:"status" validate:"required,oneof=completed failed refunded"`
	TransactionID string `json:"transaction_id" validate:"omitempty,max=100"`
}

// Response DTOs

type PaymentResponse struct {
	ID            int             `json:"id"`
	AppointmentID int             `json:"appointment_id"`
	PatientID     int             `json:"patient_id"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	TransactionID string          `json:"transaction_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
