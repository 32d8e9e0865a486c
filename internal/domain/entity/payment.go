package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the status of a payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// CanTransition enforces pending -> completed|failed, completed -> refunded
func (s PaymentStatus) CanTransition(to PaymentStatus) bool {
	switch s {
	case PaymentStatusPending:
		return to == PaymentStatusCompleted || to == PaymentStatusFailed
	case PaymentStatusCompleted:
		return to == PaymentStatusRefunded
	}
	return false
}

// Payment settles a single appointment. One payment per appointment.
type Payment struct {
	ID            int             `gorm:"primaryKey;autoIncrement" json:"id"`
	AppointmentID int             `gorm:"not null;uniqueIndex" json:"appointment_id"`
	PatientID     int             `gorm:"not null;index" json:"patient_id"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Status        PaymentStatus   `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	PaymentMethod string          `gorm:"type:varchar(50)" json:"payment_method,omitempty"`
	TransactionID string          `gorm:"type:varchar(100)" json:"transaction_id,omitempty"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
	Patient     Patient     `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}
