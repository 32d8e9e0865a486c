package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentStatusCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    PaymentStatus
		to      PaymentStatus
		allowed bool
	}{
		{"pending to completed", PaymentStatusPending, PaymentStatusCompleted, true},
		{"pending to failed", PaymentStatusPending, PaymentStatusFailed, true},
		{"pending to refunded", PaymentStatusPending, PaymentStatusRefunded, false},
		{"completed to refunded", PaymentStatusCompleted, PaymentStatusRefunded, true},
		{"completed to failed", PaymentStatusCompleted, PaymentStatusFailed, false},
		{"failed is terminal", PaymentStatusFailed, PaymentStatusPending, false},
		{"refunded is terminal", PaymentStatusRefunded, PaymentStatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransition(tt.to))
		})
	}
}
