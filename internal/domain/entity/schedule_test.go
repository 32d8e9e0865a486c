package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestISOWeekday(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{"monday", time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), 1},
		{"wednesday", time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), 3},
		{"saturday", time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), 6},
		{"sunday maps to seven", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ISOWeekday(tt.date))
		})
	}
}
