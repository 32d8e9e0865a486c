package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    string
	}{
		{"no reviews resets to zero", nil, "0"},
		{"single review", []int{4}, "4"},
		{"whole mean", []int{5, 3}, "4"},
		{"rounded to two decimals", []int{5, 4, 4}, "4.33"},
		{"repeating fraction rounds up", []int{5, 5, 4}, "4.67"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, err := decimal.NewFromString(tt.want)
			assert.NoError(t, err)
			assert.True(t, AverageRating(tt.ratings).Equal(want),
				"got %s, want %s", AverageRating(tt.ratings), want)
		})
	}
}
