package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clockPayload struct {
	StartTime string `validate:"required,hhmm"`
}

type datePayload struct {
	Date string `validate:"required,dateymd"`
}

func TestClockTimeValidation(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(&clockPayload{StartTime: "09:30"}))
	assert.NoError(t, v.Validate(&clockPayload{StartTime: "23:59"}))
	assert.Error(t, v.Validate(&clockPayload{StartTime: "24:00"}))
	assert.Error(t, v.Validate(&clockPayload{StartTime: "9:3"}))
	assert.Error(t, v.Validate(&clockPayload{StartTime: "morning"}))
}

func TestDateValidation(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(&datePayload{Date: "2026-03-14"}))
	assert.Error(t, v.Validate(&datePayload{Date: "2026-13-01"}))
	assert.Error(t, v.Validate(&datePayload{Date: "14-03-2026"}))
	assert.Error(t, v.Validate(&datePayload{Date: ""}))
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&clockPayload{StartTime: "late"})
	require.Error(t, err)

	formatted := v.FormatValidationErrors(err)
	assert.Equal(t, "StartTime must be a time in HH:MM format", formatted["StartTime"])
}
