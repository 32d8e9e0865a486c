package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandWindows(t *testing.T) {
	windows, err := expandWindows("09:00", "11:00")
	require.NoError(t, err)

	assert.Equal(t, [][2]string{
		{"09:00", "09:30"},
		{"09:30", "10:00"},
		{"10:00", "10:30"},
		{"10:30", "11:00"},
	}, windows)
}

func TestExpandWindowsDropsShortRemainder(t *testing.T) {
	windows, err := expandWindows("09:00", "09:45")
	require.NoError(t, err)

	assert.Equal(t, [][2]string{{"09:00", "09:30"}}, windows)
}

func TestExpandWindowsEmptyWhenTooNarrow(t *testing.T) {
	windows, err := expandWindows("09:00", "09:15")
	require.NoError(t, err)
	assert.Empty(t, windows)

	windows, err = expandWindows("17:00", "09:00")
	require.NoError(t, err)
	assert.Empty(t, windows)
}

func TestExpandWindowsMalformedClock(t *testing.T) {
	_, err := expandWindows("9am", "11:00")
	assert.Error(t, err)

	_, err = expandWindows("09:00", "eleven")
	assert.Error(t, err)
}

func TestNormalizeClock(t *testing.T) {
	assert.Equal(t, "09:30", normalizeClock("09:30:00"))
	assert.Equal(t, "09:30", normalizeClock("09:30"))
	assert.Equal(t, "9:30", normalizeClock("9:30"))
}
