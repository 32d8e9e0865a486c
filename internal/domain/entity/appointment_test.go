package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentStatusCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{"scheduled to confirmed", AppointmentStatusScheduled, AppointmentStatusConfirmed, true},
		{"scheduled to cancelled", AppointmentStatusScheduled, AppointmentStatusCancelled, true},
		{"scheduled to no_show", AppointmentStatusScheduled, AppointmentStatusNoShow, true},
		{"scheduled to completed skips confirmation", AppointmentStatusScheduled, AppointmentStatusCompleted, false},
		{"confirmed to completed", AppointmentStatusConfirmed, AppointmentStatusCompleted, true},
		{"confirmed to cancelled", AppointmentStatusConfirmed, AppointmentStatusCancelled, true},
		{"confirmed to no_show", AppointmentStatusConfirmed, AppointmentStatusNoShow, true},
		{"confirmed back to scheduled", AppointmentStatusConfirmed, AppointmentStatusScheduled, false},
		{"completed is terminal", AppointmentStatusCompleted, AppointmentStatusCancelled, false},
		{"cancelled is terminal", AppointmentStatusCancelled, AppointmentStatusScheduled, false},
		{"no_show is terminal", AppointmentStatusNoShow, AppointmentStatusConfirmed, false},
		{"self transition", AppointmentStatusScheduled, AppointmentStatusScheduled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransition(tt.to))
		})
	}
}

func TestAppointmentStatusIsTerminal(t *testing.T) {
	assert.False(t, AppointmentStatusScheduled.IsTerminal())
	assert.False(t, AppointmentStatusConfirmed.IsTerminal())
	assert.True(t, AppointmentStatusCompleted.IsTerminal())
	assert.True(t, AppointmentStatusCancelled.IsTerminal())
	assert.True(t, AppointmentStatusNoShow.IsTerminal())
}

func TestAppointmentStartsAt(t *testing.T) {
	appointment := &Appointment{
		Date: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Time: "09:30",
	}

	start, err := appointment.StartsAt()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC), start)
}

func TestAppointmentStartsAtWithSeconds(t *testing.T) {
	appointment := &Appointment{
		Date: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Time: "14:00:00",
	}

	start, err := appointment.StartsAt()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 14, 14, 0, 0, 0, time.UTC), start)
}

func TestAppointmentStartsAtInvalidTime(t *testing.T) {
	appointment := &Appointment{
		Date: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Time: "25:99",
	}

	_, err := appointment.StartsAt()
	assert.Error(t, err)
}

func TestAppointmentIsUpcoming(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	future := &Appointment{Date: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), Time: "10:30"}
	past := &Appointment{Date: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), Time: "09:30"}
	exact := &Appointment{Date: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), Time: "10:00"}
	malformed := &Appointment{Date: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), Time: "bad"}

	assert.True(t, future.IsUpcoming(now))
	assert.False(t, past.IsUpcoming(now))
	assert.False(t, exact.IsUpcoming(now))
	assert.False(t, malformed.IsUpcoming(now))
}

func TestAppointmentIsActive(t *testing.T) {
	assert.True(t, (&Appointment{Status: AppointmentStatusScheduled}).IsActive())
	assert.True(t, (&Appointment{Status: AppointmentStatusConfirmed}).IsActive())
	assert.False(t, (&Appointment{Status: AppointmentStatusCompleted}).IsActive())
	assert.False(t, (&Appointment{Status: AppointmentStatusCancelled}).IsActive())
	assert.False(t, (&Appointment{Status: AppointmentStatusNoShow}).IsActive())
}
