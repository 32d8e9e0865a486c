package entity

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "no_show"
)

// legalTransitions is the enforced state machine:
// scheduled -> confirmed, cancelled, no_show
// confirmed -> completed, cancelled, no_show
// completed, cancelled, no_show are terminal.
var legalTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusScheduled: {AppointmentStatusConfirmed, AppointmentStatusCancelled, AppointmentStatusNoShow},
	AppointmentStatusConfirmed: {AppointmentStatusCompleted, AppointmentStatusCancelled, AppointmentStatusNoShow},
}

// CanTransition reports whether moving from one status to another is legal
func (s AppointmentStatus) CanTransition(to AppointmentStatus) bool {
	for _, next := range legalTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status allows no further transitions
func (s AppointmentStatus) IsTerminal() bool {
	return len(legalTransitions[s]) == 0
}

// Appointment binds a patient and doctor to a date and time, optionally
// enriched with a service, clinic and a claimed time slot.
type Appointment struct {
	ID              int               `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID        int               `gorm:"not null;index" json:"doctor_id"`
	PatientID       int               `gorm:"not null;index" json:"patient_id"`
	ServiceID       *int              `gorm:"index" json:"service_id,omitempty"`
	ClinicID        *int              `gorm:"index" json:"clinic_id,omitempty"`
	Date            time.Time         `gorm:"type:date;not null;index" json:"date"`
	Time            string            `gorm:"type:time;not null" json:"time"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	Reason          string            `gorm:"type:varchar(255)" json:"reason,omitempty"`
	Notes           string            `gorm:"type:text" json:"notes,omitempty"`
	Symptoms        string            `gorm:"type:text" json:"symptoms,omitempty"`
	DurationMinutes int               `gorm:"not null;default:30" json:"duration_minutes"`
	IsUrgent        *bool             `gorm:"not null;default:false" json:"is_urgent"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor   Doctor    `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient  Patient   `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Service  *Service  `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	Clinic   *Clinic   `gorm:"foreignKey:ClinicID" json:"clinic,omitempty"`
	TimeSlot *TimeSlot `gorm:"foreignKey:AppointmentID" json:"time_slot,omitempty"`
	Payment  *Payment  `gorm:"foreignKey:AppointmentID" json:"payment,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsUpcoming reports whether the appointment starts strictly after now
func (a *Appointment) IsUpcoming(now time.Time) bool {
	start, err := a.StartsAt()
	if err != nil {
		return false
	}
	return start.After(now)
}

// StartsAt combines the appointment date and HH:MM time into one instant
func (a *Appointment) StartsAt() (time.Time, error) {
	t, err := time.Parse("15:04", a.Time)
	if err != nil {
		// times loaded from postgres carry seconds
		t, err = time.Parse("15:04:05", a.Time)
		if err != nil {
			return time.Time{}, err
		}
	}
	return time.Date(a.Date.Year(), a.Date.Month(), a.Date.Day(),
		t.Hour(), t.Minute(), 0, 0, a.Date.Location()), nil
}

// IsActive reports whether the appointment still occupies its slot
func (a *Appointment) IsActive() bool {
	return a.Status == AppointmentStatusScheduled || a.Status == AppointmentStatusConfirmed
}
