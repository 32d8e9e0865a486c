package entity

// Domain-level filters used by the repository layer to avoid coupling
// with delivery DTOs.

// DoctorFilter narrows doctor listings
type DoctorFilter struct {
	SpecializationID int
	Name             string // ILIKE on user full name
	IsAvailable      *bool
	IsVerified       *bool
	Page             int
	Limit            int
}

// ScheduleFilter narrows schedule listings
type ScheduleFilter struct {
	DoctorID  int
	DayOfWeek int
	IsWorking *bool
}

// AppointmentFilter narrows appointment listings
type AppointmentFilter struct {
	DoctorID  int
	PatientID int
	Status    string
	DateFrom  string // YYYY-MM-DD
	DateTo    string // YYYY-MM-DD
}

// ReviewFilter narrows review listings
type ReviewFilter struct {
	DoctorID   int
	PatientID  int
	IsApproved *bool
}

// AuditLogFilter narrows audit log listings
type AuditLogFilter struct {
	Action string
	Limit  int
	Offset int
}
