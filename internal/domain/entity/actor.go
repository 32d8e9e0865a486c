package entity

import "github.com/google/uuid"

// Actor is the authenticated principal a request runs as. Repositories use
// it to scope querysets uniformly instead of ad-hoc role checks per handler.
// A nil Actor means an anonymous (public) read.
type Actor struct {
	UserID uuid.UUID
	RoleID int

	// DoctorID is set when the actor's account is linked to a doctor row.
	// Manager-scoped reads are restricted to this doctor's chain.
	DoctorID *int

	// PatientID is set when the actor's account is linked to a patient row.
	PatientID *int
}

// IsManager reports whether the actor carries the manager role
func (a *Actor) IsManager() bool {
	return a != nil && a.RoleID == RoleIDManager
}

// IsDoctor reports whether the actor carries the doctor role
func (a *Actor) IsDoctor() bool {
	return a != nil && a.RoleID == RoleIDDoctor
}

// IsClient reports whether the actor carries the client role
func (a *Actor) IsClient() bool {
	return a != nil && a.RoleID == RoleIDClient
}

// SelfScoped reports whether reads must be narrowed to the actor's own
// doctor chain. True for a manager with a linked doctor identity.
func (a *Actor) SelfScoped() bool {
	return a.IsManager() && a.DoctorID != nil
}
