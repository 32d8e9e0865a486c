package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestActorRoleChecks(t *testing.T) {
	client := &Actor{UserID: uuid.New(), RoleID: RoleIDClient}
	doctor := &Actor{UserID: uuid.New(), RoleID: RoleIDDoctor}
	manager := &Actor{UserID: uuid.New(), RoleID: RoleIDManager}

	assert.True(t, client.IsClient())
	assert.False(t, client.IsDoctor())
	assert.False(t, client.IsManager())

	assert.True(t, doctor.IsDoctor())
	assert.False(t, doctor.IsClient())

	assert.True(t, manager.IsManager())
	assert.False(t, manager.IsDoctor())
}

func TestNilActorIsAnonymous(t *testing.T) {
	var anonymous *Actor

	assert.False(t, anonymous.IsClient())
	assert.False(t, anonymous.IsDoctor())
	assert.False(t, anonymous.IsManager())
	assert.False(t, anonymous.SelfScoped())
}

func TestActorSelfScoped(t *testing.T) {
	doctorID := 7

	managerWithDoctor := &Actor{RoleID: RoleIDManager, DoctorID: &doctorID}
	managerOnly := &Actor{RoleID: RoleIDManager}
	doctorWithDoctor := &Actor{RoleID: RoleIDDoctor, DoctorID: &doctorID}

	assert.True(t, managerWithDoctor.SelfScoped())
	assert.False(t, managerOnly.SelfScoped())
	assert.False(t, doctorWithDoctor.SelfScoped())
}
