package repository

import (
	"testing"
	"time"

	"clinic-backend/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSlotTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.Role{},
		&entity.User{},
		&entity.Specialization{},
		&entity.Doctor{},
		&entity.Patient{},
		&entity.TimeSlot{},
		&entity.Appointment{},
	))

	return db
}

func seedSlot(t *testing.T, db *gorm.DB) *entity.TimeSlot {
	t.Helper()

	date, err := time.Parse("2006-01-02", "2026-09-14")
	require.NoError(t, err)

	slot := &entity.TimeSlot{
		DoctorID:  1,
		Date:      date,
		StartTime: "09:00",
		EndTime:   "09:30",
	}
	require.NoError(t, db.Create(slot).Error)
	return slot
}

// assertSlotConsistent checks that availability and the appointment binding
// never disagree.
func assertSlotConsistent(t *testing.T, db *gorm.DB, slotID int) *entity.TimeSlot {
	t.Helper()

	var slot entity.TimeSlot
	require.NoError(t, db.First(&slot, slotID).Error)
	require.NotNil(t, slot.IsAvailable)
	assert.Equal(t, slot.AppointmentID == nil, *slot.IsAvailable)
	return &slot
}

func TestTimeSlotClaim(t *testing.T) {
	db := newSlotTestDB(t)
	repo := NewTimeSlotRepository()
	slot := seedSlot(t, db)

	affected, err := repo.Claim(db, slot.ID, 41)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	claimed := assertSlotConsistent(t, db, slot.ID)
	require.NotNil(t, claimed.AppointmentID)
	assert.Equal(t, 41, *claimed.AppointmentID)
	assert.True(t, claimed.IsClaimed())
}

func TestTimeSlotClaimTakenSlot(t *testing.T) {
	db := newSlotTestDB(t)
	repo := NewTimeSlotRepository()
	slot := seedSlot(t, db)

	affected, err := repo.Claim(db, slot.ID, 41)
	require.NoError(t, err)
	require.Equal(t, int64(1), affected)

	// the second claim loses the conditional update and changes nothing
	affected, err = repo.Claim(db, slot.ID, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)

	claimed := assertSlotConsistent(t, db, slot.ID)
	require.NotNil(t, claimed.AppointmentID)
	assert.Equal(t, 41, *claimed.AppointmentID)
}

func TestTimeSlotRelease(t *testing.T) {
	db := newSlotTestDB(t)
	repo := NewTimeSlotRepository()
	slot := seedSlot(t, db)

	_, err := repo.Claim(db, slot.ID, 41)
	require.NoError(t, err)

	affected, err := repo.Release(db, 41)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	released := assertSlotConsistent(t, db, slot.ID)
	assert.Nil(t, released.AppointmentID)
	assert.False(t, released.IsClaimed())

	// releasing an appointment with no slot is a no-op
	affected, err = repo.Release(db, 41)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}
