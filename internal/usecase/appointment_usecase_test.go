package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/repository"
	"clinic-backend/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAppointmentUsecaseForTest(t *testing.T, db *gorm.DB) AppointmentUsecase {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	auditService := service.NewAuditService(db, log, repository.NewAuditLogRepository())
	notificationService := service.NewNotificationService(log, repository.NewNotificationRepository())

	return NewAppointmentUsecase(
		db,
		log,
		repository.NewAppointmentRepository(),
		repository.NewTimeSlotRepository(),
		repository.NewDoctorRepository(),
		repository.NewPatientRepository(),
		auditService,
		notificationService,
	)
}

type bookingFixture struct {
	doctor  *entity.Doctor
	patient *entity.Patient
	slot    *entity.TimeSlot
	date    time.Time
}

func seedBookingFixture(t *testing.T, db *gorm.DB) *bookingFixture {
	t.Helper()

	spec := &entity.Specialization{Name: "Cardiology"}
	require.NoError(t, db.Create(spec).Error)

	user := &entity.User{
		RoleID:   entity.RoleIDDoctor,
		Email:    "doc@example.com",
		Password: "x",
		FullName: "Ada Reyes",
	}
	require.NoError(t, db.Create(user).Error)

	verified := true
	doctor := &entity.Doctor{
		UserID:           user.ID,
		SpecializationID: spec.ID,
		LicenseNumber:    "LIC-100",
		IsVerified:       &verified,
	}
	require.NoError(t, db.Create(doctor).Error)

	patient := &entity.Patient{
		FirstName: "Pat",
		LastName:  "Smith",
		Email:     "pat@example.com",
	}
	require.NoError(t, db.Create(patient).Error)

	date, err := time.Parse("2006-01-02", "2026-09-14")
	require.NoError(t, err)

	slot := &entity.TimeSlot{
		DoctorID:  doctor.ID,
		Date:      date,
		StartTime: "09:00",
		EndTime:   "09:30",
	}
	require.NoError(t, db.Create(slot).Error)

	return &bookingFixture{doctor: doctor, patient: patient, slot: slot, date: date}
}

func TestCreateClaimsSlot(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecaseForTest(t, db)
	fx := seedBookingFixture(t, db)

	resp, err := uc.Create(context.Background(), managerActor(), &dto.CreateAppointmentRequest{
		DoctorID:   fx.doctor.ID,
		PatientID:  fx.patient.ID,
		TimeSlotID: &fx.slot.ID,
	})
	require.NoError(t, err)

	var slot entity.TimeSlot
	require.NoError(t, db.First(&slot, fx.slot.ID).Error)
	require.NotNil(t, slot.IsAvailable)
	assert.False(t, *slot.IsAvailable)
	require.NotNil(t, slot.AppointmentID)
	assert.Equal(t, resp.ID, *slot.AppointmentID)
}

func TestCreateSlotBookingConflictsWithDirectBooking(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecaseForTest(t, db)
	fx := seedBookingFixture(t, db)

	// a direct booking occupies the slot's exact date and time
	_, err := uc.Create(context.Background(), managerActor(), &dto.CreateAppointmentRequest{
		DoctorID:  fx.doctor.ID,
		PatientID: fx.patient.ID,
		Date:      "2026-09-14",
		Time:      "09:00",
	})
	require.NoError(t, err)

	other := &entity.Patient{FirstName: "Sam", LastName: "Lee", Email: "sam@example.com"}
	require.NoError(t, db.Create(other).Error)

	_, err = uc.Create(context.Background(), managerActor(), &dto.CreateAppointmentRequest{
		DoctorID:   fx.doctor.ID,
		PatientID:  other.ID,
		TimeSlotID: &fx.slot.ID,
	})
	assert.ErrorIs(t, err, ErrTimeConflict)

	// the losing booking must not have claimed the slot either
	var slot entity.TimeSlot
	require.NoError(t, db.First(&slot, fx.slot.ID).Error)
	require.NotNil(t, slot.IsAvailable)
	assert.True(t, *slot.IsAvailable)
	assert.Nil(t, slot.AppointmentID)
}

func TestCreateDirectBookingConflictsWithClaimedSlot(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecaseForTest(t, db)
	fx := seedBookingFixture(t, db)

	_, err := uc.Create(context.Background(), managerActor(), &dto.CreateAppointmentRequest{
		DoctorID:   fx.doctor.ID,
		PatientID:  fx.patient.ID,
		TimeSlotID: &fx.slot.ID,
	})
	require.NoError(t, err)

	other := &entity.Patient{FirstName: "Sam", LastName: "Lee", Email: "sam@example.com"}
	require.NoError(t, db.Create(other).Error)

	_, err = uc.Create(context.Background(), managerActor(), &dto.CreateAppointmentRequest{
		DoctorID:  fx.doctor.ID,
		PatientID: other.ID,
		Date:      "2026-09-14",
		Time:      "09:00",
	})
	assert.ErrorIs(t, err, ErrTimeConflict)
}
