package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"clinic-backend/config"
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/infrastructure/mail"
	"clinic-backend/internal/repository"
	"clinic-backend/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthUsecaseForTest(t *testing.T, db *gorm.DB) AuthUsecase {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	// delivery is asynchronous, so a dead SMTP endpoint cannot fail a test
	mailer := mail.NewMailer(config.SMTPConfig{Host: "localhost", Port: 2525, From: "noreply@clinic.local"}, log)
	auditService := service.NewAuditService(db, log, repository.NewAuditLogRepository())

	return NewAuthUsecase(
		db,
		log,
		repository.NewUserRepository(),
		repository.NewPatientRepository(),
		repository.NewDoctorRepository(),
		repository.NewSpecializationRepository(),
		repository.NewOTPRepository(),
		nil, // token issuance is not exercised here
		nil,
		mailer,
		auditService,
		config.OTPConfig{Expiry: 15 * time.Minute},
	)
}

func TestRegisterDefaultsToClient(t *testing.T) {
	db := newTestDB(t)
	uc := newAuthUsecaseForTest(t, db)

	resp, err := uc.Register(context.Background(), &dto.RegisterRequest{
		Email:     "Pat@Example.com",
		Password:  "secret123",
		FirstName: "Pat",
		LastName:  "Smith",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleClient, resp.Role)
	require.NotNil(t, resp.Patient)
	assert.Nil(t, resp.Doctor)

	var patient entity.Patient
	require.NoError(t, db.Where("email = ?", "pat@example.com").First(&patient).Error)
	assert.Equal(t, "Pat", patient.FirstName)

	var otpCount int64
	require.NoError(t, db.Model(&entity.OTP{}).Where("email = ?", "pat@example.com").Count(&otpCount).Error)
	assert.Equal(t, int64(1), otpCount)
}

func TestRegisterDoctorCreatesUnverifiedProfile(t *testing.T) {
	db := newTestDB(t)
	uc := newAuthUsecaseForTest(t, db)

	spec := &entity.Specialization{Name: "Cardiology"}
	require.NoError(t, db.Create(spec).Error)

	resp, err := uc.Register(context.Background(), &dto.RegisterRequest{
		Email:            "Doc@Example.com",
		Password:         "secret123",
		FirstName:        "Ada",
		LastName:         "Reyes",
		Role:             entity.RoleDoctor,
		SpecializationID: spec.ID,
		LicenseNumber:    "LIC-100",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleDoctor, resp.Role)
	require.NotNil(t, resp.Doctor)
	assert.Nil(t, resp.Patient)

	var doctor entity.Doctor
	require.NoError(t, db.Where("license_number = ?", "LIC-100").First(&doctor).Error)
	assert.Equal(t, spec.ID, doctor.SpecializationID)
	assert.False(t, doctor.IsPublic(), "self-registered doctors stay hidden until verified")

	// registering as a doctor must not fabricate a patient record
	var patientCount int64
	require.NoError(t, db.Model(&entity.Patient{}).Where("email = ?", "doc@example.com").Count(&patientCount).Error)
	assert.Equal(t, int64(0), patientCount)

	// the verification flow is the same one clients go through
	var otpCount int64
	require.NoError(t, db.Model(&entity.OTP{}).Where("email = ?", "doc@example.com").Count(&otpCount).Error)
	assert.Equal(t, int64(1), otpCount)
}

func TestRegisterDoctorUnknownSpecialization(t *testing.T) {
	db := newTestDB(t)
	uc := newAuthUsecaseForTest(t, db)

	_, err := uc.Register(context.Background(), &dto.RegisterRequest{
		Email:            "doc@example.com",
		Password:         "secret123",
		FirstName:        "Ada",
		LastName:         "Reyes",
		Role:             entity.RoleDoctor,
		SpecializationID: 999,
		LicenseNumber:    "LIC-100",
	})
	assert.ErrorIs(t, err, ErrSpecializationInvalid)

	// the whole registration rolls back with the failed profile
	var userCount int64
	require.NoError(t, db.Model(&entity.User{}).Count(&userCount).Error)
	assert.Equal(t, int64(0), userCount)
}

func TestVerifyEmailConsumesCode(t *testing.T) {
	db := newTestDB(t)
	uc := newAuthUsecaseForTest(t, db)

	_, err := uc.Register(context.Background(), &dto.RegisterRequest{
		Email:     "pat@example.com",
		Password:  "secret123",
		FirstName: "Pat",
		LastName:  "Smith",
	})
	require.NoError(t, err)

	var otp entity.OTP
	require.NoError(t, db.Where("email = ?", "pat@example.com").First(&otp).Error)

	req := &dto.VerifyEmailRequest{Email: "pat@example.com", Code: otp.Code}
	require.NoError(t, uc.VerifyEmail(context.Background(), req))

	var user entity.User
	require.NoError(t, db.Where("email = ?", "pat@example.com").First(&user).Error)
	assert.True(t, user.IsEmailVerified)

	// a consumed code is deleted and can never verify again
	assert.ErrorIs(t, uc.VerifyEmail(context.Background(), req), ErrInvalidOTP)
}

func TestGenerateOTPCode(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 50; i++ {
		code, err := generateOTPCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, c := range code {
			assert.True(t, c >= '0' && c <= '9', "code %q contains non-digit", code)
		}
		seen[code] = true
	}

	// 50 draws from a million values collapsing to one would mean a broken source
	assert.Greater(t, len(seen), 1)
}
