package usecase

import (
	"context"
	"errors"
	"strings"

	"clinic-backend/internal/converter"
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"
	"clinic-backend/internal/service"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound        = errors.New("doctor not found")
	ErrLicenseAlreadyExists  = errors.New("license number already exists")
	ErrSpecializationInvalid = errors.New("specialization not found")
)

type DoctorUsecase interface {
	Create(ctx context.Context, actor *entity.Actor, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetByID(ctx context.Context, actor *entity.Actor, id int) (*dto.DoctorResponse, error)
	List(ctx context.Context, actor *entity.Actor, filter *entity.DoctorFilter) (*dto.DoctorListResponse, error)
	ListPublic(ctx context.Context, filter *entity.DoctorFilter) (*dto.DoctorListResponse, error)
	GetPublicByID(ctx context.Context, id int) (*dto.DoctorResponse, error)
	Update(ctx context.Context, actor *entity.Actor, id int, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	Verify(ctx context.Context, actor *entity.Actor, id int) (*dto.DoctorResponse, error)
	ToggleAvailability(ctx context.Context, actor *entity.Actor, id int) (*dto.DoctorResponse, error)
	Delete(ctx context.Context, actor *entity.Actor, id int) error
}

type doctorUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	userRepo     repository.UserRepository
	specRepo     repository.SpecializationRepository
	auditService service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	userRepo repository.UserRepository,
	specRepo repository.SpecializationRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:           db,
		log:          log,
		doctorRepo:   doctorRepo,
		userRepo:     userRepo,
		specRepo:     specRepo,
		auditService: auditService,
	}
}

// Create provisions the doctor's user account and profile together. The
// account is marked verified up front since the console operator vouches
// for the address.
func (u *doctorUsecase) Create(ctx context.Context, actor *entity.Actor, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	spec, err := u.specRepo.FindByID(tx, req.SpecializationID)
	if err != nil {
		return nil, err
	}
	if spec == nil {
		return nil, ErrSpecializationInvalid
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:           strings.ToLower(req.Email),
		Password:        string(hashedPassword),
		FullName:        req.FullName,
		PhoneNumber:     req.PhoneNumber,
		RoleID:          entity.RoleIDDoctor,
		IsEmailVerified: true,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create doctor account: %+v", err)
		return nil, err
	}

	doctor := &entity.Doctor{
		UserID:           user.ID,
		SpecializationID: req.SpecializationID,
		LicenseNumber:    req.LicenseNumber,
		ExperienceYears:  req.ExperienceYears,
		Education:        req.Education,
		Bio:              req.Bio,
		OfficeNumber:     req.OfficeNumber,
		ConsultationFee:  decimal.NewFromFloat(req.ConsultationFee),
	}

	if err := u.doctorRepo.Create(tx, doctor); err != nil {
		if isDuplicateKeyError(err, "license") {
			return nil, ErrLicenseAlreadyExists
		}
		u.log.Warnf("Failed to create doctor profile: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, tx, &actor.UserID, entity.AuditActionDoctorCreate, "doctor", user.ID.String(), doctor)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	doctor.User = *user
	doctor.Specialization = *spec
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetByID(ctx context.Context, actor *entity.Actor, id int) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), actor, id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) List(ctx context.Context, actor *entity.Actor, filter *entity.DoctorFilter) (*dto.DoctorListResponse, error) {
	doctors, total, err := u.doctorRepo.FindAll(u.db.WithContext(ctx), actor, filter)
	if err != nil {
		return nil, err
	}
	return converter.DoctorsToListResponse(doctors, total, false), nil
}

func (u *doctorUsecase) ListPublic(ctx context.Context, filter *entity.DoctorFilter) (*dto.DoctorListResponse, error) {
	doctors, total, err := u.doctorRepo.FindPublic(u.db.WithContext(ctx), filter)
	if err != nil {
		return nil, err
	}
	return converter.DoctorsToListResponse(doctors, total, true), nil
}

func (u *doctorUsecase) GetPublicByID(ctx context.Context, id int) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindPublicByID(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorToPublicResponse(doctor), nil
}

func (u *doctorUsecase) Update(ctx context.Context, actor *entity.Actor, id int, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, actor, id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if req.SpecializationID != 0 {
		spec, err := u.specRepo.FindByID(tx, req.SpecializationID)
		if err != nil {
			return nil, err
		}
		if spec == nil {
			return nil, ErrSpecializationInvalid
		}
		doctor.SpecializationID = req.SpecializationID
		doctor.Specialization = *spec
	}
	if req.ExperienceYears != nil {
		doctor.ExperienceYears = *req.ExperienceYears
	}
	if req.Education != "" {
		doctor.Education = req.Education
	}
	if req.Bio != "" {
		doctor.Bio = req.Bio
	}
	if req.OfficeNumber != "" {
		doctor.OfficeNumber = req.OfficeNumber
	}
	if req.ConsultationFee != nil {
		doctor.ConsultationFee = decimal.NewFromFloat(*req.ConsultationFee)
	}
	if req.IsAvailable != nil {
		doctor.IsAvailable = req.IsAvailable
	}

	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, tx, &actor.UserID, entity.AuditActionDoctorUpdate, "doctor", doctor.UserID.String(), nil, doctor)

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

// Verify flags the doctor as credential-checked, which makes the profile
// eligible for the public directory.
func (u *doctorUsecase) Verify(ctx context.Context, actor *entity.Actor, id int) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, actor, id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	verified := true
	doctor.IsVerified = &verified
	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		return nil, err
	}

	u.auditService.LogUpdate(ctx, tx, &actor.UserID, entity.AuditActionDoctorVerify, "doctor", doctor.UserID.String(), nil, doctor)

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) ToggleAvailability(ctx context.Context, actor *entity.Actor, id int) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, actor, id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	available := doctor.IsAvailable == nil || !*doctor.IsAvailable
	doctor.IsAvailable = &available
	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		return nil, err
	}

	u.auditService.LogUpdate(ctx, tx, &actor.UserID, entity.AuditActionDoctorToggle, "doctor", doctor.UserID.String(), nil, doctor)

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Delete(ctx context.Context, actor *entity.Actor, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, actor, id)
	if err != nil {
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	if _, err := u.doctorRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete doctor: %+v", err)
		return err
	}

	u.auditService.LogDelete(ctx, tx, &actor.UserID, entity.AuditActionDoctorDelete, "doctor", doctor.UserID.String(), doctor)

	return tx.Commit().Error
}
