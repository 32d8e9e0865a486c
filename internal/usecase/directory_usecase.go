package usecase

import (
	"context"
	"errors"

	"clinic-backend/internal/converter"
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSpecializationNotFound = errors.New("specialization not found")
	ErrSpecializationInUse    = errors.New("specialization is referenced by doctors or services")
	ErrSpecializationTaken    = errors.New("specialization name already exists")
	ErrServiceNotFound        = errors.New("service not found")
	ErrServiceTaken           = errors.New("service name already exists")
	ErrClinicNotFound         = errors.New("clinic not found")
	ErrAffiliationExists      = errors.New("doctor is already affiliated with this clinic")
)

// DirectoryUsecase manages the reference catalog: specializations,
// services, clinics with their departments, and doctor affiliations.
type DirectoryUsecase interface {
	CreateSpecialization(ctx context.Context, req *dto.SpecializationRequest) (*dto.SpecializationResponse, error)
	ListSpecializations(ctx context.Context) ([]dto.SpecializationResponse, error)
	UpdateSpecialization(ctx context.Context, id int, req *dto.SpecializationRequest) (*dto.SpecializationResponse, error)
	DeleteSpecialization(ctx context.Context, id int) error

	CreateService(ctx context.Context, req *dto.ServiceRequest) (*dto.ServiceResponse, error)
	ListServices(ctx context.Context) ([]dto.ServiceResponse, error)
	UpdateService(ctx context.Context, id int, req *dto.ServiceRequest) (*dto.ServiceResponse, error)
	DeleteService(ctx context.Context, id int) error

	CreateClinic(ctx context.Context, req *dto.ClinicRequest) (*dto.ClinicResponse, error)
	GetClinic(ctx context.Context, id int) (*dto.ClinicResponse, error)
	ListClinics(ctx context.Context) ([]dto.ClinicResponse, error)
	UpdateClinic(ctx context.Context, id int, req *dto.ClinicRequest) (*dto.ClinicResponse, error)
	DeleteClinic(ctx context.Context, id int) error

	CreateDepartment(ctx context.Context, clinicID int, req *dto.DepartmentRequest) (*dto.DepartmentResponse, error)
	ListDepartments(ctx context.Context, clinicID int) ([]dto.DepartmentResponse, error)

	CreateAffiliation(ctx context.Context, req *dto.AffiliationRequest) (*dto.AffiliationResponse, error)
	ListAffiliationsByDoctor(ctx context.Context, doctorID int) ([]dto.AffiliationResponse, error)
}

type directoryUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	specRepo   repository.SpecializationRepository
	svcRepo    repository.ServiceRepository
	clinicRepo repository.ClinicRepository
	doctorRepo repository.DoctorRepository
}

func NewDirectoryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	specRepo repository.SpecializationRepository,
	svcRepo repository.ServiceRepository,
	clinicRepo repository.ClinicRepository,
	doctorRepo repository.DoctorRepository,
) DirectoryUsecase {
	return &directoryUsecase{
		db:         db,
		log:        log,
		specRepo:   specRepo,
		svcRepo:    svcRepo,
		clinicRepo: clinicRepo,
		doctorRepo: doctorRepo,
	}
}

func (u *directoryUsecase) CreateSpecialization(ctx context.Context, req *dto.SpecializationRequest) (*dto.SpecializationResponse, error) {
	specialization := &entity.Specialization{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
	}
	if err := u.specRepo.Create(u.db.WithContext(ctx), specialization); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrSpecializationTaken
		}
		u.log.Warnf("Failed to create specialization: %+v", err)
		return nil, err
	}
	return converter.SpecializationToResponse(specialization), nil
}

func (u *directoryUsecase) ListSpecializations(ctx context.Context) ([]dto.SpecializationResponse, error) {
	specializations, err := u.specRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	return converter.SpecializationsToResponses(specializations), nil
}

func (u *directoryUsecase) UpdateSpecialization(ctx context.Context, id int, req *dto.SpecializationRequest) (*dto.SpecializationResponse, error) {
	db := u.db.WithContext(ctx)

	specialization, err := u.specRepo.FindByID(db, id)
	if err != nil {
		return nil, err
	}
	if specialization == nil {
		return nil, ErrSpecializationNotFound
	}

	specialization.Name = req.Name
	specialization.Description = req.Description
	specialization.Icon = req.Icon

	if err := u.specRepo.Update(db, specialization); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrSpecializationTaken
		}
		u.log.Warnf("Failed to update specialization: %+v", err)
		return nil, err
	}
	return converter.SpecializationToResponse(specialization), nil
}

// DeleteSpecialization refuses to remove a specialization that doctors or
// services still point at.
func (u *directoryUsecase) DeleteSpecialization(ctx context.Context, id int) error {
	affected, err := u.specRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		if isForeignKeyError(err, "specialization_id") {
			return ErrSpecializationInUse
		}
		u.log.Warnf("Failed to delete specialization: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrSpecializationNotFound
	}
	return nil
}

func (u *directoryUsecase) CreateService(ctx context.Context, req *dto.ServiceRequest) (*dto.ServiceResponse, error) {
	db := u.db.WithContext(ctx)

	if req.SpecializationID != nil {
		specialization, err := u.specRepo.FindByID(db, *req.SpecializationID)
		if err != nil {
			return nil, err
		}
		if specialization == nil {
			return nil, ErrSpecializationInvalid
		}
	}

	svc := &entity.Service{
		Name:             req.Name,
		Description:      req.Description,
		Price:            decimal.NewFromFloat(req.Price),
		SpecializationID: req.SpecializationID,
		IsActive:         req.IsActive,
	}
	if req.DurationMinutes > 0 {
		svc.DurationMinutes = req.DurationMinutes
	}

	if err := u.svcRepo.Create(db, svc); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrServiceTaken
		}
		u.log.Warnf("Failed to create service: %+v", err)
		return nil, err
	}
	return converter.ServiceToResponse(svc), nil
}

func (u *directoryUsecase) ListServices(ctx context.Context) ([]dto.ServiceResponse, error) {
	services, err := u.svcRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	return converter.ServicesToResponses(services), nil
}

func (u *directoryUsecase) UpdateService(ctx context.Context, id int, req *dto.ServiceRequest) (*dto.ServiceResponse, error) {
	db := u.db.WithContext(ctx)

	svc, err := u.svcRepo.FindByID(db, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	if req.SpecializationID != nil {
		specialization, err := u.specRepo.FindByID(db, *req.SpecializationID)
		if err != nil {
			return nil, err
		}
		if specialization == nil {
			return nil, ErrSpecializationInvalid
		}
		svc.SpecializationID = req.SpecializationID
	}

	svc.Name = req.Name
	svc.Description = req.Description
	svc.Price = decimal.NewFromFloat(req.Price)
	if req.DurationMinutes > 0 {
		svc.DurationMinutes = req.DurationMinutes
	}
	if req.IsActive != nil {
		svc.IsActive = req.IsActive
	}

	if err := u.svcRepo.Update(db, svc); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrServiceTaken
		}
		u.log.Warnf("Failed to update service: %+v", err)
		return nil, err
	}
	return converter.ServiceToResponse(svc), nil
}

func (u *directoryUsecase) DeleteService(ctx context.Context, id int) error {
	affected, err := u.svcRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete service: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrServiceNotFound
	}
	return nil
}

func (u *directoryUsecase) CreateClinic(ctx context.Context, req *dto.ClinicRequest) (*dto.ClinicResponse, error) {
	clinic := &entity.Clinic{
		Name:         req.Name,
		Address:      req.Address,
		Phone:        req.Phone,
		Email:        req.Email,
		WorkingHours: req.WorkingHours,
		IsActive:     req.IsActive,
	}
	if err := u.clinicRepo.Create(u.db.WithContext(ctx), clinic); err != nil {
		u.log.Warnf("Failed to create clinic: %+v", err)
		return nil, err
	}
	return converter.ClinicToResponse(clinic), nil
}

func (u *directoryUsecase) GetClinic(ctx context.Context, id int) (*dto.ClinicResponse, error) {
	db := u.db.WithContext(ctx)

	clinic, err := u.clinicRepo.FindByID(db, id)
	if err != nil {
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}

	departments, err := u.clinicRepo.FindDepartmentsByClinic(db, id)
	if err != nil {
		return nil, err
	}
	clinic.Departments = departments

	return converter.ClinicToResponse(clinic), nil
}

func (u *directoryUsecase) ListClinics(ctx context.Context) ([]dto.ClinicResponse, error) {
	clinics, err := u.clinicRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	return converter.ClinicsToResponses(clinics), nil
}

func (u *directoryUsecase) UpdateClinic(ctx context.Context, id int, req *dto.ClinicRequest) (*dto.ClinicResponse, error) {
	db := u.db.WithContext(ctx)

	clinic, err := u.clinicRepo.FindByID(db, id)
	if err != nil {
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}

	clinic.Name = req.Name
	clinic.Address = req.Address
	clinic.Phone = req.Phone
	clinic.Email = req.Email
	if req.WorkingHours != nil {
		clinic.WorkingHours = req.WorkingHours
	}
	if req.IsActive != nil {
		clinic.IsActive = req.IsActive
	}

	if err := u.clinicRepo.Update(db, clinic); err != nil {
		u.log.Warnf("Failed to update clinic: %+v", err)
		return nil, err
	}
	return converter.ClinicToResponse(clinic), nil
}

func (u *directoryUsecase) DeleteClinic(ctx context.Context, id int) error {
	affected, err := u.clinicRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete clinic: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrClinicNotFound
	}
	return nil
}

func (u *directoryUsecase) CreateDepartment(ctx context.Context, clinicID int, req *dto.DepartmentRequest) (*dto.DepartmentResponse, error) {
	db := u.db.WithContext(ctx)

	clinic, err := u.clinicRepo.FindByID(db, clinicID)
	if err != nil {
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}

	if req.HeadDoctorID != nil {
		doctor, err := u.doctorRepo.FindByID(db, nil, *req.HeadDoctorID)
		if err != nil {
			return nil, err
		}
		if doctor == nil {
			return nil, ErrDoctorNotFound
		}
	}

	department := &entity.Department{
		ClinicID:     clinicID,
		Name:         req.Name,
		Description:  req.Description,
		HeadDoctorID: req.HeadDoctorID,
	}
	if err := u.clinicRepo.CreateDepartment(db, department); err != nil {
		u.log.Warnf("Failed to create department: %+v", err)
		return nil, err
	}
	return converter.DepartmentToResponse(department), nil
}

func (u *directoryUsecase) ListDepartments(ctx context.Context, clinicID int) ([]dto.DepartmentResponse, error) {
	departments, err := u.clinicRepo.FindDepartmentsByClinic(u.db.WithContext(ctx), clinicID)
	if err != nil {
		return nil, err
	}
	responses := make([]dto.DepartmentResponse, 0, len(departments))
	for i := range departments {
		responses = append(responses, *converter.DepartmentToResponse(&departments[i]))
	}
	return responses, nil
}

func (u *directoryUsecase) CreateAffiliation(ctx context.Context, req *dto.AffiliationRequest) (*dto.AffiliationResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByID(db, nil, req.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	clinic, err := u.clinicRepo.FindByID(db, req.ClinicID)
	if err != nil {
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}

	affiliation := &entity.DoctorClinic{
		DoctorID:     req.DoctorID,
		ClinicID:     req.ClinicID,
		DepartmentID: req.DepartmentID,
	}
	if err := u.clinicRepo.CreateAffiliation(db, affiliation); err != nil {
		if isDuplicateKeyError(err, "idx_doctor_clinic") {
			return nil, ErrAffiliationExists
		}
		u.log.Warnf("Failed to create affiliation: %+v", err)
		return nil, err
	}

	affiliation.Clinic = *clinic
	return converter.AffiliationToResponse(affiliation), nil
}

func (u *directoryUsecase) ListAffiliationsByDoctor(ctx context.Context, doctorID int) ([]dto.AffiliationResponse, error) {
	affiliations, err := u.clinicRepo.FindAffiliationsByDoctor(u.db.WithContext(ctx), doctorID)
	if err != nil {
		return nil, err
	}
	return converter.AffiliationsToResponses(affiliations), nil
}
