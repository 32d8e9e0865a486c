package usecase

import (
	"context"
	"errors"

	"clinic-backend/internal/converter"
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"
	"clinic-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPrescriptionNotFound  = errors.New("prescription not found")
	ErrMedicalRecordNotFound = errors.New("medical record not found")
)

// MedicalUsecase covers prescriptions and the treatment history.
type MedicalUsecase interface {
	CreatePrescription(ctx context.Context, actor *entity.Actor, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	GetPrescription(ctx context.Context, actor *entity.Actor, id int) (*dto.PrescriptionResponse, error)
	ListPrescriptions(ctx context.Context, actor *entity.Actor) ([]dto.PrescriptionResponse, error)
	DeactivatePrescription(ctx context.Context, actor *entity.Actor, id int) error

	CreateMedicalRecord(ctx context.Context, actor *entity.Actor, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	ListMedicalRecords(ctx context.Context, actor *entity.Actor, patientID int) ([]dto.MedicalRecordResponse, error)
}

type medicalUsecase struct {
	db                  *gorm.DB
	log                 *logrus.Logger
	prescriptionRepo    repository.PrescriptionRepository
	recordRepo          repository.MedicalRecordRepository
	patientRepo         repository.PatientRepository
	doctorRepo          repository.DoctorRepository
	auditService        service.AuditService
	notificationService service.NotificationService
}

func NewMedicalUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	prescriptionRepo repository.PrescriptionRepository,
	recordRepo repository.MedicalRecordRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
	notificationService service.NotificationService,
) MedicalUsecase {
	return &medicalUsecase{
		db:                  db,
		log:                 log,
		prescriptionRepo:    prescriptionRepo,
		recordRepo:          recordRepo,
		patientRepo:         patientRepo,
		doctorRepo:          doctorRepo,
		auditService:        auditService,
		notificationService: notificationService,
	}
}

// CreatePrescription issues a medication order. A doctor working from
// their own console always prescribes under their own profile.
func (u *medicalUsecase) CreatePrescription(ctx context.Context, actor *entity.Actor, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctorID := req.DoctorID
	if (actor.IsDoctor() || actor.SelfScoped()) && actor.DoctorID != nil {
		doctorID = *actor.DoctorID
	}

	doctor, err := u.doctorRepo.FindByID(tx, actor, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	patient, err := u.patientRepo.FindByID(tx, req.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	prescription := &entity.Prescription{
		PatientID:      req.PatientID,
		DoctorID:       doctorID,
		AppointmentID:  req.AppointmentID,
		MedicationName: req.MedicationName,
		Dosage:         req.Dosage,
		Frequency:      req.Frequency,
		Duration:       req.Duration,
		Instructions:   req.Instructions,
	}

	if err := u.prescriptionRepo.Create(tx, prescription); err != nil {
		u.log.Warnf("Failed to create prescription: %+v", err)
		return nil, err
	}

	if patient.UserID != nil {
		if err := u.notificationService.NotifyPrescriptionReady(tx, *patient.UserID, req.MedicationName); err != nil {
			return nil, err
		}
	}

	u.auditService.LogCreate(ctx, tx, &actor.UserID, entity.AuditActionPrescriptionCreate, "prescription", "", prescription)

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	prescription.Patient = *patient
	prescription.Doctor = *doctor
	return converter.PrescriptionToResponse(prescription), nil
}

func (u *medicalUsecase) GetPrescription(ctx context.Context, actor *entity.Actor, id int) (*dto.PrescriptionResponse, error) {
	prescription, err := u.prescriptionRepo.FindByID(u.db.WithContext(ctx), actor, id)
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}
	if actor.IsClient() && (actor.PatientID == nil || prescription.PatientID != *actor.PatientID) {
		return nil, ErrPrescriptionNotFound
	}
	return converter.PrescriptionToResponse(prescription), nil
}

func (u *medicalUsecase) ListPrescriptions(ctx context.Context, actor *entity.Actor) ([]dto.PrescriptionResponse, error) {
	prescriptions, err := u.prescriptionRepo.FindAll(u.db.WithContext(ctx), actor)
	if err != nil {
		return nil, err
	}
	return converter.PrescriptionsToResponses(prescriptions), nil
}

func (u *medicalUsecase) DeactivatePrescription(ctx context.Context, actor *entity.Actor, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	prescription, err := u.prescriptionRepo.FindByID(tx, actor, id)
	if err != nil {
		return err
	}
	if prescription == nil {
		return ErrPrescriptionNotFound
	}

	active := false
	prescription.IsActive = &active
	if err := u.prescriptionRepo.Update(tx, prescription); err != nil {
		u.log.Warnf("Failed to deactivate prescription: %+v", err)
		return err
	}

	return tx.Commit().Error
}

func (u *medicalUsecase) CreateMedicalRecord(ctx context.Context, actor *entity.Actor, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, req.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	doctorID := req.DoctorID
	if (actor.IsDoctor() || actor.SelfScoped()) && actor.DoctorID != nil {
		doctorID = actor.DoctorID
	}

	record := &entity.MedicalRecord{
		PatientID:     req.PatientID,
		DoctorID:      doctorID,
		AppointmentID: req.AppointmentID,
		Diagnosis:     req.Diagnosis,
		Treatment:     req.Treatment,
		Notes:         req.Notes,
	}

	if err := u.recordRepo.Create(tx, record); err != nil {
		u.log.Warnf("Failed to create medical record: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return converter.MedicalRecordToResponse(record), nil
}

// ListMedicalRecords returns a patient's history. Clients see only their
// own chart regardless of the requested patient.
func (u *medicalUsecase) ListMedicalRecords(ctx context.Context, actor *entity.Actor, patientID int) ([]dto.MedicalRecordResponse, error) {
	if actor.IsClient() {
		if actor.PatientID == nil {
			return []dto.MedicalRecordResponse{}, nil
		}
		patientID = *actor.PatientID
	}

	records, err := u.recordRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		return nil, err
	}
	return converter.MedicalRecordsToResponses(records), nil
}
