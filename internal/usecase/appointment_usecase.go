package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-backend/internal/converter"
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"
	"clinic-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrSlotUnavailable     = errors.New("time slot is no longer available")
	ErrSlotDoctorMismatch  = errors.New("time slot belongs to a different doctor")
	ErrTimeConflict        = errors.New("doctor already has an appointment at this time")
	ErrIllegalTransition   = errors.New("illegal appointment status transition")
	ErrNotAppointmentOwner = errors.New("appointment belongs to another patient")
	ErrMissingDateTime     = errors.New("date and time are required when no slot is given")
)

type AppointmentUsecase interface {
	Create(ctx context.Context, actor *entity.Actor, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetByID(ctx context.Context, actor *entity.Actor, id int) (*dto.AppointmentResponse, error)
	List(ctx context.Context, actor *entity.Actor, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error)
	UpdateStatus(ctx context.Context, actor *entity.Actor, id int, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db                  *gorm.DB
	log                 *logrus.Logger
	appointmentRepo     repository.AppointmentRepository
	slotRepo            repository.TimeSlotRepository
	doctorRepo          repository.DoctorRepository
	patientRepo         repository.PatientRepository
	auditService        service.AuditService
	notificationService service.NotificationService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	slotRepo repository.TimeSlotRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
	notificationService service.NotificationService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:                  db,
		log:                 log,
		appointmentRepo:     appointmentRepo,
		slotRepo:            slotRepo,
		doctorRepo:          doctorRepo,
		patientRepo:         patientRepo,
		auditService:        auditService,
		notificationService: notificationService,
	}
}

// Create books an appointment, either against a materialized slot or a
// free-form date and time. Slot claims are conditional updates, so two
// concurrent bookings of the same slot cannot both succeed.
func (u *appointmentUsecase) Create(ctx context.Context, actor *entity.Actor, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patientID, err := u.resolvePatient(tx, actor, req.PatientID)
	if err != nil {
		return nil, err
	}

	var doctor *entity.Doctor
	if actor.IsClient() {
		// clients can only book listed doctors
		doctor, err = u.doctorRepo.FindPublicByID(tx, req.DoctorID)
	} else {
		doctor, err = u.doctorRepo.FindByID(tx, actor, req.DoctorID)
	}
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	appointment := &entity.Appointment{
		DoctorID:  req.DoctorID,
		PatientID: patientID,
		ServiceID: req.ServiceID,
		ClinicID:  req.ClinicID,
		Status:    entity.AppointmentStatusScheduled,
		Reason:    req.Reason,
		Symptoms:  req.Symptoms,
		IsUrgent:  req.IsUrgent,
	}
	if req.DurationMinutes > 0 {
		appointment.DurationMinutes = req.DurationMinutes
	}

	if req.TimeSlotID != nil {
		slot, err := u.slotRepo.FindByID(tx, *req.TimeSlotID)
		if err != nil {
			return nil, err
		}
		if slot == nil {
			return nil, ErrSlotNotFound
		}
		if slot.DoctorID != req.DoctorID {
			return nil, ErrSlotDoctorMismatch
		}
		appointment.Date = slot.Date
		appointment.Time = normalizeClock(slot.StartTime)
	} else {
		if req.Date == "" || req.Time == "" {
			return nil, ErrMissingDateTime
		}
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		appointment.Date = date
		appointment.Time = req.Time
	}

	// slot-backed bookings collide with direct ones at the same time, so
	// both paths go through the conflict lookup
	conflict, err := u.appointmentRepo.FindActiveConflict(tx, req.DoctorID, appointment.Date, appointment.Time)
	if err != nil {
		return nil, err
	}
	if conflict != nil {
		return nil, ErrTimeConflict
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if req.TimeSlotID != nil {
		claimed, err := u.slotRepo.Claim(tx, *req.TimeSlotID, appointment.ID)
		if err != nil {
			return nil, err
		}
		if claimed == 0 {
			return nil, ErrSlotUnavailable
		}
	}

	u.auditService.LogCreate(ctx, tx, &actor.UserID, entity.AuditActionAppointmentCreate, "appointment", "", appointment)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.GetByID(ctx, actor, appointment.ID)
}

func (u *appointmentUsecase) GetByID(ctx context.Context, actor *entity.Actor, id int) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), actor, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if actor.IsClient() && (actor.PatientID == nil || appointment.PatientID != *actor.PatientID) {
		return nil, ErrNotAppointmentOwner
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) List(ctx context.Context, actor *entity.Actor, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error) {
	if filter == nil {
		filter = &entity.AppointmentFilter{}
	}
	// clients only ever see their own bookings
	if actor.IsClient() {
		if actor.PatientID == nil {
			return &dto.AppointmentListResponse{Appointments: []dto.AppointmentResponse{}}, nil
		}
		filter.PatientID = *actor.PatientID
	}

	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx), actor, filter)
	if err != nil {
		return nil, err
	}
	return converter.AppointmentsToListResponse(appointments), nil
}

// UpdateStatus applies one step of the appointment state machine. The
// database update is conditional on the current status, so a concurrent
// transition surfaces as a conflict instead of double-applying.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, actor *entity.Actor, id int, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	to := entity.AppointmentStatus(req.Status)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, actor, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if actor.IsClient() {
		if actor.PatientID == nil || appointment.PatientID != *actor.PatientID {
			return nil, ErrNotAppointmentOwner
		}
		// clients may only withdraw their own booking
		if to != entity.AppointmentStatusCancelled {
			return nil, ErrIllegalTransition
		}
	}

	from := appointment.Status
	if !from.CanTransition(to) {
		return nil, ErrIllegalTransition
	}

	affected, err := u.appointmentRepo.UpdateStatus(tx, id, from, to)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// someone else moved it first
		return nil, ErrIllegalTransition
	}

	if req.Notes != "" {
		appointment.Notes = req.Notes
		appointment.Status = to
		if err := u.appointmentRepo.Update(tx, appointment); err != nil {
			return nil, err
		}
	}

	// a vacated booking reopens its slot
	if to == entity.AppointmentStatusCancelled || to == entity.AppointmentStatusNoShow {
		if _, err := u.slotRepo.Release(tx, id); err != nil {
			u.log.Warnf("Failed to release time slot: %+v", err)
			return nil, err
		}
	}

	if appointment.Patient.UserID != nil {
		switch to {
		case entity.AppointmentStatusConfirmed:
			if err := u.notificationService.NotifyAppointmentConfirmed(tx, *appointment.Patient.UserID, id); err != nil {
				return nil, err
			}
		case entity.AppointmentStatusCompleted:
			if err := u.notificationService.NotifyAppointmentCompleted(tx, *appointment.Patient.UserID, id); err != nil {
				return nil, err
			}
		}
	}

	u.auditService.LogUpdate(ctx, tx, &actor.UserID, entity.AuditActionAppointmentUpdate, "appointment", "", string(from), string(to))

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return u.GetByID(ctx, actor, id)
}

// resolvePatient maps the acting principal to the patient row the booking
// is for. Clients always book for themselves.
func (u *appointmentUsecase) resolvePatient(tx *gorm.DB, actor *entity.Actor, requestedPatientID int) (int, error) {
	if actor.IsClient() {
		if actor.PatientID == nil {
			return 0, ErrPatientNotFound
		}
		return *actor.PatientID, nil
	}

	if requestedPatientID == 0 {
		return 0, ErrPatientNotFound
	}
	patient, err := u.patientRepo.FindByID(tx, requestedPatientID)
	if err != nil {
		return 0, err
	}
	if patient == nil {
		return 0, ErrPatientNotFound
	}
	return patient.ID, nil
}
