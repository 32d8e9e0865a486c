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
	ErrScheduleNotFound      = errors.New("schedule not found")
	ErrScheduleDayTaken      = errors.New("doctor already has a schedule for this day")
	ErrScheduleWindowInvalid = errors.New("start time must be before end time")
)

type ScheduleUsecase interface {
	Create(ctx context.Context, actor *entity.Actor, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error)
	GetByID(ctx context.Context, id int) (*dto.ScheduleResponse, error)
	List(ctx context.Context, actor *entity.Actor, filter *entity.ScheduleFilter) ([]dto.ScheduleResponse, error)
	ListByDoctor(ctx context.Context, doctorID int) ([]dto.ScheduleResponse, error)
	Update(ctx context.Context, actor *entity.Actor, id int, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error)
	Delete(ctx context.Context, actor *entity.Actor, id int) error
}

type scheduleUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	scheduleRepo repository.ScheduleRepository
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
}

func NewScheduleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	scheduleRepo repository.ScheduleRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) ScheduleUsecase {
	return &scheduleUsecase{
		db:           db,
		log:          log,
		scheduleRepo: scheduleRepo,
		doctorRepo:   doctorRepo,
		auditService: auditService,
	}
}

func validateWindow(startTime, endTime string) error {
	start, err := time.Parse("15:04", startTime)
	if err != nil {
		return ErrScheduleWindowInvalid
	}
	end, err := time.Parse("15:04", endTime)
	if err != nil {
		return ErrScheduleWindowInvalid
	}
	if !start.Before(end) {
		return ErrScheduleWindowInvalid
	}
	return nil
}

func (u *scheduleUsecase) Create(ctx context.Context, actor *entity.Actor, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	if err := validateWindow(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, actor, req.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	schedule := &entity.Schedule{
		DoctorID:  req.DoctorID,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		IsWorking: req.IsWorking,
	}

	if err := u.scheduleRepo.Create(tx, schedule); err != nil {
		if isDuplicateKeyError(err, "idx_doctor_day") {
			return nil, ErrScheduleDayTaken
		}
		u.log.Warnf("Failed to create schedule: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, tx, &actor.UserID, entity.AuditActionScheduleCreate, "schedule", "", schedule)

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	schedule.Doctor = *doctor
	return converter.ScheduleToResponse(schedule), nil
}

func (u *scheduleUsecase) GetByID(ctx context.Context, id int) (*dto.ScheduleResponse, error) {
	schedule, err := u.scheduleRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}
	return converter.ScheduleToResponse(schedule), nil
}

func (u *scheduleUsecase) List(ctx context.Context, actor *entity.Actor, filter *entity.ScheduleFilter) ([]dto.ScheduleResponse, error) {
	schedules, err := u.scheduleRepo.FindAll(u.db.WithContext(ctx), actor, filter)
	if err != nil {
		return nil, err
	}
	return converter.SchedulesToResponses(schedules), nil
}

func (u *scheduleUsecase) ListByDoctor(ctx context.Context, doctorID int) ([]dto.ScheduleResponse, error) {
	schedules, err := u.scheduleRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		return nil, err
	}
	return converter.SchedulesToResponses(schedules), nil
}

func (u *scheduleUsecase) Update(ctx context.Context, actor *entity.Actor, id int, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	schedule, err := u.scheduleRepo.FindByID(tx, id)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	if req.StartTime != "" {
		schedule.StartTime = req.StartTime
	}
	if req.EndTime != "" {
		schedule.EndTime = req.EndTime
	}
	if err := validateWindow(normalizeClock(schedule.StartTime), normalizeClock(schedule.EndTime)); err != nil {
		return nil, err
	}
	if req.IsWorking != nil {
		schedule.IsWorking = req.IsWorking
	}

	if err := u.scheduleRepo.Update(tx, schedule); err != nil {
		u.log.Warnf("Failed to update schedule: %+v", err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, tx, &actor.UserID, entity.AuditActionScheduleUpdate, "schedule", "", nil, schedule)

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return converter.ScheduleToResponse(schedule), nil
}

func (u *scheduleUsecase) Delete(ctx context.Context, actor *entity.Actor, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	schedule, err := u.scheduleRepo.FindByID(tx, id)
	if err != nil {
		return err
	}
	if schedule == nil {
		return ErrScheduleNotFound
	}

	if _, err := u.scheduleRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete schedule: %+v", err)
		return err
	}

	u.auditService.LogDelete(ctx, tx, &actor.UserID, entity.AuditActionScheduleDelete, "schedule", "", schedule)

	return tx.Commit().Error
}

// normalizeClock trims seconds from times loaded back from postgres.
func normalizeClock(clock string) string {
	if len(clock) > 5 {
		return clock[:5]
	}
	return clock
}
