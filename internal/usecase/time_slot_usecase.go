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

const slotStepMinutes = 30

var (
	ErrSlotRangeInvalid = errors.New("date_from must not be after date_to")
	ErrSlotNotFound     = errors.New("time slot not found")
)

type TimeSlotUsecase interface {
	// Generate materializes bookable slots from the doctor's weekly
	// schedule over an inclusive date range. Existing slots are kept.
	Generate(ctx context.Context, actor *entity.Actor, req *dto.GenerateSlotsRequest) (*dto.GenerateSlotsResponse, error)
	ListByDoctorAndDate(ctx context.Context, actor *entity.Actor, doctorID int, date string) ([]dto.TimeSlotResponse, error)
	Delete(ctx context.Context, actor *entity.Actor, id int) error
}

type timeSlotUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	slotRepo     repository.TimeSlotRepository
	scheduleRepo repository.ScheduleRepository
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
}

func NewTimeSlotUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	slotRepo repository.TimeSlotRepository,
	scheduleRepo repository.ScheduleRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) TimeSlotUsecase {
	return &timeSlotUsecase{
		db:           db,
		log:          log,
		slotRepo:     slotRepo,
		scheduleRepo: scheduleRepo,
		doctorRepo:   doctorRepo,
		auditService: auditService,
	}
}

func (u *timeSlotUsecase) Generate(ctx context.Context, actor *entity.Actor, req *dto.GenerateSlotsRequest) (*dto.GenerateSlotsResponse, error) {
	dateFrom, err := time.Parse("2006-01-02", req.DateFrom)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	dateTo, err := time.Parse("2006-01-02", req.DateTo)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if dateFrom.After(dateTo) {
		return nil, ErrSlotRangeInvalid
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

	schedules, err := u.scheduleRepo.FindByDoctorID(tx, req.DoctorID)
	if err != nil {
		return nil, err
	}
	byDay := make(map[int]*entity.Schedule, len(schedules))
	for i := range schedules {
		byDay[schedules[i].DayOfWeek] = &schedules[i]
	}

	result := &dto.GenerateSlotsResponse{Slots: []dto.TimeSlotResponse{}}

	for date := dateFrom; !date.After(dateTo); date = date.AddDate(0, 0, 1) {
		schedule, ok := byDay[entity.ISOWeekday(date)]
		if !ok || (schedule.IsWorking != nil && !*schedule.IsWorking) {
			continue
		}

		windows, err := expandWindows(normalizeClock(schedule.StartTime), normalizeClock(schedule.EndTime))
		if err != nil {
			u.log.Warnf("Skipping malformed schedule window for doctor %d: %+v", req.DoctorID, err)
			continue
		}

		for _, window := range windows {
			slot := &entity.TimeSlot{
				DoctorID:  req.DoctorID,
				Date:      date,
				StartTime: window[0],
				EndTime:   window[1],
			}
			if err := u.slotRepo.Create(tx, slot); err != nil {
				// an already-materialized slot is left untouched
				if isDuplicateKeyError(err, "idx_doctor_date_start") {
					result.Skipped++
					continue
				}
				u.log.Warnf("Failed to create time slot: %+v", err)
				return nil, err
			}
			result.Created++
			result.Slots = append(result.Slots, *converter.TimeSlotToResponse(slot))
		}
	}

	u.auditService.LogCreate(ctx, tx, &actor.UserID, entity.AuditActionSlotCreate, "time_slot", "", map[string]interface{}{
		"doctor_id": req.DoctorID,
		"date_from": req.DateFrom,
		"date_to":   req.DateTo,
		"created":   result.Created,
	})

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return result, nil
}

// expandWindows cuts a working window into fixed-length slot boundaries.
// A trailing remainder shorter than one step is dropped.
func expandWindows(startTime, endTime string) ([][2]string, error) {
	start, err := time.Parse("15:04", startTime)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse("15:04", endTime)
	if err != nil {
		return nil, err
	}

	var windows [][2]string
	step := slotStepMinutes * time.Minute
	for cur := start; !cur.Add(step).After(end); cur = cur.Add(step) {
		windows = append(windows, [2]string{
			cur.Format("15:04"),
			cur.Add(step).Format("15:04"),
		})
	}
	return windows, nil
}

func (u *timeSlotUsecase) ListByDoctorAndDate(ctx context.Context, actor *entity.Actor, doctorID int, date string) ([]dto.TimeSlotResponse, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	slots, err := u.slotRepo.FindByDoctorAndDate(u.db.WithContext(ctx), actor, doctorID, day)
	if err != nil {
		return nil, err
	}
	return converter.TimeSlotsToResponses(slots), nil
}

func (u *timeSlotUsecase) Delete(ctx context.Context, actor *entity.Actor, id int) error {
	affected, err := u.slotRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSlotNotFound
	}
	return nil
}
