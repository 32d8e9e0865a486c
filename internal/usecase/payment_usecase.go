package usecase

import (
	"context"
	"errors"

	"clinic-backend/internal/converter"
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"
	"clinic-backend/internal/service"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPaymentNotFound          = errors.New("payment not found")
	ErrPaymentAlreadyExists     = errors.New("appointment already has a payment")
	ErrPaymentIllegalTransition = errors.New("illegal payment status transition")
)

type PaymentUsecase interface {
	Create(ctx context.Context, actor *entity.Actor, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error)
	GetByID(ctx context.Context, actor *entity.Actor, id int) (*dto.PaymentResponse, error)
	List(ctx context.Context, actor *entity.Actor) ([]dto.PaymentResponse, error)
	UpdateStatus(ctx context.Context, actor *entity.Actor, id int, req *dto.UpdatePaymentStatusRequest) (*dto.PaymentResponse, error)
}

type paymentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	paymentRepo     repository.PaymentRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewPaymentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	paymentRepo repository.PaymentRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) PaymentUsecase {
	return &paymentUsecase{
		db:              db,
		log:             log,
		paymentRepo:     paymentRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

// Create opens a pending payment for an appointment. The unique index on
// appointment_id keeps it to one payment per booking.
func (u *paymentUsecase) Create(ctx context.Context, actor *entity.Actor, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, actor, req.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if actor.IsClient() && (actor.PatientID == nil || appointment.PatientID != *actor.PatientID) {
		return nil, ErrNotAppointmentOwner
	}

	payment := &entity.Payment{
		AppointmentID: req.AppointmentID,
		PatientID:     appointment.PatientID,
		Amount:        decimal.NewFromFloat(req.Amount),
		Status:        entity.PaymentStatusPending,
		PaymentMethod: req.PaymentMethod,
	}

	if err := u.paymentRepo.Create(tx, payment); err != nil {
		if isDuplicateKeyError(err, "appointment_id") {
			return nil, ErrPaymentAlreadyExists
		}
		u.log.Warnf("Failed to create payment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return converter.PaymentToResponse(payment), nil
}

func (u *paymentUsecase) GetByID(ctx context.Context, actor *entity.Actor, id int) (*dto.PaymentResponse, error) {
	payment, err := u.paymentRepo.FindByID(u.db.WithContext(ctx), actor, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	if actor.IsClient() && (actor.PatientID == nil || payment.PatientID != *actor.PatientID) {
		return nil, ErrPaymentNotFound
	}
	return converter.PaymentToResponse(payment), nil
}

func (u *paymentUsecase) List(ctx context.Context, actor *entity.Actor) ([]dto.PaymentResponse, error) {
	payments, err := u.paymentRepo.FindAll(u.db.WithContext(ctx), actor)
	if err != nil {
		return nil, err
	}
	return converter.PaymentsToResponses(payments), nil
}

// UpdateStatus advances the payment machine with a conditional update, so
// two concurrent settlements cannot both land.
func (u *paymentUsecase) UpdateStatus(ctx context.Context, actor *entity.Actor, id int, req *dto.UpdatePaymentStatusRequest) (*dto.PaymentResponse, error) {
	to := entity.PaymentStatus(req.Status)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	payment, err := u.paymentRepo.FindByID(tx, actor, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}

	from := payment.Status
	if !from.CanTransition(to) {
		return nil, ErrPaymentIllegalTransition
	}

	affected, err := u.paymentRepo.UpdateStatus(tx, id, from, to)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrPaymentIllegalTransition
	}
	payment.Status = to

	if req.TransactionID != "" {
		payment.TransactionID = req.TransactionID
		if err := tx.Model(&entity.Payment{}).Where("id = ?", id).
			Update("transaction_id", req.TransactionID).Error; err != nil {
			return nil, err
		}
	}

	u.auditService.LogUpdate(ctx, tx, &actor.UserID, entity.AuditActionPaymentUpdate, "payment", "", string(from), string(to))

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return converter.PaymentToResponse(payment), nil
}
