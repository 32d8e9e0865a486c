package repository

import (
	"errors"

	"clinic-backend/internal/domain/entity"
	domainRepo "clinic-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type paymentRepository struct{}

func NewPaymentRepository() domainRepo.PaymentRepository {
	return &paymentRepository{}
}

func (r *paymentRepository) Create(db *gorm.DB, payment *entity.Payment) error {
	return db.Create(payment).Error
}

func (r *paymentRepository) FindByID(db *gorm.DB, actor *entity.Actor, id int) (*entity.Payment, error) {
	query := db.Preload("Appointment").Preload("Patient")
	if actor != nil && actor.SelfScoped() {
		query = query.Joins("JOIN appointments ON appointments.id = payments.appointment_id").
			Where("appointments.doctor_id = ?", *actor.DoctorID)
	}

	var payment entity.Payment
	err := query.Where("payments.id = ?", id).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) FindByAppointmentID(db *gorm.DB, appointmentID int) (*entity.Payment, error) {
	var payment entity.Payment
	err := db.Where("appointment_id = ?", appointmentID).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) FindAll(db *gorm.DB, actor *entity.Actor) ([]entity.Payment, error) {
	query := db.Preload("Appointment").Preload("Patient")
	if actor != nil && actor.SelfScoped() {
		query = query.Joins("JOIN appointments ON appointments.id = payments.appointment_id").
			Where("appointments.doctor_id = ?", *actor.DoctorID)
	}

	var payments []entity.Payment
	err := query.Order("payments.created_at DESC").Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) UpdateStatus(db *gorm.DB, id int, from, to entity.PaymentStatus) (int64, error) {
	result := db.Model(&entity.Payment{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return result.RowsAffected, result.Error
}
