package repository

import (
	"errors"
	"time"

	"clinic-backend/internal/domain/entity"
	domainRepo "clinic-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, actor *entity.Actor, id int) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := scopeByDoctor(db, actor, "appointments.doctor_id").
		Preload("Doctor.User").Preload("Patient").Preload("Service").Preload("TimeSlot").
		Where("appointments.id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB, actor *entity.Actor, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	query := scopeByDoctor(db, actor, "appointments.doctor_id")

	if filter != nil {
		if filter.DoctorID != 0 {
			query = query.Where("appointments.doctor_id = ?", filter.DoctorID)
		}
		if filter.PatientID != 0 {
			query = query.Where("appointments.patient_id = ?", filter.PatientID)
		}
		if filter.Status != "" {
			query = query.Where("appointments.status = ?", filter.Status)
		}
		if filter.DateFrom != "" {
			query = query.Where("appointments.date >= ?", filter.DateFrom)
		}
		if filter.DateTo != "" {
			query = query.Where("appointments.date <= ?", filter.DateTo)
		}
	}

	var appointments []entity.Appointment
	err := query.
		Preload("Doctor.User").Preload("Patient").Preload("Service").
		Order("appointments.date DESC, appointments.time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Doctor", "Patient", "Service", "TimeSlot").Save(appointment).Error
}

func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id int, from, to entity.AppointmentStatus) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) FindActiveConflict(db *gorm.DB, doctorID int, date time.Time, timeOfDay string) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("doctor_id = ? AND date = ? AND time = ? AND status NOT IN ?",
		doctorID, date, timeOfDay,
		[]entity.AppointmentStatus{entity.AppointmentStatusCancelled, entity.AppointmentStatusNoShow}).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}
