package repository

import (
	"clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type PrescriptionRepository interface {
	Create(db *gorm.DB, prescription *entity.Prescription) error
	FindByID(db *gorm.DB, actor *entity.Actor, id int) (*entity.Prescription, error)
	FindAll(db *gorm.DB, actor *entity.Actor) ([]entity.Prescription, error)
	Update(db *gorm.DB, prescription *entity.Prescription) error
	Delete(db *gorm.DB, id int) (int64, error)
}

type MedicalRecordRepository interface {
	Create(db *gorm.DB, record *entity.MedicalRecord) error
	FindByID(db *gorm.DB, id int) (*entity.MedicalRecord, error)
	FindByPatientID(db *gorm.DB, patientID int) ([]entity.MedicalRecord, error)
	Update(db *gorm.DB, record *entity.MedicalRecord) error
	Delete(db *gorm.DB, id int) (int64, error)
}
