package repository

import (
	"clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type SpecializationRepository interface {
	Create(db *gorm.DB, specialization *entity.Specialization) error
	FindByID(db *gorm.DB, id int) (*entity.Specialization, error)
	FindAll(db *gorm.DB) ([]entity.Specialization, error)
	Update(db *gorm.DB, specialization *entity.Specialization) error
	Delete(db *gorm.DB, id int) (int64, error)
}

type ServiceRepository interface {
	Create(db *gorm.DB, service *entity.Service) error
	FindByID(db *gorm.DB, id int) (*entity.Service, error)
	FindAll(db *gorm.DB) ([]entity.Service, error)
	Update(db *gorm.DB, service *entity.Service) error
	Delete(db *gorm.DB, id int) (int64, error)
}

type ClinicRepository interface {
	Create(db *gorm.DB, clinic *entity.Clinic) error
	FindByID(db *gorm.DB, id int) (*entity.Clinic, error)
	FindAll(db *gorm.DB) ([]entity.Clinic, error)
	Update(db *gorm.DB, clinic *entity.Clinic) error
	Delete(db *gorm.DB, id int) (int64, error)

	CreateDepartment(db *gorm.DB, department *entity.Department) error
	FindDepartmentsByClinic(db *gorm.DB, clinicID int) ([]entity.Department, error)

	CreateAffiliation(db *gorm.DB, affiliation *entity.DoctorClinic) error
	FindAffiliationsByDoctor(db *gorm.DB, doctorID int) ([]entity.DoctorClinic, error)
}
