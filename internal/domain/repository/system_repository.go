package repository

import (
	"clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type SettingRepository interface {
	Create(db *gorm.DB, setting *entity.SystemSetting) error
	FindByID(db *gorm.DB, id int) (*entity.SystemSetting, error)
	FindByKey(db *gorm.DB, key string) (*entity.SystemSetting, error)
	FindAll(db *gorm.DB) ([]entity.SystemSetting, error)
	Update(db *gorm.DB, setting *entity.SystemSetting) error
	Delete(db *gorm.DB, id int) (int64, error)
}

type SectionRepository interface {
	Create(db *gorm.DB, section *entity.Section) error
	FindByID(db *gorm.DB, id int) (*entity.Section, error)
	FindAll(db *gorm.DB) ([]entity.Section, error)
	Update(db *gorm.DB, section *entity.Section) error
	Delete(db *gorm.DB, id int) (int64, error)
}
