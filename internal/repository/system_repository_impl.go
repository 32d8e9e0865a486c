package repository

import (
	"errors"

	"clinic-backend/internal/domain/entity"
	domainRepo "clinic-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type settingRepository struct{}

func NewSettingRepository() domainRepo.SettingRepository {
	return &settingRepository{}
}

func (r *settingRepository) Create(db *gorm.DB, setting *entity.SystemSetting) error {
	return db.Create(setting).Error
}

func (r *settingRepository) FindByID(db *gorm.DB, id int) (*entity.SystemSetting, error) {
	var setting entity.SystemSetting
	err := db.Where("id = ?", id).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

func (r *settingRepository) FindByKey(db *gorm.DB, key string) (*entity.SystemSetting, error) {
	var setting entity.SystemSetting
	err := db.Where("key = ?", key).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

func (r *settingRepository) FindAll(db *gorm.DB) ([]entity.SystemSetting, error) {
	var settings []entity.SystemSetting
	err := db.Order("key ASC").Find(&settings).Error
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *settingRepository) Update(db *gorm.DB, setting *entity.SystemSetting) error {
	return db.Save(setting).Error
}

func (r *settingRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.SystemSetting{})
	return result.RowsAffected, result.Error
}

type sectionRepository struct{}

func NewSectionRepository() domainRepo.SectionRepository {
	return &sectionRepository{}
}

func (r *sectionRepository) Create(db *gorm.DB, section *entity.Section) error {
	return db.Create(section).Error
}

func (r *sectionRepository) FindByID(db *gorm.DB, id int) (*entity.Section, error) {
	var section entity.Section
	err := db.Where("id = ?", id).First(&section).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &section, nil
}

func (r *sectionRepository) FindAll(db *gorm.DB) ([]entity.Section, error) {
	var sections []entity.Section
	err := db.Order("display_order ASC").Find(&sections).Error
	if err != nil {
		return nil, err
	}
	return sections, nil
}

func (r *sectionRepository) Update(db *gorm.DB, section *entity.Section) error {
	return db.Save(section).Error
}

func (r *sectionRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Section{})
	return result.RowsAffected, result.Error
}
