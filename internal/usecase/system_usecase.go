package usecase

import (
	"context"
	"errors"

	"clinic-backend/internal/converter"
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"
	"clinic-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSectionNotFound  = errors.New("section not found")
	ErrSectionTypeTaken = errors.New("section of this type already exists")
	ErrSettingNotFound  = errors.New("setting not found")
	ErrSettingKeyTaken  = errors.New("setting key already exists")
)

// SystemUsecase manages landing-page sections, keyed settings and the
// audit trail.
type SystemUsecase interface {
	CreateSection(ctx context.Context, actor *entity.Actor, req *dto.SectionRequest) (*dto.SectionResponse, error)
	ListSections(ctx context.Context) ([]dto.SectionResponse, error)
	// ListPublicSections returns active sections ordered for rendering.
	ListPublicSections(ctx context.Context) ([]dto.SectionResponse, error)
	UpdateSection(ctx context.Context, actor *entity.Actor, id int, req *dto.SectionRequest) (*dto.SectionResponse, error)
	// ToggleSectionActive flips a section's visibility on the landing page.
	ToggleSectionActive(ctx context.Context, actor *entity.Actor, id int) (*dto.SectionResponse, error)
	ReorderSections(ctx context.Context, actor *entity.Actor, req *dto.ReorderSectionsRequest) ([]dto.SectionResponse, error)
	DeleteSection(ctx context.Context, actor *entity.Actor, id int) error

	CreateSetting(ctx context.Context, actor *entity.Actor, req *dto.SettingRequest) (*dto.SettingResponse, error)
	ListSettings(ctx context.Context) ([]dto.SettingResponse, error)
	// ListPublicSettings returns only settings flagged as public.
	ListPublicSettings(ctx context.Context) ([]dto.SettingResponse, error)
	GetSettingByKey(ctx context.Context, key string) (*dto.SettingResponse, error)
	UpdateSetting(ctx context.Context, actor *entity.Actor, id int, req *dto.SettingRequest) (*dto.SettingResponse, error)
	DeleteSetting(ctx context.Context, actor *entity.Actor, id int) error

	ListAuditLogs(ctx context.Context, filter *entity.AuditLogFilter) (*dto.AuditLogListResponse, error)
	GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error)
}

type systemUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	sectionRepo  repository.SectionRepository
	settingRepo  repository.SettingRepository
	auditRepo    repository.AuditLogRepository
	auditService service.AuditService
}

func NewSystemUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	sectionRepo repository.SectionRepository,
	settingRepo repository.SettingRepository,
	auditRepo repository.AuditLogRepository,
	auditService service.AuditService,
) SystemUsecase {
	return &systemUsecase{
		db:           db,
		log:          log,
		sectionRepo:  sectionRepo,
		settingRepo:  settingRepo,
		auditRepo:    auditRepo,
		auditService: auditService,
	}
}

func (u *systemUsecase) CreateSection(ctx context.Context, actor *entity.Actor, req *dto.SectionRequest) (*dto.SectionResponse, error) {
	section := &entity.Section{
		SectionType:  req.SectionType,
		Title:        req.Title,
		Subtitle:     req.Subtitle,
		Description:  req.Description,
		Content:      req.Content,
		IsActive:     req.IsActive,
		DisplayOrder: req.DisplayOrder,
	}
	if err := u.sectionRepo.Create(u.db.WithContext(ctx), section); err != nil {
		if isDuplicateKeyError(err, "section_type") {
			return nil, ErrSectionTypeTaken
		}
		u.log.Warnf("Failed to create section: %+v", err)
		return nil, err
	}
	return converter.SectionToResponse(section), nil
}

func (u *systemUsecase) ListSections(ctx context.Context) ([]dto.SectionResponse, error) {
	sections, err := u.sectionRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	return converter.SectionsToResponses(sections), nil
}

func (u *systemUsecase) ListPublicSections(ctx context.Context) ([]dto.SectionResponse, error) {
	sections, err := u.sectionRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	active := make([]entity.Section, 0, len(sections))
	for _, s := range sections {
		if s.IsActive != nil && *s.IsActive {
			active = append(active, s)
		}
	}
	return converter.SectionsToResponses(active), nil
}

func (u *systemUsecase) UpdateSection(ctx context.Context, actor *entity.Actor, id int, req *dto.SectionRequest) (*dto.SectionResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	section, err := u.sectionRepo.FindByID(tx, id)
	if err != nil {
		return nil, err
	}
	if section == nil {
		return nil, ErrSectionNotFound
	}

	section.SectionType = req.SectionType
	section.Title = req.Title
	section.Subtitle = req.Subtitle
	section.Description = req.Description
	if req.Content != nil {
		section.Content = req.Content
	}
	if req.IsActive != nil {
		section.IsActive = req.IsActive
	}
	section.DisplayOrder = req.DisplayOrder

	if err := u.sectionRepo.Update(tx, section); err != nil {
		if isDuplicateKeyError(err, "section_type") {
			return nil, ErrSectionTypeTaken
		}
		u.log.Warnf("Failed to update section: %+v", err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, tx, &actor.UserID, entity.AuditActionSectionUpdate, "section", "", nil, section)

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return converter.SectionToResponse(section), nil
}

func (u *systemUsecase) ToggleSectionActive(ctx context.Context, actor *entity.Actor, id int) (*dto.SectionResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	section, err := u.sectionRepo.FindByID(tx, id)
	if err != nil {
		return nil, err
	}
	if section == nil {
		return nil, ErrSectionNotFound
	}

	active := section.IsActive == nil || !*section.IsActive
	section.IsActive = &active

	if err := u.sectionRepo.Update(tx, section); err != nil {
		u.log.Warnf("Failed to toggle section: %+v", err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, tx, &actor.UserID, entity.AuditActionSectionUpdate, "section", "", nil, section)

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return converter.SectionToResponse(section), nil
}

func (u *systemUsecase) ReorderSections(ctx context.Context, actor *entity.Actor, req *dto.ReorderSectionsRequest) ([]dto.SectionResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	for _, item := range req.Sections {
		section, err := u.sectionRepo.FindByID(tx, item.ID)
		if err != nil {
			return nil, err
		}
		if section == nil {
			return nil, ErrSectionNotFound
		}
		section.DisplayOrder = item.DisplayOrder
		if err := u.sectionRepo.Update(tx, section); err != nil {
			u.log.Warnf("Failed to reorder section: %+v", err)
			return nil, err
		}
	}

	u.auditService.LogUpdate(ctx, tx, &actor.UserID, entity.AuditActionSectionUpdate, "section", "reorder", nil, req.Sections)

	sections, err := u.sectionRepo.FindAll(tx)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return converter.SectionsToResponses(sections), nil
}

func (u *systemUsecase) DeleteSection(ctx context.Context, actor *entity.Actor, id int) error {
	affected, err := u.sectionRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete section: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrSectionNotFound
	}
	return nil
}

func (u *systemUsecase) CreateSetting(ctx context.Context, actor *entity.Actor, req *dto.SettingRequest) (*dto.SettingResponse, error) {
	setting := &entity.SystemSetting{
		Key:         req.Key,
		Value:       req.Value,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	}
	if req.DataType != "" {
		setting.DataType = req.DataType
	} else {
		setting.DataType = entity.SettingTypeString
	}

	if err := u.settingRepo.Create(u.db.WithContext(ctx), setting); err != nil {
		if isDuplicateKeyError(err, "key") {
			return nil, ErrSettingKeyTaken
		}
		u.log.Warnf("Failed to create setting: %+v", err)
		return nil, err
	}
	return converter.SettingToResponse(setting), nil
}

func (u *systemUsecase) ListSettings(ctx context.Context) ([]dto.SettingResponse, error) {
	settings, err := u.settingRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	return converter.SettingsToResponses(settings), nil
}

func (u *systemUsecase) ListPublicSettings(ctx context.Context) ([]dto.SettingResponse, error) {
	settings, err := u.settingRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	public := make([]entity.SystemSetting, 0, len(settings))
	for _, s := range settings {
		if s.IsPublic != nil && *s.IsPublic {
			public = append(public, s)
		}
	}
	return converter.SettingsToResponses(public), nil
}

func (u *systemUsecase) GetSettingByKey(ctx context.Context, key string) (*dto.SettingResponse, error) {
	setting, err := u.settingRepo.FindByKey(u.db.WithContext(ctx), key)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, ErrSettingNotFound
	}
	return converter.SettingToResponse(setting), nil
}

func (u *systemUsecase) UpdateSetting(ctx context.Context, actor *entity.Actor, id int, req *dto.SettingRequest) (*dto.SettingResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	setting, err := u.settingRepo.FindByID(tx, id)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, ErrSettingNotFound
	}

	setting.Key = req.Key
	setting.Value = req.Value
	setting.Description = req.Description
	if req.DataType != "" {
		setting.DataType = req.DataType
	}
	if req.IsPublic != nil {
		setting.IsPublic = req.IsPublic
	}

	if err := u.settingRepo.Update(tx, setting); err != nil {
		if isDuplicateKeyError(err, "key") {
			return nil, ErrSettingKeyTaken
		}
		u.log.Warnf("Failed to update setting: %+v", err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, tx, &actor.UserID, entity.AuditActionSettingUpdate, "setting", setting.Key, nil, setting)

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return converter.SettingToResponse(setting), nil
}

func (u *systemUsecase) DeleteSetting(ctx context.Context, actor *entity.Actor, id int) error {
	affected, err := u.settingRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete setting: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrSettingNotFound
	}
	return nil
}

func (u *systemUsecase) ListAuditLogs(ctx context.Context, filter *entity.AuditLogFilter) (*dto.AuditLogListResponse, error) {
	logs, err := u.auditRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		return nil, err
	}
	return converter.AuditLogsToListResponse(logs), nil
}

func (u *systemUsecase) GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	log, err := u.auditRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if log == nil {
		return nil, errors.New("audit log not found")
	}
	return converter.AuditLogToResponse(log), nil
}
