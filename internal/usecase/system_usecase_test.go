package usecase

import (
	"context"
	"io"
	"testing"

	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/repository"
	"clinic-backend/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSystemUsecaseForTest(t *testing.T, db *gorm.DB) SystemUsecase {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	auditRepo := repository.NewAuditLogRepository()
	return NewSystemUsecase(
		db,
		log,
		repository.NewSectionRepository(),
		repository.NewSettingRepository(),
		auditRepo,
		service.NewAuditService(db, log, auditRepo),
	)
}

func TestToggleSectionActive(t *testing.T) {
	db := newTestDB(t)
	uc := newSystemUsecaseForTest(t, db)

	section := &entity.Section{SectionType: "hero", Title: "Welcome"}
	require.NoError(t, db.Create(section).Error)

	resp, err := uc.ToggleSectionActive(context.Background(), managerActor(), section.ID)
	require.NoError(t, err)
	assert.False(t, resp.IsActive)

	// a hidden section disappears from the public listing
	public, err := uc.ListPublicSections(context.Background())
	require.NoError(t, err)
	assert.Empty(t, public)

	resp, err = uc.ToggleSectionActive(context.Background(), managerActor(), section.ID)
	require.NoError(t, err)
	assert.True(t, resp.IsActive)

	_, err = uc.ToggleSectionActive(context.Background(), managerActor(), 999)
	assert.ErrorIs(t, err, ErrSectionNotFound)
}

func TestReorderSections(t *testing.T) {
	db := newTestDB(t)
	uc := newSystemUsecaseForTest(t, db)

	hero := &entity.Section{SectionType: "hero", DisplayOrder: 1}
	about := &entity.Section{SectionType: "about", DisplayOrder: 2}
	require.NoError(t, db.Create(hero).Error)
	require.NoError(t, db.Create(about).Error)

	sections, err := uc.ReorderSections(context.Background(), managerActor(), &dto.ReorderSectionsRequest{
		Sections: []dto.SectionOrderItem{
			{ID: hero.ID, DisplayOrder: 2},
			{ID: about.ID, DisplayOrder: 1},
		},
	})
	require.NoError(t, err)

	require.Len(t, sections, 2)
	assert.Equal(t, "about", sections[0].SectionType)
	assert.Equal(t, "hero", sections[1].SectionType)

	_, err = uc.ReorderSections(context.Background(), managerActor(), &dto.ReorderSectionsRequest{
		Sections: []dto.SectionOrderItem{{ID: 999, DisplayOrder: 1}},
	})
	assert.ErrorIs(t, err, ErrSectionNotFound)
}

func TestGetSettingByKey(t *testing.T) {
	db := newTestDB(t)
	uc := newSystemUsecaseForTest(t, db)

	setting := &entity.SystemSetting{Key: "clinic_name", Value: "Sunrise Clinic", DataType: entity.SettingTypeString}
	require.NoError(t, db.Create(setting).Error)

	resp, err := uc.GetSettingByKey(context.Background(), "clinic_name")
	require.NoError(t, err)
	assert.Equal(t, "Sunrise Clinic", resp.Value)

	_, err = uc.GetSettingByKey(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSettingNotFound)
}
