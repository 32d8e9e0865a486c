package usecase

import (
	"testing"

	"clinic-backend/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database with the full schema and
// the role seed. A single connection keeps every session on the same
// in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.Role{},
		&entity.User{},
		&entity.Specialization{},
		&entity.Service{},
		&entity.Clinic{},
		&entity.Doctor{},
		&entity.Patient{},
		&entity.OTP{},
		&entity.TimeSlot{},
		&entity.Appointment{},
		&entity.AuditLog{},
		&entity.Notification{},
		&entity.Section{},
		&entity.SystemSetting{},
	))

	roles := []entity.Role{
		{ID: entity.RoleIDClient, RoleName: entity.RoleClient},
		{ID: entity.RoleIDDoctor, RoleName: entity.RoleDoctor},
		{ID: entity.RoleIDManager, RoleName: entity.RoleManager},
	}
	require.NoError(t, db.Create(&roles).Error)

	return db
}

func managerActor() *entity.Actor {
	return &entity.Actor{UserID: uuid.New(), RoleID: entity.RoleIDManager}
}
