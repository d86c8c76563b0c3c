package services

import (
	"context"
	"testing"

	"github.com/Vitalis058/tumaini-next-sub000/internal/domain/models"
	"github.com/Vitalis058/tumaini-next-sub000/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestAdminService(t *testing.T) (*AdminService, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Admin{}))
	return NewAdminService(db, &config.Config{}).(*AdminService), db
}

func TestAdminService_EnsureAdminCreatesOnce(t *testing.T) {
	ctx := context.Background()
	admins, db := newTestAdminService(t)

	created, isNew, err := admins.EnsureAdmin(ctx, " Owner@Tumaini.example ", "hunter22", " Owner ")
	require.NoError(t, err)
	assert.True(t, isNew)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "owner@tumaini.example", created.Email)
	assert.Equal(t, "Owner", created.Name)
	assert.NotEqual(t, "hunter22", created.Password)
	assert.True(t, admins.CheckPassword("hunter22", created.Password))

	again, isNew, err := admins.EnsureAdmin(ctx, "owner@tumaini.example", "changed", "Other")
	require.NoError(t, err)
	assert.False(t, isNew)
	assert.Equal(t, created.ID, again.ID)
	assert.True(t, admins.CheckPassword("hunter22", again.Password))

	var n int64
	require.NoError(t, db.Model(&models.Admin{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestAdminService_Lookups(t *testing.T) {
	ctx := context.Background()
	admins, _ := newTestAdminService(t)

	created, err := admins.CreateAdmin(ctx, "owner@tumaini.example", "hunter22", "Owner")
	require.NoError(t, err)

	byEmail, err := admins.GetAdminByEmail(ctx, "OWNER@tumaini.example ")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byID, err := admins.GetAdminByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "owner@tumaini.example", byID.Email)

	_, err = admins.GetAdminByEmail(ctx, "ghost@tumaini.example")
	assert.ErrorIs(t, err, ErrAdminNotFound)
	_, err = admins.GetAdminByID(ctx, created.ID+1)
	assert.ErrorIs(t, err, ErrAdminNotFound)
}

func TestAdminService_CreateAdminRejectsDuplicatesAndBlanks(t *testing.T) {
	ctx := context.Background()
	admins, _ := newTestAdminService(t)

	_, err := admins.CreateAdmin(ctx, "owner@tumaini.example", "hunter22", "")
	require.NoError(t, err)

	_, err = admins.CreateAdmin(ctx, "Owner@Tumaini.example", "other", "")
	assert.Error(t, err)

	_, err = admins.CreateAdmin(ctx, "", "hunter22", "")
	assert.Error(t, err)
	_, err = admins.CreateAdmin(ctx, "x@tumaini.example", "", "")
	assert.Error(t, err)
}

func TestJWTService_LoginAgainstDatabaseAdmins(t *testing.T) {
	ctx := context.Background()
	admins, _ := newTestAdminService(t)
	_, _, err := admins.EnsureAdmin(ctx, "owner@tumaini.example", "hunter22", "Owner")
	require.NoError(t, err)

	svc := newTestJWTService(admins)
	result, err := svc.Login(ctx, "owner@tumaini.example", "hunter22")
	require.NoError(t, err)

	identity, err := svc.Authorize(ctx, result.Token)
	require.NoError(t, err)
	assert.Equal(t, "Owner", identity.Name)
}
