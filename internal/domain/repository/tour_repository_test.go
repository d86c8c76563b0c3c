package repository

import (
	"context"
	"testing"

	"github.com/Vitalis058/tumaini-next-sub000/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory SQLite database with the tours table.
func newTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to ":memory:" is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Tour{}))
	return db
}

func countTours(t *testing.T, db *gorm.DB) int64 {
	var n int64
	require.NoError(t, db.Model(&models.Tour{}).Count(&n).Error)
	return n
}

func TestGormTourRepository_CreateThenGet(t *testing.T) {
	ctx := context.Background()
	repo := NewGormTourRepository(newTestDB(t))

	created, err := repo.Create(ctx, sampleFields("Mt Kenya Trek", "2025-06-01"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, "Mt Kenya Trek", got.TourName)
	assert.Equal(t, 15000.0, got.Price)
	assert.Equal(t, models.DefaultDifficulty, got.Difficulty)
	assert.Equal(t, []string{"https://cdn.example.com/a.jpg"}, []string(got.Images))
	assert.Equal(t, []models.ItineraryEntry{{Label: "Day 1", Details: "Sirimon gate"}}, []models.ItineraryEntry(got.Itinerary))
	assert.Equal(t, []string{"Park fees"}, []string(got.Inclusive))
	assert.Empty(t, got.Exclusive)

	all, err := repo.List(ctx, ListOptions{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created.ID, all[0].ID)
}

func TestGormTourRepository_ListOrderingAndLimit(t *testing.T) {
	ctx := context.Background()
	repo := NewGormTourRepository(newTestDB(t))

	first, err := repo.Create(ctx, sampleFields("Late", "2025-09-01"))
	require.NoError(t, err)
	second, err := repo.Create(ctx, sampleFields("Early", "2025-03-01"))
	require.NoError(t, err)
	third, err := repo.Create(ctx, sampleFields("Middle", "2025-06-01"))
	require.NoError(t, err)

	newest, err := repo.List(ctx, ListOptions{Order: OrderNewest})
	require.NoError(t, err)
	assert.Equal(t, []uint{third.ID, second.ID, first.ID}, ids(newest))

	soonest, err := repo.List(ctx, ListOptions{Order: OrderSoonest, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []uint{second.ID, third.ID}, ids(soonest))

	empty, err := NewGormTourRepository(newTestDB(t)).List(ctx, ListOptions{})
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestGormTourRepository_SameDateOrdersByID(t *testing.T) {
	ctx := context.Background()
	repo := NewGormTourRepository(newTestDB(t))

	a, _ := repo.Create(ctx, sampleFields("A", "2025-06-01"))
	b, _ := repo.Create(ctx, sampleFields("B", "2025-06-01"))

	soonest, err := repo.List(ctx, ListOptions{Order: OrderSoonest})
	require.NoError(t, err)
	assert.Equal(t, []uint{a.ID, b.ID}, ids(soonest))
}

func TestGormTourRepository_DeleteTwice(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewGormTourRepository(db)

	keep, _ := repo.Create(ctx, sampleFields("Keep", "2025-06-01"))
	drop, _ := repo.Create(ctx, sampleFields("Drop", "2025-06-02"))

	require.NoError(t, repo.Delete(ctx, drop.ID))
	assert.ErrorIs(t, repo.Delete(ctx, drop.ID), ErrTourNotFound)
	assert.Equal(t, int64(1), countTours(t, db))

	_, err := repo.FindByID(ctx, keep.ID)
	assert.NoError(t, err)
	_, err = repo.FindByID(ctx, drop.ID)
	assert.ErrorIs(t, err, ErrTourNotFound)
}

func TestGormTourRepository_UpdateReplacesWholeRecord(t *testing.T) {
	ctx := context.Background()
	repo := NewGormTourRepository(newTestDB(t))

	created, err := repo.Create(ctx, sampleFields("Mt Kenya Trek", "2025-06-01"))
	require.NoError(t, err)

	replacement := sampleFields("Mt Kenya Sirimon Route", "2025-06-08")
	replacement.Itinerary = []models.ItineraryEntry{}
	replacement.Inclusive = []string{}
	replacement.Price = 18000

	updated, err := repo.Update(ctx, created.ID, replacement)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	assert.Equal(t, "Mt Kenya Sirimon Route", updated.TourName)
	assert.Equal(t, "2025-06-08", updated.Date)
	assert.Equal(t, 18000.0, updated.Price)
	assert.Empty(t, updated.Itinerary)
	assert.Empty(t, updated.Inclusive)

	again, err := repo.Update(ctx, created.ID, replacement)
	require.NoError(t, err)
	assert.True(t, again.UpdatedAt.After(updated.UpdatedAt))

	stored, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, stored.UpdatedAt.Equal(again.UpdatedAt))
}

func TestGormTourRepository_UpdateMissingCreatesNothing(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewGormTourRepository(db)

	_, err := repo.Update(ctx, 42, sampleFields("Ghost", "2025-06-01"))
	assert.ErrorIs(t, err, ErrTourNotFound)
	assert.Equal(t, int64(0), countTours(t, db))
}
