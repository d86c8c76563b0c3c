package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Vitalis058/tumaini-next-sub000/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFields(name, date string) models.TourFields {
	return models.TourFields{
		TourName:   name,
		Price:      15000,
		Images:     []string{"https://cdn.example.com/a.jpg"},
		Rating:     models.DefaultRating,
		Difficulty: models.DefaultDifficulty,
		Level:      models.DefaultLevel,
		HikeType:   models.DefaultHikeType,
		Location:   "Mt Kenya",
		Date:       date,
		Itinerary:  []models.ItineraryEntry{{Label: "Day 1", Details: "Sirimon gate"}},
		Inclusive:  []string{"Park fees"},
		Exclusive:  []string{},
	}
}

func TestInMemoryTourRepository_CreateThenGet(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryTourRepository()

	created, err := repo.Create(ctx, sampleFields("Mt Kenya Trek", "2025-06-01"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, "Mt Kenya Trek", got.TourName)
	assert.Equal(t, []models.ItineraryEntry{{Label: "Day 1", Details: "Sirimon gate"}}, []models.ItineraryEntry(got.Itinerary))

	all, err := repo.List(ctx, ListOptions{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created.ID, all[0].ID)
}

func TestInMemoryTourRepository_ListOrderingAndLimit(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryTourRepository()

	first, _ := repo.Create(ctx, sampleFields("Late", "2025-09-01"))
	second, _ := repo.Create(ctx, sampleFields("Early", "2025-03-01"))
	third, _ := repo.Create(ctx, sampleFields("Middle", "2025-06-01"))

	newest, err := repo.List(ctx, ListOptions{Order: OrderNewest})
	require.NoError(t, err)
	assert.Equal(t, []uint{third.ID, second.ID, first.ID}, ids(newest))

	soonest, err := repo.List(ctx, ListOptions{Order: OrderSoonest, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []uint{second.ID, third.ID}, ids(soonest))
}

func TestInMemoryTourRepository_DeleteTwice(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryTourRepository()

	keep, _ := repo.Create(ctx, sampleFields("Keep", "2025-06-01"))
	drop, _ := repo.Create(ctx, sampleFields("Drop", "2025-06-02"))

	require.NoError(t, repo.Delete(ctx, drop.ID))
	assert.ErrorIs(t, repo.Delete(ctx, drop.ID), ErrTourNotFound)

	_, err := repo.FindByID(ctx, keep.ID)
	assert.NoError(t, err)
	_, err = repo.FindByID(ctx, drop.ID)
	assert.ErrorIs(t, err, ErrTourNotFound)
}

func TestInMemoryTourRepository_UpdateReplacesWholeRecord(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryTourRepository()

	created, _ := repo.Create(ctx, sampleFields("Mt Kenya Trek", "2025-06-01"))

	replacement := sampleFields("Mt Kenya Sirimon Route", "2025-06-08")
	replacement.Itinerary = []models.ItineraryEntry{}
	replacement.Inclusive = []string{}

	updated, err := repo.Update(ctx, created.ID, replacement)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	assert.Equal(t, "Mt Kenya Sirimon Route", updated.TourName)
	assert.Empty(t, updated.Itinerary)
	assert.Empty(t, updated.Inclusive)

	again, err := repo.Update(ctx, created.ID, replacement)
	require.NoError(t, err)
	assert.True(t, again.UpdatedAt.After(updated.UpdatedAt))
}

func TestInMemoryTourRepository_UpdateMissingCreatesNothing(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryTourRepository()

	_, err := repo.Update(ctx, 42, sampleFields("Ghost", "2025-06-01"))
	assert.ErrorIs(t, err, ErrTourNotFound)

	all, _ := repo.List(ctx, ListOptions{})
	assert.Empty(t, all)
}

func TestInMemoryTourRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryTourRepository()

	created, _ := repo.Create(ctx, sampleFields("Mt Kenya Trek", "2025-06-01"))
	created.Images[0] = "https://cdn.example.com/tampered.jpg"

	got, _ := repo.FindByID(ctx, created.ID)
	assert.Equal(t, "https://cdn.example.com/a.jpg", got.Images[0])
}

func TestNextUpdatedAt(t *testing.T) {
	future := time.Now().Add(time.Hour)
	assert.Equal(t, future.Add(time.Millisecond), nextUpdatedAt(future))

	past := time.Now().Add(-time.Hour)
	assert.True(t, nextUpdatedAt(past).After(past))
}

func ids(tours []models.Tour) []uint {
	out := make([]uint, 0, len(tours))
	for _, tour := range tours {
		out = append(out, tour.ID)
	}
	return out
}
