package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Vitalis058/tumaini-next-sub000/internal/domain/models"
	"github.com/Vitalis058/tumaini-next-sub000/internal/domain/repository"
	"github.com/Vitalis058/tumaini-next-sub000/internal/infrastructure/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockTourRepository struct {
	mock.Mock
}

func (m *mockTourRepository) List(ctx context.Context, opts repository.ListOptions) ([]models.Tour, error) {
	args := m.Called(ctx, opts)
	tours, _ := args.Get(0).([]models.Tour)
	return tours, args.Error(1)
}

func (m *mockTourRepository) FindByID(ctx context.Context, id uint) (*models.Tour, error) {
	args := m.Called(ctx, id)
	tour, _ := args.Get(0).(*models.Tour)
	return tour, args.Error(1)
}

func (m *mockTourRepository) Create(ctx context.Context, fields models.TourFields) (*models.Tour, error) {
	args := m.Called(ctx, fields)
	tour, _ := args.Get(0).(*models.Tour)
	return tour, args.Error(1)
}

func (m *mockTourRepository) Update(ctx context.Context, id uint, fields models.TourFields) (*models.Tour, error) {
	args := m.Called(ctx, id, fields)
	tour, _ := args.Get(0).(*models.Tour)
	return tour, args.Error(1)
}

func (m *mockTourRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

// recordingInvalidator keeps every tag it was asked to invalidate.
type recordingInvalidator struct {
	mu    sync.Mutex
	calls [][]cache.RouteTag
}

func (r *recordingInvalidator) Invalidate(tags ...cache.RouteTag) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, tags)
}

func (r *recordingInvalidator) Wait() {}

func validTourInput() *models.TourInput {
	return &models.TourInput{
		TourName: "Mt Kenya Trek",
		Price:    "15000",
		Images:   []string{"https://cdn.tumaini.example/tumaini-tours/a.jpg"},
		Location: "Mt Kenya",
		Date:     "2025-06-01",
	}
}

func TestTourService_CreateAppliesDefaultsAndInvalidates(t *testing.T) {
	inv := &recordingInvalidator{}
	svc := NewTourService(repository.NewInMemoryTourRepository(), inv)

	tour, err := svc.CreateTour(context.Background(), validTourInput())
	require.NoError(t, err)

	assert.Equal(t, 0, tour.Booking)
	assert.Equal(t, 5.0, tour.Rating)
	assert.Equal(t, models.DifficultyMedium, tour.Difficulty)
	require.Len(t, inv.calls, 1)
	assert.ElementsMatch(t, []cache.RouteTag{"/tours", "/", "tours", cache.TourDetailRoute(tour.ID)}, inv.calls[0])
}

func TestTourService_CreateWithoutImagesNeverReachesRepository(t *testing.T) {
	repo := &mockTourRepository{}
	inv := &recordingInvalidator{}
	svc := NewTourService(repo, inv)

	input := validTourInput()
	input.Images = []string{}

	tour, err := svc.CreateTour(context.Background(), input)

	assert.Nil(t, tour)
	var verr *models.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Missing, "images")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Empty(t, inv.calls)
}

func TestTourService_UpdateMissingTour(t *testing.T) {
	repo := &mockTourRepository{}
	repo.On("Update", mock.Anything, uint(42), mock.Anything).Return(nil, repository.ErrTourNotFound)
	inv := &recordingInvalidator{}
	svc := NewTourService(repo, inv)

	_, err := svc.UpdateTour(context.Background(), 42, validTourInput())

	assert.ErrorIs(t, err, repository.ErrTourNotFound)
	assert.Empty(t, inv.calls)
	repo.AssertExpectations(t)
}

func TestTourService_UpdateInvalidInputSkipsRepository(t *testing.T) {
	repo := &mockTourRepository{}
	svc := NewTourService(repo, &recordingInvalidator{})

	input := validTourInput()
	input.Rating = "9"

	_, err := svc.UpdateTour(context.Background(), 1, input)

	var verr *models.ValidationError
	assert.True(t, errors.As(err, &verr))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestTourService_DeleteInvalidatesOnlyOnSuccess(t *testing.T) {
	repo := &mockTourRepository{}
	repo.On("Delete", mock.Anything, uint(7)).Return(nil).Once()
	repo.On("Delete", mock.Anything, uint(8)).Return(repository.ErrTourNotFound).Once()
	inv := &recordingInvalidator{}
	svc := NewTourService(repo, inv)

	require.NoError(t, svc.DeleteTour(context.Background(), 7))
	assert.ErrorIs(t, svc.DeleteTour(context.Background(), 8), repository.ErrTourNotFound)

	require.Len(t, inv.calls, 1)
	assert.Contains(t, inv.calls[0], cache.TourDetailRoute(7))
	repo.AssertExpectations(t)
}

func TestTourService_ListNeverReturnsNil(t *testing.T) {
	repo := &mockTourRepository{}
	repo.On("List", mock.Anything, repository.ListOptions{Limit: 3, Order: repository.OrderSoonest}).Return(nil, nil)
	svc := NewTourService(repo, nil)

	tours, err := svc.ListTours(context.Background(), repository.ListOptions{Limit: 3, Order: repository.OrderSoonest})

	require.NoError(t, err)
	assert.NotNil(t, tours)
	assert.Empty(t, tours)
}
