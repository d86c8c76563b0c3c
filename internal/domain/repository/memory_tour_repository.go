package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Vitalis058/tumaini-next-sub000/internal/domain/models"
)

type inMemoryTourRepository struct {
	tours  map[uint]*models.Tour
	nextID uint
	mutex  sync.RWMutex
}

// NewInMemoryTourRepository returns a process-local repository, used by tests
// as the tour store double.
func NewInMemoryTourRepository() TourRepository {
	return &inMemoryTourRepository{
		tours:  make(map[uint]*models.Tour),
		nextID: 1,
	}
}

func (r *inMemoryTourRepository) List(ctx context.Context, opts ListOptions) ([]models.Tour, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	tours := make([]models.Tour, 0, len(r.tours))
	for _, tour := range r.tours {
		tours = append(tours, *tour.Clone())
	}

	switch opts.Order {
	case OrderSoonest:
		sort.Slice(tours, func(i, j int) bool {
			if tours[i].Date != tours[j].Date {
				return tours[i].Date < tours[j].Date
			}
			return tours[i].ID < tours[j].ID
		})
	default:
		sort.Slice(tours, func(i, j int) bool {
			if !tours[i].CreatedAt.Equal(tours[j].CreatedAt) {
				return tours[i].CreatedAt.After(tours[j].CreatedAt)
			}
			return tours[i].ID > tours[j].ID
		})
	}

	if opts.Limit > 0 && len(tours) > opts.Limit {
		tours = tours[:opts.Limit]
	}
	return tours, nil
}

func (r *inMemoryTourRepository) FindByID(ctx context.Context, id uint) (*models.Tour, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	tour, exists := r.tours[id]
	if !exists {
		return nil, ErrTourNotFound
	}
	return tour.Clone(), nil
}

func (r *inMemoryTourRepository) Create(ctx context.Context, fields models.TourFields) (*models.Tour, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	now := time.Now().UTC().Truncate(time.Millisecond)
	tour := &models.Tour{}
	fields.Apply(tour)
	tour.ID = r.nextID
	tour.CreatedAt = now
	tour.UpdatedAt = now
	r.nextID++

	r.tours[tour.ID] = tour
	return tour.Clone(), nil
}

func (r *inMemoryTourRepository) Update(ctx context.Context, id uint, fields models.TourFields) (*models.Tour, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	current, exists := r.tours[id]
	if !exists {
		return nil, ErrTourNotFound
	}

	updated := &models.Tour{BaseModel: current.BaseModel}
	fields.Apply(updated)
	updated.UpdatedAt = nextUpdatedAt(current.UpdatedAt)

	r.tours[id] = updated
	return updated.Clone(), nil
}

func (r *inMemoryTourRepository) Delete(ctx context.Context, id uint) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.tours[id]; !exists {
		return ErrTourNotFound
	}
	delete(r.tours, id)
	return nil
}
