package services

import (
	"context"

	"github.com/Vitalis058/tumaini-next-sub000/internal/domain/models"
	"github.com/Vitalis058/tumaini-next-sub000/internal/domain/repository"
)

// InterfaceTourService is the tour use-case layer shared by the admin API and
// the public site views.
type InterfaceTourService interface {
	ListTours(ctx context.Context, opts repository.ListOptions) ([]models.Tour, error)
	GetTour(ctx context.Context, id uint) (*models.Tour, error)
	CreateTour(ctx context.Context, input *models.TourInput) (*models.Tour, error)
	UpdateTour(ctx context.Context, id uint, input *models.TourInput) (*models.Tour, error)
	DeleteTour(ctx context.Context, id uint) error
}

// TourService validates, persists, then invalidates.
type TourService struct {
	Repo        repository.TourRepository
	Invalidator InterfaceInvalidationService
}

// NewTourService creates a tour service.
func NewTourService(repo repository.TourRepository, invalidator InterfaceInvalidationService) InterfaceTourService {
	return &TourService{
		Repo:        repo,
		Invalidator: invalidator,
	}
}

// 1. ListTours
func (s *TourService) ListTours(ctx context.Context, opts repository.ListOptions) ([]models.Tour, error) {
	tours, err := s.Repo.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	if tours == nil {
		tours = []models.Tour{}
	}
	return tours, nil
}

// 2. GetTour returns repository.ErrTourNotFound for unknown ids.
func (s *TourService) GetTour(ctx context.Context, id uint) (*models.Tour, error) {
	return s.Repo.FindByID(ctx, id)
}

// 3. CreateTour returns a *models.ValidationError before touching storage when
// the input is incomplete or malformed.
func (s *TourService) CreateTour(ctx context.Context, input *models.TourInput) (*models.Tour, error) {
	fields, err := input.Normalize()
	if err != nil {
		return nil, err
	}

	tour, err := s.Repo.Create(ctx, fields)
	if err != nil {
		return nil, err
	}

	s.invalidate(tour.ID)
	return tour, nil
}

// 4. UpdateTour replaces every field of an existing tour.
func (s *TourService) UpdateTour(ctx context.Context, id uint, input *models.TourInput) (*models.Tour, error) {
	fields, err := input.Normalize()
	if err != nil {
		return nil, err
	}

	tour, err := s.Repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	s.invalidate(tour.ID)
	return tour, nil
}

// 5. DeleteTour
func (s *TourService) DeleteTour(ctx context.Context, id uint) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(id)
	return nil
}

func (s *TourService) invalidate(id uint) {
	if s.Invalidator != nil {
		s.Invalidator.Invalidate(TourMutationTags(id)...)
	}
}
