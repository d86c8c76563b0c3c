package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Vitalis058/tumaini-next-sub000/internal/domain/models"

	"gorm.io/gorm"
)

// ErrTourNotFound is returned when an id does not resolve to a tour.
var ErrTourNotFound = errors.New("tour not found")

// TourOrder selects the ordering of List.
type TourOrder string

const (
	// OrderNewest lists the most recently created tours first.
	OrderNewest TourOrder = "newest"
	// OrderSoonest lists tours by date, earliest first.
	OrderSoonest TourOrder = "date"
)

// ListOptions controls List. A Limit <= 0 returns every tour.
type ListOptions struct {
	Limit int
	Order TourOrder
}

// TourRepository is the persistence boundary for tours. Every method touches a
// single row.
type TourRepository interface {
	List(ctx context.Context, opts ListOptions) ([]models.Tour, error)
	FindByID(ctx context.Context, id uint) (*models.Tour, error)
	Create(ctx context.Context, fields models.TourFields) (*models.Tour, error)
	Update(ctx context.Context, id uint, fields models.TourFields) (*models.Tour, error)
	Delete(ctx context.Context, id uint) error
}

// GormTourRepository stores tours in MySQL through GORM.
type GormTourRepository struct {
	DB *gorm.DB
}

// NewGormTourRepository creates a GORM backed repository.
func NewGormTourRepository(db *gorm.DB) TourRepository {
	return &GormTourRepository{DB: db}
}

func (r *GormTourRepository) List(ctx context.Context, opts ListOptions) ([]models.Tour, error) {
	query := r.DB.WithContext(ctx).Model(&models.Tour{})

	switch opts.Order {
	case OrderSoonest:
		query = query.Order("date ASC").Order("id ASC")
	default:
		query = query.Order("created_at DESC").Order("id DESC")
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	tours := []models.Tour{}
	if err := query.Find(&tours).Error; err != nil {
		return nil, fmt.Errorf("list tours: %w", err)
	}
	return tours, nil
}

func (r *GormTourRepository) FindByID(ctx context.Context, id uint) (*models.Tour, error) {
	var tour models.Tour
	if err := r.DB.WithContext(ctx).First(&tour, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTourNotFound
		}
		return nil, fmt.Errorf("find tour %d: %w", id, err)
	}
	return &tour, nil
}

func (r *GormTourRepository) Create(ctx context.Context, fields models.TourFields) (*models.Tour, error) {
	tour := &models.Tour{}
	fields.Apply(tour)

	if err := r.DB.WithContext(ctx).Create(tour).Error; err != nil {
		return nil, fmt.Errorf("create tour: %w", err)
	}
	return tour, nil
}

// Update replaces every column of an existing row. Concurrent updates of the
// same id are last-write-wins.
func (r *GormTourRepository) Update(ctx context.Context, id uint, fields models.TourFields) (*models.Tour, error) {
	var tour models.Tour
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Tour
		if err := tx.First(&current, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTourNotFound
			}
			return err
		}

		columns := fields.Columns()
		columns["updated_at"] = nextUpdatedAt(current.UpdatedAt)

		if err := tx.Model(&models.Tour{}).Where("id = ?", id).Updates(columns).Error; err != nil {
			return err
		}
		return tx.First(&tour, id).Error
	})
	if err != nil {
		if errors.Is(err, ErrTourNotFound) {
			return nil, ErrTourNotFound
		}
		return nil, fmt.Errorf("update tour %d: %w", id, err)
	}
	return &tour, nil
}

func (r *GormTourRepository) Delete(ctx context.Context, id uint) error {
	result := r.DB.WithContext(ctx).Delete(&models.Tour{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete tour %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTourNotFound
	}
	return nil
}

// nextUpdatedAt keeps updatedAt strictly increasing at the millisecond
// precision MySQL stores.
func nextUpdatedAt(previous time.Time) time.Time {
	now := time.Now().UTC().Truncate(time.Millisecond)
	if !now.After(previous) {
		return previous.Add(time.Millisecond)
	}
	return now
}
