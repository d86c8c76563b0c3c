package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Vitalis058/tumaini-next-sub000/internal/domain/models"
	"github.com/Vitalis058/tumaini-next-sub000/internal/infrastructure/config"
	Logger "github.com/Vitalis058/tumaini-next-sub000/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrAdminNotFound is returned when no admin matches the lookup.
var ErrAdminNotFound = errors.New("admin not found")

// InterfaceAdminService is the admin store.
type InterfaceAdminService interface {
	CheckPassword(password, hash string) bool
	GetAdminByID(ctx context.Context, id uint) (*models.Admin, error)
	GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error)
	CreateAdmin(ctx context.Context, email, password, name string) (*models.Admin, error)
	EnsureAdmin(ctx context.Context, email, password, name string) (*models.Admin, bool, error)
}

// AdminService stores admins in the admins table.
type AdminService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAdminService creates an admin service.
func NewAdminService(db *gorm.DB, cfg *config.Config) InterfaceAdminService {
	return &AdminService{
		DB:     db,
		Config: cfg,
	}
}

// 1. CheckPassword compares a plain password with a bcrypt hash.
func (s *AdminService) CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// 2. GetAdminByID
func (s *AdminService) GetAdminByID(ctx context.Context, id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.WithContext(ctx).First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// 3. GetAdminByEmail matches the email case-insensitively.
func (s *AdminService) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := s.DB.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// 4. CreateAdmin hashes the password and inserts a new admin.
func (s *AdminService) CreateAdmin(ctx context.Context, email, password, name string) (*models.Admin, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, errors.New("admin email and password are required")
	}

	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Admin{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("admin %s already exists", email)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin := &models.Admin{Email: email, Password: string(hashedPassword), Name: strings.TrimSpace(name)}
	if err := s.DB.WithContext(ctx).Create(admin).Error; err != nil {
		return nil, err
	}
	return admin, nil
}

// 5. EnsureAdmin creates the bootstrap admin unless one with that email exists.
// The bool reports whether a row was created.
func (s *AdminService) EnsureAdmin(ctx context.Context, email, password, name string) (*models.Admin, bool, error) {
	existing, err := s.GetAdminByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, ErrAdminNotFound) {
		return nil, false, err
	}

	admin, err := s.CreateAdmin(ctx, email, password, name)
	if err != nil {
		return nil, false, err
	}
	Logger.Info("created admin %s", admin.Email)
	return admin, true, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
