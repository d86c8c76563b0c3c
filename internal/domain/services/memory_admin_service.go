package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Vitalis058/tumaini-next-sub000/internal/domain/models"

	"golang.org/x/crypto/bcrypt"
)

// InMemoryAdminService is a process-local admin store, used by tests and
// load runs as the admin store double. Hashes use bcrypt.MinCost.
type InMemoryAdminService struct {
	mu     sync.RWMutex
	admins map[uint]*models.Admin
	nextID uint
}

// NewInMemoryAdminService creates an empty store.
func NewInMemoryAdminService() *InMemoryAdminService {
	return &InMemoryAdminService{admins: make(map[uint]*models.Admin), nextID: 1}
}

func (s *InMemoryAdminService) CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (s *InMemoryAdminService) GetAdminByID(ctx context.Context, id uint) (*models.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if admin, ok := s.admins[id]; ok {
		copied := *admin
		return &copied, nil
	}
	return nil, ErrAdminNotFound
}

func (s *InMemoryAdminService) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	email = normalizeEmail(email)
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, admin := range s.admins {
		if admin.Email == email {
			copied := *admin
			return &copied, nil
		}
	}
	return nil, ErrAdminNotFound
}

func (s *InMemoryAdminService) CreateAdmin(ctx context.Context, email, password, name string) (*models.Admin, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, errors.New("admin email and password are required")
	}
	if _, err := s.GetAdminByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("admin %s already exists", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	admin := &models.Admin{Email: email, Password: string(hash), Name: strings.TrimSpace(name)}
	admin.ID = s.nextID
	s.nextID++
	s.admins[admin.ID] = admin

	copied := *admin
	return &copied, nil
}

func (s *InMemoryAdminService) EnsureAdmin(ctx context.Context, email, password, name string) (*models.Admin, bool, error) {
	if admin, err := s.GetAdminByEmail(ctx, email); err == nil {
		return admin, false, nil
	}
	admin, err := s.CreateAdmin(ctx, email, password, name)
	if err != nil {
		return nil, false, err
	}
	return admin, true, nil
}

// Remove deletes an admin; outstanding sessions for it stop authorizing.
func (s *InMemoryAdminService) Remove(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.admins, id)
}
