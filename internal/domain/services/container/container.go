package container

import (
	"sync"

	"github.com/Vitalis058/tumaini-next-sub000/internal/domain/repository"
	"github.com/Vitalis058/tumaini-next-sub000/internal/domain/services"
	"github.com/Vitalis058/tumaini-next-sub000/internal/infrastructure/cache"
	"github.com/Vitalis058/tumaini-next-sub000/internal/infrastructure/config"
	"github.com/Vitalis058/tumaini-next-sub000/internal/infrastructure/mail"
	"github.com/Vitalis058/tumaini-next-sub000/internal/infrastructure/storage"

	"gorm.io/gorm"
)

// Dependencies are the infrastructure handles the services are built from.
// DB is optional when Tours and Admins are supplied directly.
type Dependencies struct {
	Config    *config.Config
	DB        *gorm.DB
	Tours     repository.TourRepository
	Admins    services.InterfaceAdminService
	Snapshots cache.SnapshotStore
	Objects   storage.ObjectStore
	Mailer    mail.Mailer
}

// ServiceContainer wires the services once and hands them to controllers.
type ServiceContainer struct {
	db        *gorm.DB
	config    *config.Config
	snapshots cache.SnapshotStore

	adminService        services.InterfaceAdminService
	jwtService          services.InterfaceJWTService
	tourService         services.InterfaceTourService
	invalidationService *services.InvalidationService
	assetService        services.InterfaceAssetService
	notificationService services.InterfaceNotificationService

	mu sync.RWMutex
}

// NewServiceContainer builds every service from deps.
func NewServiceContainer(deps Dependencies) *ServiceContainer {
	if deps.Config == nil {
		panic("config is nil")
	}

	tours := deps.Tours
	if tours == nil {
		if deps.DB == nil {
			panic("database connection is nil")
		}
		tours = repository.NewGormTourRepository(deps.DB)
	}

	admins := deps.Admins
	if admins == nil {
		if deps.DB == nil {
			panic("database connection is nil")
		}
		admins = services.NewAdminService(deps.DB, deps.Config)
	}

	snapshots := deps.Snapshots
	if snapshots == nil {
		snapshots = cache.NewMemoryStore()
	}

	mailer := deps.Mailer
	if mailer == nil {
		mailer = mail.NewMailer(deps.Config)
	}

	c := &ServiceContainer{
		db:        deps.DB,
		config:    deps.Config,
		snapshots: snapshots,
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.adminService = admins
	c.jwtService = services.NewJWTService(deps.Config, admins)
	c.invalidationService = services.NewInvalidationService(snapshots)
	c.tourService = services.NewTourService(tours, c.invalidationService)
	c.assetService = services.NewAssetService(deps.Objects, deps.Config)
	c.notificationService = services.NewNotificationService(mailer, tours, deps.Config)

	return c
}

// GetService returns the named service, or nil.
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "snapshots":
		return c.snapshots
	case "admin":
		return c.adminService
	case "jwt":
		return c.jwtService
	case "tour":
		return c.tourService
	case "invalidation":
		return c.invalidationService
	case "asset":
		return c.assetService
	case "notification":
		return c.notificationService
	default:
		return nil
	}
}

// GetDB returns the database connection, which is nil in tests.
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
