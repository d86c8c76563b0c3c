// @title           Tumaini Tours API
// @version         1.0
// @description     Tour catalogue, admin tour management, image assets and booking inquiries for Tumaini Tours

// @contact.name   Tumaini Tours
// @contact.email  info@tumaini.example

// @BasePath  /api

// @securityDefinitions.apikey  CookieAuth
// @in                          cookie
// @name                        admin_token
// @description                 Session cookie set by POST /admin/login
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/Vitalis058/tumaini-next-sub000/internal/app/routes"
	"github.com/Vitalis058/tumaini-next-sub000/internal/domain/models"
	"github.com/Vitalis058/tumaini-next-sub000/internal/domain/services"
	"github.com/Vitalis058/tumaini-next-sub000/internal/domain/services/container"
	"github.com/Vitalis058/tumaini-next-sub000/internal/infrastructure/cache"
	"github.com/Vitalis058/tumaini-next-sub000/internal/infrastructure/config"
	"github.com/Vitalis058/tumaini-next-sub000/internal/infrastructure/database"
	"github.com/Vitalis058/tumaini-next-sub000/internal/infrastructure/mail"
	"github.com/Vitalis058/tumaini-next-sub000/internal/infrastructure/storage"
	Logger "github.com/Vitalis058/tumaini-next-sub000/pkg/logger"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	if err := Logger.SetupLogger(); err != nil {
		fmt.Printf("failed to set up logging: %v\n", err)
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		Logger.Warning("no .env file loaded: %v", err)
	} else {
		Logger.Info("loaded .env file")
	}

	cfg := config.GetConfig()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		Logger.Error("failed to create database pool: %v", err)
		os.Exit(1)
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = pool.HealthCheck(ctx)
	cancel()
	if err != nil {
		Logger.Error("database unreachable: %v", err)
		os.Exit(1)
	}
	db := pool.GetDB()

	if err := migrate(db, cfg.DBMigrationMode); err != nil {
		Logger.Error("migration failed: %v", err)
		os.Exit(1)
	}

	admins := services.NewAdminService(db, cfg)
	ensureAdminExists(admins, cfg)

	appCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := container.Dependencies{
		Config:    cfg,
		DB:        db,
		Admins:    admins,
		Snapshots: newSnapshotStore(appCtx, cfg),
		Mailer:    mail.NewMailer(cfg),
	}
	if objects, err := storage.NewS3Store(cfg); err != nil {
		Logger.Warning("image uploads disabled: %v", err)
	} else {
		deps.Objects = objects
	}

	serviceContainer := container.NewServiceContainer(deps)
	r := routes.SetupRouter(serviceContainer)

	printSystemInfo(pool)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		Logger.Info("server listening on http://0.0.0.0:%s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			Logger.Error("server failed: %v", err)
			os.Exit(1)
		}
	}()

	<-appCtx.Done()
	Logger.Info("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		Logger.Error("graceful shutdown: %v", err)
	}
	serviceContainer.GetService("invalidation").(*services.InvalidationService).Wait()
}

// migrate creates the tables. "drop" recreates them from scratch.
func migrate(db *gorm.DB, mode string) error {
	if mode == "drop" {
		Logger.Warning("DB_MIGRATION_MODE=drop: dropping and recreating all tables")
		if err := db.Migrator().DropTable(&models.Tour{}, &models.Admin{}); err != nil {
			return fmt.Errorf("drop tables: %w", err)
		}
	}

	if err := db.AutoMigrate(&models.Admin{}, &models.Tour{}); err != nil {
		return err
	}
	Logger.Info("database migration completed")
	return nil
}

// ensureAdminExists creates the admin named by ADMIN_EMAIL/ADMIN_PASSWORD.
func ensureAdminExists(admins services.InterfaceAdminService, cfg *config.Config) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		Logger.Warning("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin bootstrap")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, created, err := admins.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword, cfg.AdminName); err != nil {
		Logger.Error("failed to create admin: %v", err)
		os.Exit(1)
	} else if !created {
		Logger.Info("admin %s already exists", cfg.AdminEmail)
	}
}

// newSnapshotStore returns the Redis store when enabled and reachable, and
// the in-process store otherwise.
func newSnapshotStore(ctx context.Context, cfg *config.Config) cache.SnapshotStore {
	if cfg.RedisEnabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.GetRedisAddr(),
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		err := client.Ping(pingCtx).Err()
		if err == nil {
			Logger.Info("page snapshots stored in redis at %s", cfg.GetRedisAddr())
			return cache.NewRedisStore(client)
		}
		Logger.Warning("redis unreachable (%v), falling back to in-process snapshots", err)
		client.Close()
	}

	store := cache.NewMemoryStore()
	store.StartJanitor(ctx, time.Minute)
	return store
}

func printSystemInfo(pool *database.ConnectionPool) {
	if stats, err := pool.Stats(); err == nil {
		Logger.Info("database pool: %+v", stats)
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	Logger.Info("cpus=%d goroutines=%d alloc=%vMiB sys=%vMiB",
		runtime.NumCPU(), runtime.NumGoroutine(), m.Alloc/1024/1024, m.Sys/1024/1024)
}
