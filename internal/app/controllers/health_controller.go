package controllers

import (
	"context"
	"time"

	"github.com/Vitalis058/tumaini-next-sub000/internal/domain/services/container"
	"github.com/Vitalis058/tumaini-next-sub000/internal/error/code"
	"github.com/Vitalis058/tumaini-next-sub000/internal/error/response"
	"github.com/Vitalis058/tumaini-next-sub000/internal/infrastructure/cache"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var startedAt = time.Now()

// HealthController reports liveness and dependency status.
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthController creates a health controller.
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc returns the gin handler for a health method.
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		case "status":
			controller.Status()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. Ping
// @Summary      Liveness
// @Tags         Health
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /ping [get]
func (c *HealthController) Ping() {
	response.Success(c.Ctx, gin.H{
		"status":  "healthy",
		"message": "pong",
	})
}

// 2. Status
// @Summary      Dependency status
// @Tags         Health
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /health/status [get]
func (c *HealthController) Status() {
	ctx, cancel := context.WithTimeout(c.Ctx.Request.Context(), 2*time.Second)
	defer cancel()

	db, _ := c.Container.GetService("db").(*gorm.DB)
	snapshots, _ := c.Container.GetService("snapshots").(cache.SnapshotStore)

	components := gin.H{
		"database":  checkDatabase(ctx, db),
		"snapshots": checkSnapshots(ctx, snapshots),
	}

	status := "healthy"
	for _, v := range components {
		if v != "up" && v != "disabled" {
			status = "degraded"
		}
	}

	data := gin.H{
		"status":     status,
		"uptime":     time.Since(startedAt).Round(time.Second).String(),
		"components": components,
	}
	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			stats := sqlDB.Stats()
			data["pool"] = gin.H{
				"open_connections": stats.OpenConnections,
				"in_use":           stats.InUse,
				"idle":             stats.Idle,
				"wait_count":       stats.WaitCount,
			}
		}
	}

	response.Success(c.Ctx, data)
}

func checkDatabase(ctx context.Context, db *gorm.DB) string {
	if db == nil {
		return "disabled"
	}
	sqlDB, err := db.DB()
	if err != nil {
		return "down: " + err.Error()
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return "down: " + err.Error()
	}
	return "up"
}

func checkSnapshots(ctx context.Context, store cache.SnapshotStore) string {
	if store == nil {
		return "disabled"
	}
	if err := store.Ping(ctx); err != nil {
		return "down: " + err.Error()
	}
	return "up"
}
