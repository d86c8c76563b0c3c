package controllers

import (
	"github.com/Vitalis058/tumaini-next-sub000/internal/domain/repository"
	"github.com/Vitalis058/tumaini-next-sub000/internal/domain/services"
	"github.com/Vitalis058/tumaini-next-sub000/internal/domain/services/container"
	"github.com/Vitalis058/tumaini-next-sub000/internal/error/code"
	"github.com/Vitalis058/tumaini-next-sub000/internal/error/response"
	"github.com/Vitalis058/tumaini-next-sub000/internal/infrastructure/cache"
	Logger "github.com/Vitalis058/tumaini-next-sub000/pkg/logger"

	"github.com/gin-gonic/gin"
)

// homeRecentTours is the size of the home page "upcoming tours" section.
const homeRecentTours = 3

// SiteController serves the public page data. Its responses are snapshotted
// and dropped by tour mutations.
type SiteController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewSiteController creates a site controller.
func NewSiteController(ctx *gin.Context, container *container.ServiceContainer) *SiteController {
	return &SiteController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleSiteFunc returns the gin handler for a site view.
func HandleSiteFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewSiteController(ctx, container)

		switch method {
		case "home":
			controller.Home()
		case "tours":
			controller.Tours()
		case "tourDetail":
			controller.TourDetail()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// SiteTourTags tags a detail view with its own route and the tour dataset.
func SiteTourTags(ctx *gin.Context) []cache.RouteTag {
	tags := []cache.RouteTag{cache.DataTours}
	if id, ok := tourID(ctx); ok {
		tags = append(tags, cache.TourDetailRoute(id))
	}
	return tags
}

// 1. Home
// @Summary      Home page data
// @Description  The soonest upcoming tours
// @Tags         Site
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /site/home [get]
func (c *SiteController) Home() {
	tourService := c.Container.GetService("tour").(services.InterfaceTourService)
	tours, err := tourService.ListTours(c.Ctx.Request.Context(), repository.ListOptions{
		Limit: homeRecentTours,
		Order: repository.OrderSoonest,
	})
	if err != nil {
		Logger.Error("home tours: %v", err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{"recentTours": tours})
}

// 2. Tours
// @Summary      Tour listing page data
// @Tags         Site
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.Tour}
// @Router       /site/tours [get]
func (c *SiteController) Tours() {
	tourService := c.Container.GetService("tour").(services.InterfaceTourService)
	tours, err := tourService.ListTours(c.Ctx.Request.Context(), repository.ListOptions{Order: repository.OrderNewest})
	if err != nil {
		Logger.Error("site tours: %v", err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, tours)
}

// 3. TourDetail
// @Summary      Tour detail page data
// @Tags         Site
// @Produce      json
// @Param        id path int true "Tour ID"
// @Success      200  {object}  response.Response{data=models.Tour}
// @Failure      404  {object}  ErrorResponse
// @Router       /site/tours/{id} [get]
func (c *SiteController) TourDetail() {
	id, ok := tourID(c.Ctx)
	if !ok {
		response.Fail(c.Ctx, code.ErrTourNotFound, nil)
		return
	}

	tourService := c.Container.GetService("tour").(services.InterfaceTourService)
	tour, err := tourService.GetTour(c.Ctx.Request.Context(), id)
	if err != nil {
		writeTourError(c.Ctx, "site tour", err)
		return
	}

	response.Success(c.Ctx, tour)
}
