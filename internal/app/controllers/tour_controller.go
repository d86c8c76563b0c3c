package controllers

import (
	"errors"
	"strconv"

	"github.com/Vitalis058/tumaini-next-sub000/internal/domain/models"
	"github.com/Vitalis058/tumaini-next-sub000/internal/domain/repository"
	"github.com/Vitalis058/tumaini-next-sub000/internal/domain/services"
	"github.com/Vitalis058/tumaini-next-sub000/internal/domain/services/container"
	"github.com/Vitalis058/tumaini-next-sub000/internal/error/code"
	"github.com/Vitalis058/tumaini-next-sub000/internal/error/response"
	Logger "github.com/Vitalis058/tumaini-next-sub000/pkg/logger"

	"github.com/gin-gonic/gin"
)

// InterfaceTourController is the tour resource API.
type InterfaceTourController interface {
	GetTours()
	GetTour()
	CreateTour()
	UpdateTour()
	DeleteTour()
}

// TourController handles /tours.
type TourController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewTourController creates a tour controller.
func NewTourController(ctx *gin.Context, container *container.ServiceContainer) *TourController {
	return &TourController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleTourFunc returns the gin handler for a tour method.
func HandleTourFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewTourController(ctx, container)

		switch method {
		case "getTours":
			controller.GetTours()
		case "getTour":
			controller.GetTour()
		case "createTour":
			controller.CreateTour()
		case "updateTour":
			controller.UpdateTour()
		case "deleteTour":
			controller.DeleteTour()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. GetTours
// @Summary      List tours
// @Description  Newest first by default; order=date lists the soonest tours first
// @Tags         Tour
// @Produce      json
// @Param        limit query int false "Maximum number of tours"
// @Param        order query string false "newest or date"
// @Success      200  {object}  response.Response{data=[]models.Tour}
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /tours [get]
func (c *TourController) GetTours() {
	opts, ok := bindListOptions(c.Ctx)
	if !ok {
		return
	}

	tourService := c.Container.GetService("tour").(services.InterfaceTourService)
	tours, err := tourService.ListTours(c.Ctx.Request.Context(), opts)
	if err != nil {
		Logger.Error("list tours: %v", err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, tours)
}

// 2. GetTour
// @Summary      Get a tour
// @Tags         Tour
// @Produce      json
// @Param        id path int true "Tour ID"
// @Success      200  {object}  response.Response{data=models.Tour}
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /tours/{id} [get]
func (c *TourController) GetTour() {
	id, ok := tourID(c.Ctx)
	if !ok {
		response.Fail(c.Ctx, code.ErrTourNotFound, nil)
		return
	}

	tourService := c.Container.GetService("tour").(services.InterfaceTourService)
	tour, err := tourService.GetTour(c.Ctx.Request.Context(), id)
	if err != nil {
		writeTourError(c.Ctx, "get tour", err)
		return
	}

	response.Success(c.Ctx, tour)
}

// 3. CreateTour
// @Summary      Create a tour
// @Description  tourName, price, images, location and date are required; the rest default
// @Tags         Tour
// @Accept       json
// @Produce      json
// @Param        request body models.TourInput true "Tour"
// @Success      201  {object}  response.Response{data=models.Tour}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /tours [post]
// @Security     CookieAuth
func (c *TourController) CreateTour() {
	var input models.TourInput
	if err := c.Ctx.ShouldBindJSON(&input); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error(), nil)
		return
	}

	tourService := c.Container.GetService("tour").(services.InterfaceTourService)
	tour, err := tourService.CreateTour(c.Ctx.Request.Context(), &input)
	if err != nil {
		writeTourError(c.Ctx, "create tour", err)
		return
	}

	response.Created(c.Ctx, tour)
}

// 4. UpdateTour
// @Summary      Replace a tour
// @Description  Full replace: omitted optional fields fall back to their defaults
// @Tags         Tour
// @Accept       json
// @Produce      json
// @Param        id path int true "Tour ID"
// @Param        request body models.TourInput true "Tour"
// @Success      200  {object}  response.Response{data=models.Tour}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /tours/{id} [put]
// @Security     CookieAuth
func (c *TourController) UpdateTour() {
	id, ok := tourID(c.Ctx)
	if !ok {
		response.Fail(c.Ctx, code.ErrTourNotFound, nil)
		return
	}

	var input models.TourInput
	if err := c.Ctx.ShouldBindJSON(&input); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error(), nil)
		return
	}

	tourService := c.Container.GetService("tour").(services.InterfaceTourService)
	tour, err := tourService.UpdateTour(c.Ctx.Request.Context(), id, &input)
	if err != nil {
		writeTourError(c.Ctx, "update tour", err)
		return
	}

	response.Success(c.Ctx, tour)
}

// 5. DeleteTour
// @Summary      Delete a tour
// @Tags         Tour
// @Produce      json
// @Param        id path int true "Tour ID"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /tours/{id} [delete]
// @Security     CookieAuth
func (c *TourController) DeleteTour() {
	id, ok := tourID(c.Ctx)
	if !ok {
		response.Fail(c.Ctx, code.ErrTourNotFound, nil)
		return
	}

	tourService := c.Container.GetService("tour").(services.InterfaceTourService)
	if err := tourService.DeleteTour(c.Ctx.Request.Context(), id); err != nil {
		writeTourError(c.Ctx, "delete tour", err)
		return
	}

	response.Success(c.Ctx, gin.H{"success": true})
}

// tourID parses the :id path parameter. An id that cannot name a row is
// reported as not found.
func tourID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func bindListOptions(ctx *gin.Context) (repository.ListOptions, bool) {
	opts := repository.ListOptions{Order: repository.OrderNewest}

	if raw := ctx.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			response.ParamError(ctx, "limit must be a non-negative integer")
			return opts, false
		}
		opts.Limit = limit
	}

	switch order := repository.TourOrder(ctx.Query("order")); order {
	case "", repository.OrderNewest:
	case repository.OrderSoonest:
		opts.Order = order
	default:
		response.ParamError(ctx, "order must be newest or date")
		return opts, false
	}

	return opts, true
}

func writeTourError(ctx *gin.Context, op string, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		response.FailWithMessage(ctx, code.ErrTourInvalid, verr.Error(), verr)
	case errors.Is(err, repository.ErrTourNotFound):
		response.Fail(ctx, code.ErrTourNotFound, nil)
	default:
		Logger.Error("%s: %v", op, err)
		response.Fail(ctx, code.ErrDatabase, nil)
	}
}
