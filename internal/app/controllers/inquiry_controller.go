package controllers

import (
	"errors"

	"github.com/Vitalis058/tumaini-next-sub000/internal/domain/models"
	"github.com/Vitalis058/tumaini-next-sub000/internal/domain/repository"
	"github.com/Vitalis058/tumaini-next-sub000/internal/domain/services"
	"github.com/Vitalis058/tumaini-next-sub000/internal/domain/services/container"
	"github.com/Vitalis058/tumaini-next-sub000/internal/error/code"
	"github.com/Vitalis058/tumaini-next-sub000/internal/error/response"
	Logger "github.com/Vitalis058/tumaini-next-sub000/pkg/logger"

	"github.com/gin-gonic/gin"
)

// InquiryController forwards booking requests and contact messages by email.
type InquiryController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewInquiryController creates an inquiry controller.
func NewInquiryController(ctx *gin.Context, container *container.ServiceContainer) *InquiryController {
	return &InquiryController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleInquiryFunc returns the gin handler for an inquiry method.
func HandleInquiryFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewInquiryController(ctx, container)

		switch method {
		case "booking":
			controller.Booking()
		case "contact":
			controller.Contact()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. Booking
// @Summary      Request a booking
// @Description  Emails the operator and acknowledges the customer
// @Tags         Inquiry
// @Accept       json
// @Produce      json
// @Param        request body models.BookingRequest true "Booking"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /bookings [post]
func (c *InquiryController) Booking() {
	var req models.BookingRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error(), nil)
		return
	}

	notificationService := c.Container.GetService("notification").(services.InterfaceNotificationService)
	if err := notificationService.NotifyBooking(c.Ctx.Request.Context(), &req); err != nil {
		c.writeError("booking", err)
		return
	}

	response.Success(c.Ctx, gin.H{"success": true})
}

// 2. Contact
// @Summary      Send a contact message
// @Tags         Inquiry
// @Accept       json
// @Produce      json
// @Param        request body models.ContactMessage true "Message"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /contact [post]
func (c *InquiryController) Contact() {
	var msg models.ContactMessage
	if err := c.Ctx.ShouldBindJSON(&msg); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error(), nil)
		return
	}

	notificationService := c.Container.GetService("notification").(services.InterfaceNotificationService)
	if err := notificationService.NotifyContact(c.Ctx.Request.Context(), &msg); err != nil {
		c.writeError("contact", err)
		return
	}

	response.Success(c.Ctx, gin.H{"success": true})
}

func (c *InquiryController) writeError(op string, err error) {
	switch {
	case errors.Is(err, repository.ErrTourNotFound):
		response.Fail(c.Ctx, code.ErrTourNotFound, nil)
	case services.IsUpstream(err):
		Logger.Error("%s: %v", op, err)
		response.Fail(c.Ctx, code.ErrMailDelivery, nil)
	default:
		Logger.Error("%s: %v", op, err)
		response.ServerError(c.Ctx)
	}
}
