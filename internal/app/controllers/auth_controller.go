package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Vitalis058/tumaini-next-sub000/internal/app/middleware"
	"github.com/Vitalis058/tumaini-next-sub000/internal/domain/services"
	"github.com/Vitalis058/tumaini-next-sub000/internal/domain/services/container"
	"github.com/Vitalis058/tumaini-next-sub000/internal/error/code"
	"github.com/Vitalis058/tumaini-next-sub000/internal/error/response"
	"github.com/Vitalis058/tumaini-next-sub000/internal/infrastructure/config"
	Logger "github.com/Vitalis058/tumaini-next-sub000/pkg/logger"

	"github.com/gin-gonic/gin"
)

// InterfaceAuthController handles the admin session.
type InterfaceAuthController interface {
	Login()
	Logout()
	Verify()
}

// AuthController issues and clears the session cookie.
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController creates an auth controller.
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest is the admin login body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"admin@tumaini.example"`
	Password string `json:"password" binding:"required" example:"change-me"`
}

// ErrorResponse is the envelope of a failed request.
type ErrorResponse struct {
	Code    int         `json:"code" example:"100003"`
	Message string      `json:"message" example:"validation failed"`
	Data    interface{} `json:"data"`
}

// HandleAuthFunc returns the gin handler for an auth method.
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		case "logout":
			controller.Logout()
		case "verify":
			controller.Verify()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. Login
// @Summary      Admin login
// @Description  Checks the credentials and sets the HttpOnly session cookie
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200  {object}  response.Response{data=services.LoginResult}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/login [post]
func (c *AuthController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "email and password are required", nil)
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	result, err := jwtService.Login(c.Ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			response.Fail(c.Ctx, code.ErrAdminCredentials, nil)
			return
		}
		Logger.Error("login: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	c.setSessionCookie(result.Token, time.Until(result.ExpiresAt))
	response.Success(c.Ctx, result)
}

// 2. Logout
// @Summary      Admin logout
// @Description  Clears the session cookie. Always succeeds.
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /admin/logout [post]
func (c *AuthController) Logout() {
	c.setSessionCookie("", -time.Second)
	response.Success(c.Ctx, gin.H{"success": true})
}

// 3. Verify
// @Summary      Current admin
// @Description  Returns the admin behind the session cookie
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  response.Response{data=models.AdminIdentity}
// @Failure      401  {object}  ErrorResponse
// @Router       /admin/verify [get]
func (c *AuthController) Verify() {
	admin, ok := middleware.CurrentAdmin(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}
	response.Success(c.Ctx, admin)
}

func (c *AuthController) setSessionCookie(value string, ttl time.Duration) {
	cfg := c.Container.GetService("config").(*config.Config)

	maxAge := int(ttl / time.Second)
	if ttl < 0 {
		maxAge = -1
	}

	c.Ctx.SetSameSite(http.SameSiteLaxMode)
	c.Ctx.SetCookie(cfg.CookieName, value, maxAge, "/", cfg.CookieDomain, cfg.CookieSecure, true)
}
