package middleware

import (
	"github.com/Vitalis058/tumaini-next-sub000/internal/domain/models"
	"github.com/Vitalis058/tumaini-next-sub000/internal/domain/services"
	"github.com/Vitalis058/tumaini-next-sub000/internal/error/response"

	"github.com/gin-gonic/gin"
)

// adminContextKey is where AuthenticateAdmin stores the caller's identity.
const adminContextKey = "admin"

// AuthenticateAdmin requires a valid session cookie. A missing cookie is
// treated exactly like an invalid token.
func AuthenticateAdmin(jwtService services.InterfaceJWTService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil {
			token = ""
		}

		identity, err := jwtService.Authorize(c.Request.Context(), token)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(adminContextKey, identity)
		c.Next()
	}
}

// CurrentAdmin returns the identity stored by AuthenticateAdmin.
func CurrentAdmin(c *gin.Context) (*models.AdminIdentity, bool) {
	value, exists := c.Get(adminContextKey)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*models.AdminIdentity)
	return identity, ok
}
