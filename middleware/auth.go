package middleware

import (
	"strings"

	"innpilot/response"
	"innpilot/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and, when roles are given,
// requires one of them. Claims land in the gin context under userID,
// userRole and hotelID.
func AuthMiddleware(tokens *services.TokenService, roles ...int) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.Parse(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if len(roles) > 0 {
			hasRole := false
			for _, role := range roles {
				if role == claims.Role {
					hasRole = true
					break
				}
			}
			if !hasRole {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		c.Set("userID", claims.UserID)
		c.Set("userRole", claims.Role)
		c.Set("hotelID", claims.HotelID)
		c.Next()
	}
}

// UserID reads the authenticated user id from the context.
func UserID(c *gin.Context) uint {
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// UserRole reads the authenticated role from the context.
func UserRole(c *gin.Context) int {
	if v, ok := c.Get("userRole"); ok {
		if role, ok := v.(int); ok {
			return role
		}
	}
	return 0
}

// HotelID reads the tenant scope from the context.
func HotelID(c *gin.Context) uint {
	if v, ok := c.Get("hotelID"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
