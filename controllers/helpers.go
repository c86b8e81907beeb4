package controllers

import (
	"strconv"

	"innpilot/errors"
	"innpilot/response"

	"github.com/gin-gonic/gin"
)

// handleError maps an AppError onto the right HTTP envelope. Unknown errors
// become a generic 500 so internals never leak to clients.
func handleError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		response.ServerError(c)
		return
	}
	switch appErr.Code {
	case errors.ErrCodeUnauthorized, errors.ErrCodeInvalidToken, errors.ErrCodeMissingToken, errors.ErrCodeInvalidPassword:
		response.Unauthorized(c)
	case errors.ErrCodeDBNotFound, errors.ErrCodeUserNotFound:
		response.NotFound(c)
	case errors.ErrCodeDBDuplicate, errors.ErrCodeUserExists:
		response.Conflict(c, appErr.Message)
	case errors.ErrCodeValidation, errors.ErrCodeRequiredField, errors.ErrCodeInvalidDate,
		errors.ErrCodeInvalidRange, errors.ErrCodeInvalidPrice, errors.ErrCodeInvalidGuests,
		errors.ErrCodeInvalidStatus, errors.ErrCodeInvalidEmail, errors.ErrCodeInvalidRole,
		errors.ErrCodeInvalidOperation, errors.ErrCodeNoAvailability:
		response.BadRequest(c, appErr.Message)
	default:
		response.ServerError(c)
	}
}

func queryInt(c *gin.Context, name string, fallback int) int {
	if raw := c.Query(name); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			return n
		}
	}
	return fallback
}

func paramUint(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(n), true
}
