package controllers

import (
	"innpilot/middleware"
	"innpilot/response"
	"innpilot/services"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	Notifications *services.NotificationService
}

func NewNotificationController(notifications *services.NotificationService) *NotificationController {
	return &NotificationController{Notifications: notifications}
}

func (ctl *NotificationController) List(c *gin.Context) {
	limit := queryInt(c, "limit", 50)
	notifications, err := ctl.Notifications.List(c.Request.Context(), middleware.HotelID(c), limit)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, notifications)
}

func (ctl *NotificationController) MarkRead(c *gin.Context) {
	notificationID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	if err := ctl.Notifications.MarkRead(c.Request.Context(), middleware.HotelID(c), notificationID); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, nil)
}
