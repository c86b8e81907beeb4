package controllers

import (
	"innpilot/dto"
	"innpilot/middleware"
	"innpilot/response"
	"innpilot/services"

	"github.com/gin-gonic/gin"
)

type AgentController struct {
	Agent         *services.AgentService
	Notifications *services.NotificationService
}

func NewAgentController(agent *services.AgentService, notifications *services.NotificationService) *AgentController {
	return &AgentController{Agent: agent, Notifications: notifications}
}

// Chat runs one turn of the ops-assistant conversation.
func (ctl *AgentController) Chat(c *gin.Context) {
	var req dto.AgentChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	reply, err := ctl.Agent.Chat(c.Request.Context(),
		middleware.HotelID(c), middleware.UserID(c), middleware.UserRole(c), req.Message)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, reply)
}

// History returns the recent turns of the user's conversation.
func (ctl *AgentController) History(c *gin.Context) {
	limit := queryInt(c, "limit", 20)
	messages, err := ctl.Notifications.RecentChatMessages(c.Request.Context(), middleware.UserID(c), limit)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, messages)
}
