package controllers

import (
	"innpilot/dto"
	"innpilot/middleware"
	"innpilot/response"
	"innpilot/services"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{Rooms: rooms}
}

func (ctl *RoomController) ListRoomTypes(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	roomTypes, err := ctl.Rooms.ListRoomTypes(c.Request.Context(), middleware.HotelID(c), activeOnly)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, roomTypes)
}

func (ctl *RoomController) GetRoomType(c *gin.Context) {
	roomTypeID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	rt, err := ctl.Rooms.GetRoomType(c.Request.Context(), middleware.HotelID(c), roomTypeID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, rt)
}

func (ctl *RoomController) CreateRoomType(c *gin.Context) {
	var req dto.CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	rt, err := ctl.Rooms.CreateRoomType(c.Request.Context(), middleware.HotelID(c), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, rt)
}

func (ctl *RoomController) UpdateRoomType(c *gin.Context) {
	roomTypeID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	rt, err := ctl.Rooms.UpdateRoomType(c.Request.Context(), middleware.HotelID(c), roomTypeID, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, rt)
}

func (ctl *RoomController) DeleteRoomType(c *gin.Context) {
	roomTypeID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	if err := ctl.Rooms.DeleteRoomType(c.Request.Context(), middleware.HotelID(c), roomTypeID); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, nil)
}

func (ctl *RoomController) ListRatePlans(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	plans, err := ctl.Rooms.ListRatePlans(c.Request.Context(), middleware.HotelID(c), activeOnly)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, plans)
}

func (ctl *RoomController) CreateRatePlan(c *gin.Context) {
	var req dto.CreateRatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	plan, err := ctl.Rooms.CreateRatePlan(c.Request.Context(), middleware.HotelID(c), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, plan)
}

func (ctl *RoomController) UpdateRatePlan(c *gin.Context) {
	planID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateRatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	plan, err := ctl.Rooms.UpdateRatePlan(c.Request.Context(), middleware.HotelID(c), planID, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, plan)
}

func (ctl *RoomController) DeleteRatePlan(c *gin.Context) {
	planID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	if err := ctl.Rooms.DeleteRatePlan(c.Request.Context(), middleware.HotelID(c), planID); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, nil)
}
