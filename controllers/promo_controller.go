package controllers

import (
	"strings"
	"time"

	"innpilot/constants"
	"innpilot/middleware"
	"innpilot/models"
	"innpilot/response"
	"innpilot/services"
	"innpilot/validator"

	"github.com/gin-gonic/gin"
)

type PromoController struct {
	Promos *services.PromoService
}

func NewPromoController(promos *services.PromoService) *PromoController {
	return &PromoController{Promos: promos}
}

func (ctl *PromoController) List(c *gin.Context) {
	promos, err := ctl.Promos.List(c.Request.Context(), middleware.HotelID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, promos)
}

type createPromoRequest struct {
	Code          string  `json:"code" binding:"required"`
	Description   string  `json:"description"`
	DiscountType  string  `json:"discountType"`
	DiscountValue float64 `json:"discountValue" binding:"required"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	MaxUsage      *int    `json:"maxUsage"`
}

func (ctl *PromoController) Create(c *gin.Context) {
	var req createPromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	promo := models.PromoCode{
		HotelID:       middleware.HotelID(c),
		Code:          req.Code,
		Description:   req.Description,
		DiscountType:  req.DiscountType,
		DiscountValue: req.DiscountValue,
		MaxUsage:      req.MaxUsage,
		IsActive:      true,
	}
	if promo.DiscountType == "" {
		promo.DiscountType = constants.DiscountTypePercentage
	}
	if req.StartDate != "" {
		start, err := validator.ParseDate("startDate", req.StartDate)
		if err != nil {
			handleError(c, err)
			return
		}
		promo.StartDate = &start
	}
	if req.EndDate != "" {
		end, err := validator.ParseDate("endDate", req.EndDate)
		if err != nil {
			handleError(c, err)
			return
		}
		promo.EndDate = &end
	}

	if err := ctl.Promos.Create(c.Request.Context(), &promo); err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, promo)
}

func (ctl *PromoController) SetActive(c *gin.Context) {
	promoID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	var req struct {
		IsActive bool `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := ctl.Promos.SetActive(c.Request.Context(), middleware.HotelID(c), promoID, req.IsActive); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, nil)
}

func (ctl *PromoController) Delete(c *gin.Context) {
	promoID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	if err := ctl.Promos.Delete(c.Request.Context(), middleware.HotelID(c), promoID); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, nil)
}

// Validate reports whether a code is currently applicable and what it would
// save on a given total. A miss is a normal answer, not an error.
func (ctl *PromoController) Validate(c *gin.Context) {
	code := strings.TrimSpace(c.Query("code"))
	if code == "" {
		response.BadRequest(c, "code is required")
		return
	}

	promo, err := ctl.Promos.FindValid(c.Request.Context(), middleware.HotelID(c), code, time.Now())
	if err != nil {
		handleError(c, err)
		return
	}
	if promo == nil {
		response.Success(c, gin.H{"valid": false})
		return
	}

	result := gin.H{"valid": true, "promo": promo}
	if total := queryInt(c, "total", 0); total > 0 {
		discount, savings := ctl.Promos.Apply(promo, float64(total))
		result["discount"] = discount
		result["savingsText"] = savings
	}
	response.Success(c, result)
}
