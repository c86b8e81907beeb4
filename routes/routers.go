package routes

import (
	"innpilot/constants"
	"innpilot/controllers"
	"innpilot/middleware"
	"innpilot/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Controllers bundles everything the router mounts.
type Controllers struct {
	Auth         *controllers.AuthController
	Hotel        *controllers.HotelController
	Room         *controllers.RoomController
	Rate         *controllers.RateController
	Availability *controllers.AvailabilityController
	Booking      *controllers.BookingController
	Promo        *controllers.PromoController
	Competitor   *controllers.CompetitorController
	Report       *controllers.ReportController
	Agent        *controllers.AgentController
	Notification *controllers.NotificationController
	Search       *controllers.SearchController
}

// SetupRoutes mounts the API. Staff endpoints require a token; endpoints that
// change money-bearing state additionally require manager privileges.
func SetupRoutes(router *gin.Engine, tokens *services.TokenService, ctl Controllers) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	v1.Use(middleware.SessionMiddleware())

	// public
	v1.POST("/auth/register", ctl.Auth.Register)
	v1.POST("/auth/login", ctl.Auth.Login)
	v1.POST("/auth/google", ctl.Auth.GoogleLogin)
	v1.GET("/public/hotels/:slug/search", ctl.Search.Search)

	staff := middleware.AuthMiddleware(tokens)
	manager := middleware.AuthMiddleware(tokens, constants.RoleSuperAdmin, constants.RoleManager)

	v1.GET("/profile", staff, ctl.Auth.Profile)

	v1.GET("/hotel", staff, ctl.Hotel.Get)
	v1.PUT("/hotel", manager, ctl.Hotel.Update)

	v1.GET("/room-types", staff, ctl.Room.ListRoomTypes)
	v1.POST("/room-types", manager, ctl.Room.CreateRoomType)
	v1.GET("/room-types/:id", staff, ctl.Room.GetRoomType)
	v1.PUT("/room-types/:id", manager, ctl.Room.UpdateRoomType)
	v1.DELETE("/room-types/:id", manager, ctl.Room.DeleteRoomType)

	v1.GET("/rate-plans", staff, ctl.Room.ListRatePlans)
	v1.POST("/rate-plans", manager, ctl.Room.CreateRatePlan)
	v1.PUT("/rate-plans/:id", manager, ctl.Room.UpdateRatePlan)
	v1.DELETE("/rate-plans/:id", manager, ctl.Room.DeleteRatePlan)

	v1.POST("/rates/range", manager, ctl.Rate.SetRangePrice)
	v1.GET("/room-types/:id/rates", staff, ctl.Rate.ListRanges)
	v1.GET("/room-types/:id/rates/grid", staff, ctl.Rate.DayGrid)

	v1.GET("/availability", staff, ctl.Availability.Grid)
	v1.GET("/room-types/:id/blocks", staff, ctl.Availability.ListBlocks)
	v1.POST("/blocks", manager, ctl.Availability.CreateBlock)
	v1.DELETE("/blocks/:id", manager, ctl.Availability.DeleteBlock)

	v1.POST("/bookings", staff, ctl.Booking.Create)
	v1.GET("/bookings", staff, ctl.Booking.List)
	v1.GET("/bookings/:id", staff, ctl.Booking.Get)
	v1.PUT("/bookings/:id/status", staff, ctl.Booking.ChangeStatus)

	v1.GET("/promos", staff, ctl.Promo.List)
	v1.POST("/promos", manager, ctl.Promo.Create)
	v1.PUT("/promos/:id/status", manager, ctl.Promo.SetActive)
	v1.DELETE("/promos/:id", manager, ctl.Promo.Delete)
	v1.GET("/promos/validate", staff, ctl.Promo.Validate)

	v1.GET("/competitors", staff, ctl.Competitor.List)
	v1.POST("/competitors", manager, ctl.Competitor.Create)
	v1.DELETE("/competitors/:id", manager, ctl.Competitor.Delete)
	v1.POST("/competitors/:id/rates/ingest", manager, ctl.Competitor.IngestRates)
	v1.GET("/competitors/rates/comparison", staff, ctl.Competitor.Comparison)

	v1.GET("/reports/dashboard", staff, ctl.Report.Dashboard)
	v1.GET("/reports/occupancy", staff, ctl.Report.Occupancy)
	v1.GET("/reports/revenue", manager, ctl.Report.Revenue)

	v1.POST("/agent/chat", staff, ctl.Agent.Chat)
	v1.GET("/agent/history", staff, ctl.Agent.History)

	v1.GET("/notifications", staff, ctl.Notification.List)
	v1.PUT("/notifications/:id/read", staff, ctl.Notification.MarkRead)
}
