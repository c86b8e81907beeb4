package main

import (
	"context"
	"log"

	"innpilot/config"
	"innpilot/controllers"
	"innpilot/jobs"
	"innpilot/models"
	"innpilot/routes"
	"innpilot/services"
	"innpilot/services/logger"

	"github.com/joho/godotenv"
	"github.com/olahol/melody"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, using environment as-is: %v", err)
	}
	cfg := config.Load()

	appLog := logger.NewDefaultLogger(logger.InfoLevel)

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Hotel{}, &models.User{}, &models.RoomType{}, &models.RatePlan{},
		&models.RoomRate{}, &models.RoomBlock{}, &models.Booking{}, &models.PromoCode{},
		&models.Competitor{}, &models.CompetitorRate{}, &models.Notification{}, &models.ChatMessage{},
	); err != nil {
		log.Fatalf("failed to migrate tables: %v", err)
	}

	rdb, err := config.ConnectRedis(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}

	m := melody.New()

	tokens := services.NewTokenService(cfg)
	auth := services.NewAuthService(db, tokens, appLog, cfg.GoogleClientID)
	rates := services.NewRateService(db, appLog)
	availability := services.NewAvailabilityService(db, rdb, appLog, cfg.CacheTTL)
	promos := services.NewPromoService(db, appLog)
	notifications := services.NewNotificationService(db, m, appLog)
	bookings := services.NewBookingService(db, rates, availability, promos, notifications, appLog)
	pricing := services.NewPricingService(db, rates, availability, promos, appLog)
	hotels := services.NewHotelService(db, appLog)
	rooms := services.NewRoomService(db, rates, availability, appLog)
	reports := services.NewReportService(db, rdb, availability, bookings, appLog, cfg.CacheTTL)
	competitors := services.NewCompetitorService(db, rdb, rates, appLog, cfg.CacheTTL)
	agent := services.NewAgentService(cfg, bookings, rates, availability, promos, reports, notifications, appLog)

	router := config.InitRouter()
	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, tokens, routes.Controllers{
		Auth:         controllers.NewAuthController(db, auth),
		Hotel:        controllers.NewHotelController(hotels),
		Room:         controllers.NewRoomController(rooms),
		Rate:         controllers.NewRateController(rates, rooms),
		Availability: controllers.NewAvailabilityController(availability),
		Booking:      controllers.NewBookingController(bookings),
		Promo:        controllers.NewPromoController(promos),
		Competitor:   controllers.NewCompetitorController(competitors),
		Report:       controllers.NewReportController(reports),
		Agent:        controllers.NewAgentController(agent, notifications),
		Notification: controllers.NewNotificationController(notifications),
		Search:       controllers.NewSearchController(hotels, pricing),
	})

	c := config.NewCron()
	if err := jobs.InitCronJobs(c, promos, competitors, appLog); err != nil {
		log.Fatalf("failed to initialize cron jobs: %v", err)
	}

	appLog.Info("server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
