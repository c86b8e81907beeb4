package jobs

import (
	"context"
	"time"

	"innpilot/services"
	"innpilot/services/logger"

	"github.com/robfig/cron/v3"
)

// InitCronJobs registers the daily maintenance jobs and starts the scheduler.
func InitCronJobs(c *cron.Cron, promos *services.PromoService,
	competitors *services.CompetitorService, log logger.Logger) error {
	// promo windows close at midnight
	_, err := c.AddFunc("5 0 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		deactivated, err := promos.DeactivateExpired(ctx, time.Now())
		if err != nil {
			log.Error("failed to deactivate expired promos: %v", err)
			return
		}
		if deactivated > 0 {
			log.Info("deactivated %d expired promo code(s)", deactivated)
		}
	})
	if err != nil {
		return err
	}

	// warm the comparison cache before the morning dashboard traffic
	_, err = c.AddFunc("30 5 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
		defer cancel()

		if err := competitors.RefreshComparisonCache(ctx); err != nil {
			log.Error("failed to refresh competitor comparison cache: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Info("cron jobs initialized")
	return nil
}
