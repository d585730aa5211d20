package worker

// report_cron.go
// Background goroutine that emails a daily sales summary to the shop's
// address once per day, when the dailyReportEmail setting is enabled.
// A redis SETNX key dedupes the send across restarts and replicas.

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/harsh12garg/Kirana-billing-software/internal/repository"
)

const (
	reportTickInterval = 10 * time.Minute
	reportSentKeyTTL   = 48 * time.Hour
)

// ReportCronConfig holds all dependencies for the report goroutine.
type ReportCronConfig struct {
	SettingsRepo repository.SettingsRepository
	BillRepo     repository.BillRepository
	Dispatcher   *Dispatcher
	RDB          *redis.Client
}

// StartReportCron launches a background goroutine that ticks every 10 minutes
// and, shortly after midnight, emails the previous day's sales total.
// It respects the context for graceful shutdown.
func StartReportCron(ctx context.Context, cfg ReportCronConfig) {
	go func() {
		ticker := time.NewTicker(reportTickInterval)
		defer ticker.Stop()

		log.Info().Msg("report_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("report_cron: shutting down")
				return
			case <-ticker.C:
				processDailyReport(ctx, cfg)
			}
		}
	}()
}

func processDailyReport(ctx context.Context, cfg ReportCronConfig) {
	settings, err := cfg.SettingsRepo.Get(ctx)
	if err != nil {
		// No settings row yet — nothing is configured, nothing to send
		return
	}
	if !settings.DailyReportEmail || settings.Email == nil || *settings.Email == "" {
		return
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterday := midnight.AddDate(0, 0, -1)

	// Dedupe: only the first replica to claim the key sends the report.
	key := "report:sent:" + yesterday.Format("2006-01-02")
	claimed, err := cfg.RDB.SetNX(ctx, key, "1", reportSentKeyTTL).Result()
	if err != nil || !claimed {
		return
	}

	total, err := cfg.BillRepo.SumFinalAmountBetween(ctx, yesterday, midnight)
	if err != nil {
		log.Error().Err(err).Msg("report_cron: failed to sum sales")
		// Release the claim so the next tick retries
		cfg.RDB.Del(ctx, key)
		return
	}

	payload := EmailJobPayload{
		ToEmail: *settings.Email,
		Subject: fmt.Sprintf("%s — Daily sales report %s", settings.ShopName, yesterday.Format("02/01/2006")),
		Body:    BuildDailyReportBody(settings.ShopName, settings.Currency, yesterday, total),
	}
	if err := cfg.Dispatcher.EnqueueEmail(ctx, payload); err != nil {
		log.Error().Err(err).Msg("report_cron: failed to enqueue report email")
		cfg.RDB.Del(ctx, key)
		return
	}

	log.Info().Str("date", yesterday.Format("2006-01-02")).Msg("report_cron: daily report enqueued")
}

// BuildDailyReportBody renders the plain-text report email.
func BuildDailyReportBody(shopName, currency string, date time.Time, total decimal.Decimal) string {
	return fmt.Sprintf(
		"Daily sales report for %s\n\nDate: %s\nTotal sales: %s%s\n\n— %s",
		shopName,
		date.Format("02/01/2006"),
		currency,
		total.StringFixed(2),
		shopName,
	)
}
