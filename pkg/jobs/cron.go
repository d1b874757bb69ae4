package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/sitewerk/sitewerk/ent"
	"github.com/sitewerk/sitewerk/ent/prospect"
	"github.com/sitewerk/sitewerk/ent/website"
	"github.com/sitewerk/sitewerk/pkg/metrics"
	"github.com/sitewerk/sitewerk/pkg/websites"
)

// CronManager manages scheduled jobs
type CronManager struct {
	cron     *cron.Cron
	db       *ent.Client
	websites *websites.Service
	metrics  *metrics.Metrics
	logger   *log.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(db *ent.Client, ws *websites.Service, m *metrics.Metrics, logger *log.Logger) *CronManager {
	if logger == nil {
		logger = log.Default()
	}

	return &CronManager{
		cron:     cron.New(),
		db:       db,
		websites: ws,
		metrics:  m,
		logger:   logger,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	cm.logger.Println("Setting up cron jobs...")

	// Hourly: take previews past their 30-day expiry offline
	_, err := cm.cron.AddFunc("0 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		n, err := cm.websites.DeactivateExpiredPreviews(ctx)
		if err != nil {
			cm.logger.Printf("❌ Failed to expire previews: %v", err)
			return
		}
		if n > 0 {
			cm.logger.Printf("✅ Deactivated %d expired previews", n)
			if cm.metrics != nil {
				cm.metrics.RecordPreviewsExpired(n)
			}
		}
	})
	if err != nil {
		return err
	}

	// Daily at 7 AM: log pipeline statistics for the sales team standup
	_, err = cm.cron.AddFunc("0 7 * * *", func() {
		cm.logger.Println("🕐 Logging pipeline statistics...")

		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()

		stats, err := cm.pipelineStats(ctx)
		if err != nil {
			cm.logger.Printf("❌ Failed to get pipeline stats: %v", err)
			return
		}

		cm.logger.Printf("📊 Pipeline Statistics:")
		cm.logger.Printf("  Prospects new: %v, generated: %v, contacted: %v, converted: %v",
			stats["prospects_new"], stats["prospects_generated"],
			stats["prospects_contacted"], stats["prospects_converted"])
		cm.logger.Printf("  Websites preview: %v, sold: %v, active: %v",
			stats["websites_preview"], stats["websites_sold"], stats["websites_active"])
	})
	if err != nil {
		return err
	}

	cm.logger.Println("✅ Cron jobs configured successfully")
	cm.logger.Println("  - Hourly: Deactivate expired previews")
	cm.logger.Println("  - Daily at 7 AM: Log pipeline statistics")

	return nil
}

func (cm *CronManager) pipelineStats(ctx context.Context) (map[string]int, error) {
	stats := make(map[string]int)

	prospectCounts := []struct {
		key    string
		status prospect.Status
	}{
		{"prospects_new", prospect.StatusNew},
		{"prospects_generated", prospect.StatusGenerated},
		{"prospects_contacted", prospect.StatusContacted},
		{"prospects_converted", prospect.StatusConverted},
	}
	for _, pc := range prospectCounts {
		n, err := cm.db.Prospect.Query().Where(prospect.StatusEQ(pc.status)).Count(ctx)
		if err != nil {
			return nil, err
		}
		stats[pc.key] = n
	}

	websiteCounts := []struct {
		key    string
		status website.Status
	}{
		{"websites_preview", website.StatusPreview},
		{"websites_sold", website.StatusSold},
		{"websites_active", website.StatusActive},
	}
	for _, wc := range websiteCounts {
		n, err := cm.db.Website.Query().Where(website.StatusEQ(wc.status)).Count(ctx)
		if err != nil {
			return nil, err
		}
		stats[wc.key] = n
	}

	return stats, nil
}

// Start starts the cron scheduler
func (cm *CronManager) Start() {
	cm.logger.Println("🚀 Starting cron scheduler...")
	cm.cron.Start()
}

// Stop stops the cron scheduler
func (cm *CronManager) Stop() {
	cm.logger.Println("🛑 Stopping cron scheduler...")
	cm.cron.Stop()
}
