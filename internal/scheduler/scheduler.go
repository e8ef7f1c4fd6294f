package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/HarounMinhas/product-catalog/internal/config"
	"github.com/HarounMinhas/product-catalog/internal/service/catalog"
)

const probeTimeout = 30 * time.Second

// Scheduler runs the periodic source availability probe. The probe opens each
// configured source, counts its records and releases it again; it never feeds
// the request path.
type Scheduler struct {
	cron       *cron.Cron
	catalogSvc *catalog.Service
	cfg        config.ProbeConfig
	logger     *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.ProbeConfig, catalogSvc *catalog.Service, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:       cron.New(),
		catalogSvc: catalogSvc,
		cfg:        cfg,
		logger:     logger,
	}
}

// Start starts the scheduler. An empty cron schedule leaves the probe off.
func (s *Scheduler) Start() {
	if s.cfg.CronSchedule == "" {
		s.logger.Info("source probe disabled")
		return
	}

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.probeSources); err != nil {
		s.logger.Error("failed to schedule source probe",
			zap.String("schedule", s.cfg.CronSchedule), zap.Error(err))
		return
	}

	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))
	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) probeSources() {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	for _, sourceType := range catalog.SourceTypes() {
		products, err := s.catalogSvc.ListProducts(ctx, sourceType)
		if err != nil {
			s.logger.Warn("source probe failed",
				zap.String("source", sourceType), zap.Error(err))
			continue
		}

		s.logger.Info("source probe ok",
			zap.String("source", sourceType),
			zap.Int("count", len(products)))
	}
}
