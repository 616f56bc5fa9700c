package worker

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/xavierca1/nexus-prive/internal/entity"
	"github.com/xavierca1/nexus-prive/internal/pipeline"
)

var (
	mandatesGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pipeline_mandates",
			Help: "Mandates in the pipeline by state",
		},
		[]string{"state"},
	)

	valueGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pipeline_value_usd",
			Help: "Pipeline valuation in USD by measure",
		},
		[]string{"measure"},
	)
)

// LedgerSnapshotWorker republishes the settlement ledger as gauges.
type LedgerSnapshotWorker struct {
	repo         entity.LeadRepository
	logger       *zap.Logger
	tickInterval time.Duration
}

func NewLedgerSnapshotWorker(repo entity.LeadRepository, interval time.Duration, logger *zap.Logger) *LedgerSnapshotWorker {
	if logger == nil {
		logger = zap.NewNop()
	}
	if interval <= 0 {
		interval = time.Minute
	}
	return &LedgerSnapshotWorker{
		repo:         repo,
		logger:       logger,
		tickInterval: interval,
	}
}

// Start blocks until ctx is done.
func (w *LedgerSnapshotWorker) Start(ctx context.Context) {
	w.logger.Info("ledger snapshot worker started", zap.Duration("interval", w.tickInterval))

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.Snapshot(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("ledger snapshot worker stopped")
			return
		case <-ticker.C:
			w.Snapshot(ctx)
		}
	}
}

// Snapshot reads the store once and updates the gauges.
func (w *LedgerSnapshotWorker) Snapshot(ctx context.Context) (pipeline.Ledger, error) {
	leads, err := w.repo.List(ctx)
	if err != nil {
		w.logger.Warn("ledger snapshot skipped", zap.Error(err))
		return pipeline.Ledger{}, err
	}

	l := pipeline.Summarize(leads)

	mandatesGauge.WithLabelValues("active").Set(float64(l.ActiveCount))
	mandatesGauge.WithLabelValues("closed").Set(float64(l.ClosedCount))
	valueGauge.WithLabelValues("opportunity").Set(float64(l.TotalOpportunityValue))
	valueGauge.WithLabelValues("weighted").Set(l.WeightedPipelineRevenue)
	valueGauge.WithLabelValues("settled").Set(float64(l.TotalSettledValue))
	valueGauge.WithLabelValues("commission").Set(l.TotalCommission)

	w.logger.Debug("ledger snapshot",
		zap.Int("active", l.ActiveCount),
		zap.Int("closed", l.ClosedCount),
		zap.Float64("weighted_revenue", l.WeightedPipelineRevenue),
	)
	return l, nil
}
