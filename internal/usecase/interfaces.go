package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/nexus-prive/internal/entity"
	"github.com/xavierca1/nexus-prive/internal/infra/queue"
	"github.com/xavierca1/nexus-prive/internal/intelligence"
)

type EventPublisher interface {
	PublishMandateEvent(ctx context.Context, event queue.MandateEvent) error
}

type TransitionAuthorizer interface {
	AuthorizeTransition(role entity.Role, from, to entity.MandateLevel) error
}

type Intelligence interface {
	StrategicMemo(ctx context.Context, lead entity.Lead) string
	BespokeOutreach(ctx context.Context, lead entity.Lead) string
	MarketForecast(ctx context.Context, leads []entity.Lead) string
	PropertyAdvice(ctx context.Context, query string) string
	AnalyzeProfile(ctx context.Context, profile string) (*intelligence.InvestmentProfile, error)
	Dossier(ctx context.Context, lead entity.Lead) intelligence.Dossier
}

// Recorder receives business counters.
type Recorder interface {
	LeadCaptured()
	StatusTransition(result string)
}

type Clock func() time.Time

type nopRecorder struct{}

func (nopRecorder) LeadCaptured()           {}
func (nopRecorder) StatusTransition(string) {}

type nopPublisher struct{}

func (nopPublisher) PublishMandateEvent(context.Context, queue.MandateEvent) error { return nil }

// findLead scans a repository snapshot for id.
func findLead(ctx context.Context, repo entity.LeadRepository, id string) (*entity.Lead, error) {
	leads, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range leads {
		if leads[i].ID == id {
			return &leads[i], nil
		}
	}
	return nil, entity.ErrLeadNotFound
}
