package usecase

import (
	"context"

	"github.com/xavierca1/nexus-prive/internal/entity"
	"github.com/xavierca1/nexus-prive/internal/intelligence"
)

// IntelligenceUseCase resolves leads and hands them to the gateway. It
// only reads from the store.
type IntelligenceUseCase struct {
	Repo    entity.LeadRepository
	Gateway Intelligence
}

func NewIntelligenceUseCase(repo entity.LeadRepository, gateway Intelligence) *IntelligenceUseCase {
	return &IntelligenceUseCase{Repo: repo, Gateway: gateway}
}

func (uc *IntelligenceUseCase) Memo(ctx context.Context, leadID string) (string, error) {
	lead, err := findLead(ctx, uc.Repo, leadID)
	if err != nil {
		return "", classify(err)
	}
	return uc.Gateway.StrategicMemo(ctx, *lead), nil
}

func (uc *IntelligenceUseCase) Outreach(ctx context.Context, leadID string) (string, error) {
	lead, err := findLead(ctx, uc.Repo, leadID)
	if err != nil {
		return "", classify(err)
	}
	return uc.Gateway.BespokeOutreach(ctx, *lead), nil
}

func (uc *IntelligenceUseCase) Dossier(ctx context.Context, leadID string) (*intelligence.Dossier, error) {
	lead, err := findLead(ctx, uc.Repo, leadID)
	if err != nil {
		return nil, classify(err)
	}
	d := uc.Gateway.Dossier(ctx, *lead)
	return &d, nil
}

// Forecast reads the whole pipeline, closed mandates included.
func (uc *IntelligenceUseCase) Forecast(ctx context.Context) (string, error) {
	leads, err := uc.Repo.List(ctx)
	if err != nil {
		return "", classify(err)
	}
	return uc.Gateway.MarketForecast(ctx, leads), nil
}

func (uc *IntelligenceUseCase) Advice(ctx context.Context, query string) string {
	return uc.Gateway.PropertyAdvice(ctx, query)
}

func (uc *IntelligenceUseCase) Profile(ctx context.Context, profile string) (*intelligence.InvestmentProfile, error) {
	p, err := uc.Gateway.AnalyzeProfile(ctx, profile)
	if err != nil {
		return nil, &TechnicalError{Code: CodeGenerationFailed, Message: "investment profile analysis unavailable", Err: err}
	}
	return p, nil
}
