package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/nexus-prive/internal/entity"
	"github.com/xavierca1/nexus-prive/internal/intelligence"
	"github.com/xavierca1/nexus-prive/internal/usecase"
)

func byID(id string) interface{} {
	return mock.MatchedBy(func(l entity.Lead) bool { return l.ID == id })
}

func TestMemoResolvesLead(t *testing.T) {
	gw := new(MockIntelligence)
	gw.On("StrategicMemo", mock.Anything, byID("m2")).Return("memo for Sarah")

	out, err := usecase.NewIntelligenceUseCase(newVault(t), gw).Memo(context.Background(), "m2")

	require.NoError(t, err)
	assert.Equal(t, "memo for Sarah", out)
	gw.AssertExpectations(t)
}

func TestOutreachUnknownLead(t *testing.T) {
	gw := new(MockIntelligence)

	_, err := usecase.NewIntelligenceUseCase(newVault(t), gw).Outreach(context.Background(), "ghost")

	assert.ErrorIs(t, err, entity.ErrLeadNotFound)
	gw.AssertNotCalled(t, "BespokeOutreach", mock.Anything, mock.Anything)
}

func TestForecastUsesWholePipeline(t *testing.T) {
	gw := new(MockIntelligence)
	gw.On("MarketForecast", mock.Anything, mock.MatchedBy(func(l []entity.Lead) bool { return len(l) == 3 })).
		Return(intelligence.ForecastFallback)

	out, err := usecase.NewIntelligenceUseCase(newVault(t), gw).Forecast(context.Background())

	require.NoError(t, err)
	assert.Equal(t, intelligence.ForecastFallback, out)
}

func TestIntelligenceDoesNotWrite(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("List", mock.Anything).Return(entity.FixtureLeads(fixedNow), nil)
	gw := new(MockIntelligence)
	gw.On("Dossier", mock.Anything, byID("m1")).Return(intelligence.Dossier{LeadID: "m1", Memo: "a", Outreach: "b"})

	d, err := usecase.NewIntelligenceUseCase(repo, gw).Dossier(context.Background(), "m1")

	require.NoError(t, err)
	assert.Equal(t, "m1", d.LeadID)
	repo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProfileFailureIsTechnical(t *testing.T) {
	gw := new(MockIntelligence)
	boom := errors.New("quota")
	gw.On("AnalyzeProfile", mock.Anything, "NRI").Return(nil, boom)

	_, err := usecase.NewIntelligenceUseCase(newVault(t), gw).Profile(context.Background(), "NRI")

	var te *usecase.TechnicalError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, usecase.CodeGenerationFailed, te.Code)
	assert.ErrorIs(t, err, boom)
}

func TestAdvicePassesThrough(t *testing.T) {
	gw := new(MockIntelligence)
	gw.On("PropertyAdvice", mock.Anything, "Is Worli a good bet?").Return("Yes.")

	assert.Equal(t, "Yes.", usecase.NewIntelligenceUseCase(nil, gw).Advice(context.Background(), "Is Worli a good bet?"))
}
