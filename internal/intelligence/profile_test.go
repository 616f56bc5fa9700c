package intelligence_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/nexus-prive/internal/intelligence"
)

func TestAnalyzeProfile(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("Generate", mock.Anything, mock.MatchedBy(func(req intelligence.Request) bool {
		return req.Schema != nil &&
			req.Schema.Type == intelligence.TypeObject &&
			len(req.Schema.Required) == 4 &&
			req.Schema.Properties["recommendedLocations"].Items.Type == intelligence.TypeString
	})).Return(`{"riskProfile":"Moderate","recommendedLocations":["Worli","Dubai Marina"],"expectedYield":"6-8%","strategy":"Core plus"}`, nil)

	gw := intelligence.NewGateway(gen)
	p, err := gw.AnalyzeProfile(context.Background(), "NRI, $20M, yield focus")

	require.NoError(t, err)
	assert.Equal(t, "Moderate", p.RiskProfile)
	assert.Equal(t, []string{"Worli", "Dubai Marina"}, p.RecommendedLocations)
	assert.Equal(t, "6-8%", p.ExpectedYield)
	assert.Equal(t, "Core plus", p.Strategy)
	gen.AssertExpectations(t)
}

func TestAnalyzeProfilePromptEmbedsProfile(t *testing.T) {
	req := intelligence.ProfilePrompt("HNI, trophy assets")
	assert.Equal(t,
		"Analyze this investor profile and recommend a portfolio strategy for Nexus Prive: HNI, trophy assets",
		req.Prompt)
}

func TestProfilePromptsDoNotShareSchema(t *testing.T) {
	first := intelligence.ProfilePrompt("a")
	first.Schema.Required = nil
	first.Schema.Properties["strategy"].Type = intelligence.TypeArray

	second := intelligence.ProfilePrompt("b")
	assert.Len(t, second.Schema.Required, 4)
	assert.Equal(t, intelligence.TypeString, second.Schema.Properties["strategy"].Type)
}

func TestAnalyzeProfileMalformedDocument(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("Generate", mock.Anything, mock.Anything).Return("not json", nil)

	_, err := intelligence.NewGateway(gen).AnalyzeProfile(context.Background(), "x")

	var genErr *intelligence.GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, intelligence.OpProfile, genErr.Op)
}

func TestAnalyzeProfilePropagatesFailure(t *testing.T) {
	boom := errors.New("network down")
	_, err := intelligence.NewGateway(failingGenerator{err: boom}).AnalyzeProfile(context.Background(), "x")
	assert.ErrorIs(t, err, boom)
}
