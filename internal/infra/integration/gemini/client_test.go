package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/xavierca1/nexus-prive/internal/entity"
	"github.com/xavierca1/nexus-prive/internal/intelligence"
)

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient(context.Background(), "", "")
	assert.Error(t, err)
}

func TestBuildConfigPlainText(t *testing.T) {
	req := intelligence.MemoPrompt(entity.Lead{FirstName: "A", LastName: "B"})

	cfg := buildConfig(req)

	require.NotNil(t, cfg.SystemInstruction)
	require.Len(t, cfg.SystemInstruction.Parts, 1)
	assert.Equal(t, req.SystemInstruction, cfg.SystemInstruction.Parts[0].Text)
	assert.Empty(t, cfg.ResponseMIMEType)
	assert.Nil(t, cfg.ResponseSchema)
	assert.Nil(t, cfg.Temperature)
}

func TestBuildConfigTemperature(t *testing.T) {
	cfg := buildConfig(intelligence.AdvicePrompt("hi"))

	require.NotNil(t, cfg.Temperature)
	assert.InDelta(t, 0.7, *cfg.Temperature, 1e-6)
}

func TestBuildConfigStructuredProfile(t *testing.T) {
	cfg := buildConfig(intelligence.ProfilePrompt("NRI"))

	assert.Equal(t, "application/json", cfg.ResponseMIMEType)
	require.NotNil(t, cfg.ResponseSchema)
	assert.Equal(t, genai.TypeObject, cfg.ResponseSchema.Type)
	assert.ElementsMatch(t,
		[]string{"riskProfile", "recommendedLocations", "expectedYield", "strategy"},
		cfg.ResponseSchema.Required)

	locations := cfg.ResponseSchema.Properties["recommendedLocations"]
	require.NotNil(t, locations)
	assert.Equal(t, genai.TypeArray, locations.Type)
	assert.Equal(t, genai.TypeString, locations.Items.Type)
	assert.Nil(t, cfg.SystemInstruction)
}
