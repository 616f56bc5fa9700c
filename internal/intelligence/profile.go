package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
)

// Schema is the subset of JSON schema the generator needs for structured
// output.
type Schema struct {
	Type       string             `json:"type"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Items      *Schema            `json:"items,omitempty"`
	Required   []string           `json:"required,omitempty"`
}

const (
	TypeObject = "object"
	TypeArray  = "array"
	TypeString = "string"
)

// ProfileSchema returns a new copy of the investment profile document shape
// on every call.
func ProfileSchema() *Schema {
	return &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"riskProfile":          {Type: TypeString},
			"recommendedLocations": {Type: TypeArray, Items: &Schema{Type: TypeString}},
			"expectedYield":        {Type: TypeString},
			"strategy":             {Type: TypeString},
		},
		Required: []string{"riskProfile", "recommendedLocations", "expectedYield", "strategy"},
	}
}

type InvestmentProfile struct {
	RiskProfile          string   `json:"riskProfile"`
	RecommendedLocations []string `json:"recommendedLocations"`
	ExpectedYield        string   `json:"expectedYield"`
	Strategy             string   `json:"strategy"`
}

// AnalyzeProfile has no prose fallback, so unlike the desk operations it
// reports failures to the caller.
func (g *Gateway) AnalyzeProfile(ctx context.Context, profile string) (*InvestmentProfile, error) {
	text, err := g.generate(ctx, OpProfile, ProfilePrompt(profile))
	if err != nil {
		return nil, err
	}

	var out InvestmentProfile
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, &GenerationError{Op: OpProfile, Err: fmt.Errorf("malformed profile document: %w", err)}
	}
	if out.RecommendedLocations == nil {
		out.RecommendedLocations = []string{}
	}

	return &out, nil
}
