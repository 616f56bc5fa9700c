// Package pipeline holds the valuation and search rules of the mandate
// pipeline. Everything here is a pure function of a lead snapshot.
package pipeline

import (
	"fmt"

	"github.com/xavierca1/nexus-prive/internal/entity"
)

// CommissionRate is the advisory fee charged on settled value.
const CommissionRate = 0.02

var weights = map[entity.MandateLevel]float64{
	entity.Prospect:      0.10,
	entity.Qualified:     0.30,
	entity.SiteVisit:     0.50,
	entity.Negotiation:   0.75,
	entity.UnderContract: 0.90,
	entity.Closed:        1.00,
}

// Weight is the deal probability of a stage; unknown stages weigh 0.
func Weight(level entity.MandateLevel) float64 {
	return weights[level]
}

type Ledger struct {
	ActiveCount             int     `json:"activeCount"`
	ClosedCount             int     `json:"closedCount"`
	TotalOpportunityValue   int64   `json:"totalOpportunityValue"`
	WeightedPipelineRevenue float64 `json:"weightedPipelineRevenue"`
	TotalSettledValue       int64   `json:"totalSettledValue"`
	TotalCommission         float64 `json:"totalCommission"`
}

func Summarize(leads []entity.Lead) Ledger {
	var l Ledger
	for _, lead := range leads {
		if lead.IsClosed() {
			l.ClosedCount++
			l.TotalSettledValue += lead.EstimatedValue
			continue
		}
		l.ActiveCount++
		l.TotalOpportunityValue += lead.EstimatedValue
		l.WeightedPipelineRevenue += float64(lead.EstimatedValue) * Weight(lead.Status)
	}
	l.TotalCommission = float64(l.TotalSettledValue) * CommissionRate
	return l
}

type FunnelStage struct {
	Level            entity.MandateLevel `json:"level"`
	Count            int                 `json:"count"`
	WeightedValue    float64             `json:"weightedValue"`
	Probability      float64             `json:"probability"`
	ProbabilityLabel string              `json:"probabilityLabel"`
}

// Funnel breaks the active pipeline down by stage, in pipeline order.
func Funnel(leads []entity.Lead) []FunnelStage {
	levels := entity.ActiveLevels()
	index := make(map[entity.MandateLevel]int, len(levels))
	stages := make([]FunnelStage, len(levels))
	for i, lvl := range levels {
		index[lvl] = i
		p := Weight(lvl) * 100
		stages[i] = FunnelStage{
			Level:            lvl,
			Probability:      p,
			ProbabilityLabel: fmt.Sprintf("%.0f%%", p),
		}
	}

	for _, lead := range leads {
		i, ok := index[lead.Status]
		if !ok {
			continue
		}
		stages[i].Count++
		stages[i].WeightedValue += float64(lead.EstimatedValue) * Weight(lead.Status)
	}

	return stages
}
