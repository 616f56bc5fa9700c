package pipeline_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/nexus-prive/internal/entity"
	"github.com/xavierca1/nexus-prive/internal/pipeline"
)

func ids(leads []entity.Lead) []string {
	out := make([]string, 0, len(leads))
	for _, l := range leads {
		out = append(out, l.ID)
	}
	return out
}

func registry() []entity.Lead {
	leads := entity.FixtureLeads(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
	return append(leads,
		entity.Lead{ID: "m4", FirstName: "Meera", LastName: "Kapoor", ResidencyStatus: entity.NRI, Status: entity.Closed, EstimatedValue: 12_000_000},
		entity.Lead{ID: "m5", FirstName: "Lars", LastName: "Berg", ResidencyStatus: entity.ForeignNational, Status: entity.Closed, EstimatedValue: 7_000_000},
	)
}

func TestSearchByName(t *testing.T) {
	got := pipeline.Search(registry(), pipeline.Filter{Name: "SARAH ch", Scope: entity.ViewRegistry})
	assert.Equal(t, []string{"m2"}, ids(got))

	got = pipeline.Search(registry(), pipeline.Filter{Name: "a", Scope: entity.ViewRegistry})
	if diff := cmp.Diff([]string{"m1", "m2", "m3"}, ids(got)); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchNameSpansFirstAndLast(t *testing.T) {
	got := pipeline.Search(registry(), pipeline.Filter{Name: "vikram malh", Scope: entity.ViewRegistry})
	assert.Equal(t, []string{"m1"}, ids(got))
}

func TestSearchResidencyExcludesForeignNationals(t *testing.T) {
	leads := registry()

	hni := pipeline.Search(leads, pipeline.Filter{Residency: pipeline.ResidencyHNI, Scope: entity.ViewRegistry})
	nri := pipeline.Search(leads, pipeline.Filter{Residency: pipeline.ResidencyNRI, Scope: entity.ViewRegistry})
	all := pipeline.Search(leads, pipeline.Filter{Residency: pipeline.ResidencyAll, Scope: entity.ViewRegistry})

	assert.NotContains(t, ids(hni), "m2")
	assert.NotContains(t, ids(nri), "m2")
	assert.Contains(t, ids(all), "m2")
	assert.Equal(t, []string{"m1"}, ids(hni))
	assert.Equal(t, []string{"m3"}, ids(nri))
}

func TestSearchScopePartitionsClosed(t *testing.T) {
	leads := registry()

	for _, scope := range []entity.View{entity.ViewRegistry, entity.ViewFunnel, entity.ViewIntelligence} {
		got := pipeline.Search(leads, pipeline.Filter{Scope: scope})
		assert.Equal(t, []string{"m1", "m2", "m3"}, ids(got), scope)
	}

	ledger := pipeline.Search(leads, pipeline.Filter{Scope: entity.ViewLedger})
	assert.Equal(t, []string{"m4", "m5"}, ids(ledger))

	ledgerNRI := pipeline.Search(leads, pipeline.Filter{Scope: entity.ViewLedger, Residency: pipeline.ResidencyNRI})
	assert.Equal(t, []string{"m4"}, ids(ledgerNRI))
}

func TestSearchClosedLeadMovesToLedger(t *testing.T) {
	leads := registry()
	leads[0].Status = entity.Closed

	active := pipeline.Search(leads, pipeline.Filter{Scope: entity.ViewRegistry})
	ledger := pipeline.Search(leads, pipeline.Filter{Scope: entity.ViewLedger})

	assert.NotContains(t, ids(active), "m1")
	assert.Contains(t, ids(ledger), "m1")
}

func TestParseResidencyFilter(t *testing.T) {
	f, err := pipeline.ParseResidencyFilter("")
	require.NoError(t, err)
	assert.Equal(t, pipeline.ResidencyAll, f)

	f, err = pipeline.ParseResidencyFilter("NRI")
	require.NoError(t, err)
	assert.Equal(t, pipeline.ResidencyNRI, f)

	_, err = pipeline.ParseResidencyFilter("Foreign National")
	assert.Error(t, err)
}
