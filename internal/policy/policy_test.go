package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/nexus-prive/internal/entity"
	"github.com/xavierca1/nexus-prive/internal/policy"
)

func TestViews(t *testing.T) {
	assert.Equal(t,
		[]entity.View{entity.ViewLedger, entity.ViewFunnel, entity.ViewRegistry},
		policy.Views(entity.Principal))
	assert.Equal(t,
		[]entity.View{entity.ViewFunnel, entity.ViewRegistry, entity.ViewIntelligence},
		policy.Views(entity.AssetManager))
	assert.Equal(t,
		[]entity.View{entity.ViewRegistry, entity.ViewIntelligence},
		policy.Views(entity.WealthAdvisor))
	assert.Nil(t, policy.Views("Guest"))
}

func TestViewsReturnsCopy(t *testing.T) {
	v := policy.Views(entity.Principal)
	v[0] = entity.ViewIntelligence
	assert.False(t, policy.CanView(entity.Principal, entity.ViewIntelligence))
}

func TestDefaultView(t *testing.T) {
	assert.Equal(t, entity.ViewLedger, policy.DefaultView(entity.Principal))
	assert.Equal(t, entity.ViewFunnel, policy.DefaultView(entity.AssetManager))
	assert.Equal(t, entity.ViewRegistry, policy.DefaultView(entity.WealthAdvisor))
}

func TestCanView(t *testing.T) {
	assert.True(t, policy.CanView(entity.Principal, entity.ViewLedger))
	assert.False(t, policy.CanView(entity.Principal, entity.ViewIntelligence))
	assert.False(t, policy.CanView(entity.AssetManager, entity.ViewLedger))
	assert.False(t, policy.CanView(entity.WealthAdvisor, entity.ViewFunnel))
	assert.True(t, policy.CanView(entity.WealthAdvisor, entity.ViewIntelligence))
}

func TestWealthAdvisorCannotSetSettlementStatus(t *testing.T) {
	p := policy.New(nil)

	for _, to := range []entity.MandateLevel{entity.Closed, entity.UnderContract} {
		err := p.AuthorizeTransition(entity.WealthAdvisor, entity.Negotiation, to)
		assert.ErrorIs(t, err, entity.ErrUnauthorized, to)

		assert.NoError(t, p.AuthorizeTransition(entity.AssetManager, entity.Negotiation, to))
		assert.NoError(t, p.AuthorizeTransition(entity.Principal, entity.Negotiation, to))
	}

	assert.NoError(t, p.AuthorizeTransition(entity.WealthAdvisor, entity.Prospect, entity.Negotiation))
}

func TestPermissiveAllowsJumps(t *testing.T) {
	p := policy.New(policy.Permissive())

	assert.NoError(t, p.AuthorizeTransition(entity.Principal, entity.Prospect, entity.Closed))
	assert.NoError(t, p.AuthorizeTransition(entity.Principal, entity.UnderContract, entity.Prospect))
	assert.NoError(t, p.AuthorizeTransition(entity.AssetManager, entity.Qualified, entity.Qualified))
}

func TestClosedIsTerminal(t *testing.T) {
	p := policy.New(nil)

	err := p.AuthorizeTransition(entity.Principal, entity.Closed, entity.Negotiation)
	assert.ErrorIs(t, err, entity.ErrTransitionNotAllowed)

	assert.NoError(t, p.AuthorizeTransition(entity.Principal, entity.Closed, entity.Closed))
}

func TestStrictOnlyMovesForward(t *testing.T) {
	p := policy.New(policy.Strict())

	assert.NoError(t, p.AuthorizeTransition(entity.AssetManager, entity.Prospect, entity.SiteVisit))
	assert.ErrorIs(t,
		p.AuthorizeTransition(entity.AssetManager, entity.SiteVisit, entity.Qualified),
		entity.ErrTransitionNotAllowed)
	assert.ErrorIs(t,
		p.AuthorizeTransition(entity.AssetManager, entity.Closed, entity.Prospect),
		entity.ErrTransitionNotAllowed)
}

func TestAuthorizeRejectsUnknownValues(t *testing.T) {
	p := policy.New(nil)

	assert.ErrorIs(t, p.AuthorizeTransition("Intern", entity.Prospect, entity.Qualified), entity.ErrInvalidRole)
	assert.ErrorIs(t, p.AuthorizeTransition(entity.Principal, entity.Prospect, "Won"), entity.ErrInvalidStatus)
}
