// Package policy is the single place desk roles are mapped to console views
// and status changes are authorized.
package policy

import (
	"fmt"

	"github.com/xavierca1/nexus-prive/internal/entity"
)

type grant struct {
	views   []entity.View
	landing entity.View
}

var grants = map[entity.Role]grant{
	entity.Principal: {
		views:   []entity.View{entity.ViewLedger, entity.ViewFunnel, entity.ViewRegistry},
		landing: entity.ViewLedger,
	},
	entity.AssetManager: {
		views:   []entity.View{entity.ViewFunnel, entity.ViewRegistry, entity.ViewIntelligence},
		landing: entity.ViewFunnel,
	},
	entity.WealthAdvisor: {
		views:   []entity.View{entity.ViewRegistry, entity.ViewIntelligence},
		landing: entity.ViewRegistry,
	},
}

// settlement lists the stages only a role with settlement authority may set.
var settlement = map[entity.Role]map[entity.MandateLevel]bool{
	entity.WealthAdvisor: {
		entity.UnderContract: true,
		entity.Closed:        true,
	},
}

// Views returns the views a role may open, in sidebar order.
func Views(role entity.Role) []entity.View {
	g, ok := grants[role]
	if !ok {
		return nil
	}
	out := make([]entity.View, len(g.views))
	copy(out, g.views)
	return out
}

func DefaultView(role entity.Role) entity.View {
	return grants[role].landing
}

func CanView(role entity.Role, view entity.View) bool {
	for _, v := range grants[role].views {
		if v == view {
			return true
		}
	}
	return false
}

// Policy authorizes status changes against the role table and a
// transition graph.
type Policy struct {
	graph TransitionGraph
}

func New(graph TransitionGraph) *Policy {
	if graph == nil {
		graph = Permissive()
	}
	return &Policy{graph: graph}
}

// AuthorizeTransition must pass before any status is written.
func (p *Policy) AuthorizeTransition(role entity.Role, from, to entity.MandateLevel) error {
	if !role.Valid() {
		return fmt.Errorf("%w: %q", entity.ErrInvalidRole, role)
	}
	if !to.Valid() {
		return fmt.Errorf("%w: %q", entity.ErrInvalidStatus, to)
	}
	if settlement[role][to] {
		return entity.ErrUnauthorized
	}
	if !p.graph.Allows(from, to) {
		return fmt.Errorf("%w: %s -> %s", entity.ErrTransitionNotAllowed, from, to)
	}
	return nil
}
