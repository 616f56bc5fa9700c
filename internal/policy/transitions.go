package policy

import "github.com/xavierca1/nexus-prive/internal/entity"

// TransitionGraph decides which stage changes exist at all, independent of
// who is asking.
type TransitionGraph interface {
	Allows(from, to entity.MandateLevel) bool
}

type table map[entity.MandateLevel]map[entity.MandateLevel]bool

func (t table) Allows(from, to entity.MandateLevel) bool {
	if from == to {
		return true
	}
	return t[from][to]
}

// Permissive lets any open mandate jump to any stage. Closed is terminal.
func Permissive() TransitionGraph {
	t := table{}
	for _, from := range entity.ActiveLevels() {
		t[from] = map[entity.MandateLevel]bool{}
		for _, to := range entity.AllLevels() {
			t[from][to] = true
		}
	}
	return t
}

// Strict only lets a mandate move forward, one or more stages at a time.
func Strict() TransitionGraph {
	t := table{}
	levels := entity.AllLevels()
	for i, from := range levels[:len(levels)-1] {
		t[from] = map[entity.MandateLevel]bool{}
		for _, to := range levels[i+1:] {
			t[from][to] = true
		}
	}
	return t
}
