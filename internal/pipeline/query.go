package pipeline

import (
	"fmt"
	"strings"

	"github.com/xavierca1/nexus-prive/internal/entity"
)

// ResidencyFilter narrows the registry. Only HNI and NRI are selectable;
// Foreign National leads show up under ResidencyAll alone.
type ResidencyFilter string

const (
	ResidencyAll ResidencyFilter = "ALL"
	ResidencyHNI ResidencyFilter = ResidencyFilter(entity.HNI)
	ResidencyNRI ResidencyFilter = ResidencyFilter(entity.NRI)
)

func ParseResidencyFilter(s string) (ResidencyFilter, error) {
	switch f := ResidencyFilter(s); f {
	case "":
		return ResidencyAll, nil
	case ResidencyAll, ResidencyHNI, ResidencyNRI:
		return f, nil
	}
	return "", fmt.Errorf("unsupported residency filter %q", s)
}

type Filter struct {
	Name      string
	Residency ResidencyFilter
	// Scope is the console view being listed. The ledger lists settled
	// mandates, every other view lists the active ones.
	Scope entity.View
}

// Search returns the leads matching f in their original order.
func Search(leads []entity.Lead, f Filter) []entity.Lead {
	needle := strings.ToLower(f.Name)
	out := make([]entity.Lead, 0, len(leads))

	for _, l := range leads {
		if !strings.Contains(strings.ToLower(l.FullName()), needle) {
			continue
		}
		if f.Residency != "" && f.Residency != ResidencyAll && ResidencyFilter(l.ResidencyStatus) != f.Residency {
			continue
		}
		if (f.Scope == entity.ViewLedger) != l.IsClosed() {
			continue
		}
		out = append(out, l)
	}

	return out
}
