package entity

import "fmt"

// MandateLevel is a pipeline stage. Declaration order is the pipeline order.
type MandateLevel string

const (
	Prospect      MandateLevel = "Prospect"
	Qualified     MandateLevel = "Qualified"
	SiteVisit     MandateLevel = "Site Visit"
	Negotiation   MandateLevel = "Negotiation"
	UnderContract MandateLevel = "Under Contract"
	Closed        MandateLevel = "Closed"
)

var allLevels = []MandateLevel{Prospect, Qualified, SiteVisit, Negotiation, UnderContract, Closed}

// AllLevels returns the six stages in pipeline order.
func AllLevels() []MandateLevel {
	out := make([]MandateLevel, len(allLevels))
	copy(out, allLevels)
	return out
}

// ActiveLevels returns every stage except Closed.
func ActiveLevels() []MandateLevel {
	return AllLevels()[:len(allLevels)-1]
}

// Rank is the zero-based pipeline position, -1 for unknown values.
func (m MandateLevel) Rank() int {
	for i, l := range allLevels {
		if l == m {
			return i
		}
	}
	return -1
}

func (m MandateLevel) Valid() bool {
	return m.Rank() >= 0
}

func (m MandateLevel) IsTerminal() bool {
	return m == Closed
}

// IsPast reports whether m lies strictly before current in the pipeline.
func (m MandateLevel) IsPast(current MandateLevel) bool {
	return m.Valid() && current.Rank() > m.Rank()
}

func ParseMandateLevel(s string) (MandateLevel, error) {
	m := MandateLevel(s)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return m, nil
}

type Residency string

const (
	HNI             Residency = "HNI"
	NRI             Residency = "NRI"
	ForeignNational Residency = "Foreign National"
)

func (r Residency) Valid() bool {
	switch r {
	case HNI, NRI, ForeignNational:
		return true
	}
	return false
}

type NetWorthBand string

const (
	Band5To10M   NetWorthBand = "$5M - $10M"
	Band10To50M  NetWorthBand = "$10M - $50M"
	Band50To100M NetWorthBand = "$50M - $100M"
	Band100MPlus NetWorthBand = "$100M+"
)

func (b NetWorthBand) Valid() bool {
	switch b {
	case Band5To10M, Band10To50M, Band50To100M, Band100MPlus:
		return true
	}
	return false
}
