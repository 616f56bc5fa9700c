package entity

import "time"

// FixtureLeads is the bootstrap dataset used when a store has no prior
// state. Timestamps are relative to now; everything else is fixed.
func FixtureLeads(now time.Time) []Lead {
	now = now.UTC()
	day := 24 * time.Hour

	return []Lead{
		{
			ID:                "m1",
			FirstName:         "Vikram",
			LastName:          "Malhotra",
			Email:             "v.malhotra@nexus-prive.com",
			Phone:             "+91 98200 12345",
			InvestmentCeiling: "$50M+",
			NetWorthBand:      Band100MPlus,
			ResidencyStatus:   HNI,
			PropertyInterest:  "The Skyline Penthouse",
			Status:            Prospect,
			Timestamp:         now.Add(-day),
			EstimatedValue:    55_000_000,
			Notes:             "Looking for a trophy asset in South Mumbai. Interested in high floor height.",
		},
		{
			ID:                "m2",
			FirstName:         "Sarah",
			LastName:          "Chen",
			Email:             "schen@techventures.sg",
			Phone:             "+65 8822 4411",
			InvestmentCeiling: "$20M - $50M",
			NetWorthBand:      Band50To100M,
			ResidencyStatus:   ForeignNational,
			PropertyInterest:  "Azure Bay Villa",
			Status:            Qualified,
			Timestamp:         now.Add(-2 * day),
			EstimatedValue:    32_000_000,
			Notes:             "Tech founder relocating. Priority on security and privacy.",
		},
		{
			ID:                "m3",
			FirstName:         "Rajesh",
			LastName:          "Gupta",
			Email:             "r.gupta@prive-london.co.uk",
			Phone:             "+44 7700 900123",
			InvestmentCeiling: "$5M - $20M",
			NetWorthBand:      Band10To50M,
			ResidencyStatus:   NRI,
			PropertyInterest:  "Highclere Estate",
			Status:            SiteVisit,
			Timestamp:         now.Add(-3 * day),
			EstimatedValue:    18_000_000,
			Notes:             "Wants to diversify portfolio back to India. Focus on rental yield.",
		},
	}
}
