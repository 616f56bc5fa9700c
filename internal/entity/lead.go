package entity

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultInvestmentCeiling = "$5M"
	DefaultEstimatedValue    = int64(5_000_000)
)

type Lead struct {
	ID                string       `json:"id"`
	FirstName         string       `json:"firstName"`
	LastName          string       `json:"lastName"`
	Email             string       `json:"email"`
	Phone             string       `json:"phone"`
	InvestmentCeiling string       `json:"investmentCeiling"`
	NetWorthBand      NetWorthBand `json:"netWorthBand"`
	PropertyInterest  string       `json:"propertyInterest,omitempty"`
	ResidencyStatus   Residency    `json:"residencyStatus"`
	Message           string       `json:"message,omitempty"`
	Status            MandateLevel `json:"status"`
	Timestamp         time.Time    `json:"timestamp"`
	EstimatedValue    int64        `json:"estimatedValue"`
	Notes             string       `json:"notes,omitempty"`
}

// FullName is the string the registry search matches against.
func (l Lead) FullName() string {
	return l.FirstName + " " + l.LastName
}

func (l Lead) IsClosed() bool {
	return l.Status == Closed
}

// LeadInput carries the enquiry form fields. Anything left empty gets the
// intake default.
type LeadInput struct {
	FirstName         string       `json:"firstName"`
	LastName          string       `json:"lastName"`
	Email             string       `json:"email"`
	Phone             string       `json:"phone"`
	InvestmentCeiling string       `json:"investmentCeiling"`
	NetWorthBand      NetWorthBand `json:"netWorthBand"`
	PropertyInterest  string       `json:"propertyInterest,omitempty"`
	ResidencyStatus   Residency    `json:"residencyStatus"`
	Message           string       `json:"message,omitempty"`
}

// NewLead builds a Prospect from an enquiry. The estimated value is parsed
// from the ceiling as supplied, before the "$5M" label default is applied,
// so an enquiry without a ceiling is valued at DefaultEstimatedValue.
func NewLead(in LeadInput, now time.Time) *Lead {
	lead := &Lead{
		ID:                uuid.New().String(),
		FirstName:         in.FirstName,
		LastName:          in.LastName,
		Email:             in.Email,
		Phone:             in.Phone,
		InvestmentCeiling: in.InvestmentCeiling,
		NetWorthBand:      in.NetWorthBand,
		PropertyInterest:  in.PropertyInterest,
		ResidencyStatus:   in.ResidencyStatus,
		Message:           in.Message,
		Status:            Prospect,
		Timestamp:         now.UTC(),
		EstimatedValue:    ParseEstimatedValue(in.InvestmentCeiling),
		Notes:             in.Message,
	}

	if lead.InvestmentCeiling == "" {
		lead.InvestmentCeiling = DefaultInvestmentCeiling
	}
	if lead.NetWorthBand == "" {
		lead.NetWorthBand = Band5To10M
	}
	if lead.ResidencyStatus == "" {
		lead.ResidencyStatus = HNI
	}

	return lead
}

// ParseEstimatedValue derives a USD value from a budget label by dropping
// every non-digit and reading what is left as one integer. Range labels
// therefore concatenate: "$20M - $50M" becomes 2050. Empty, zero or
// overflowing results fall back to DefaultEstimatedValue.
func ParseEstimatedValue(label string) int64 {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, label)

	if digits == "" {
		return DefaultEstimatedValue
	}

	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || v <= 0 {
		return DefaultEstimatedValue
	}

	return v
}

// LeadRepository is the single owner of the lead collection.
type LeadRepository interface {
	// List returns every lead in insertion order, seeding the fixture set
	// when nothing has been persisted yet.
	List(ctx context.Context) ([]Lead, error)
	Append(ctx context.Context, lead *Lead) error
	// UpdateStatus moves id from one stage to another. It returns
	// ErrLeadNotFound when id is unknown and ErrTransitionNotAllowed when
	// the stored stage is no longer from.
	UpdateStatus(ctx context.Context, id string, from, to MandateLevel) error
}
