package usecase

import (
	"github.com/xavierca1/nexus-prive/internal/entity"
	"github.com/xavierca1/nexus-prive/internal/pipeline"
)

const CaptureSuccessMessage = "Mandate successfully registered in Nexus Prive Vault."

type CaptureLeadOutput struct {
	ID             string              `json:"id"`
	Status         entity.MandateLevel `json:"status"`
	EstimatedValue int64               `json:"estimatedValue"`
	Message        string              `json:"message"`
}

type UpdateStatusInput struct {
	LeadID string      `json:"leadId"`
	Status string      `json:"status"`
	Role   entity.Role `json:"-"`
}

type UpdateStatusOutput struct {
	LeadID         string              `json:"leadId"`
	PreviousStatus entity.MandateLevel `json:"previousStatus"`
	Status         entity.MandateLevel `json:"status"`
}

type SearchInput struct {
	Role      entity.Role
	Query     string
	Residency string
	// Scope defaults to the role's landing view.
	Scope string
}

type SearchOutput struct {
	Scope entity.View   `json:"scope"`
	Leads []entity.Lead `json:"leads"`
}

type Stage struct {
	Level   entity.MandateLevel `json:"level"`
	Current bool                `json:"current"`
	Past    bool                `json:"past"`
}

// MandateDetail is a lead with its position on the stage ladder.
type MandateDetail struct {
	Lead   entity.Lead `json:"lead"`
	Stages []Stage     `json:"stages"`
}

type LedgerOutput = pipeline.Ledger

type FunnelOutput struct {
	Stages []pipeline.FunnelStage `json:"stages"`
}
