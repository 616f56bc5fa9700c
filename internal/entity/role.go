package entity

import "fmt"

type Role string

const (
	Principal     Role = "Principal"
	AssetManager  Role = "Asset Manager"
	WealthAdvisor Role = "Wealth Advisor"
)

func (r Role) Valid() bool {
	switch r {
	case Principal, AssetManager, WealthAdvisor:
		return true
	}
	return false
}

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
	return r, nil
}

// Roles lists the desk roles in selection order.
func Roles() []Role {
	return []Role{Principal, AssetManager, WealthAdvisor}
}

// View is a pipeline tab of the desk console.
type View string

const (
	ViewLedger       View = "ledger"
	ViewFunnel       View = "funnel"
	ViewRegistry     View = "leads"
	ViewIntelligence View = "intelligence"
)

func (v View) Label() string {
	switch v {
	case ViewLedger:
		return "Settlement Ledger"
	case ViewFunnel:
		return "Capital Funnel"
	case ViewRegistry:
		return "Mandate Registry"
	case ViewIntelligence:
		return "Prive Intelligence"
	}
	return string(v)
}

func (v View) Valid() bool {
	switch v {
	case ViewLedger, ViewFunnel, ViewRegistry, ViewIntelligence:
		return true
	}
	return false
}
