package intelligence

import (
	"fmt"
	"strings"

	"github.com/xavierca1/nexus-prive/internal/entity"
)

const defaultInterest = "Prime Global Assets"

const (
	memoInstruction     = "You are the Nexus Prive AI Strategy Engine. Use high-end, analytical, and elite real estate consulting language. Focus on wealth preservation and discretion."
	outreachInstruction = "You are a private concierge for Nexus Prive ultra-luxury real estate. Tone: Elite, subtle, exclusive. Avoid salesy language."
	forecastInstruction = "You are the Nexus Prive Macro Analyst. Provide data-driven predictions about global HNI/NRI capital movement in real estate."
	adviceInstruction   = `You are an elite luxury real estate advisor for Nexus Prive.
Your target audience are High Net Worth Individuals (HNIs) and Non-Resident Indians (NRIs).
Focus on investment potential, ROI, wealth preservation, and the luxury lifestyle.
Keep responses professional, sophisticated, and data-oriented.
Always suggest why real estate in India or major global hubs is a strong asset class right now.`
)

func interest(l entity.Lead) string {
	if l.PropertyInterest == "" {
		return defaultInterest
	}
	return l.PropertyInterest
}

// MemoPrompt asks for a three-part strategic mandate memo.
func MemoPrompt(l entity.Lead) Request {
	var b strings.Builder
	b.WriteString("Generate a Nexus Prive Strategic Mandate Memo for an ultra-luxury real estate negotiation.\n")
	fmt.Fprintf(&b, "Client: %s\n", l.FullName())
	fmt.Fprintf(&b, "Identity: %s\n", l.ResidencyStatus)
	fmt.Fprintf(&b, "Net Worth: %s\n", l.NetWorthBand)
	fmt.Fprintf(&b, "Stage: %s\n", l.Status)
	fmt.Fprintf(&b, "Mandate Details: %s\n\n", l.Notes)
	b.WriteString("Structure the response as:\n")
	fmt.Fprintf(&b, "1. ASSET ALIGNMENT: Why %s fits their wealth strategy.\n", interest(l))
	fmt.Fprintf(&b, "2. NEGOTIATION LEVERAGE: Stage-specific tactics for the %s phase.\n", l.Status)
	fmt.Fprintf(&b, "3. TAX & COMPLIANCE: Advice tailored to their %s status.", l.ResidencyStatus)

	return Request{Prompt: b.String(), SystemInstruction: memoInstruction}
}

// OutreachPrompt asks for a discreet private-viewing invitation.
func OutreachPrompt(l entity.Lead) Request {
	var b strings.Builder
	fmt.Fprintf(&b, "Draft an elite, concierge-level property invitation for %s from Nexus Prive.\n", l.FullName())
	fmt.Fprintf(&b, "Residency: %s.\n", l.ResidencyStatus)
	fmt.Fprintf(&b, "Investment Ceiling: %s.\n", l.InvestmentCeiling)
	fmt.Fprintf(&b, "Context: Interested in %s.\n", interest(l))
	b.WriteString("Tone: Discreet, sophisticated, inviting them to an off-market private viewing.")

	return Request{Prompt: b.String(), SystemInstruction: outreachInstruction}
}

// PipelineDigest is the one-line-per-lead summary embedded in forecasts.
func PipelineDigest(leads []entity.Lead) string {
	parts := make([]string, 0, len(leads))
	for _, l := range leads {
		parts = append(parts, fmt.Sprintf("%s (%s) with %s budget", l.ResidencyStatus, l.Status, l.InvestmentCeiling))
	}
	return strings.Join(parts, ", ")
}

// ForecastPrompt asks for a macro read of the whole pipeline.
func ForecastPrompt(leads []entity.Lead) Request {
	var b strings.Builder
	b.WriteString("Perform a High-Level Analysis of the Nexus Prive Pipeline.\n")
	fmt.Fprintf(&b, "Current Data: %s\n\n", PipelineDigest(leads))
	b.WriteString("Identify:\n")
	b.WriteString("1. CAPITAL TRENDS: Where is the money moving?\n")
	b.WriteString("2. DEMAND SPIKES: Which property types are trending (Penthouse, Villa, etc.)?\n")
	b.WriteString("3. NRI INFLUX: Analyze the concentration of NRI vs HNI interest.")

	return Request{Prompt: b.String(), SystemInstruction: forecastInstruction}
}

// AdvicePrompt wraps a visitor's concierge question.
func AdvicePrompt(query string) Request {
	temp := float32(0.7)
	return Request{Prompt: query, SystemInstruction: adviceInstruction, Temperature: &temp}
}

// ProfilePrompt asks for a structured portfolio recommendation.
func ProfilePrompt(profile string) Request {
	return Request{
		Prompt: "Analyze this investor profile and recommend a portfolio strategy for Nexus Prive: " + profile,
		Schema: ProfileSchema(),
	}
}
