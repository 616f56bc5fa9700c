// Package intelligence turns lead data into prompts for an external text
// generator and shields callers from its failures.
package intelligence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xavierca1/nexus-prive/internal/entity"
)

const (
	MemoFallback     = "Intelligence synthesis offline."
	OutreachFallback = "Outreach automation offline."
	ForecastFallback = "Market forecasting unavailable."
	AdviceFallback   = "I apologize, but I am currently unable to provide real-time advisory. Please contact our concierge directly."

	DefaultTimeout = 20 * time.Second
)

const (
	OpMemo     = "strategic_memo"
	OpOutreach = "bespoke_outreach"
	OpForecast = "market_forecast"
	OpAdvice   = "property_advice"
	OpProfile  = "investment_profile"
)

// Request is one generation call. Schema, when set, asks the generator for
// a JSON document of that shape.
type Request struct {
	Prompt            string
	SystemInstruction string
	Temperature       *float32
	Schema            *Schema
}

type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// GenerationError wraps anything that kept a generator from producing text.
type GenerationError struct {
	Op  string
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s: generation failed: %v", e.Op, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

var errEmptyResponse = errors.New("empty response")

// Observer is told the outcome of every call; err is nil on success.
type Observer func(op string, err error)

type Gateway struct {
	gen      Generator
	timeout  time.Duration
	logger   *zap.Logger
	observer Observer
}

type Option func(*Gateway)

func WithTimeout(d time.Duration) Option {
	return func(g *Gateway) {
		if d > 0 {
			g.timeout = d
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(g *Gateway) { g.logger = l }
}

func WithObserver(o Observer) Option {
	return func(g *Gateway) { g.observer = o }
}

// NewGateway accepts a nil generator; every call then returns its fallback.
func NewGateway(gen Generator, opts ...Option) *Gateway {
	g := &Gateway{
		gen:     gen,
		timeout: DefaultTimeout,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Gateway) generate(ctx context.Context, op string, req Request) (string, error) {
	var (
		text string
		err  error
	)

	if g.gen == nil {
		err = &GenerationError{Op: op, Err: errors.New("generator not configured")}
	} else {
		callCtx, cancel := context.WithTimeout(ctx, g.timeout)
		text, err = g.gen.Generate(callCtx, req)
		cancel()

		if err == nil && strings.TrimSpace(text) == "" {
			err = errEmptyResponse
		}
		if err != nil {
			err = &GenerationError{Op: op, Err: err}
		}
	}

	if g.observer != nil {
		g.observer(op, err)
	}
	if err != nil {
		g.logger.Warn("generation failed", zap.String("op", op), zap.Error(err))
		return "", err
	}
	return text, nil
}

func (g *Gateway) withFallback(ctx context.Context, op string, req Request, fallback string) string {
	text, err := g.generate(ctx, op, req)
	if err != nil {
		return fallback
	}
	return text
}

func (g *Gateway) StrategicMemo(ctx context.Context, lead entity.Lead) string {
	return g.withFallback(ctx, OpMemo, MemoPrompt(lead), MemoFallback)
}

func (g *Gateway) BespokeOutreach(ctx context.Context, lead entity.Lead) string {
	return g.withFallback(ctx, OpOutreach, OutreachPrompt(lead), OutreachFallback)
}

func (g *Gateway) MarketForecast(ctx context.Context, leads []entity.Lead) string {
	return g.withFallback(ctx, OpForecast, ForecastPrompt(leads), ForecastFallback)
}

// PropertyAdvice answers a concierge question from the public site.
func (g *Gateway) PropertyAdvice(ctx context.Context, query string) string {
	return g.withFallback(ctx, OpAdvice, AdvicePrompt(query), AdviceFallback)
}

type Dossier struct {
	LeadID   string `json:"leadId"`
	Memo     string `json:"memo"`
	Outreach string `json:"outreach"`
}

// Dossier runs the memo and the outreach draft side by side.
func (g *Gateway) Dossier(ctx context.Context, lead entity.Lead) Dossier {
	d := Dossier{LeadID: lead.ID}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		d.Memo = g.StrategicMemo(egCtx, lead)
		return nil
	})
	eg.Go(func() error {
		d.Outreach = g.BespokeOutreach(egCtx, lead)
		return nil
	})
	_ = eg.Wait()

	return d
}
