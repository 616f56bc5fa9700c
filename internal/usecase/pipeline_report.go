package usecase

import (
	"context"
	"fmt"

	"github.com/xavierca1/nexus-prive/internal/entity"
	"github.com/xavierca1/nexus-prive/internal/pipeline"
	"github.com/xavierca1/nexus-prive/internal/policy"
)

// PipelineReportUseCase serves the read side of the console.
type PipelineReportUseCase struct {
	Repo entity.LeadRepository
}

func NewPipelineReportUseCase(repo entity.LeadRepository) *PipelineReportUseCase {
	return &PipelineReportUseCase{Repo: repo}
}

func (uc *PipelineReportUseCase) Ledger(ctx context.Context) (*LedgerOutput, error) {
	leads, err := uc.Repo.List(ctx)
	if err != nil {
		return nil, classify(err)
	}
	l := pipeline.Summarize(leads)
	return &l, nil
}

func (uc *PipelineReportUseCase) Funnel(ctx context.Context) (*FunnelOutput, error) {
	leads, err := uc.Repo.List(ctx)
	if err != nil {
		return nil, classify(err)
	}
	return &FunnelOutput{Stages: pipeline.Funnel(leads)}, nil
}

// Search lists leads for a console view the role may open.
func (uc *PipelineReportUseCase) Search(ctx context.Context, in SearchInput) (*SearchOutput, error) {
	if !in.Role.Valid() {
		return nil, classify(fmt.Errorf("%w: %q", entity.ErrInvalidRole, in.Role))
	}

	scope := policy.DefaultView(in.Role)
	if in.Scope != "" {
		scope = entity.View(in.Scope)
	}
	if !scope.Valid() || !policy.CanView(in.Role, scope) {
		return nil, &DomainError{
			Code:    CodeViewForbidden,
			Message: fmt.Sprintf("%s cannot open the %s view", in.Role, scope),
		}
	}

	residency, err := pipeline.ParseResidencyFilter(in.Residency)
	if err != nil {
		return nil, &DomainError{Code: CodeInvalidFilter, Message: err.Error(), Err: err}
	}

	leads, err := uc.Repo.List(ctx)
	if err != nil {
		return nil, classify(err)
	}

	return &SearchOutput{
		Scope: scope,
		Leads: pipeline.Search(leads, pipeline.Filter{Name: in.Query, Residency: residency, Scope: scope}),
	}, nil
}

// Detail returns one mandate and where it sits on the stage ladder.
func (uc *PipelineReportUseCase) Detail(ctx context.Context, id string) (*MandateDetail, error) {
	lead, err := findLead(ctx, uc.Repo, id)
	if err != nil {
		return nil, classify(err)
	}

	levels := entity.AllLevels()
	stages := make([]Stage, 0, len(levels))
	for _, lvl := range levels {
		stages = append(stages, Stage{
			Level:   lvl,
			Current: lvl == lead.Status,
			Past:    lvl.IsPast(lead.Status),
		})
	}

	return &MandateDetail{Lead: *lead, Stages: stages}, nil
}
