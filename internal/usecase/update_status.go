package usecase

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/nexus-prive/internal/entity"
	"github.com/xavierca1/nexus-prive/internal/infra/queue"
)

// transition outcomes reported to the Recorder
const (
	TransitionApplied  = "applied"
	TransitionRejected = "rejected"
	TransitionFailed   = "failed"
)

type UpdateStatusUseCase struct {
	Repo     entity.LeadRepository
	Policy   TransitionAuthorizer
	Events   EventPublisher
	Recorder Recorder
	Logger   *zap.Logger
	Now      Clock
}

func NewUpdateStatusUseCase(repo entity.LeadRepository, policy TransitionAuthorizer, events EventPublisher, recorder Recorder, logger *zap.Logger) *UpdateStatusUseCase {
	if events == nil {
		events = nopPublisher{}
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UpdateStatusUseCase{
		Repo:     repo,
		Policy:   policy,
		Events:   events,
		Recorder: recorder,
		Logger:   logger,
		Now:      time.Now,
	}
}

// Execute moves a mandate to a new stage on behalf of role. Nothing is
// written unless the policy allows it.
func (uc *UpdateStatusUseCase) Execute(ctx context.Context, input UpdateStatusInput) (*UpdateStatusOutput, error) {
	to, err := entity.ParseMandateLevel(input.Status)
	if err != nil {
		uc.Recorder.StatusTransition(TransitionRejected)
		return nil, classify(err)
	}

	lead, err := findLead(ctx, uc.Repo, input.LeadID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			uc.Recorder.StatusTransition(TransitionRejected)
		} else {
			uc.Recorder.StatusTransition(TransitionFailed)
		}
		return nil, classify(err)
	}
	from := lead.Status

	if err := uc.Policy.AuthorizeTransition(input.Role, from, to); err != nil {
		uc.Recorder.StatusTransition(TransitionRejected)
		uc.Logger.Info("status change rejected",
			zap.String("lead_id", lead.ID),
			zap.String("role", string(input.Role)),
			zap.String("from", string(from)),
			zap.String("to", string(to)),
			zap.Error(err),
		)
		return nil, classify(err)
	}

	if err := uc.Repo.UpdateStatus(ctx, lead.ID, from, to); err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) || errors.Is(err, entity.ErrTransitionNotAllowed) {
			uc.Recorder.StatusTransition(TransitionRejected)
		} else {
			uc.Recorder.StatusTransition(TransitionFailed)
		}
		return nil, classify(err)
	}
	uc.Recorder.StatusTransition(TransitionApplied)

	lead.Status = to
	event := queue.StatusChangedEvent(*lead, from, input.Role, uc.Now())
	if err := uc.Events.PublishMandateEvent(ctx, event); err != nil {
		uc.Logger.Warn("mandate event not published", zap.String("lead_id", lead.ID), zap.Error(err))
	}

	uc.Logger.Info("status changed",
		zap.String("lead_id", lead.ID),
		zap.String("role", string(input.Role)),
		zap.String("from", string(from)),
		zap.String("to", string(to)),
	)

	return &UpdateStatusOutput{LeadID: lead.ID, PreviousStatus: from, Status: to}, nil
}
