package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/nexus-prive/internal/entity"
	"github.com/xavierca1/nexus-prive/internal/infra/queue"
)

type CaptureLeadUseCase struct {
	Repo     entity.LeadRepository
	Events   EventPublisher
	Recorder Recorder
	Logger   *zap.Logger
	Now      Clock
}

func NewCaptureLeadUseCase(repo entity.LeadRepository, events EventPublisher, recorder Recorder, logger *zap.Logger) *CaptureLeadUseCase {
	if events == nil {
		events = nopPublisher{}
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CaptureLeadUseCase{
		Repo:     repo,
		Events:   events,
		Recorder: recorder,
		Logger:   logger,
		Now:      time.Now,
	}
}

// Execute registers a public enquiry as a Prospect.
func (uc *CaptureLeadUseCase) Execute(ctx context.Context, input entity.LeadInput) (*CaptureLeadOutput, error) {
	if errs := ValidateLeadInput(input); len(errs) > 0 {
		return nil, validationFailure(errs)
	}

	lead := entity.NewLead(input, uc.Now())

	if err := uc.Repo.Append(ctx, lead); err != nil {
		uc.Logger.Error("append lead failed", zap.String("lead_id", lead.ID), zap.Error(err))
		return nil, classify(err)
	}
	uc.Recorder.LeadCaptured()

	// the mandate is already in the vault; a broker outage only costs the
	// desk e-mail
	if err := uc.Events.PublishMandateEvent(ctx, queue.CapturedEvent(*lead)); err != nil {
		uc.Logger.Warn("mandate event not published", zap.String("lead_id", lead.ID), zap.Error(err))
	}

	uc.Logger.Info("mandate captured",
		zap.String("lead_id", lead.ID),
		zap.String("residency", string(lead.ResidencyStatus)),
		zap.Int64("estimated_value", lead.EstimatedValue),
	)

	return &CaptureLeadOutput{
		ID:             lead.ID,
		Status:         lead.Status,
		EstimatedValue: lead.EstimatedValue,
		Message:        CaptureSuccessMessage,
	}, nil
}
