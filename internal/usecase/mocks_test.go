package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/nexus-prive/internal/entity"
	"github.com/xavierca1/nexus-prive/internal/infra/queue"
	"github.com/xavierca1/nexus-prive/internal/infra/storage"
	"github.com/xavierca1/nexus-prive/internal/intelligence"
)

var fixedNow = time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) List(ctx context.Context) ([]entity.Lead, error) {
	args := m.Called(ctx)
	leads, _ := args.Get(0).([]entity.Lead)
	return leads, args.Error(1)
}

func (m *MockLeadRepository) Append(ctx context.Context, lead *entity.Lead) error {
	return m.Called(ctx, lead).Error(0)
}

func (m *MockLeadRepository) UpdateStatus(ctx context.Context, id string, from, to entity.MandateLevel) error {
	return m.Called(ctx, id, from, to).Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishMandateEvent(ctx context.Context, event queue.MandateEvent) error {
	return m.Called(ctx, event).Error(0)
}

type spyRecorder struct {
	mu          sync.Mutex
	captured    int
	transitions []string
}

func (s *spyRecorder) LeadCaptured() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.captured++
}

func (s *spyRecorder) StatusTransition(result string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transitions = append(s.transitions, result)
}

type MockIntelligence struct {
	mock.Mock
}

func (m *MockIntelligence) StrategicMemo(ctx context.Context, lead entity.Lead) string {
	return m.Called(ctx, lead).String(0)
}

func (m *MockIntelligence) BespokeOutreach(ctx context.Context, lead entity.Lead) string {
	return m.Called(ctx, lead).String(0)
}

func (m *MockIntelligence) MarketForecast(ctx context.Context, leads []entity.Lead) string {
	return m.Called(ctx, leads).String(0)
}

func (m *MockIntelligence) PropertyAdvice(ctx context.Context, query string) string {
	return m.Called(ctx, query).String(0)
}

func (m *MockIntelligence) AnalyzeProfile(ctx context.Context, profile string) (*intelligence.InvestmentProfile, error) {
	args := m.Called(ctx, profile)
	p, _ := args.Get(0).(*intelligence.InvestmentProfile)
	return p, args.Error(1)
}

func (m *MockIntelligence) Dossier(ctx context.Context, lead entity.Lead) intelligence.Dossier {
	return m.Called(ctx, lead).Get(0).(intelligence.Dossier)
}

// newVault returns a seeded vault in a temp dir.
func newVault(t *testing.T) *storage.FileVault {
	t.Helper()
	v, err := storage.NewFileVault(t.TempDir(), storage.WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)
	return v
}

func statusOf(t *testing.T, repo entity.LeadRepository, id string) entity.MandateLevel {
	t.Helper()
	leads, err := repo.List(context.Background())
	require.NoError(t, err)
	for _, l := range leads {
		if l.ID == id {
			return l.Status
		}
	}
	t.Fatalf("lead %s not found", id)
	return ""
}
