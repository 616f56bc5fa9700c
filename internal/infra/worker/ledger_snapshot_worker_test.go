package worker_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/xavierca1/nexus-prive/internal/entity"
	"github.com/xavierca1/nexus-prive/internal/infra/worker"
)

type sliceRepo struct {
	leads []entity.Lead
	err   error
}

func (s sliceRepo) List(context.Context) ([]entity.Lead, error) { return s.leads, s.err }
func (s sliceRepo) Append(context.Context, *entity.Lead) error  { return nil }
func (s sliceRepo) UpdateStatus(context.Context, string, entity.MandateLevel, entity.MandateLevel) error {
	return nil
}

func TestSnapshotPublishesGauges(t *testing.T) {
	leads := entity.FixtureLeads(time.Now())
	leads[2].Status = entity.Closed

	w := worker.NewLedgerSnapshotWorker(sliceRepo{leads: leads}, time.Hour, nil)
	l, err := w.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, l.ActiveCount)

	rec := httptest.NewRecorder()
	promhttp.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()

	assert.Contains(t, body, `pipeline_mandates{state="closed"} 1`)
	assert.Contains(t, body, `pipeline_mandates{state="active"} 2`)
	assert.Contains(t, body, `pipeline_value_usd{measure="settled"} 1.8e+07`)
}

func TestSnapshotReportsStoreError(t *testing.T) {
	boom := errors.New("vault locked")
	_, err := worker.NewLedgerSnapshotWorker(sliceRepo{err: boom}, time.Hour, nil).Snapshot(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestStartStopsWithContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	w := worker.NewLedgerSnapshotWorker(sliceRepo{}, 5*time.Millisecond, nil)

	go func() {
		w.Start(ctx)
		close(done)
	}()
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
}
