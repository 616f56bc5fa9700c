package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/nexus-prive/internal/entity"
)

// VaultKey is the well-known name the lead collection is stored under.
const VaultKey = "nexus_prive_leads_vault"

// FileVault keeps the whole lead collection as one JSON array on disk.
// Every write replaces the file through a rename, so readers only ever see
// a complete collection.
type FileVault struct {
	path   string
	now    func() time.Time
	logger *zap.Logger

	mu sync.Mutex
}

type VaultOption func(*FileVault)

func WithClock(now func() time.Time) VaultOption {
	return func(v *FileVault) { v.now = now }
}

func WithLogger(l *zap.Logger) VaultOption {
	return func(v *FileVault) { v.logger = l }
}

func NewFileVault(dir string, opts ...VaultOption) (*FileVault, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create vault dir: %w", err)
	}

	v := &FileVault{
		path:   filepath.Join(dir, VaultKey+".json"),
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

func (v *FileVault) Path() string {
	return v.path
}

func (v *FileVault) List(ctx context.Context) ([]entity.Lead, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.load(ctx)
}

func (v *FileVault) Append(ctx context.Context, lead *entity.Lead) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	leads, err := v.load(ctx)
	if err != nil {
		return err
	}
	for _, l := range leads {
		if l.ID == lead.ID {
			return fmt.Errorf("%w: %s", entity.ErrDuplicateLead, lead.ID)
		}
	}

	return v.save(append(leads, *lead))
}

func (v *FileVault) UpdateStatus(ctx context.Context, id string, from, to entity.MandateLevel) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	leads, err := v.load(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range leads {
		if leads[i].ID == id {
			if leads[i].Status != from {
				return fmt.Errorf("%w: %s is %s, not %s", entity.ErrTransitionNotAllowed, id, leads[i].Status, from)
			}
			leads[i].Status = to
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %s", entity.ErrLeadNotFound, id)
	}

	return v.save(leads)
}

// load reads the collection, seeding the fixtures when the file is absent
// or unreadable as JSON. Callers hold mu.
func (v *FileVault) load(ctx context.Context) ([]entity.Lead, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(v.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return v.seed()
	case err != nil:
		return nil, fmt.Errorf("read vault: %w", err)
	}

	var leads []entity.Lead
	if err := json.Unmarshal(data, &leads); err != nil || leads == nil {
		v.logger.Warn("vault content unreadable, reseeding", zap.String("path", v.path), zap.Error(err))
		return v.seed()
	}

	return leads, nil
}

func (v *FileVault) seed() ([]entity.Lead, error) {
	leads := entity.FixtureLeads(v.now())
	if err := v.save(leads); err != nil {
		return nil, err
	}
	v.logger.Info("vault seeded", zap.String("path", v.path), zap.Int("leads", len(leads)))
	return leads, nil
}

func (v *FileVault) save(leads []entity.Lead) error {
	data, err := json.MarshalIndent(leads, "", "  ")
	if err != nil {
		return fmt.Errorf("encode vault: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(v.path), VaultKey+"-*.tmp")
	if err != nil {
		return fmt.Errorf("write vault: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write vault: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync vault: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write vault: %w", err)
	}

	if err := os.Rename(tmp.Name(), v.path); err != nil {
		return fmt.Errorf("swap vault: %w", err)
	}
	return nil
}
