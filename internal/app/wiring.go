// Package app assembles the stores and gateways shared by the API and
// the operator CLI.
package app

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/xavierca1/nexus-prive/internal/config"
	"github.com/xavierca1/nexus-prive/internal/entity"
	"github.com/xavierca1/nexus-prive/internal/infra/database"
	"github.com/xavierca1/nexus-prive/internal/infra/integration/gemini"
	"github.com/xavierca1/nexus-prive/internal/infra/storage"
	"github.com/xavierca1/nexus-prive/internal/intelligence"
	"github.com/xavierca1/nexus-prive/internal/policy"
)

// Store is the configured lead repository. DB is nil for the file vault.
type Store struct {
	Repo entity.LeadRepository
	DB   *sql.DB
}

func (s *Store) Close() error {
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}

func OpenStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Store, error) {
	switch cfg.StoreDriver {
	case config.StorePostgres:
		db, err := database.NewDBConnection(ctx, cfg.DBDriver, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := database.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		logger.Info("lead store ready", zap.String("driver", "postgres"), zap.String("sql_driver", cfg.DBDriver))
		return &Store{Repo: database.NewLeadRepository(db), DB: db}, nil

	case config.StoreFile:
		vault, err := storage.NewFileVault(cfg.VaultDir, storage.WithLogger(logger))
		if err != nil {
			return nil, err
		}
		logger.Info("lead store ready", zap.String("driver", "file"), zap.String("path", vault.Path()))
		return &Store{Repo: vault}, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

// NewGateway wires Gemini when a key is configured. Without one the
// gateway still answers, with fallbacks only.
func NewGateway(ctx context.Context, cfg *config.Config, logger *zap.Logger, opts ...intelligence.Option) (*intelligence.Gateway, bool, error) {
	opts = append([]intelligence.Option{
		intelligence.WithTimeout(cfg.GenerationTimeout),
		intelligence.WithLogger(logger),
	}, opts...)

	if cfg.GeminiAPIKey == "" {
		logger.Warn("GEMINI_API_KEY not set, intelligence will return fallbacks")
		return intelligence.NewGateway(nil, opts...), false, nil
	}

	client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return nil, false, err
	}
	logger.Info("gemini configured", zap.String("model", client.Model()))
	return intelligence.NewGateway(client, opts...), true, nil
}

func NewPolicy(cfg *config.Config) *policy.Policy {
	if cfg.PipelineStrict {
		return policy.New(policy.Strict())
	}
	return policy.New(policy.Permissive())
}
