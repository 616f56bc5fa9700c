// Command crmctl is the operator console for the mandate pipeline. It
// talks to the same store as the API.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xavierca1/nexus-prive/internal/app"
	"github.com/xavierca1/nexus-prive/internal/config"
	"github.com/xavierca1/nexus-prive/internal/logging"
	"github.com/xavierca1/nexus-prive/internal/usecase"
)

// env is built once per invocation, before any subcommand runs.
type env struct {
	logger  *zap.Logger
	store   *app.Store
	capture *usecase.CaptureLeadUseCase
	status  *usecase.UpdateStatusUseCase
	report  *usecase.PipelineReportUseCase
	intel   *usecase.IntelligenceUseCase
}

func (e *env) close() {
	if e.store != nil {
		e.store.Close()
	}
	if e.logger != nil {
		e.logger.Sync()
	}
}

func newEnv(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	// the console prints results; only warnings go to the log
	level := cfg.LogLevel
	if level == "info" {
		level = "warn"
	}
	logger, err := logging.New(level)
	if err != nil {
		return nil, err
	}

	store, err := app.OpenStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	gateway, _, err := app.NewGateway(ctx, cfg, logger)
	if err != nil {
		store.Close()
		return nil, err
	}

	return &env{
		logger:  logger,
		store:   store,
		capture: usecase.NewCaptureLeadUseCase(store.Repo, nil, nil, logger),
		status:  usecase.NewUpdateStatusUseCase(store.Repo, app.NewPolicy(cfg), nil, nil, logger),
		report:  usecase.NewPipelineReportUseCase(store.Repo),
		intel:   usecase.NewIntelligenceUseCase(store.Repo, gateway),
	}, nil
}

func newRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:           "crmctl",
		Short:         "Operate the Nexus Prive mandate pipeline",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations["offline"] == "true" {
				return nil
			}
			built, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			*e = *built
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			e.close()
		},
	}

	root.AddCommand(
		newLeadsCmd(e),
		newPipelineCmd(e),
		newIntelCmd(e),
		newRolesCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
