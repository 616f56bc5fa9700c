package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/xavierca1/nexus-prive/internal/app"
	"github.com/xavierca1/nexus-prive/internal/catalog"
	"github.com/xavierca1/nexus-prive/internal/config"
	"github.com/xavierca1/nexus-prive/internal/entity"
	"github.com/xavierca1/nexus-prive/internal/infra/http/handlers"
	"github.com/xavierca1/nexus-prive/internal/infra/http/middleware"
	"github.com/xavierca1/nexus-prive/internal/infra/mail"
	"github.com/xavierca1/nexus-prive/internal/infra/queue"
	"github.com/xavierca1/nexus-prive/internal/infra/session"
	"github.com/xavierca1/nexus-prive/internal/infra/worker"
	"github.com/xavierca1/nexus-prive/internal/intelligence"
	"github.com/xavierca1/nexus-prive/internal/logging"
	"github.com/xavierca1/nexus-prive/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Lead store
	store, err := app.OpenStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	// 2. Events (optional)
	var (
		events   usecase.EventPublisher
		rabbitMQ *queue.RabbitMQ
	)
	if cfg.EventsEnabled() {
		rabbitMQ, err = queue.NewRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			return err
		}
		defer rabbitMQ.Close()
		events = queue.NewProducer(rabbitMQ.Ch)

		if cfg.MailEnabled() {
			sender := mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom, cfg.DeskEmail)
			w := queue.NewWorker(rabbitMQ.Ch, sender, logger.Named("worker"))
			go func() {
				if err := w.Start(ctx, queue.QueueName); err != nil {
					middleware.RecordIntegrationError("rabbitmq")
					logger.Error("notification worker exited", zap.Error(err))
				}
			}()
		} else {
			logger.Info("desk e-mail disabled, events are published without a local consumer")
		}
	} else {
		logger.Info("RABBITMQ_URL not set, mandate events disabled")
	}

	// 3. Intelligence
	gateway, generatorOnline, err := app.NewGateway(ctx, cfg, logger.Named("intelligence"),
		intelligence.WithObserver(middleware.ObserveGeneration))
	if err != nil {
		return err
	}

	// 4. Catalogue and sessions
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}
	if cfg.UsingDevSecret() {
		logger.Warn("SESSION_SECRET not set, using the development signing key")
	}
	issuer := session.NewIssuer(cfg.Secret(), cfg.SessionTTL)

	// 5. UseCases
	recorder := middleware.Recorder{}
	captureUC := usecase.NewCaptureLeadUseCase(store.Repo, events, recorder, logger.Named("capture"))
	statusUC := usecase.NewUpdateStatusUseCase(store.Repo, app.NewPolicy(cfg), events, recorder, logger.Named("status"))
	reportUC := usecase.NewPipelineReportUseCase(store.Repo)
	intelUC := usecase.NewIntelligenceUseCase(store.Repo, gateway)

	go worker.NewLedgerSnapshotWorker(store.Repo, time.Minute, logger.Named("snapshot")).Start(ctx)

	// 6. Handlers
	limiter := handlers.NewRateLimiter(10, time.Minute)
	defer limiter.Stop()
	conciergeLimiter := handlers.NewRateLimiter(10, time.Minute)
	defer conciergeLimiter.Stop()

	var (
		pinger handlers.Pinger
		conn   handlers.ConnState
	)
	if store.DB != nil {
		pinger = store.DB
	}
	if rabbitMQ != nil {
		conn = rabbitMQ.Conn
	}

	healthH := handlers.NewHealthHandler(cfg.StoreDriver, pinger, conn, generatorOnline)
	leadH := handlers.NewLeadHandler(captureUC, limiter, logger)
	mandateH := handlers.NewMandateHandler(reportUC, statusUC, logger)
	pipelineH := handlers.NewPipelineHandler(reportUC, logger)
	intelH := handlers.NewIntelligenceHandler(intelUC, conciergeLimiter, logger)
	sessionH := handlers.NewSessionHandler(issuer)
	propertyH := handlers.NewPropertyHandler(cat)

	// 7. Router
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Get("/health", healthH.Handle)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/properties", propertyH.List)
	r.Get("/properties/{id}", propertyH.Get)
	r.Post("/leads", leadH.CaptureLead)
	r.Post("/concierge", intelH.Concierge)
	r.Get("/roles", sessionH.Roles)
	r.Post("/session", sessionH.Create)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Session(issuer))

		r.Get("/mandates", mandateH.List)
		r.Get("/mandates/{id}", mandateH.Get)
		r.Put("/mandates/{id}/status", mandateH.UpdateStatus)
		r.Post("/mandates/{id}/memo", intelH.Memo)
		r.Post("/mandates/{id}/outreach", intelH.Outreach)
		r.Get("/mandates/{id}/dossier", intelH.Dossier)

		r.With(middleware.RequireView(entity.ViewLedger)).Get("/pipeline/ledger", pipelineH.Ledger)
		r.With(middleware.RequireView(entity.ViewFunnel)).Get("/pipeline/funnel", pipelineH.Funnel)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireView(entity.ViewIntelligence))
			r.Post("/intelligence/forecast", intelH.Forecast)
			r.Post("/intelligence/profile", intelH.Profile)
		})
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Nexus Prive API listening", zap.String("addr", srv.Addr), zap.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
