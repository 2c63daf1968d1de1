package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"hermes/internal/adapters/ai"
	"hermes/internal/adapters/config"
	"hermes/internal/adapters/errors/noop"
	"hermes/internal/adapters/errors/sentry"
	"hermes/internal/adapters/search"
	"hermes/internal/agents"
	"hermes/internal/api"
	"hermes/internal/api/health"
	"hermes/internal/metrics"
	"hermes/pkg/errors"
	"hermes/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	if err := logger.Init(cfg.App.LogLevel, cfg.App.Env); err != nil {
		panic("failed to init logger: " + err.Error())
	}
	defer logger.Sync()

	log := logger.Get()
	log.Infof("Starting %s in %s mode", cfg.App.Name, cfg.App.Env)

	errorTracker := initErrorTracker(cfg, log)
	logger.SetErrorTracker(errorTracker)

	metrics.Register()

	factory, err := initAgentFactory(cfg)
	if err != nil {
		log.Fatalf("failed to init agents: %v", err)
	}

	server := api.NewServer(
		api.ServerConfig{
			Port:        cfg.Server.Port,
			ServiceName: cfg.App.Name,
			Version:     cfg.App.Version,
		},
		api.NewPromptHandler(factory, log),
		health.New(cfg.App.Name, cfg.App.Version),
		log,
	)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("http server: %v", err)
		}
	}()

	log.Info("System initialized successfully")

	waitForShutdown(cfg, server, errorTracker, log)
}

// initErrorTracker initializes error tracking (Sentry or no-op)
func initErrorTracker(cfg *config.Config, log *logger.Logger) errors.Tracker {
	if cfg.ErrorTracking.Enabled && cfg.ErrorTracking.SentryDSN != "" {
		tracker, err := sentry.New(cfg.ErrorTracking.SentryDSN, cfg.ErrorTracking.Environment)
		if err != nil {
			log.Warnf("sentry init failed, falling back to no-op tracker: %v", err)
			return noop.New()
		}
		log.Info("Sentry error tracking enabled")
		return tracker
	}
	return noop.New()
}

// initAgentFactory wires the completion and search backends into the agent factory
func initAgentFactory(cfg *config.Config) (*agents.Factory, error) {
	chatClient, err := ai.NewOpenAIClient(cfg.AI.OpenAIKey, cfg.AI.Timeout, cfg.AI.RatePerMinute)
	if err != nil {
		return nil, err
	}

	searchClient, err := search.NewSerperClient(search.Config{
		APIKey:        cfg.Search.SerperKey,
		Endpoint:      cfg.Search.Endpoint,
		Timeout:       cfg.Search.Timeout,
		RatePerMinute: cfg.Search.RatePerMinute,
	})
	if err != nil {
		return nil, err
	}

	return agents.NewFactory(agents.FactoryDeps{
		Chat:   chatClient,
		Search: searchClient,
		Model:  cfg.AI.Model,
	})
}

// waitForShutdown blocks until SIGINT/SIGTERM, then stops components in order:
// server first, then tracker flush, logs last (via the deferred Sync).
func waitForShutdown(cfg *config.Config, server *api.Server, tracker errors.Tracker, log *logger.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	log.Infof("Received signal %s, shutting down", sig)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Errorf("shutdown: %v", err)
	}

	if err := tracker.Flush(ctx); err != nil {
		log.Errorf("tracker flush: %v", err)
	}

	log.Info("Shutdown complete")
}
