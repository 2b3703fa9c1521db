// Package api implements app.Runner for the API server process.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/chainsafe/social-verifier/internal/metrics"
	agentservice "github.com/chainsafe/social-verifier/pkg/agent/service"
	apphttp "github.com/chainsafe/social-verifier/pkg/app/http"
	"github.com/chainsafe/social-verifier/pkg/attestation"
	"github.com/chainsafe/social-verifier/pkg/bridge"
	"github.com/chainsafe/social-verifier/pkg/config"
	"github.com/chainsafe/social-verifier/pkg/ethereum"
	verificationservice "github.com/chainsafe/social-verifier/pkg/verification/service"
	"github.com/chainsafe/social-verifier/pkg/verificationstore"
)

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.APIServerConfig
}

// NewServer initializes new api server.
func NewServer(cfg *config.APIServerConfig) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging, "verification-api")
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting verification API server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.String("store", cfg.Store.Driver),
	)

	store, closeStore, err := s.openStore(ctx, logger)
	if err != nil {
		return err
	}
	defer func() { _ = closeStore() }()

	reader := s.openVaultReader(ctx, logger)
	if reader != nil {
		defer reader.Close()
	}

	handler, err := s.buildHandler(store, reader, logger)
	if err != nil {
		return err
	}

	return apphttp.ServeAndWait(ctx, handler, logger, &cfg.Server)
}

func (s *Server) openStore(ctx context.Context, logger *zap.Logger) (verificationstore.Store, func() error, error) {
	store, closeStore, err := verificationstore.Open(ctx, &s.cfg.Store)
	if err != nil {
		return nil, nil, fmt.Errorf("open verification store: %w", err)
	}

	n, err := store.Count(ctx)
	if err != nil {
		_ = closeStore()
		return nil, nil, fmt.Errorf("count stored verifications: %w", err)
	}
	metrics.StoredVerifications.Set(float64(n))

	logger.Info("Verification store ready",
		zap.String("driver", s.cfg.Store.Driver),
		zap.Int("records", n),
	)
	return store, closeStore, nil
}

// openVaultReader connects to Flow EVM. A missing or unreachable endpoint is
// not fatal: agent reads then serve the fallback snapshot.
func (s *Server) openVaultReader(ctx context.Context, logger *zap.Logger) *ethereum.VaultReader {
	reader, err := ethereum.NewVaultReader(ctx, &s.cfg.Flow, logger)
	switch {
	case errors.Is(err, ethereum.ErrVaultNotConfigured):
		logger.Warn("Flow vault not configured, agent endpoint will serve fallback data")
		return nil
	case err != nil:
		logger.Warn("Failed to connect to Flow EVM, agent endpoint will serve fallback data", zap.Error(err))
		return nil
	}
	return reader
}

// buildHandler wires the services onto a chi router.
func (s *Server) buildHandler(
	store verificationstore.Store,
	reader *ethereum.VaultReader,
	logger *zap.Logger,
) (http.Handler, error) {
	cfg := s.cfg
	entropy := ethereum.NewEntropy()

	simulator, err := bridge.NewSimulator(
		cfg.Verification.SourceChain,
		cfg.Verification.DestinationChain,
		cfg.Verification.GasAmount,
		entropy,
	)
	if err != nil {
		return nil, fmt.Errorf("create bridge simulator: %w", err)
	}

	verifier := verificationservice.NewService(
		store,
		simulator,
		verificationservice.Providers{Mock: attestation.NewMockProvider(entropy, cfg.Verification.Validators)},
		entropy,
		cfg.Verification.FailureProbability,
		logger,
	)

	// a nil *VaultReader must not become a non-nil interface
	var contractReader agentservice.ContractReader
	if reader != nil {
		contractReader = reader
	}
	agents := agentservice.NewService(
		contractReader,
		entropy,
		agentservice.Options{Decimals: cfg.Flow.Decimals, Symbol: cfg.Flow.Symbol},
		logger,
	)

	return s.setupRouter(
		verificationservice.NewLog(verifier, logger),
		agentservice.NewLog(agents, logger),
		logger,
	), nil
}

func (s *Server) setupRouter(
	verifier verificationservice.Service,
	agents agentservice.Service,
	logger *zap.Logger,
) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if s.cfg.Server.RequestTimeout > 0 {
		r.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))
	}

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if s.cfg.Monitoring.Enabled {
		r.Handle("/metrics", promhttp.Handler())
		logger.Info("Metrics enabled", zap.String("path", "/metrics"))
	}

	verificationservice.RegisterRoutes(r, verifier, logger)
	agentservice.RegisterRoutes(r, agents, logger)

	return r
}
