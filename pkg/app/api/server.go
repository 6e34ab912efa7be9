// Package api implements app.Runner for the API server process.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apphttp "github.com/tikket/tikket-server/pkg/app/http"
	"github.com/tikket/tikket-server/pkg/auth"
	"github.com/tikket/tikket-server/pkg/config"
	eventservice "github.com/tikket/tikket-server/pkg/event/service"
	eventpg "github.com/tikket/tikket-server/pkg/event/store/pg"
	"github.com/tikket/tikket-server/pkg/keys"
	"github.com/tikket/tikket-server/pkg/nft"
	"github.com/tikket/tikket-server/pkg/notify"
	"github.com/tikket/tikket-server/pkg/pgutil"
	registrationservice "github.com/tikket/tikket-server/pkg/registration/service"
	registrationpg "github.com/tikket/tikket-server/pkg/registration/store/pg"
	"github.com/tikket/tikket-server/pkg/userstore"
	walletservice "github.com/tikket/tikket-server/pkg/wallet/service"
	walletpg "github.com/tikket/tikket-server/pkg/wallet/store/pg"
)

const defaultRequestTimeout = 60

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.Config
}

// NewServer initializes new api server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting API server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)

	db, err := pgutil.ConnectDB(&cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	logger.Info("Connected to database",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.Database),
	)

	masterSeed, err := keys.MasterSeedFromBase64(cfg.Chain.MasterSeed)
	if err != nil {
		return fmt.Errorf("invalid master seed: %w", err)
	}

	chainClient, err := nft.NewChainClient(&cfg.Chain, logger)
	if err != nil {
		return fmt.Errorf("create chain client: %w", err)
	}
	defer chainClient.Close()

	logger.Info("Connected to chain", zap.String("rpc_url", cfg.Chain.RPCURL))

	uploader := nft.NewUploader(&cfg.Storage, logger)
	minter := nft.NewPassMinter(chainClient, uploader, masterSeed, &cfg.Chain, &cfg.Storage, logger)

	userStore := userstore.NewStore(db)
	eventStore := eventpg.NewStore(db)
	registrationStore := registrationpg.NewStore(db)
	walletStore := walletpg.NewStore(db)

	var publisher registrationservice.Publisher
	if cfg.Mail.Enabled {
		mailClient, err := notify.NewClient(&cfg.Mail, logger)
		if err != nil {
			return fmt.Errorf("connect mail broker: %w", err)
		}
		defer mailClient.Close()

		worker := notify.NewWorker(mailClient, notify.NewMailer(&cfg.Mail, logger), logger)
		if err := worker.Start(ctx); err != nil {
			return err
		}
		publisher = mailClient
	}

	eventSvc := eventservice.NewLog(eventservice.NewService(eventStore, logger), logger)
	registrationSvc := registrationservice.NewLog(
		registrationservice.NewService(registrationStore, eventStore, userStore, minter, publisher, logger),
		logger,
	)
	walletSvc := walletservice.NewLog(walletservice.NewService(walletStore, chainClient, logger), logger)

	authMiddleware := auth.NewMiddleware(userStore, s.jwtValidator(), logger)

	router := s.setupRouter(authMiddleware, eventSvc, registrationSvc, walletSvc, logger)

	return apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)
}

// jwtValidator returns nil when no JWKS endpoint is configured; the auth
// middleware then relies on session-table lookups only.
func (s *Server) jwtValidator() *auth.JWTValidator {
	if s.cfg.JWKS.URL == "" {
		return nil
	}
	return auth.NewJWTValidator(s.cfg.JWKS.URL, s.cfg.JWKS.Issuer)
}

func (s *Server) setupRouter(
	authMiddleware *auth.Middleware,
	eventSvc eventservice.Service,
	registrationSvc registrationservice.Service,
	walletSvc walletservice.Service,
	logger *zap.Logger,
) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(time.Second * defaultRequestTimeout))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if s.cfg.Monitoring.Enabled {
		r.Handle("/metrics", promhttp.Handler())
		logger.Info("Prometheus metrics endpoint enabled", zap.String("path", "/metrics"))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(authMiddleware.RequireUser)

		eventservice.RegisterRoutes(r, eventSvc, logger)
		registrationservice.RegisterRoutes(r, registrationSvc, logger)
		walletservice.RegisterRoutes(r, walletSvc, logger)
	})

	return r
}
