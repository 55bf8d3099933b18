package router

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"meowscope/internal/api/v1/dto"
	"meowscope/internal/api/v1/handler"
	"meowscope/internal/classifier"
	"meowscope/internal/config"
	"meowscope/internal/middleware"
	"meowscope/internal/pubsub"
	"meowscope/internal/repository"
	"meowscope/internal/service"
	"meowscope/internal/storage"
	"meowscope/internal/webhook"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// Services bundles the application services served over HTTP.
type Services struct {
	Billing    service.BillingService
	Sessions   service.SessionService
	Analysis   service.AnalysisService
	Reconciler handler.WebhookReconciler
}

// New connects every backing service described by cfg and returns the HTTP
// handler. The returned cleanup releases the connections.
func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (http.Handler, func(), error) {
	logger.Info().Str("environment", cfg.Environment).Msg("App environment loaded")
	logger.Info().Str("db_connection_string_port_check", getPortFromDSN(cfg.DBConnectionString)).Msg("DB connection string port")

	// 1. Open DB pool
	poolCfg, err := poolConfig(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("parse DB connection string: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open DB pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("ping DB: %w", err)
	}
	logger.Info().Msg("Database connection successful")

	closers := []func(){pool.Close}
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	// 2. Optional recording archive on Supabase storage
	var archive storage.Archive
	if cfg.ArchiveEnabled() {
		s3Client, err := storage.NewS3Client(ctx, cfg)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		archive = storage.NewS3Archive(s3Client, cfg.S3Bucket)
		logger.Info().Str("bucket", cfg.S3Bucket).Msg("Recording archive enabled")
	}

	// 3. Optional tier change notifications
	var notifier webhook.TierNotifier
	if cfg.NotificationsEnabled() {
		publisher, err := pubsub.NewPublisher(ctx, cfg)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		closers = append(closers, func() {
			if err := publisher.Close(); err != nil {
				logger.Warn().Err(err).Msg("Failed to close Pub/Sub client")
			}
		})
		notifier = pubsub.NewTierChangePublisher(publisher, cfg.PubSubTierTopic)
		logger.Info().Str("topic", cfg.PubSubTierTopic).Msg("Tier change notifications enabled")
	}

	// 4. Repositories & services
	profileRepo := repository.NewProfileRepo(pool)
	analysisRepo := repository.NewAnalysisRepo(pool)

	stripeClient := service.NewStripeClient(cfg)
	sessionSvc := service.NewSessionService(profileRepo, logger)
	svcs := Services{
		Billing:    service.NewBillingService(cfg, profileRepo, stripeClient, logger),
		Sessions:   sessionSvc,
		Analysis:   service.NewAnalysisService(classifier.NewMock(nil), sessionSvc, analysisRepo, archive, cfg.MaxAudioBytes, logger),
		Reconciler: webhook.NewReconciler(cfg.StripeWebhookSecret, profileRepo, notifier, logger),
	}

	return NewHandler(cfg, svcs, logger), cleanup, nil
}

// NewHandler builds the routes over already constructed services.
func NewHandler(cfg *config.Config, svcs Services, logger zerolog.Logger) http.Handler {
	huma.NewError = handler.NewAPIError

	validate := validator.New(validator.WithRequiredStructEnabled())

	subscriptionHandler := handler.NewSubscriptionHandler(svcs.Billing, svcs.Reconciler, logger)
	userHandler := handler.NewUserHandler(svcs.Sessions, svcs.Analysis, logger)
	taxonomyHandler := handler.NewTaxonomyHandler()
	analysisHandler := handler.NewAnalysisHandler(svcs.Analysis, validate, cfg.MaxAudioBytes, logger)

	authMiddleware := middleware.AuthMiddleware(cfg.JWTSecret, logger)
	optionalAuthMiddleware := middleware.OptionalAuthMiddleware(cfg.JWTSecret, logger)

	v1, api := SetupHumaAPI(cfg, authMiddleware, optionalAuthMiddleware, analysisHandler, logger)
	RegisterRoutes(api, subscriptionHandler, userHandler, taxonomyHandler, logger)

	r := chi.NewRouter()
	r.Use(chimw.RequestID, chimw.RealIP, chimw.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, dto.HealthResponseDTO{Status: "ok"})
	})

	r.Mount("/v1", http.StripPrefix("/v1", v1))

	// Paths the web client used before /v1 existed
	r.Route("/api", func(r chi.Router) {
		r.Post("/checkout", forward(v1, "/checkout"))
		r.Post("/create-portal-session", forward(v1, "/portal-session"))
		r.Post("/webhooks", forward(v1, "/webhooks"))
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, dto.ErrorResponseDTO{Error: "Not found"})
	})

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "Stripe-Signature"},
		AllowCredentials: true,
	})

	return middleware.LoggerMiddleware(logger)(c.Handler(r))
}

// forward serves r on h as if it had been sent to path. The chi route context
// is dropped so h routes from scratch.
func forward(h http.Handler, path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r2 := r.Clone(context.WithValue(r.Context(), chi.RouteCtxKey, nil))
		r2.URL.Path = path
		r2.URL.RawPath = ""
		h.ServeHTTP(w, r2)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// poolConfig applies the connection settings the deployment needs: no TLS for
// a local database and the simple protocol behind Supabase's transaction pooler.
func poolConfig(cfg *config.Config) (*pgxpool.Config, error) {
	dsn := cfg.DBConnectionString
	if cfg.IsDevelopment() && !strings.Contains(dsn, "sslmode") {
		separator := " "
		if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
			if strings.Contains(dsn, "?") {
				separator = "&"
			} else {
				separator = "?"
			}
		}
		dsn += separator + "sslmode=disable"
	}

	pc, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	if !cfg.IsDevelopment() {
		pc.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	}
	pc.MaxConns = 25
	pc.MaxConnIdleTime = 5 * time.Minute
	return pc, nil
}

// getPortFromDSN extracts the port from a DSN string for logging.
func getPortFromDSN(dsn string) string {
	parts := strings.Split(dsn, ":")
	for i, part := range parts {
		if strings.Contains(part, "@") {
			// This part contains user:pass@host, next part is port
			if len(parts) > i+1 {
				portAndDB := strings.Split(parts[i+1], "/")
				if len(portAndDB) > 0 {
					return portAndDB[0]
				}
			}
		}
	}
	return "not_found"
}
