package router

import (
	"net/http"
	"os"
	"strings"

	"meowscope/internal/api/v1/handler"
	"meowscope/internal/config"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Paths below /v1 that require a signed-in user.
var authenticatedPaths = map[string]bool{
	"/checkout":         true,
	"/portal-session":   true,
	"/users/me":         true,
	"/users/me/history": true,
}

// SetupHumaAPI creates a Huma API instance
func SetupHumaAPI(
	cfg *config.Config,
	authMiddleware func(http.Handler) http.Handler,
	optionalAuthMiddleware func(http.Handler) http.Handler,
	analysisHandler *handler.AnalysisHandler,
	logger zerolog.Logger,
) (*chi.Mux, huma.API) {
	chiRouter := chi.NewRouter()

	// Apply middleware based on path
	chiRouter.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := strings.TrimSuffix(r.URL.Path, "/")
			switch {
			case authenticatedPaths[path]:
				authMiddleware(next).ServeHTTP(w, r)
			case path == "/analyze":
				optionalAuthMiddleware(next).ServeHTTP(w, r)
			default:
				// Webhooks, taxonomy and the OpenAPI docs are public
				next.ServeHTTP(w, r)
			}
		})
	})

	version := os.Getenv("GIT_COMMIT_SHA")
	if version == "" {
		version = "development"
	}

	humaConfig := huma.DefaultConfig("MeowScope API v1", version)
	humaConfig.Info.Description = "Cat vocalization analysis with subscription tiers"
	humaConfig.Servers = []*huma.Server{{URL: cfg.AppURL + "/v1"}}

	api := humachi.New(chiRouter, humaConfig)

	// Multipart upload is served by a raw handler (streamed, size limited)
	chiRouter.Post("/analyze", analysisHandler.Analyze)

	logger.Info().Str("version", version).Msg("Huma API initialized for /v1")
	return chiRouter, api
}

// RegisterRoutes registers all Huma operations
func RegisterRoutes(
	api huma.API,
	subscriptionHandler *handler.SubscriptionHandler,
	userHandler *handler.UserHandler,
	taxonomyHandler *handler.TaxonomyHandler,
	logger zerolog.Logger,
) {
	// ========== BILLING OPERATIONS ==========
	huma.Register(api, huma.Operation{
		OperationID: "createCheckoutSession",
		Method:      http.MethodPost,
		Path:        "/checkout",
		Summary:     "Start enhanced tier checkout",
		Description: "Creates a Stripe Checkout session for the enhanced subscription and returns its URL",
		Tags:        []string{"billing"},
	}, subscriptionHandler.CreateCheckoutSession)

	huma.Register(api, huma.Operation{
		OperationID: "createPortalSession",
		Method:      http.MethodPost,
		Path:        "/portal-session",
		Summary:     "Open the billing portal",
		Description: "Creates a Stripe customer portal session for the authenticated user",
		Tags:        []string{"billing"},
	}, subscriptionHandler.CreatePortalSession)

	huma.Register(api, huma.Operation{
		OperationID: "stripeWebhook",
		Method:      http.MethodPost,
		Path:        "/webhooks",
		Summary:     "Receive Stripe events",
		Description: "Verifies the Stripe signature and reconciles the subscriber profile",
		Tags:        []string{"billing"},
	}, subscriptionHandler.HandleStripeWebhook)

	// ========== USER OPERATIONS ==========
	huma.Register(api, huma.Operation{
		OperationID: "getSession",
		Method:      http.MethodGet,
		Path:        "/users/me",
		Summary:     "Get session",
		Description: "Returns the tier and billing state of the authenticated user",
		Tags:        []string{"users"},
	}, userHandler.GetSession)

	huma.Register(api, huma.Operation{
		OperationID: "getHistory",
		Method:      http.MethodGet,
		Path:        "/users/me/history",
		Summary:     "Get analysis history",
		Description: "Lists the authenticated user's past analyses, newest first",
		Tags:        []string{"users"},
	}, userHandler.GetHistory)

	// ========== TAXONOMY OPERATIONS ==========
	huma.Register(api, huma.Operation{
		OperationID: "listTaxonomy",
		Method:      http.MethodGet,
		Path:        "/taxonomy",
		Summary:     "List FGC classes",
		Description: "Returns the five categories and the vocalization classes",
		Tags:        []string{"taxonomy"},
	}, taxonomyHandler.ListTaxonomy)

	huma.Register(api, huma.Operation{
		OperationID: "getTaxonomyClass",
		Method:      http.MethodGet,
		Path:        "/taxonomy/{code}",
		Summary:     "Get an FGC class",
		Tags:        []string{"taxonomy"},
	}, taxonomyHandler.GetTaxonomyClass)

	logger.Info().Msg("All operations registered successfully")
}
