package handler

import (
	"context"
	"errors"

	"meowscope/internal/api/v1/dto"
	"meowscope/internal/api/v1/operation"
	"meowscope/internal/service"
	"meowscope/internal/webhook"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog"
)

// WebhookReconciler applies verified Stripe deliveries.
type WebhookReconciler interface {
	Handle(ctx context.Context, body []byte, signature string) (webhook.Outcome, error)
}

// SubscriptionHandler serves checkout, billing portal and Stripe webhook endpoints.
type SubscriptionHandler struct {
	billing    service.BillingService
	reconciler WebhookReconciler
	logger     zerolog.Logger
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(billing service.BillingService, reconciler WebhookReconciler, logger zerolog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{billing: billing, reconciler: reconciler, logger: logger}
}

// CreateCheckoutSession starts a Stripe Checkout for the enhanced tier
func (h *SubscriptionHandler) CreateCheckoutSession(ctx context.Context, input *operation.CreateCheckoutSessionInput) (*operation.CreateCheckoutSessionOutput, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	url, err := h.billing.CreateCheckoutSession(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return nil, huma.Error404NotFound("Profile not found")
		}
		return nil, huma.Error500InternalServerError("Failed to create checkout session", err)
	}
	return &operation.CreateCheckoutSessionOutput{Body: dto.SessionURLResponseDTO{URL: url}}, nil
}

// CreatePortalSession opens the Stripe customer portal
func (h *SubscriptionHandler) CreatePortalSession(ctx context.Context, input *operation.CreatePortalSessionInput) (*operation.CreatePortalSessionOutput, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	url, err := h.billing.CreatePortalSession(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrNoSubscription) {
			return nil, huma.Error404NotFound("No subscription found")
		}
		return nil, huma.Error500InternalServerError("Failed to create portal session", err)
	}
	return &operation.CreatePortalSessionOutput{Body: dto.SessionURLResponseDTO{URL: url}}, nil
}

// HandleStripeWebhook verifies and applies a Stripe event
func (h *SubscriptionHandler) HandleStripeWebhook(ctx context.Context, input *operation.StripeWebhookInput) (*operation.StripeWebhookOutput, error) {
	if input.Signature == "" {
		return nil, huma.Error400BadRequest("No signature")
	}

	_, err := h.reconciler.Handle(ctx, input.RawBody, input.Signature)
	switch {
	case err == nil:
		return &operation.StripeWebhookOutput{Body: dto.WebhookResponseDTO{Received: true}}, nil
	case errors.Is(err, webhook.ErrInvalidSignature):
		return nil, huma.Error400BadRequest("Invalid signature")
	case errors.Is(err, webhook.ErrMalformedEvent):
		return nil, huma.Error400BadRequest("Invalid event payload")
	default:
		h.logger.Error().Err(err).Msg("Webhook handler error")
		return nil, huma.Error500InternalServerError("Webhook handler failed")
	}
}
