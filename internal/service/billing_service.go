package service

import (
	"context"
	"fmt"

	"meowscope/internal/config"
	"meowscope/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// CheckoutSessions creates Stripe Checkout sessions.
type CheckoutSessions interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// PortalSessions creates Stripe billing portal sessions.
type PortalSessions interface {
	New(params *stripe.BillingPortalSessionParams) (*stripe.BillingPortalSession, error)
}

// BillingService starts Stripe hosted flows for a signed-in user.
type BillingService interface {
	// CreateCheckoutSession returns the URL of a subscription checkout for the enhanced tier.
	CreateCheckoutSession(ctx context.Context, userID string) (string, error)
	// CreatePortalSession returns the URL of the customer portal.
	CreatePortalSession(ctx context.Context, userID string) (string, error)
}

type billingService struct {
	profiles repository.ProfileRepository
	checkout CheckoutSessions
	portal   PortalSessions
	priceID  string
	appURL   string
	logger   zerolog.Logger
}

// NewStripeClient returns a Stripe client bound to the configured secret key.
func NewStripeClient(cfg *config.Config) *client.API {
	return client.New(cfg.StripeSecretKey, nil)
}

// NewBillingService creates a BillingService backed by the Stripe client sc.
func NewBillingService(cfg *config.Config, profiles repository.ProfileRepository, sc *client.API, logger zerolog.Logger) BillingService {
	return newBillingService(cfg, profiles, sc.CheckoutSessions, sc.BillingPortalSessions, logger)
}

func newBillingService(cfg *config.Config, profiles repository.ProfileRepository, checkout CheckoutSessions, portal PortalSessions, logger zerolog.Logger) *billingService {
	lg := logger.With().Str("service", "BillingService").Logger()
	return &billingService{
		profiles: profiles,
		checkout: checkout,
		portal:   portal,
		priceID:  cfg.StripePriceEnhanced,
		appURL:   cfg.AppURL,
		logger:   lg,
	}
}

func (s *billingService) CreateCheckoutSession(ctx context.Context, userID string) (string, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to fetch profile for checkout session")
		return "", fmt.Errorf("%w: fetch profile: %v", ErrUpstream, err)
	}
	if profile == nil {
		s.logger.Warn().Str("user_id", userID).Msg("Profile not found for checkout session")
		return "", ErrNotFound
	}

	params := &stripe.CheckoutSessionParams{
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(s.priceID), Quantity: stripe.Int64(1)},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		SuccessURL: stripe.String(s.appURL + "/?success=true"),
		CancelURL:  stripe.String(s.appURL + "/?canceled=true"),
		Metadata:   map[string]string{"userId": userID},
	}
	if profile.HasCustomer() {
		params.Customer = stripe.String(*profile.StripeCustomerID)
	} else if profile.Email != "" {
		params.CustomerEmail = stripe.String(profile.Email)
	}
	params.Context = ctx

	sess, err := s.checkout.New(params)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to create Stripe checkout session")
		return "", fmt.Errorf("%w: create checkout session: %v", ErrUpstream, err)
	}
	s.logger.Info().Str("user_id", userID).Str("session_id", sess.ID).Msg("Checkout session created")
	return sess.URL, nil
}

func (s *billingService) CreatePortalSession(ctx context.Context, userID string) (string, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to fetch profile for portal session")
		return "", fmt.Errorf("%w: fetch profile: %v", ErrUpstream, err)
	}
	if !profile.HasCustomer() {
		s.logger.Warn().Str("user_id", userID).Msg("No Stripe customer ID found for user when creating portal session")
		return "", ErrNoSubscription
	}

	params := &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(*profile.StripeCustomerID),
		ReturnURL: stripe.String(s.appURL + "/"),
	}
	params.Context = ctx

	sess, err := s.portal.New(params)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to create Stripe billing portal session")
		return "", fmt.Errorf("%w: create billing portal session: %v", ErrUpstream, err)
	}
	return sess.URL, nil
}
