package webhook

import (
	"context"
	"errors"
	"fmt"
	"time"

	"meowscope/internal/model"

	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v82"
	stripewebhook "github.com/stripe/stripe-go/v82/webhook"
)

var (
	ErrInvalidSignature = errors.New("invalid stripe signature")
	ErrMalformedEvent   = errors.New("malformed stripe event")
	ErrMissingMetadata  = errors.New("no user id in session metadata")
	ErrUpstream         = errors.New("profile store unavailable")
)

// ProfileStore is the write side of the profiles table used by the reconciler.
type ProfileStore interface {
	UpdateProfile(ctx context.Context, key model.ProfileKey, upd model.ProfileUpdate) (int64, error)
}

// TierChange is published after a reconciliation wrote a tier.
type TierChange struct {
	EventID              string                   `json:"event_id"`
	EventType            string                   `json:"event_type"`
	UserID               string                   `json:"user_id,omitempty"`
	StripeSubscriptionID string                   `json:"stripe_subscription_id,omitempty"`
	Tier                 model.Tier               `json:"tier"`
	SubscriptionStatus   model.SubscriptionStatus `json:"subscription_status,omitempty"`
	OccurredAt           time.Time                `json:"occurred_at"`
}

// TierNotifier is told about tier changes. Failures never fail a delivery.
type TierNotifier interface {
	NotifyTierChange(ctx context.Context, change TierChange) error
}

// Transition is the profile write planned for an event.
type Transition struct {
	Key    model.ProfileKey
	Update model.ProfileUpdate
}

// Outcome describes what a delivery did.
type Outcome struct {
	EventID      string
	EventType    stripe.EventType
	Applied      bool
	RowsAffected int64
}

// DefaultNotifyTimeout bounds how long a delivery waits on the tier notifier.
const DefaultNotifyTimeout = 5 * time.Second

// Reconciler verifies Stripe deliveries and applies them to profiles.
type Reconciler struct {
	secret        string
	store         ProfileStore
	notifier      TierNotifier
	notifyTimeout time.Duration
	now           func() time.Time
	logger        zerolog.Logger
}

// NewReconciler creates a Reconciler. notifier may be nil.
func NewReconciler(secret string, store ProfileStore, notifier TierNotifier, logger zerolog.Logger) *Reconciler {
	lg := logger.With().Str("service", "WebhookReconciler").Logger()
	return &Reconciler{
		secret:        secret,
		store:         store,
		notifier:      notifier,
		notifyTimeout: DefaultNotifyTimeout,
		now:           time.Now,
		logger:        lg,
	}
}

// Verify checks the Stripe-Signature header against the raw body.
func (r *Reconciler) Verify(body []byte, signature string) (stripe.Event, error) {
	if signature == "" {
		return stripe.Event{}, fmt.Errorf("%w: no signature", ErrInvalidSignature)
	}
	if r.secret == "" {
		return stripe.Event{}, fmt.Errorf("%w: no webhook secret configured", ErrInvalidSignature)
	}
	event, err := stripewebhook.ConstructEventWithOptions(body, signature, r.secret, stripewebhook.ConstructEventOptions{
		Tolerance:                stripewebhook.DefaultTolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return stripe.Event{}, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	return event, nil
}

// Handle verifies, decodes and applies one webhook delivery.
func (r *Reconciler) Handle(ctx context.Context, body []byte, signature string) (Outcome, error) {
	event, err := r.Verify(body, signature)
	if err != nil {
		r.logger.Warn().Err(err).Msg("Signature verification failed for Stripe webhook")
		return Outcome{}, err
	}
	out := Outcome{EventID: event.ID, EventType: event.Type}
	r.logger.Info().Str("event_id", event.ID).Str("event_type", string(event.Type)).Msg("Stripe webhook received")

	decoded, err := Decode(event)
	if err != nil {
		r.logger.Error().Err(err).Str("event_id", event.ID).Msg("Failed to decode Stripe event")
		return out, err
	}

	tr, ok, err := Plan(decoded)
	if err != nil {
		r.logger.Error().Err(err).Str("event_id", event.ID).Str("event_type", string(event.Type)).Msg("Cannot plan profile transition")
		return out, err
	}
	if !ok {
		r.logger.Debug().Str("event_id", event.ID).Str("event_type", string(event.Type)).Msg("No profile change for event")
		return out, nil
	}

	n, err := r.store.UpdateProfile(ctx, tr.Key, tr.Update)
	if err != nil {
		r.logger.Error().Err(err).Str("event_id", event.ID).Msg("Failed to update profile from Stripe event")
		return out, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	out.Applied = true
	out.RowsAffected = n

	lg := r.logger.With().
		Str("event_id", event.ID).
		Str("event_type", string(event.Type)).
		Str("user_id", tr.Key.UserID).
		Str("subscription_id", tr.Key.StripeSubscriptionID).
		Logger()
	if n == 0 {
		lg.Warn().Msg("Stripe event matched no profile")
		return out, nil
	}
	lg.Info().Int64("rows", n).Msg("Profile reconciled from Stripe event")

	if tr.Update.Tier != nil && r.notifier != nil {
		change := TierChange{
			EventID:              event.ID,
			EventType:            string(event.Type),
			UserID:               tr.Key.UserID,
			StripeSubscriptionID: tr.Key.StripeSubscriptionID,
			Tier:                 *tr.Update.Tier,
			OccurredAt:           r.now().UTC(),
		}
		if tr.Update.SubscriptionStatus != nil {
			change.SubscriptionStatus = *tr.Update.SubscriptionStatus
		}
		nctx, cancel := context.WithTimeout(ctx, r.notifyTimeout)
		err := r.notifier.NotifyTierChange(nctx, change)
		cancel()
		if err != nil {
			lg.Error().Err(err).Msg("Failed to publish tier change")
		}
	}
	return out, nil
}

// Plan maps a decoded event to the profile write it requires.
// ok is false when the event needs no write.
func Plan(ev Event) (tr Transition, ok bool, err error) {
	switch e := ev.(type) {
	case CheckoutCompleted:
		if e.UserID == "" {
			return Transition{}, false, fmt.Errorf("%w: checkout session %s", ErrMissingMetadata, e.SessionID)
		}
		upd := model.ProfileUpdate{
			Tier:               ptr(model.TierEnhanced),
			SubscriptionStatus: ptr(model.SubscriptionStatusActive),
		}
		if e.CustomerID != "" {
			upd.StripeCustomerID = ptr(e.CustomerID)
		}
		if e.SubscriptionID != "" {
			upd.StripeSubscriptionID = ptr(e.SubscriptionID)
		}
		return Transition{Key: model.ByUser(e.UserID), Update: upd}, true, nil
	case SubscriptionUpdated:
		return Transition{
			Key: model.BySubscription(e.SubscriptionID),
			Update: model.ProfileUpdate{
				Tier:               ptr(model.TierForStatus(e.Status)),
				SubscriptionStatus: ptr(e.Status),
			},
		}, true, nil
	case SubscriptionDeleted:
		return Transition{
			Key: model.BySubscription(e.SubscriptionID),
			Update: model.ProfileUpdate{
				Tier:               ptr(model.TierBasic),
				SubscriptionStatus: ptr(model.SubscriptionStatusCanceled),
			},
		}, true, nil
	case InvoicePaymentFailed:
		if e.SubscriptionID == "" {
			return Transition{}, false, nil
		}
		return Transition{
			Key:    model.BySubscription(e.SubscriptionID),
			Update: model.ProfileUpdate{SubscriptionStatus: ptr(model.SubscriptionStatusPastDue)},
		}, true, nil
	default:
		return Transition{}, false, nil
	}
}

func ptr[T any](v T) *T { return &v }
