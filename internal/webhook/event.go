package webhook

import (
	"bytes"
	"encoding/json"
	"fmt"

	"meowscope/internal/model"

	"github.com/stripe/stripe-go/v82"
)

// Event is a verified Stripe event decoded into the record for its kind.
// Concrete types are CheckoutCompleted, SubscriptionUpdated, SubscriptionDeleted,
// InvoicePaymentFailed and Unhandled.
type Event interface {
	EventID() string
	Type() stripe.EventType
}

// CheckoutCompleted is decoded from checkout.session.completed.
type CheckoutCompleted struct {
	ID             string
	SessionID      string
	UserID         string
	CustomerID     string
	SubscriptionID string
}

// SubscriptionUpdated is decoded from customer.subscription.updated.
type SubscriptionUpdated struct {
	ID             string
	SubscriptionID string
	Status         model.SubscriptionStatus
}

// SubscriptionDeleted is decoded from customer.subscription.deleted.
type SubscriptionDeleted struct {
	ID             string
	SubscriptionID string
}

// InvoicePaymentFailed is decoded from invoice.payment_failed.
// SubscriptionID is empty for one-off invoices.
type InvoicePaymentFailed struct {
	ID             string
	InvoiceID      string
	SubscriptionID string
}

// Unhandled is any event kind the reconciler does not act on.
type Unhandled struct {
	ID   string
	Kind stripe.EventType
}

func (e CheckoutCompleted) EventID() string       { return e.ID }
func (e CheckoutCompleted) Type() stripe.EventType { return stripe.EventTypeCheckoutSessionCompleted }

func (e SubscriptionUpdated) EventID() string { return e.ID }
func (e SubscriptionUpdated) Type() stripe.EventType {
	return stripe.EventTypeCustomerSubscriptionUpdated
}

func (e SubscriptionDeleted) EventID() string { return e.ID }
func (e SubscriptionDeleted) Type() stripe.EventType {
	return stripe.EventTypeCustomerSubscriptionDeleted
}

func (e InvoicePaymentFailed) EventID() string       { return e.ID }
func (e InvoicePaymentFailed) Type() stripe.EventType { return stripe.EventTypeInvoicePaymentFailed }

func (e Unhandled) EventID() string       { return e.ID }
func (e Unhandled) Type() stripe.EventType { return e.Kind }

// stripeRef accepts either an expanded object or a bare id.
type stripeRef string

func (r *stripeRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*r = ""
		return nil
	}
	if b[0] == '"' {
		var id string
		if err := json.Unmarshal(b, &id); err != nil {
			return err
		}
		*r = stripeRef(id)
		return nil
	}
	var obj struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	*r = stripeRef(obj.ID)
	return nil
}

type checkoutSessionObject struct {
	ID           string            `json:"id"`
	Customer     stripeRef         `json:"customer"`
	Subscription stripeRef         `json:"subscription"`
	Metadata     map[string]string `json:"metadata"`
}

type subscriptionObject struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type invoiceObject struct {
	ID           string    `json:"id"`
	Subscription stripeRef `json:"subscription"`
	Parent       *struct {
		SubscriptionDetails *struct {
			Subscription stripeRef `json:"subscription"`
		} `json:"subscription_details"`
	} `json:"parent"`
}

func (o invoiceObject) subscriptionID() string {
	if o.Subscription != "" {
		return string(o.Subscription)
	}
	if o.Parent != nil && o.Parent.SubscriptionDetails != nil {
		return string(o.Parent.SubscriptionDetails.Subscription)
	}
	return ""
}

// userIDFromMetadata reads the user reference written at checkout.
func userIDFromMetadata(md map[string]string) string {
	if id := md["userId"]; id != "" {
		return id
	}
	return md["user_id"]
}

// Decode turns a verified Stripe event into its typed record.
func Decode(event stripe.Event) (Event, error) {
	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted:
		var cs checkoutSessionObject
		if err := unmarshalObject(event, &cs); err != nil {
			return nil, err
		}
		return CheckoutCompleted{
			ID:             event.ID,
			SessionID:      cs.ID,
			UserID:         userIDFromMetadata(cs.Metadata),
			CustomerID:     string(cs.Customer),
			SubscriptionID: string(cs.Subscription),
		}, nil
	case stripe.EventTypeCustomerSubscriptionUpdated:
		var sub subscriptionObject
		if err := unmarshalObject(event, &sub); err != nil {
			return nil, err
		}
		if sub.ID == "" || sub.Status == "" {
			return nil, fmt.Errorf("%w: subscription id or status missing", ErrMalformedEvent)
		}
		return SubscriptionUpdated{
			ID:             event.ID,
			SubscriptionID: sub.ID,
			Status:         model.SubscriptionStatus(sub.Status),
		}, nil
	case stripe.EventTypeCustomerSubscriptionDeleted:
		var sub subscriptionObject
		if err := unmarshalObject(event, &sub); err != nil {
			return nil, err
		}
		if sub.ID == "" {
			return nil, fmt.Errorf("%w: subscription id missing", ErrMalformedEvent)
		}
		return SubscriptionDeleted{ID: event.ID, SubscriptionID: sub.ID}, nil
	case stripe.EventTypeInvoicePaymentFailed:
		var inv invoiceObject
		if err := unmarshalObject(event, &inv); err != nil {
			return nil, err
		}
		return InvoicePaymentFailed{
			ID:             event.ID,
			InvoiceID:      inv.ID,
			SubscriptionID: inv.subscriptionID(),
		}, nil
	default:
		return Unhandled{ID: event.ID, Kind: event.Type}, nil
	}
}

func unmarshalObject(event stripe.Event, v any) error {
	if event.Data == nil || len(event.Data.Raw) == 0 {
		return fmt.Errorf("%w: %s has no data object", ErrMalformedEvent, event.Type)
	}
	if err := json.Unmarshal(event.Data.Raw, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedEvent, event.Type, err)
	}
	return nil
}
