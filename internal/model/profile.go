package model

import "time"

// Tier is the subscription level that gates analysis detail.
type Tier string

const (
	TierBasic    Tier = "basic"
	TierEnhanced Tier = "enhanced"
)

// SubscriptionStatus mirrors the Stripe subscription status stored on a profile.
type SubscriptionStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
	SubscriptionStatusPastDue  SubscriptionStatus = "past_due"
	SubscriptionStatusTrialing SubscriptionStatus = "trialing"
)

// TierForStatus returns the tier a profile should hold for the given status.
// Only an active subscription grants the enhanced tier.
func TierForStatus(status SubscriptionStatus) Tier {
	if status == SubscriptionStatusActive {
		return TierEnhanced
	}
	return TierBasic
}

// Profile is the per-user subscriber record
type Profile struct {
	ID                   string              `db:"id" json:"id"`
	Email                string              `db:"email" json:"email"`
	Tier                 Tier                `db:"tier" json:"tier"`
	StripeCustomerID     *string             `db:"stripe_customer_id" json:"stripe_customer_id,omitempty"`
	StripeSubscriptionID *string             `db:"stripe_subscription_id" json:"stripe_subscription_id,omitempty"`
	SubscriptionStatus   *SubscriptionStatus `db:"subscription_status" json:"subscription_status,omitempty"`
	CreatedAt            time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time           `db:"updated_at" json:"updated_at"`
}

// HasCustomer reports whether the profile carries a Stripe customer reference.
func (p *Profile) HasCustomer() bool {
	return p != nil && p.StripeCustomerID != nil && *p.StripeCustomerID != ""
}

// ProfileUpdate lists the subscription fields a reconciliation may set.
// Nil fields are left untouched.
type ProfileUpdate struct {
	Tier                 *Tier
	StripeCustomerID     *string
	StripeSubscriptionID *string
	SubscriptionStatus   *SubscriptionStatus
}

// Empty reports whether the update would not change any column.
func (u ProfileUpdate) Empty() bool {
	return u.Tier == nil && u.StripeCustomerID == nil && u.StripeSubscriptionID == nil && u.SubscriptionStatus == nil
}

// ProfileKey selects the profile row a reconciliation targets.
type ProfileKey struct {
	UserID               string
	StripeSubscriptionID string
}

// ByUser targets the profile with the given user id.
func ByUser(userID string) ProfileKey { return ProfileKey{UserID: userID} }

// BySubscription targets the profile holding the given Stripe subscription id.
func BySubscription(subscriptionID string) ProfileKey {
	return ProfileKey{StripeSubscriptionID: subscriptionID}
}
