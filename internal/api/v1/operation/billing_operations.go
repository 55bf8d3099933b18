package operation

import "meowscope/internal/api/v1/dto"

// Checkout and portal operations. The user comes from the auth context.

type CreateCheckoutSessionInput struct{}

type CreateCheckoutSessionOutput struct {
	Body dto.SessionURLResponseDTO `json:"body"`
}

type CreatePortalSessionInput struct{}

type CreatePortalSessionOutput struct {
	Body dto.SessionURLResponseDTO `json:"body"`
}

// Stripe webhook

type StripeWebhookInput struct {
	Signature string `header:"Stripe-Signature" doc:"Stripe signature header"`
	RawBody   []byte
}

type StripeWebhookOutput struct {
	Body dto.WebhookResponseDTO `json:"body"`
}
