package dto

type SessionURLResponseDTO struct {
	URL string `json:"url" doc:"Stripe hosted page to redirect the browser to"`
}

type WebhookResponseDTO struct {
	Received bool `json:"received"`
}

type ErrorResponseDTO struct {
	Error string `json:"error"`
}
