package dto

import "time"

type SessionResponseDTO struct {
	UserID             string  `json:"user_id"`
	Email              string  `json:"email"`
	Tier               string  `json:"tier" enum:"basic,enhanced"`
	SubscriptionStatus *string `json:"subscription_status"`
	HasCustomer        bool    `json:"has_customer"`
	CanManageBilling   bool    `json:"can_manage_billing"`
}

type HistoryEntryDTO struct {
	ID         string    `json:"id"`
	Category   string    `json:"category"`
	Confidence float64   `json:"confidence"`
	FGCCode    string    `json:"fgc_code"`
	CreatedAt  time.Time `json:"created_at"`
}

type HistoryResponseDTO struct {
	Entries []HistoryEntryDTO `json:"entries"`
	Limit   int               `json:"limit"`
	Offset  int               `json:"offset"`
}
