package model

import "time"

// AnalysisHistoryEntry is an append-only record of one completed analysis.
// Category and code are copied from the taxonomy at write time.
type AnalysisHistoryEntry struct {
	ID         string    `db:"id" json:"id"`
	UserID     string    `db:"user_id" json:"user_id"`
	Category   string    `db:"category" json:"category"`
	Confidence float64   `db:"confidence" json:"confidence"`
	FGCCode    string    `db:"fgc_code" json:"fgc_code"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
