package dto

import "meowscope/internal/taxonomy"

// AudioUploadDTO describes the multipart "audio" part of an analyze request.
type AudioUploadDTO struct {
	Filename    string `validate:"max=255"`
	ContentType string `validate:"omitempty,max=255,startswith=audio/|startswith=video/|eq=application/octet-stream"`
	Size        int64  `validate:"gte=0"`
}

type ClassDetailDTO struct {
	Code           string `json:"code"`
	Definition     string `json:"definition"`
	Vocalization   string `json:"vocalization"`
	Description    string `json:"description"`
	Gender         string `json:"gender,omitempty"`
	SoundType      string `json:"sound_type"`
	SoundTypeLabel string `json:"sound_type_label"`
}

type AlternativeDTO struct {
	Code       string  `json:"code"`
	Definition string  `json:"definition"`
	Category   string  `json:"category"`
	Color      string  `json:"color"`
	Confidence float64 `json:"confidence"`
}

// AnalysisResponseDTO is the tier-gated analysis. Detail and alternatives
// are omitted for the basic tier.
type AnalysisResponseDTO struct {
	Tier             string                `json:"tier"`
	Category         taxonomy.CategoryInfo `json:"category"`
	Confidence       float64               `json:"confidence"`
	Detail           *ClassDetailDTO       `json:"detail,omitempty"`
	Alternatives     []AlternativeDTO      `json:"alternatives,omitempty"`
	UpgradeAvailable bool                  `json:"upgrade_available"`
	Saved            bool                  `json:"saved"`
	HistoryID        string                `json:"history_id,omitempty"`
}
