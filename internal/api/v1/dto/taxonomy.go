package dto

import "meowscope/internal/taxonomy"

type TaxonomyResponseDTO struct {
	Categories []taxonomy.CategoryInfo `json:"categories"`
	Classes    []taxonomy.FGCClass     `json:"classes"`
}

type TaxonomyClassResponseDTO struct {
	taxonomy.FGCClass
	SoundTypeLabel string                `json:"sound_type_label"`
	CategoryInfo   taxonomy.CategoryInfo `json:"category_info"`
}

type HealthResponseDTO struct {
	Status string `json:"status"`
}
