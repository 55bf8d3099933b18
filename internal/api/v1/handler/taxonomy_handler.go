package handler

import (
	"context"

	"meowscope/internal/api/v1/dto"
	"meowscope/internal/api/v1/operation"
	"meowscope/internal/taxonomy"

	"github.com/danielgtaylor/huma/v2"
)

// TaxonomyHandler serves the read-only FGC table.
type TaxonomyHandler struct{}

func NewTaxonomyHandler() *TaxonomyHandler {
	return &TaxonomyHandler{}
}

// ListTaxonomy returns the categories and the classes, optionally filtered by category
func (h *TaxonomyHandler) ListTaxonomy(ctx context.Context, input *operation.ListTaxonomyInput) (*operation.ListTaxonomyOutput, error) {
	classes := taxonomy.All()
	if input.Category != "" {
		c, ok := taxonomy.ParseCategory(input.Category)
		if !ok {
			return nil, huma.Error400BadRequest("Unknown category")
		}
		classes = taxonomy.ByCategory(c)
	}
	return &operation.ListTaxonomyOutput{
		Body: dto.TaxonomyResponseDTO{Categories: taxonomy.Categories(), Classes: classes},
	}, nil
}

// GetTaxonomyClass returns a single class by code
func (h *TaxonomyHandler) GetTaxonomyClass(ctx context.Context, input *operation.GetTaxonomyClassInput) (*operation.GetTaxonomyClassOutput, error) {
	class, ok := taxonomy.Get(input.Code)
	if !ok {
		return nil, huma.Error404NotFound("Class not found")
	}
	info, _ := taxonomy.CategoryOf(class.Category)
	return &operation.GetTaxonomyClassOutput{
		Body: dto.TaxonomyClassResponseDTO{
			FGCClass:       class,
			SoundTypeLabel: class.SoundType.Label(),
			CategoryInfo:   info,
		},
	}, nil
}
