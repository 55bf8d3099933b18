package operation

import "meowscope/internal/api/v1/dto"

type ListTaxonomyInput struct {
	Category string `query:"category" doc:"Only return classes of this category: FOOD, LIFE, FIGHT, SEX or COMPLAINT"`
}

type ListTaxonomyOutput struct {
	Body dto.TaxonomyResponseDTO `json:"body"`
}

type GetTaxonomyClassInput struct {
	Code string `path:"code" doc:"FGC code, e.g. f140A"`
}

type GetTaxonomyClassOutput struct {
	Body dto.TaxonomyClassResponseDTO `json:"body"`
}
