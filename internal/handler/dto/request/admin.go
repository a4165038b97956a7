package request

import (
	"institut-booking/internal/usecase/commands"
)

type CreateServiceRequest struct {
	Name            string `json:"name" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=1"`
	PriceCents      int    `json:"price_cents" binding:"required,min=0"`
	Description     string `json:"description"`
	Category        string `json:"category" binding:"required"`
}

func (r CreateServiceRequest) ToInput() commands.CreateServiceInput {
	return commands.CreateServiceInput{
		Name:            r.Name,
		DurationMinutes: r.DurationMinutes,
		PriceCents:      r.PriceCents,
		Description:     r.Description,
		Category:        r.Category,
	}
}

// UpdateServiceRequest is a partial update; absent fields keep their
// current values.
type UpdateServiceRequest struct {
	Name            *string `json:"name,omitempty"`
	DurationMinutes *int    `json:"duration_minutes,omitempty" binding:"omitempty,min=1"`
	PriceCents      *int    `json:"price_cents,omitempty" binding:"omitempty,min=0"`
	Description     *string `json:"description,omitempty"`
	Category        *string `json:"category,omitempty"`
	Active          *bool   `json:"active,omitempty"`
}

func (r UpdateServiceRequest) ToInput() commands.UpdateServiceInput {
	return commands.UpdateServiceInput{
		Name:            r.Name,
		DurationMinutes: r.DurationMinutes,
		PriceCents:      r.PriceCents,
		Description:     r.Description,
		Category:        r.Category,
		Active:          r.Active,
	}
}
