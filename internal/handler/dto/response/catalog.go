package response

import (
	"time"

	"institut-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ServiceResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"durationMinutes"`
	PriceCents      int       `json:"priceCents"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromServiceView(view *queries.ServiceView) *ServiceResponse {
	var resp ServiceResponse
	// Field names mirror the view; copier maps them by name.
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromServiceViews(views []*queries.ServiceView) []*ServiceResponse {
	out := make([]*ServiceResponse, len(views))
	for i, v := range views {
		out[i] = FromServiceView(v)
	}
	return out
}
