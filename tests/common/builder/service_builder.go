//go:build unit || e2e

package builder

import (
	"time"

	"institut-booking/internal/domain/catalog"
	reqdto "institut-booking/internal/handler/dto/request"
	"institut-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceBuilder struct {
	ID              uuid.UUID
	Name            string
	DurationMinutes int
	PriceCents      int
	Description     string
	Category        string
	Active          bool
}

func NewServiceBuilder() *ServiceBuilder {
	return &ServiceBuilder{
		ID:              uuid.New(),
		Name:            "Massage relaxant",
		DurationMinutes: 60,
		PriceCents:      7500,
		Description:     "Massage du corps entier aux huiles essentielles",
		Category:        "Massages",
		Active:          true,
	}
}

func (b *ServiceBuilder) With(mutate func(*ServiceBuilder)) *ServiceBuilder {
	mutate(b)
	return b
}

func (b *ServiceBuilder) BuildDomain() (*catalog.Service, error) {
	return catalog.NewService(b.Name, b.DurationMinutes, b.PriceCents, b.Description, b.Category, time.Now())
}

func (b *ServiceBuilder) BuildView() *queries.ServiceView {
	now := time.Now()
	return &queries.ServiceView{
		ID:              b.ID,
		Name:            b.Name,
		DurationMinutes: b.DurationMinutes,
		PriceCents:      b.PriceCents,
		Description:     b.Description,
		Category:        b.Category,
		Active:          b.Active,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *ServiceBuilder) BuildCreateRequestDTO() reqdto.CreateServiceRequest {
	return reqdto.CreateServiceRequest{
		Name:            b.Name,
		DurationMinutes: b.DurationMinutes,
		PriceCents:      b.PriceCents,
		Description:     b.Description,
		Category:        b.Category,
	}
}

// Fluent builder methods
func (b *ServiceBuilder) WithName(name string) *ServiceBuilder {
	b.Name = name
	return b
}

func (b *ServiceBuilder) WithPriceCents(cents int) *ServiceBuilder {
	b.PriceCents = cents
	return b
}

func (b *ServiceBuilder) WithCategory(category string) *ServiceBuilder {
	b.Category = category
	return b
}

func (b *ServiceBuilder) AsInactive() *ServiceBuilder {
	b.Active = false
	return b
}
