package queries

import (
	"context"

	"institut-booking/internal/infra"
	"institut-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type AppointmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	// FindByUserID returns the user's history joined to the catalog,
	// appointment date descending.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*AppointmentListItem, error)
}

type AppointmentQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, actorIsAdmin bool, id uuid.UUID) (*AppointmentView, error)
	// GetByIDSystem bypasses the ownership check, for read-after-write
	// inside the booking command and idempotent replays.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*AppointmentListItem, error)
}

type appointmentQueriesImpl struct {
	store AppointmentReadStore
}

func NewAppointmentQueries(store AppointmentReadStore) AppointmentQueries {
	return &appointmentQueriesImpl{store: store}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorIsAdmin bool, id uuid.UUID) (*AppointmentView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actorIsAdmin && view.UserID != actorID {
		// Hide other users' records behind not-found
		return nil, errs.ErrAppointmentNotFound
	}
	return view, nil
}

func (q *appointmentQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*AppointmentView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrAppointmentNotFound
		}
		return nil, errs.Wrap(err, "failed to find appointment")
	}
	return view, nil
}

func (q *appointmentQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*AppointmentListItem, error) {
	// An absent user yields an empty history, not an error.
	if userID == uuid.Nil {
		return []*AppointmentListItem{}, nil
	}

	items, err := q.store.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to find user appointments")
	}
	if items == nil {
		items = []*AppointmentListItem{}
	}
	return items, nil
}
