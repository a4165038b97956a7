package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"institut-booking/internal/domain/appointment"
	"institut-booking/internal/domain/catalog"
	"institut-booking/internal/domain/schedule"
	"institut-booking/internal/infra"
	"institut-booking/internal/pkg/clock"
	"institut-booking/internal/pkg/errs"
	"institut-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SubmitBookingInput struct {
	ServiceID       uuid.UUID
	Date            string
	Time            string
	TotalPriceCents int
}

type SubmitBookingResult struct {
	Appointment *queries.AppointmentView
	Service     *queries.ServiceView
	IsReplayed  bool
}

type AppointmentRepository interface {
	Create(ctx context.Context, tx pgx.Tx, appt *appointment.Appointment) (uuid.UUID, error)
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, key uuid.UUID, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) error
	Get(ctx context.Context, key uuid.UUID, userID uuid.UUID) (*queries.IdempotencyRecord, error)
	UpdateStatusCompleted(ctx context.Context, tx pgx.Tx, key uuid.UUID, userID uuid.UUID, resultAppointmentID uuid.UUID) error
}

type BookingCommands interface {
	// Submit persists exactly one confirmed appointment, or nothing at all.
	Submit(ctx context.Context, input SubmitBookingInput, userID uuid.UUID, idempotencyKey uuid.UUID) (*SubmitBookingResult, error)
}

type bookingCommandsImpl struct {
	appointmentRepo    AppointmentRepository
	idempotencyRepo    IdempotencyRepository
	catalogQueries     queries.CatalogQueries
	appointmentQueries queries.AppointmentQueries
	generator          *schedule.Generator
	db                 *pgxpool.Pool
	clock              clock.Clock
}

func NewBookingCommands(
	appointmentRepo AppointmentRepository,
	idempotencyRepo IdempotencyRepository,
	catalogQueries queries.CatalogQueries,
	appointmentQueries queries.AppointmentQueries,
	generator *schedule.Generator,
	db *pgxpool.Pool,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		appointmentRepo:    appointmentRepo,
		idempotencyRepo:    idempotencyRepo,
		catalogQueries:     catalogQueries,
		appointmentQueries: appointmentQueries,
		generator:          generator,
		db:                 db,
		clock:              clk,
	}
}

func (b *bookingCommandsImpl) Submit(
	ctx context.Context,
	input SubmitBookingInput,
	userID uuid.UUID,
	idempotencyKey uuid.UUID,
) (*SubmitBookingResult, error) {
	// An unauthenticated caller never reaches the store.
	if userID == uuid.Nil {
		return nil, errs.ErrNotAuthenticated
	}

	requestHash := b.calculateRequestHash(input)
	expiresAt := b.clock.Now().Add(24 * time.Hour)

	replayed, err := b.handleIdempotency(ctx, idempotencyKey, userID, requestHash, expiresAt)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		service, svcErr := b.catalogQueries.GetService(ctx, replayed.ServiceID)
		if svcErr != nil {
			service = nil
		}
		return &SubmitBookingResult{Appointment: replayed, Service: service, IsReplayed: true}, nil
	}

	return b.submitNew(ctx, input, userID, idempotencyKey)
}

func (b *bookingCommandsImpl) handleIdempotency(
	ctx context.Context,
	idempotencyKey, userID uuid.UUID,
	requestHash string,
	expiresAt time.Time,
) (*queries.AppointmentView, error) {
	if err := b.idempotencyRepo.TryInsert(ctx, idempotencyKey, userID, "POST /appointments", requestHash, expiresAt); err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}

	existing, err := b.idempotencyRepo.Get(ctx, idempotencyKey, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}

	switch existing.Status {
	case "completed":
		if existing.ResultAppointmentID != nil {
			return b.appointmentQueries.GetByIDSystem(ctx, *existing.ResultAppointmentID)
		}
		return nil, errs.New("completed request missing result appointment ID")

	case "processing":
		if existing.RequestHash != requestHash {
			return nil, errs.ErrDuplicateBooking
		}
		return nil, nil

	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (b *bookingCommandsImpl) submitNew(
	ctx context.Context,
	input SubmitBookingInput,
	userID, idempotencyKey uuid.UUID,
) (*SubmitBookingResult, error) {
	serviceView, err := b.catalogQueries.GetService(ctx, input.ServiceID)
	if err != nil {
		return nil, err
	}
	if !serviceView.Active {
		return nil, errs.ErrServiceNotFound
	}

	// The price is recomputed from the catalog row; the client total is only
	// checked, never trusted.
	if input.TotalPriceCents != serviceView.PriceCents {
		return nil, errs.ErrPriceMismatch
	}

	selection, bookingDate, slotTime, err := b.runSelection(ctx, serviceView, input)
	if err != nil {
		return nil, err
	}

	price, err := appointment.NewMoney(serviceView.PriceCents)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	appt, err := appointment.NewAppointment(userID, serviceView.ID, bookingDate, slotTime, price, b.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	view, err := b.executeBookingTransaction(ctx, appt, idempotencyKey, userID)
	if err != nil {
		selection.Fail(err.Error())
		return nil, err
	}
	selection.Confirm()

	return &SubmitBookingResult{Appointment: view, Service: serviceView, IsReplayed: false}, nil
}

// runSelection replays the service -> date -> slot workflow on the server
// side so the submission obeys the same ordering and availability rules as
// the selection UI.
func (b *bookingCommandsImpl) runSelection(
	ctx context.Context,
	serviceView *queries.ServiceView,
	input SubmitBookingInput,
) (*schedule.Selection, schedule.BookingDate, schedule.SlotTime, error) {
	var zero schedule.BookingDate
	var zeroTime schedule.SlotTime

	bookingDate, err := schedule.NewBookingDate(input.Date, b.clock.Now())
	if err != nil {
		return nil, zero, zeroTime, errs.Mark(err, errs.ErrInvalidBookingDate)
	}

	slotTime, err := schedule.NewSlotTime(input.Time)
	if err != nil {
		return nil, zero, zeroTime, errs.Mark(err, errs.ErrSlotUnavailable)
	}

	serviceEntity := catalog.ReconstructService(
		serviceView.ID,
		serviceView.Name,
		serviceView.DurationMinutes,
		serviceView.PriceCents,
		serviceView.Description,
		serviceView.Category,
		serviceView.Active,
		serviceView.CreatedAt,
		serviceView.UpdatedAt,
	)

	slots, err := b.generator.GenerateSlots(ctx, bookingDate)
	if err != nil {
		return nil, zero, zeroTime, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	selection := schedule.NewSelection()
	selection.SelectService(serviceEntity)
	if err := selection.SelectDate(bookingDate, slots); err != nil {
		return nil, zero, zeroTime, errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := selection.SelectSlot(bookingDate.String() + "-" + slotTime.String()); err != nil {
		return nil, zero, zeroTime, errs.Mark(err, errs.ErrSlotUnavailable)
	}
	if err := selection.BeginSubmit(); err != nil {
		return nil, zero, zeroTime, errs.Mark(err, errs.ErrDomainValidation)
	}

	return selection, bookingDate, slotTime, nil
}

func (b *bookingCommandsImpl) executeBookingTransaction(
	ctx context.Context,
	appt *appointment.Appointment,
	idempotencyKey, userID uuid.UUID,
) (*queries.AppointmentView, error) {
	tx, err := b.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && rollbackErr != pgx.ErrTxClosed {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	appointmentID, err := b.appointmentRepo.Create(ctx, tx, appt)
	if err != nil {
		return nil, mapAppointmentInsertErr(err)
	}

	if err := b.idempotencyRepo.UpdateStatusCompleted(ctx, tx, idempotencyKey, userID, appointmentID); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, errs.ErrSubmissionFailed)
	}

	// Read-after-write: the confirmation view is read only after the commit
	// completed, never concurrently with it.
	view, err := b.appointmentQueries.GetByIDSystem(ctx, appointmentID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return view, nil
}

// mapAppointmentInsertErr classifies a failed appointment INSERT.
// appointments has no FK on service_id, so the only FK is user_id: a
// violation means the account was deleted mid-session. Anything else is a
// retryable submission failure that leaves nothing behind, so the caller
// keeps its selections.
func mapAppointmentInsertErr(err error) error {
	if infra.IsKind(err, infra.KindForeignKeyViolated) {
		return errs.ErrNotAuthenticated
	}
	return errs.Mark(err, errs.ErrSubmissionFailed)
}

func (b *bookingCommandsImpl) calculateRequestHash(input SubmitBookingInput) string {
	data, _ := json.Marshal(input)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
