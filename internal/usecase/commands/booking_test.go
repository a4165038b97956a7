//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"institut-booking/internal/domain/schedule"
	"institut-booking/internal/infra/availability"
	"institut-booking/internal/pkg/clock"
	"institut-booking/internal/pkg/errs"
	"institut-booking/internal/usecase/commands"
	"institut-booking/internal/usecase/queries"
	"institut-booking/tests/common/builder"
	commandsmock "institut-booking/tests/mock/commands"
	queriesmock "institut-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

type bookingMocks struct {
	appointmentRepo    *commandsmock.MockAppointmentRepository
	idempotencyRepo    *commandsmock.MockIdempotencyRepository
	catalogQueries     *queriesmock.MockCatalogQueries
	appointmentQueries *queriesmock.MockAppointmentQueries
}

func newBookingCommands(t *testing.T, provider schedule.AvailabilityProvider) (commands.BookingCommands, *bookingMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &bookingMocks{
		appointmentRepo:    commandsmock.NewMockAppointmentRepository(ctrl),
		idempotencyRepo:    commandsmock.NewMockIdempotencyRepository(ctrl),
		catalogQueries:     queriesmock.NewMockCatalogQueries(ctrl),
		appointmentQueries: queriesmock.NewMockAppointmentQueries(ctrl),
	}

	times, err := schedule.ParseSlotTimes([]string{"09:00", "10:00", "14:30"})
	require.NoError(t, err)
	generator := schedule.NewGenerator(times, provider)

	cmd := commands.NewBookingCommands(
		m.appointmentRepo,
		m.idempotencyRepo,
		m.catalogQueries,
		m.appointmentQueries,
		generator,
		nil,
		clock.NewMockClock(testNow),
	)
	return cmd, m
}

func validInput(serviceID uuid.UUID) commands.SubmitBookingInput {
	return commands.SubmitBookingInput{
		ServiceID:       serviceID,
		Date:            "2026-10-20",
		Time:            "14:30",
		TotalPriceCents: 7500,
	}
}

// expectFreshSubmission sets up a first-seen idempotency key: TryInsert
// records the request hash and Get echoes it back in processing state, so
// Submit proceeds past the replay check.
func expectFreshSubmission(m *bookingMocks, key, userID uuid.UUID) {
	var recordedHash string
	m.idempotencyRepo.EXPECT().
		TryInsert(gomock.Any(), key, userID, "POST /appointments", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, _ string, hash string, _ time.Time) error {
			recordedHash = hash
			return nil
		})
	m.idempotencyRepo.EXPECT().
		Get(gomock.Any(), key, userID).
		DoAndReturn(func(_ context.Context, k, u uuid.UUID) (*queries.IdempotencyRecord, error) {
			return &queries.IdempotencyRecord{
				Key:         k,
				UserID:      u,
				Status:      "processing",
				RequestHash: recordedHash,
			}, nil
		})
}

func TestBookingCommands_Submit_NotAuthenticated(t *testing.T) {
	cmd, _ := newBookingCommands(t, availability.NewAlwaysAvailableProvider())

	result, err := cmd.Submit(context.Background(), validInput(uuid.New()), uuid.Nil, uuid.New())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, errs.ErrNotAuthenticated)
}

func TestBookingCommands_Submit_ReplaysCompletedRequest(t *testing.T) {
	cmd, m := newBookingCommands(t, availability.NewAlwaysAvailableProvider())

	userID := uuid.New()
	key := uuid.New()
	serviceID := uuid.New()
	appointmentID := uuid.New()

	m.idempotencyRepo.EXPECT().
		TryInsert(gomock.Any(), key, userID, "POST /appointments", gomock.Any(), gomock.Any()).
		Return(nil)
	m.idempotencyRepo.EXPECT().
		Get(gomock.Any(), key, userID).
		Return(&queries.IdempotencyRecord{
			Key:                 key,
			UserID:              userID,
			Status:              "completed",
			ResultAppointmentID: &appointmentID,
		}, nil)

	view := builder.NewAppointmentBuilder().
		WithUserID(userID).
		WithServiceID(serviceID).
		BuildView()
	view.ID = appointmentID
	m.appointmentQueries.EXPECT().
		GetByIDSystem(gomock.Any(), appointmentID).
		Return(view, nil)

	serviceView := builder.NewServiceBuilder().BuildView()
	serviceView.ID = serviceID
	m.catalogQueries.EXPECT().
		GetService(gomock.Any(), serviceID).
		Return(serviceView, nil)

	result, err := cmd.Submit(context.Background(), validInput(serviceID), userID, key)

	require.NoError(t, err)
	assert.True(t, result.IsReplayed)
	assert.Equal(t, appointmentID, result.Appointment.ID)
	assert.Equal(t, serviceID, result.Service.ID)
}

func TestBookingCommands_Submit_DuplicateKeyDifferentPayload(t *testing.T) {
	cmd, m := newBookingCommands(t, availability.NewAlwaysAvailableProvider())

	userID := uuid.New()
	key := uuid.New()

	m.idempotencyRepo.EXPECT().
		TryInsert(gomock.Any(), key, userID, "POST /appointments", gomock.Any(), gomock.Any()).
		Return(nil)
	m.idempotencyRepo.EXPECT().
		Get(gomock.Any(), key, userID).
		Return(&queries.IdempotencyRecord{
			Key:         key,
			UserID:      userID,
			Status:      "processing",
			RequestHash: "some-other-request",
		}, nil)

	result, err := cmd.Submit(context.Background(), validInput(uuid.New()), userID, key)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, errs.ErrDuplicateBooking)
}

func TestBookingCommands_Submit_InactiveService(t *testing.T) {
	cmd, m := newBookingCommands(t, availability.NewAlwaysAvailableProvider())

	userID := uuid.New()
	key := uuid.New()
	serviceView := builder.NewServiceBuilder().AsInactive().BuildView()

	expectFreshSubmission(m, key, userID)
	m.catalogQueries.EXPECT().
		GetService(gomock.Any(), serviceView.ID).
		Return(serviceView, nil)

	result, err := cmd.Submit(context.Background(), validInput(serviceView.ID), userID, key)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, errs.ErrServiceNotFound)
}

func TestBookingCommands_Submit_PriceMismatch(t *testing.T) {
	cmd, m := newBookingCommands(t, availability.NewAlwaysAvailableProvider())

	userID := uuid.New()
	key := uuid.New()
	serviceView := builder.NewServiceBuilder().WithPriceCents(9000).BuildView()

	expectFreshSubmission(m, key, userID)
	m.catalogQueries.EXPECT().
		GetService(gomock.Any(), serviceView.ID).
		Return(serviceView, nil)

	input := validInput(serviceView.ID)
	input.TotalPriceCents = 7500

	result, err := cmd.Submit(context.Background(), input, userID, key)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, errs.ErrPriceMismatch)
}

func TestBookingCommands_Submit_PastDate(t *testing.T) {
	cmd, m := newBookingCommands(t, availability.NewAlwaysAvailableProvider())

	userID := uuid.New()
	key := uuid.New()
	serviceView := builder.NewServiceBuilder().BuildView()

	expectFreshSubmission(m, key, userID)
	m.catalogQueries.EXPECT().
		GetService(gomock.Any(), serviceView.ID).
		Return(serviceView, nil)

	input := validInput(serviceView.ID)
	input.Date = "2026-10-01"

	result, err := cmd.Submit(context.Background(), input, userID, key)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, errs.ErrInvalidBookingDate)
}

func TestBookingCommands_Submit_SlotUnavailable(t *testing.T) {
	cmd, m := newBookingCommands(t, availability.NewNeverAvailableProvider())

	userID := uuid.New()
	key := uuid.New()
	serviceView := builder.NewServiceBuilder().BuildView()

	expectFreshSubmission(m, key, userID)
	m.catalogQueries.EXPECT().
		GetService(gomock.Any(), serviceView.ID).
		Return(serviceView, nil)

	result, err := cmd.Submit(context.Background(), validInput(serviceView.ID), userID, key)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, errs.ErrSlotUnavailable)
}

func TestBookingCommands_Submit_UnknownSlotTime(t *testing.T) {
	cmd, m := newBookingCommands(t, availability.NewAlwaysAvailableProvider())

	userID := uuid.New()
	key := uuid.New()
	serviceView := builder.NewServiceBuilder().BuildView()

	expectFreshSubmission(m, key, userID)
	m.catalogQueries.EXPECT().
		GetService(gomock.Any(), serviceView.ID).
		Return(serviceView, nil)

	input := validInput(serviceView.ID)
	input.Time = "03:15"

	result, err := cmd.Submit(context.Background(), input, userID, key)

	assert.Nil(t, result)
	// 03:15 parses as a clock time but is not one of the generated
	// slots, so the selection rejects it.
	assert.ErrorIs(t, err, errs.ErrSlotUnavailable)
}

func TestBookingCommands_Submit_IdempotencyStoreDown(t *testing.T) {
	cmd, m := newBookingCommands(t, availability.NewAlwaysAvailableProvider())

	userID := uuid.New()
	key := uuid.New()

	m.idempotencyRepo.EXPECT().
		TryInsert(gomock.Any(), key, userID, "POST /appointments", gomock.Any(), gomock.Any()).
		Return(errs.New("connection refused"))

	result, err := cmd.Submit(context.Background(), validInput(uuid.New()), userID, key)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, errs.ErrIdempotencyCheckFailed)
}
