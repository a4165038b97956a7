//go:build unit

package api_test

import (
	"errors"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"institut-booking/internal/handler/api"
	resdto "institut-booking/internal/handler/dto/response"
	"institut-booking/internal/pkg/errs"
	"institut-booking/internal/usecase/commands"
	"institut-booking/internal/usecase/queries"
	"institut-booking/tests/common/builder"
	"institut-booking/tests/common/httptest"
	"institut-booking/tests/common/testutil"
	commandsmock "institut-booking/tests/mock/commands"
	queriesmock "institut-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockAppointmentQueries
	handler      *api.AppointmentHandler
	currentUser  uuid.UUID
	asAdmin      bool
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAppointmentQueries(s.mockCtrl)
	s.handler = api.NewAppointmentHandler(s.mockCommands, s.mockQueries)
	s.currentUser = uuid.New()
	s.asAdmin = false

	// Mock middleware behavior: a bearer token authenticates currentUser
	authenticate := func(c *gin.Context) {
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			c.Set("user_id", s.currentUser)
			c.Set("is_admin", s.asAdmin)
		}
	}
	s.router.POST("/appointments", authenticate, s.handler.CreateAppointment)
	s.router.GET("/appointments", authenticate, s.handler.GetUserAppointments)
	s.router.GET("/appointments/:id", authenticate, s.handler.GetAppointment)
}

func (s *AppointmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

func (s *AppointmentHandlerTestSuite) postAppointment(body any, idempotencyKey string) *nethttptest.ResponseRecorder {
	headers := map[string]string{}
	if idempotencyKey != "" {
		headers["Idempotency-Key"] = idempotencyKey
	}
	return httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/appointments", body, "bearer-token", headers)
}

func (s *AppointmentHandlerTestSuite) TestCreateAppointment() {
	reqBody := builder.NewAppointmentBuilder().BuildCreateRequestDTO()
	idempotencyKey := uuid.New()

	s.Run("success: returns 201 Created for a new booking", func() {
		view := builder.NewAppointmentBuilder().WithUserID(s.currentUser).BuildView()
		serviceView := builder.NewServiceBuilder().BuildView()

		s.mockCommands.EXPECT().
			Submit(gomock.Any(), reqBody.ToInput(), s.currentUser, idempotencyKey).
			Return(&commands.SubmitBookingResult{
				Appointment: view,
				Service:     serviceView,
				IsReplayed:  false,
			}, nil).Times(1)

		rec := s.postAppointment(reqBody, idempotencyKey.String())

		var response resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("confirmed", response.Status)
		s.NotNil(response.Service)
	})

	s.Run("success: returns 200 OK for an idempotent replay", func() {
		view := builder.NewAppointmentBuilder().WithUserID(s.currentUser).BuildView()

		s.mockCommands.EXPECT().
			Submit(gomock.Any(), reqBody.ToInput(), s.currentUser, idempotencyKey).
			Return(&commands.SubmitBookingResult{
				Appointment: view,
				IsReplayed:  true,
			}, nil).Times(1)

		rec := s.postAppointment(reqBody, idempotencyKey.String())

		var response resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
	})

	s.Run("error: 401 without authentication", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/appointments", reqBody, "",
			map[string]string{"Idempotency-Key": idempotencyKey.String()})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "User not authenticated")
	})

	s.Run("error: 400 when the Idempotency-Key header is missing", func() {
		rec := s.postAppointment(reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "idempotency key required")
	})

	s.Run("error: 400 when the Idempotency-Key header is not a UUID", func() {
		rec := s.postAppointment(reqBody, "not-a-uuid")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid idempotency key format")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: service_id", mutate: testutil.Field("service_id", nil)},
			{name: "missing field: appointment_date", mutate: testutil.Field("appointment_date", nil)},
			{name: "missing field: appointment_time", mutate: testutil.Field("appointment_time", nil)},
			{name: "negative total_price_cents", mutate: testutil.Field("total_price_cents", -1)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := s.postAppointment(requestMap, idempotencyKey.String())
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "service not found",
				commandsError:  errs.ErrServiceNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Service not found",
			},
			{
				name:           "past booking date",
				commandsError:  errs.ErrInvalidBookingDate,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid or past booking date",
			},
			{
				name:           "slot unavailable",
				commandsError:  errs.ErrSlotUnavailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Time slot unavailable",
			},
			{
				name:           "price mismatch",
				commandsError:  errs.ErrPriceMismatch,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Total price does not match the catalog price",
			},
			{
				name:           "duplicate booking",
				commandsError:  errs.ErrDuplicateBooking,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Duplicate booking request with different parameters",
			},
			{
				name:           "submission failed",
				commandsError:  errs.Mark(errors.New("insert failed"), errs.ErrSubmissionFailed),
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Appointment submission failed, please retry",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					Submit(gomock.Any(), reqBody.ToInput(), s.currentUser, idempotencyKey).
					Return(nil, tc.commandsError).Times(1)

				rec := s.postAppointment(reqBody, idempotencyKey.String())
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AppointmentHandlerTestSuite) TestGetAppointment() {
	view := builder.NewAppointmentBuilder().WithUserID(s.currentUser).BuildView()

	s.Run("success: returns the appointment", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), s.currentUser, false, view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/"+view.ID.String(), nil, "bearer-token")

		var response resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Nil(response.Service)
	})

	s.Run("error: 400 for a malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid appointment ID format")
	})

	s.Run("error: 404 when hidden or absent", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), s.currentUser, false, view.ID).
			Return(nil, errs.ErrAppointmentNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/"+view.ID.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Appointment not found")
	})

	s.Run("error: 401 without authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/"+view.ID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "User not authenticated")
	})
}

func (s *AppointmentHandlerTestSuite) TestGetUserAppointments() {
	s.Run("success: returns the user's history", func() {
		items := []*queries.AppointmentListItem{
			builder.NewAppointmentBuilder().WithSlot("2026-11-02", "10:00").BuildListItem(),
			builder.NewAppointmentBuilder().WithSlot("2026-10-20", "14:30").OrphanedService().BuildListItem(),
		}
		s.mockQueries.EXPECT().
			ListByUser(gomock.Any(), s.currentUser).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments", nil, "bearer-token")

		var response []*resdto.AppointmentListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal("2026-11-02", response[0].Date)
		s.Equal(queries.FallbackServiceName, response[1].ServiceName)
	})

	s.Run("success: empty history stays an array, not null", func() {
		s.mockQueries.EXPECT().
			ListByUser(gomock.Any(), s.currentUser).
			Return([]*queries.AppointmentListItem{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments", nil, "bearer-token")

		var response []*resdto.AppointmentListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 401 without authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "User not authenticated")
	})
}
