package api

import (
	"errors"
	"net/http"

	reqdto "institut-booking/internal/handler/dto/request"
	resdto "institut-booking/internal/handler/dto/response"
	"institut-booking/internal/handler/middleware"
	"institut-booking/internal/pkg/errs"
	"institut-booking/internal/usecase/commands"
	"institut-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	bookingCommands    commands.BookingCommands
	appointmentQueries queries.AppointmentQueries
}

func NewAppointmentHandler(
	bookingCommands commands.BookingCommands,
	appointmentQueries queries.AppointmentQueries,
) *AppointmentHandler {
	return &AppointmentHandler{
		bookingCommands:    bookingCommands,
		appointmentQueries: appointmentQueries,
	}
}

// @Summary Book an appointment
// @Description Submit a confirmed slot selection with an idempotency key
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.CreateAppointmentRequest true "Appointment request"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /appointments [post]
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	idempotencyKey, err := h.getIdempotencyKey(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	var req reqdto.CreateAppointmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bookingCommands.Submit(c.Request.Context(), req.ToInput(), userID, idempotencyKey)
	if err != nil {
		h.writeSubmitError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromAppointmentView(result.Appointment, result.Service))
}

func (h *AppointmentHandler) writeSubmitError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
	case errors.Is(err, errs.ErrServiceNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Service not found",
		})
	case errors.Is(err, errs.ErrInvalidBookingDate):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or past booking date",
		})
	case errors.Is(err, errs.ErrSlotUnavailable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Time slot unavailable",
		})
	case errors.Is(err, errs.ErrPriceMismatch):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Total price does not match the catalog price",
		})
	case errors.Is(err, errs.ErrDuplicateBooking):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Duplicate booking request with different parameters",
		})
	case errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Domain validation failed",
		})
	case errors.Is(err, errs.ErrSubmissionFailed):
		// Nothing was persisted; the client keeps its selection and may
		// retry the same confirm action.
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Appointment submission failed, please retry",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

// @Summary Get appointment
// @Description Get one appointment by ID
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}
	isAdmin, _ := middleware.GetIsAdmin(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment ID format",
		})
		return
	}

	view, err := h.appointmentQueries.GetByID(c.Request.Context(), userID, isAdmin, id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrAppointmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Appointment not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentView(view, nil))
}

// @Summary Get appointment history
// @Description List the current user's appointments, newest first
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AppointmentListResponse
// @Failure 401 {object} map[string]string
// @Router /appointments [get]
func (h *AppointmentHandler) GetUserAppointments(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	items, err := h.appointmentQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentListItems(items))
}

func (h *AppointmentHandler) getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	keyStr := c.GetHeader("Idempotency-Key")
	if keyStr == "" {
		return uuid.Nil, errs.ErrIdempotencyKeyRequired
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return uuid.Nil, errors.New("invalid idempotency key format")
	}

	return key, nil
}
