package api

import (
	"errors"
	"net/http"

	resdto "institut-booking/internal/handler/dto/response"
	"institut-booking/internal/pkg/errs"
	"institut-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SlotHandler struct {
	slotQueries queries.SlotQueries
}

func NewSlotHandler(slotQueries queries.SlotQueries) *SlotHandler {
	return &SlotHandler{
		slotQueries: slotQueries,
	}
}

// @Summary List time slots
// @Description Generate the day's time slots with advisory availability
// @Tags slots
// @Produce json
// @Param date query string true "Booking date (YYYY-MM-DD)"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Router /slots [get]
func (h *SlotHandler) ListSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "date query parameter required",
		})
		return
	}

	slots, err := h.slotQueries.ListSlots(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidBookingDate) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid or past booking date",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotViews(slots))
}
