package api

import (
	"errors"
	"net/http"

	resdto "institut-booking/internal/handler/dto/response"
	"institut-booking/internal/pkg/errs"
	"institut-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogQueries: catalogQueries,
	}
}

// @Summary List services
// @Description List the bookable service catalog, ordered by category
// @Tags services
// @Produce json
// @Success 200 {array} resdto.ServiceResponse
// @Failure 503 {object} map[string]string
// @Router /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.catalogQueries.ListActiveServices(c.Request.Context())
	if err != nil {
		if errors.Is(err, errs.ErrCatalogUnavailable) {
			// The booking page shows an error state instead of an empty
			// catalog; the client may retry.
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Service catalog unavailable",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromServiceViews(services))
}
