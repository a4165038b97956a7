package api

import (
	"errors"
	"net/http"

	reqdto "institut-booking/internal/handler/dto/request"
	resdto "institut-booking/internal/handler/dto/response"
	"institut-booking/internal/pkg/errs"
	"institut-booking/internal/usecase/commands"
	"institut-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	adminCommands commands.AdminCommands
	adminQueries  queries.AdminQueries
}

func NewAdminHandler(adminCommands commands.AdminCommands, adminQueries queries.AdminQueries) *AdminHandler {
	return &AdminHandler{
		adminCommands: adminCommands,
		adminQueries:  adminQueries,
	}
}

// @Summary Dashboard stats
// @Description Aggregate figures for the admin dashboard header
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.AdminStatsResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/stats [get]
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.adminQueries.GetStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAdminStatsView(stats))
}

// @Summary Create service
// @Description Add a service to the catalog
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateServiceRequest true "Service"
// @Success 201 {object} resdto.ServiceCollectionResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/services [post]
func (h *AdminHandler) CreateService(c *gin.Context) {
	var req reqdto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, all, err := h.adminCommands.CreateService(c.Request.Context(), req.ToInput())
	if err != nil {
		h.writeAdminError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.ServiceCollectionResponse{
		Service:  resdto.FromServiceView(view),
		Services: resdto.FromServiceViews(all),
	})
}

// @Summary Update service
// @Description Partially update a catalog service
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Param request body reqdto.UpdateServiceRequest true "Fields to change"
// @Success 200 {object} resdto.ServiceCollectionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/services/{id} [patch]
func (h *AdminHandler) UpdateService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid service ID format",
		})
		return
	}

	var req reqdto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, all, err := h.adminCommands.UpdateService(c.Request.Context(), id, req.ToInput())
	if err != nil {
		h.writeAdminError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ServiceCollectionResponse{
		Service:  resdto.FromServiceView(view),
		Services: resdto.FromServiceViews(all),
	})
}

// @Summary Delete service
// @Description Deactivate a service (or remove it with ?hard=true)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Param hard query bool false "Remove the row instead of deactivating"
// @Success 200 {object} resdto.ServiceCollectionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/services/{id} [delete]
func (h *AdminHandler) DeleteService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid service ID format",
		})
		return
	}

	hard := c.Query("hard") == "true"

	all, err := h.adminCommands.DeleteService(c.Request.Context(), id, hard)
	if err != nil {
		h.writeAdminError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ServiceCollectionResponse{
		Services: resdto.FromServiceViews(all),
	})
}

func (h *AdminHandler) writeAdminError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrServiceNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Service not found",
		})
	case errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Domain validation failed",
		})
	case errors.Is(err, errs.ErrCatalogUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Service catalog unavailable",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
