package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/misuhub/receivables_app/internal/core/ports/services"
)

type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// registerReportingRoutes sets up the dashboard routes. The per-customer and
// global summaries are registered under their owning resources.
func registerReportingRoutes(v1 *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := &reportingHandler{reportingService: reportingService}

	v1.GET("/dashboard", h.getDashboard)
}

// getDashboard godoc
// @Summary Receivables dashboard
// @Description Returns the cached dashboard: global totals, aging buckets and top debtors.
// @Tags reporting
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	dashboard, err := h.reportingService.Dashboard(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Failed to build dashboard")
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
