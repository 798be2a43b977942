package api

import (
	"net/http"

	"bundlestay/internal/handler/httperr"
	"bundlestay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardQueries queries.DashboardQueries
}

func NewDashboardHandler(dashboardQueries queries.DashboardQueries) *DashboardHandler {
	return &DashboardHandler{
		dashboardQueries: dashboardQueries,
	}
}

// @Summary Revenue by date
// @Description Per-hotel daily revenue series over the whole booking ledger
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]queries.RevenuePoint
// @Failure 401 {object} map[string]string
// @Router /dashboard/revenue [get]
func (h *DashboardHandler) RevenueByDate(c *gin.Context) {
	series, err := h.dashboardQueries.RevenueByDate(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, series)
}

// @Summary Bookings by month
// @Description Per-hotel monthly booking counts over the whole booking ledger
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]map[string]int
// @Failure 401 {object} map[string]string
// @Router /dashboard/bookings [get]
func (h *DashboardHandler) BookingsByMonth(c *gin.Context) {
	counts, err := h.dashboardQueries.BookingsByMonth(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, counts)
}
