package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harsh12garg/Kirana-billing-software/internal/service"
)

type DashboardHandler struct {
	svc service.DashboardService
}

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Stats godoc
// @Summary Dashboard aggregates
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardStats
// @Router /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err, "Dashboard")
		return
	}
	c.JSON(http.StatusOK, stats)
}
