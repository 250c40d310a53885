package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sipslabs/sips-api/internal/httperr"
	"github.com/sipslabs/sips-api/internal/httpresp"
	ucscheduling "github.com/sipslabs/sips-api/internal/usecase/scheduling"
)

type DashboardHandler struct {
	dashboardUC *ucscheduling.Dashboard
}

func NewDashboardHandler(dashboardUC *ucscheduling.Dashboard) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	dashboard, err := h.dashboardUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_build_dashboard", "Erro ao montar o painel.")
		return
	}

	httpresp.OK(c, dashboard)
}
