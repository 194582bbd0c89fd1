package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/estateview/estateview/internal/stats"
	appErrors "github.com/estateview/estateview/pkg/errors"
	"github.com/estateview/estateview/pkg/logger"
	"github.com/estateview/estateview/pkg/response"
)

// DashboardHandler serves the aggregated statistics snapshot.
type DashboardHandler struct {
	agg *stats.Aggregator
	log *zap.Logger
}

// NewDashboardHandler constructs the dashboard handler.
func NewDashboardHandler(agg *stats.Aggregator) (*DashboardHandler, error) {
	if agg == nil {
		return nil, errors.New("dashboard handler: aggregator is required")
	}
	return &DashboardHandler{agg: agg, log: logger.WithModule("handlers.dashboard")}, nil
}

// Snapshot computes and returns the full dashboard payload. The snapshot is
// all-or-nothing: a failed sub-query yields an error response, never a
// partially filled dashboard.
func (h *DashboardHandler) Snapshot(c *gin.Context) {
	snapshot, err := h.agg.Snapshot(c.Request.Context())
	if err != nil {
		h.log.Error("snapshot failed", zap.Error(err))
		response.Error(c, appErrors.ErrDashboardUnavailable.WithInternal(err))
		return
	}

	response.Success(c, http.StatusOK, snapshot)
}
