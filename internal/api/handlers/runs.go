package handlers

import (
	"net/http"

	"trailsim/internal/api/models"
	"trailsim/internal/store"

	"github.com/gin-gonic/gin"
)

// RunsHandler serves saved runs
type RunsHandler struct {
	store *store.Store
}

// NewRunsHandler creates a new runs handler
func NewRunsHandler(st *store.Store) *RunsHandler {
	return &RunsHandler{store: st}
}

// ListRuns handles GET /api/v1/runs
func (h *RunsHandler) ListRuns(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "STORE_DISABLED",
				Message: "run persistence is not enabled; start the server with a database path",
			},
		})
		return
	}

	records, err := h.store.ListRuns(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "STORE_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	runs := make([]models.RunInfo, len(records))
	for i, r := range records {
		runs[i] = runInfo(r)
	}

	c.JSON(http.StatusOK, models.RunsResponse{Runs: runs})
}

// GetRun handles GET /api/v1/runs/:id
func (h *RunsHandler) GetRun(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "STORE_DISABLED",
				Message: "run persistence is not enabled; start the server with a database path",
			},
		})
		return
	}

	id := c.Param("id")
	rec, err := h.store.GetRun(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "STORE_ERROR",
				Message: err.Error(),
			},
		})
		return
	}
	if rec == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NOT_FOUND",
				Message: "no run with id " + id,
			},
		})
		return
	}

	days, err := h.store.DayRecords(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "STORE_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.RunDetailResponse{
		Run:    runInfo(*rec),
		Params: specFromScenario(rec.Scenario),
		Days:   convertDays(days),
	})
}

func runInfo(r store.RunRecord) models.RunInfo {
	return models.RunInfo{
		ID:                r.ID,
		Name:              r.Name,
		CreatedAt:         r.CreatedAt,
		HorizonDays:       r.Scenario.HorizonDays,
		AvgTotalLitter:    r.AvgTotalLitter,
		AvgTrailQuality:   r.AvgTrailQuality,
		MinTrailQuality:   r.MinTrailQuality,
		MaxTrailQuality:   r.MaxTrailQuality,
		FinalTotalLitter:  r.FinalTotalLitter,
		FinalTrailQuality: r.FinalTrailQuality,
	}
}
