package handlers

import (
	"net/http"
	"strconv"

	"trailsim/internal/analysis"
	"trailsim/internal/api/models"
	"trailsim/internal/config"
	"trailsim/internal/model"

	"github.com/gin-gonic/gin"
)

// RankHandler ranks the builtin presets against the reference visitor series
type RankHandler struct{}

// NewRankHandler creates a new rank handler
func NewRankHandler() *RankHandler {
	return &RankHandler{}
}

// RankScenarios handles GET /api/v1/rank. The optional limit query
// parameter caps the number of rows; 0 means all.
func (h *RankHandler) RankScenarios(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "INVALID_REQUEST",
					Message: "limit must be a non-negative integer",
				},
			})
			return
		}
		limit = n
	}

	sampler, err := config.DefaultVisitors().Build()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: err.Error(),
			},
		})
		return
	}
	series := sampler.Series(model.DefaultScenario().HorizonDays)

	presets := config.Builtin()
	named := make([]analysis.NamedScenario, 0, len(presets))
	for _, p := range presets {
		named = append(named, analysis.NamedScenario{Name: p.Name, Scenario: p.Scenario})
	}

	ranked := analysis.RankByQuality(analysis.SummarizeAll(analysis.Compare(named, series)))
	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}

	rankings := make([]models.Ranking, len(ranked))
	for i, s := range ranked {
		rankings[i] = models.Ranking{
			Rank:              i + 1,
			Name:              s.Name,
			AvgTrailQuality:   s.AvgTrailQuality,
			AvgTotalLitter:    s.AvgTotalLitter,
			MinTrailQuality:   s.MinTrailQuality,
			MaxTrailQuality:   s.MaxTrailQuality,
			FinalTrailQuality: s.FinalTrailQuality,
		}
	}

	c.JSON(http.StatusOK, models.RankResponse{Rankings: rankings})
}
