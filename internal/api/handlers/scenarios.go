package handlers

import (
	"net/http"

	"trailsim/internal/api/models"
	"trailsim/internal/config"
	"trailsim/internal/model"

	"github.com/gin-gonic/gin"
)

// ScenarioHandler handles scenario preset requests
type ScenarioHandler struct{}

// NewScenarioHandler creates a new scenario handler
func NewScenarioHandler() *ScenarioHandler {
	return &ScenarioHandler{}
}

// ListScenarios handles GET /api/v1/scenarios
func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	presets := config.Builtin()
	scenarios := make([]models.ScenarioInfo, len(presets))
	for i, p := range presets {
		scenarios[i] = models.ScenarioInfo{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			HorizonDays: p.Scenario.HorizonDays,
			Params:      specFromScenario(p.Scenario),
		}
	}

	c.JSON(http.StatusOK, gin.H{"scenarios": scenarios})
}

// specFromScenario converts a model scenario to its wire shape.
func specFromScenario(sc model.Scenario) models.ScenarioSpec {
	return models.ScenarioSpec{
		LitterPerVisitor:         sc.LitterPerVisitor,
		CleanupFrequencyDays:     sc.CleanupFrequencyDays,
		CleanupEfficiency:        sc.CleanupEfficiency,
		ErosionRate:              sc.ErosionRate,
		MaintenanceFrequencyDays: sc.MaintenanceFrequencyDays,
		MaintenanceBoost:         sc.MaintenanceBoost,
		MinQuality:               sc.MinQuality,
		MaxQuality:               sc.MaxQuality,
		InitialQuality:           sc.InitialQuality,
	}
}
