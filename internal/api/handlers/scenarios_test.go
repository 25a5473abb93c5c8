package handlers

import (
	"net/http"
	"testing"

	"trailsim/internal/api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListScenarios_ReturnsBuiltinPresets(t *testing.T) {
	router := newTestRouter(nil)

	rec := getJSON(router, "/api/v1/scenarios")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Scenarios []models.ScenarioInfo `json:"scenarios"`
	}
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Scenarios, 2)

	baseline := resp.Scenarios[0]
	assert.Equal(t, "baseline", baseline.ID)
	assert.Equal(t, 365, baseline.HorizonDays)
	assert.Equal(t, 0.9, baseline.Params.CleanupEfficiency)
	assert.Equal(t, 1, baseline.Params.CleanupFrequencyDays)

	alternative := resp.Scenarios[1]
	assert.Equal(t, "alternative", alternative.ID)
	assert.Equal(t, 3, alternative.Params.CleanupFrequencyDays)
	assert.Equal(t, 14, alternative.Params.MaintenanceFrequencyDays)
	assert.Equal(t, 20.0, alternative.Params.MaintenanceBoost)
	assert.NotEmpty(t, alternative.Description)
}
