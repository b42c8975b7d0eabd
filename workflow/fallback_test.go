package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-lifeline/types"
)

func fallbackState(help string, urgency types.Urgency) State {
	return State{
		DisasterID:    "d1",
		UserID:        "u1",
		Help:          help,
		Urgency:       urgency,
		Latitude:      12.0,
		Longitude:     77.0,
		EmergencyType: "flood",
	}
}

func TestFallbackFoodAndWater(t *testing.T) {
	task := fallbackTask(fallbackState("Need food and water", types.UrgencyMedium))

	assert.Equal(t, []types.Role{types.RoleVolunteer}, task.Roles)
	assert.Contains(t, task.Description, "Deliver food and water supplies")
	assert.Contains(t, task.Description, "(12, 77)")
	assert.True(t, task.IsFallback)
	assert.False(t, task.FirstTask)
	assert.Equal(t, types.TaskPending, task.Status)
}

func TestFallbackMedicalHighUrgency(t *testing.T) {
	task := fallbackTask(fallbackState("Trapped under debris, bleeding badly", types.UrgencyHigh))

	assert.Equal(t, []types.Role{types.RoleFirstResponder}, task.Roles)
	assert.Contains(t, task.Description, "medical assistance")
}

func TestFallbackHighUrgencyWithoutMedicalKeywords(t *testing.T) {
	task := fallbackTask(fallbackState("roof about to collapse", types.UrgencyHigh))

	assert.Equal(t, []types.Role{types.RoleFirstResponder}, task.Roles)
}

func TestFallbackMassCasualtyEscalation(t *testing.T) {
	task := fallbackTask(fallbackState("multiple people bleeding", types.UrgencyMedium))

	assert.Equal(t, []types.Role{types.RoleVolunteer, types.RoleFirstResponder}, task.Roles)
	assert.Contains(t, task.Description, "Coordinate emergency response for multiple people")
}

func TestFallbackMassWithoutMedicalStaysCalm(t *testing.T) {
	// A group mention alone, with no medical signal and low urgency, is a
	// volunteer job.
	task := fallbackTask(fallbackState("group needs blankets", types.UrgencyLow))

	assert.Equal(t, []types.Role{types.RoleVolunteer}, task.Roles)
}

func TestFallbackInappropriateOverridesEverything(t *testing.T) {
	for _, help := range []string{"send kiss", "sexy time please", "haha just a prank", "multiple people bleeding lol"} {
		task := fallbackTask(fallbackState(help, types.UrgencyHigh))

		assert.Equal(t, []types.Role{types.RoleVolunteer}, task.Roles, "help=%q", help)
		assert.Contains(t, task.Description, "Verify request details", "help=%q", help)
	}
}

func TestFallbackGenericRequest(t *testing.T) {
	task := fallbackTask(fallbackState("need a phone charger", types.UrgencyLow))

	assert.Equal(t, []types.Role{types.RoleVolunteer}, task.Roles)
	assert.Contains(t, task.Description, "Assist person needing need a phone charger")
}

func TestFallbackAppendsClosestResourceHint(t *testing.T) {
	state := fallbackState("Need food", types.UrgencyLow)
	state.NearbyResources = []types.RankedResource{
		{Resource: types.Resource{Name: "Central Shelter"}, Distance: 0.1},
		{Resource: types.Resource{Name: "East Depot"}, Distance: 0.5},
	}

	task := fallbackTask(state)

	assert.Contains(t, task.Description, "Coordinate with Central Shelter for assistance.")
	assert.NotContains(t, task.Description, "East Depot")
}

func TestFallbackDeterministic(t *testing.T) {
	state := fallbackState("multiple people hurt and hungry", types.UrgencyHigh)
	state.NearbyResources = []types.RankedResource{
		{Resource: types.Resource{Name: "Central Shelter"}, Distance: 0.1},
	}

	first := fallbackTask(state)
	second := fallbackTask(state)

	// Task IDs are fresh per generation; everything derived is identical.
	require.NotEqual(t, first.TaskID, second.TaskID)
	assert.Equal(t, first.Roles, second.Roles)
	assert.Equal(t, first.Description, second.Description)
	assert.True(t, first.IsFallback)
	assert.True(t, second.IsFallback)
}
