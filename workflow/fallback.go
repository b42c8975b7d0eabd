package workflow

import (
	"fmt"
	"strings"

	"go-lifeline/types"
)

// Keyword sets for the deterministic classifier. Matching is substring
// containment against the lowercased help text.
var (
	inappropriateKeywords = []string{
		"sexy", "kiss", "love", "haha", "lol", "prank", "joke", "fake",
	}
	foodKeywords = []string{
		"food", "hungry", "hunger", "starving", "eat", "meal",
		"water", "thirsty", "drink",
	}
	medicalKeywords = []string{
		"medical", "injury", "hurt", "bleeding", "unconscious",
		"rescue", "trapped", "fire", "pain", "sick", "ill",
	}
	massKeywords = []string{
		"many people", "multiple people", "crowd", "group", "families", "everyone",
	}
)

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

// fallbackTask classifies the request with keyword rules when the model path
// fails. Inappropriate-content markers override everything and produce a
// verification task; otherwise medical and mass-casualty signals escalate
// the role set, food signals go to volunteers, and anything else becomes a
// generic assistance task. Deterministic: same inputs, same task.
func fallbackTask(state State) types.Task {
	helpLower := strings.ToLower(state.Help)

	if containsAny(helpLower, inappropriateKeywords) {
		task := newTask(state,
			"Verify request details and assess if legitimate emergency assistance is needed.",
			[]types.Role{types.RoleVolunteer},
			true,
			"Intelligent fallback assignment based on context analysis")
		return task
	}

	needsFood := containsAny(helpLower, foodKeywords)
	needsMedical := containsAny(helpLower, medicalKeywords)
	massCasualty := containsAny(helpLower, massKeywords)
	highUrgency := state.Urgency == types.UrgencyHigh

	var description string
	var roles []types.Role

	switch {
	case massCasualty && (needsMedical || highUrgency):
		description = fmt.Sprintf("Coordinate emergency response for multiple people needing %s at location (%g, %g).",
			state.Help, state.Latitude, state.Longitude)
		roles = []types.Role{types.RoleVolunteer, types.RoleFirstResponder}
	case needsMedical || highUrgency:
		description = fmt.Sprintf("Provide immediate medical assistance to person needing %s at location (%g, %g).",
			state.Help, state.Latitude, state.Longitude)
		roles = []types.Role{types.RoleFirstResponder}
	case needsFood:
		description = fmt.Sprintf("Deliver food and water supplies to person at location (%g, %g).",
			state.Latitude, state.Longitude)
		roles = []types.Role{types.RoleVolunteer}
	default:
		description = fmt.Sprintf("Assist person needing %s at location (%g, %g).",
			state.Help, state.Latitude, state.Longitude)
		roles = []types.Role{types.RoleVolunteer}
	}

	// Point responders at the closest ranked resource when one exists.
	if len(state.NearbyResources) > 0 {
		closest := state.NearbyResources[0].Name
		if closest == "" {
			closest = "nearby resource"
		}
		description += fmt.Sprintf(" Coordinate with %s for assistance.", closest)
	}

	return newTask(state, description, roles, true,
		"Intelligent fallback assignment based on context analysis")
}
