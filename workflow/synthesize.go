package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"go-lifeline/types"
)

// modelTask is the structured response expected from the language model.
type modelTask struct {
	Description         string `json:"description"`
	Roles               string `json:"roles"`
	Reasoning           string `json:"reasoning"`
	ResourceUtilization string `json:"resource_utilization"`
}

// synthesizeTask derives the dispatch task for the request. The model path
// is tried first; any failure there (network, malformed JSON, empty
// description) drops to the deterministic keyword classifier. The stage
// itself always succeeds: a help request is never blocked on AI
// availability.
func (p *Pipeline) synthesizeTask(ctx context.Context, state State) State {
	task, err := p.modelTask(ctx, state)
	if err != nil {
		log.Printf("Model task synthesis failed for user %s: %v. Using fallback classifier.", state.UserID, err)
		task = fallbackTask(state)
	}
	state.GeneratedTask = task
	return state
}

func (p *Pipeline) modelTask(ctx context.Context, state State) (types.Task, error) {
	var task types.Task

	response, err := p.Completer.Complete(ctx, buildTaskPrompt(state))
	if err != nil {
		return task, err
	}

	var parsed modelTask
	if err := json.Unmarshal([]byte(stripCodeFence(response)), &parsed); err != nil {
		return task, fmt.Errorf("malformed model response: %w", err)
	}

	parsed.Description = strings.TrimSpace(parsed.Description)
	if parsed.Description == "" {
		return task, fmt.Errorf("empty description from model")
	}

	reasoning := parsed.Reasoning
	if reasoning == "" {
		reasoning = "AI-determined role assignment"
	}
	utilization := parsed.ResourceUtilization
	if utilization == "" {
		utilization = "none"
	}

	task = newTask(state, parsed.Description, expandRoles(parsed.Roles), false, reasoning)
	task.ResourceUtilization = utilization
	return task, nil
}

// expandRoles maps the model's single role token onto the role set. "both"
// covers volunteers and first responders; anything unrecognized defaults to
// volunteers so the task stays actionable.
func expandRoles(role string) []types.Role {
	switch types.Role(role) {
	case "both":
		return []types.Role{types.RoleVolunteer, types.RoleFirstResponder}
	case types.RoleVolunteer, types.RoleFirstResponder:
		return []types.Role{types.Role(role)}
	default:
		return []types.Role{types.RoleVolunteer}
	}
}

// stripCodeFence removes an optional markdown code fence wrapping the
// model's JSON.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// newTask fills the fields shared by the model and fallback paths.
func newTask(state State, description string, roles []types.Role, isFallback bool, reasoning string) types.Task {
	return types.Task{
		TaskID:              uuid.NewString(),
		Description:         description,
		Status:              types.TaskPending,
		ActionDoneBy:        "",
		Roles:               roles,
		EmergencyType:       state.EmergencyType,
		UrgencyLevel:        state.Urgency,
		Latitude:            state.Latitude,
		Longitude:           state.Longitude,
		HelpNeeded:          state.Help,
		UserID:              state.UserID,
		DisasterID:          state.DisasterID,
		IsFallback:          isFallback,
		FirstTask:           false,
		AIReasoning:         reasoning,
		ResourceUtilization: "none",
		CreatedAt:           time.Now().UTC(),
	}
}

// buildTaskPrompt embeds the request details, up to three nearby resources
// and the role-assignment policy into the coordinator prompt.
func buildTaskPrompt(state State) string {
	var resourceInfo strings.Builder
	if len(state.NearbyResources) > 0 {
		resourceInfo.WriteString("Available nearby resources:\n")
		for i, resource := range state.NearbyResources {
			if i >= 3 {
				break
			}
			name := resource.Name
			if name == "" {
				name = "Unknown"
			}
			resourceType := resource.Type
			if resourceType == "" {
				resourceType = "general"
			}
			description := resource.Description
			if description == "" {
				description = "No description"
			}
			contact := resource.Contact
			if contact == "" {
				contact = "No contact"
			}
			status := resource.Status
			if status == "" {
				status = "unknown"
			}
			fmt.Fprintf(&resourceInfo, "- %s: %s at (%s, %s)\n", name, resourceType, resource.Latitude, resource.Longitude)
			fmt.Fprintf(&resourceInfo, "  Description: %s\n", description)
			fmt.Fprintf(&resourceInfo, "  Contact: %s\n", contact)
			fmt.Fprintf(&resourceInfo, "  Status: %s\n", status)
		}
	} else {
		resourceInfo.WriteString("No nearby resources identified.")
	}

	return fmt.Sprintf(`You are an emergency response coordinator AI. A citizen has submitted an emergency request during a disaster. Your job is to create an actionable response task and assign the appropriate responder roles.

CRITICAL: Most requests are LEGITIMATE emergency needs. Only flag as inappropriate if the request is clearly sexual, abusive, or a prank (e.g., "send kiss", "sexy time", "haha joke", "prank call").

LEGITIMATE EMERGENCY NEEDS INCLUDE:
- Food, water, shelter (ALWAYS legitimate - assign to volunteers)
- Medical help, injuries, rescue (ALWAYS legitimate - assign to first responders)
- Evacuation, safety concerns (ALWAYS legitimate)
- Basic supplies, clothing, sanitation (ALWAYS legitimate - assign to volunteers)

EMERGENCY REQUEST DETAILS:
Emergency Type: %s
Help Needed: %s
Urgency Level: %s
Location: (%g, %g)

%s

AVAILABLE RESPONDER ROLES:
- "vol" (Volunteers): For food, water, shelter, supplies, basic needs, welfare checks, non-medical assistance
- "fr" (First Responders): For medical emergencies, injuries, rescue operations, fire, life-threatening situations
- "both": For large-scale disasters affecting many people, mass casualties, or complex situations needing both professional and volunteer support

ROLE ASSIGNMENT RULES:
1. Food/Water/Hunger/Thirst/Supplies -> "vol"
2. Medical/Injury/Bleeding/Rescue/Fire -> "fr"
3. Mass casualties/Large groups/Complex disasters -> "both"
4. If inappropriate (sexual/prank) -> create verification task for "vol"

Generate JSON response:
{
    "description": "Clear, actionable task for responders (1-2 sentences). For food requests say 'Deliver food supplies to person at location'. For medical say 'Provide medical assistance to injured person at location'.",
    "roles": "exactly one: 'vol', 'fr', or 'both'",
    "reasoning": "Brief explanation of role assignment",
    "resource_utilization": "How to use nearby resources or 'none'"
}

EXAMPLES:
- "Need food" -> {"description": "Deliver food supplies to hungry person at location", "roles": "vol"}
- "Send sexy kiss" -> {"description": "Verify request details and assess if legitimate emergency assistance needed", "roles": "vol"}
- "Broken leg" -> {"description": "Provide medical assistance to person with leg injury", "roles": "fr"}

Respond ONLY with valid JSON. DO NOT ask questions or inquire - CREATE A TASK.`,
		state.EmergencyType, state.Help, state.Urgency, state.Latitude, state.Longitude, resourceInfo.String())
}
