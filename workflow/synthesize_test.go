package workflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-lifeline/types"
)

func synthState() State {
	return State{
		DisasterID:    "d1",
		UserID:        "u1",
		Help:          "Broken leg",
		Urgency:       types.UrgencyHigh,
		Latitude:      12.0,
		Longitude:     77.0,
		EmergencyType: "earthquake",
	}
}

func TestSynthesizeUsesModelResponse(t *testing.T) {
	completer := &fakeCompleter{response: `{
		"description": "Provide medical assistance to person with leg injury",
		"roles": "fr",
		"reasoning": "Injury requires first responders",
		"resource_utilization": "Stage at Central Shelter"
	}`}
	p := NewPipeline(newFakeStore(), completer)

	state := p.synthesizeTask(context.Background(), synthState())
	task := state.GeneratedTask

	assert.False(t, task.IsFallback)
	assert.Equal(t, "Provide medical assistance to person with leg injury", task.Description)
	assert.Equal(t, []types.Role{types.RoleFirstResponder}, task.Roles)
	assert.Equal(t, "Injury requires first responders", task.AIReasoning)
	assert.Equal(t, "Stage at Central Shelter", task.ResourceUtilization)
	assert.Equal(t, types.TaskPending, task.Status)
	assert.NotEmpty(t, task.TaskID)
}

func TestSynthesizeStripsCodeFences(t *testing.T) {
	completer := &fakeCompleter{response: "```json\n{\"description\": \"Deliver food\", \"roles\": \"vol\"}\n```"}
	p := NewPipeline(newFakeStore(), completer)

	task := p.synthesizeTask(context.Background(), synthState()).GeneratedTask

	assert.False(t, task.IsFallback)
	assert.Equal(t, "Deliver food", task.Description)
	assert.Equal(t, []types.Role{types.RoleVolunteer}, task.Roles)
}

func TestSynthesizeExpandsBothRoles(t *testing.T) {
	completer := &fakeCompleter{response: `{"description": "Coordinate mass response", "roles": "both"}`}
	p := NewPipeline(newFakeStore(), completer)

	task := p.synthesizeTask(context.Background(), synthState()).GeneratedTask

	assert.Equal(t, []types.Role{types.RoleVolunteer, types.RoleFirstResponder}, task.Roles)
}

func TestSynthesizeDefaultsUnknownRole(t *testing.T) {
	completer := &fakeCompleter{response: `{"description": "Do something", "roles": "medic"}`}
	p := NewPipeline(newFakeStore(), completer)

	task := p.synthesizeTask(context.Background(), synthState()).GeneratedTask

	assert.Equal(t, []types.Role{types.RoleVolunteer}, task.Roles)
}

func TestSynthesizeDefaultsMissingOptionalFields(t *testing.T) {
	completer := &fakeCompleter{response: `{"description": "Deliver food", "roles": "vol"}`}
	p := NewPipeline(newFakeStore(), completer)

	task := p.synthesizeTask(context.Background(), synthState()).GeneratedTask

	assert.Equal(t, "AI-determined role assignment", task.AIReasoning)
	assert.Equal(t, "none", task.ResourceUtilization)
}

func TestSynthesizeFallsBackOnError(t *testing.T) {
	p := NewPipeline(newFakeStore(), downCompleter)

	task := p.synthesizeTask(context.Background(), synthState()).GeneratedTask

	assert.True(t, task.IsFallback)
	assert.NotEmpty(t, task.Roles)
}

func TestSynthesizeFallsBackOnMalformedJSON(t *testing.T) {
	completer := &fakeCompleter{response: "Sure! Here is the task you asked for."}
	p := NewPipeline(newFakeStore(), completer)

	task := p.synthesizeTask(context.Background(), synthState()).GeneratedTask

	assert.True(t, task.IsFallback)
}

func TestSynthesizeFallsBackOnEmptyDescription(t *testing.T) {
	completer := &fakeCompleter{response: `{"description": "   ", "roles": "fr"}`}
	p := NewPipeline(newFakeStore(), completer)

	task := p.synthesizeTask(context.Background(), synthState()).GeneratedTask

	assert.True(t, task.IsFallback)
}

func TestBuildTaskPromptSummarizesTopThreeResources(t *testing.T) {
	state := synthState()
	for _, name := range []string{"Alpha", "Bravo", "Charlie", "Delta"} {
		state.NearbyResources = append(state.NearbyResources, types.RankedResource{
			Resource: types.Resource{Name: name, Latitude: "12.1", Longitude: "77.1"},
		})
	}

	prompt := buildTaskPrompt(state)

	assert.Contains(t, prompt, "Alpha")
	assert.Contains(t, prompt, "Charlie")
	assert.NotContains(t, prompt, "Delta")
	assert.Contains(t, prompt, "Broken leg")
	assert.Contains(t, prompt, "earthquake")
}

func TestBuildTaskPromptWithoutResources(t *testing.T) {
	prompt := buildTaskPrompt(synthState())

	assert.Contains(t, prompt, "No nearby resources identified.")
}

func TestStripCodeFence(t *testing.T) {
	cases := map[string]string{
		"{\"a\":1}":                  `{"a":1}`,
		"```json\n{\"a\":1}\n```":    `{"a":1}`,
		"```\n{\"a\":1}\n```":        `{"a":1}`,
		"  ```json\n{\"a\":1}\n``` ": `{"a":1}`,
	}
	for in, want := range cases {
		require.Equal(t, want, stripCodeFence(in), "input=%q", in)
	}
}
