package workflow

import (
	"context"

	"go-lifeline/types"
)

// persistTask enforces the one-live-task-per-(user, disaster) rule: every
// existing non-onboarding task for the pair is deleted before the new task
// is written. All store failures here are advisory; they are recorded as
// warnings and never block the user-facing response.
func (p *Pipeline) persistTask(ctx context.Context, state State) State {
	existing, err := p.Store.ListTasks(ctx, state.UserID, state.DisasterID)
	if err != nil {
		state = state.warnf("listing existing tasks for user %s: %v", state.UserID, err)
	}

	for _, task := range existing {
		if task.FirstTask || task.TaskID == "" {
			continue
		}
		if err := p.Store.DeleteTask(ctx, task.TaskID); err != nil {
			state = state.warnf("deleting superseded task %s: %v", task.TaskID, err)
		}
	}

	if err := p.Store.SaveTask(ctx, state.GeneratedTask); err != nil {
		state = state.warnf("saving task %s: %v", state.GeneratedTask.TaskID, err)
	}

	return state
}

// recordRequest replaces the user's request record. The record is keyed by
// user id, so delete-then-write gives natural upsert semantics; the delete
// failing (usually because no prior record exists) is not a problem.
func (p *Pipeline) recordRequest(ctx context.Context, state State) State {
	request := types.UserRequest{
		DisasterID:    state.DisasterID,
		Help:          state.Help,
		UrgencyType:   state.Urgency,
		Latitude:      state.Latitude,
		Longitude:     state.Longitude,
		EmergencyType: state.EmergencyType,
		TaskID:        state.GeneratedTask.TaskID,
		Status:        types.RequestSubmitted,
		Feedback:      nil,
		AssignedRoles: state.GeneratedTask.Roles,
		AIReasoning:   state.GeneratedTask.AIReasoning,
		UserID:        state.UserID,
	}

	if err := p.Store.DeleteUserRequest(ctx, state.UserID); err != nil {
		state = state.warnf("deleting prior request record for user %s: %v", state.UserID, err)
	}
	if err := p.Store.SaveUserRequest(ctx, state.UserID, request); err != nil {
		state = state.warnf("saving request record for user %s: %v", state.UserID, err)
	}

	state.UserRequest = request
	return state
}
