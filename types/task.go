package types

import "time"

// Task is an actionable dispatch unit generated from a help request.
// Exactly one non-first task may exist per (user, disaster) pair; older ones
// are replaced when a new request comes in. Tasks with FirstTask set are
// seeded by the onboarding flow and are never touched by the pipeline.
type Task struct {
	TaskID              string     `firestore:"task_id"`
	Description         string     `firestore:"description"`
	Status              TaskStatus `firestore:"status"`
	ActionDoneBy        string     `firestore:"action_done_by"`
	Roles               []Role     `firestore:"roles"`
	EmergencyType       string     `firestore:"emergency_type"`
	UrgencyLevel        Urgency    `firestore:"urgency_level"`
	Latitude            float64    `firestore:"latitude"`
	Longitude           float64    `firestore:"longitude"`
	HelpNeeded          string     `firestore:"help_needed"`
	UserID              string     `firestore:"user_id"`
	DisasterID          string     `firestore:"disaster_id"`
	IsFallback          bool       `firestore:"is_fallback"`
	FirstTask           bool       `firestore:"first_Task"`
	AIReasoning         string     `firestore:"ai_reasoning"`
	ResourceUtilization string     `firestore:"resource_utilization"`
	CreatedAt           time.Time  `firestore:"created_at"`
}

// UserRequest is the per-user record of the most recent help request.
// It is keyed by user id in the store, so writing one replaces the last.
type UserRequest struct {
	DisasterID    string        `firestore:"disaster_id"`
	Help          string        `firestore:"help"`
	UrgencyType   Urgency       `firestore:"urgency_type"`
	Latitude      float64       `firestore:"latitude"`
	Longitude     float64       `firestore:"longitude"`
	EmergencyType string        `firestore:"emergency_type"`
	TaskID        string        `firestore:"task_id"`
	Status        RequestStatus `firestore:"status"`
	Feedback      *string       `firestore:"feedback"`
	AssignedRoles []Role        `firestore:"assigned_roles"`
	AIReasoning   string        `firestore:"ai_reasoning"`
	UserID        string        `firestore:"userId"`
}
