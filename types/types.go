package types

import "strings"

// Role is a responder category that a generated task can be assigned to.
type Role string

const (
	RoleVolunteer      Role = "vol" // food, water, shelter, supplies, welfare checks
	RoleFirstResponder Role = "fr"  // medical, rescue, fire, life-threatening
)

type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// NormalizeUrgency lowercases the submitted label and maps the legacy
// "moderate" value onto "medium". Unrecognized labels also fall back to
// medium so a bad label never blocks a help request.
func NormalizeUrgency(raw string) Urgency {
	switch Urgency(strings.ToLower(strings.TrimSpace(raw))) {
	case UrgencyLow:
		return UrgencyLow
	case UrgencyHigh:
		return UrgencyHigh
	default:
		return UrgencyMedium
	}
}

type TaskStatus string

const (
	TaskPending TaskStatus = "pending"
)

type RequestStatus string

const (
	RequestSubmitted RequestStatus = "submitted"
)
