package types

import (
	"fmt"
	"strings"
)

type DisasterStatus string

const (
	DisasterNotActive DisasterStatus = "not_active"
	DisasterActive    DisasterStatus = "active"
	DisasterRecovery  DisasterStatus = "recovery"
)

// ParseDisasterStatus validates a submitted status label against the known
// disaster states.
func ParseDisasterStatus(raw string) (DisasterStatus, error) {
	switch DisasterStatus(strings.ToLower(strings.TrimSpace(raw))) {
	case DisasterNotActive:
		return DisasterNotActive, nil
	case DisasterActive:
		return DisasterActive, nil
	case DisasterRecovery:
		return DisasterRecovery, nil
	default:
		return "", fmt.Errorf("unknown disaster status %q", raw)
	}
}

// Disaster is the incident context a help request is submitted against.
// The pipeline only reads it; the documents are owned by the intake side.
type Disaster struct {
	ID            string         `firestore:"-"`
	EmergencyType string         `firestore:"emergency_type"`
	Status        DisasterStatus `firestore:"status,omitempty"`
	Lat           float64        `firestore:"lat,omitempty"`
	Long          float64        `firestore:"long,omitempty"`
	Summary       string         `firestore:"summary,omitempty"`
}
