package types

// Resource is a physical aid point (shelter, supply depot, medical camp)
// registered against a disaster. Coordinates are stored as strings because
// the intake side ingests them verbatim from client submissions; documents
// with missing or unparsable coordinates are skipped during ranking.
type Resource struct {
	ID          string `firestore:"-"`
	DisasterID  string `firestore:"disaster_id"`
	Name        string `firestore:"name"`
	Type        string `firestore:"type"`
	Latitude    string `firestore:"latitude"`
	Longitude   string `firestore:"longitude"`
	Description string `firestore:"description"`
	Contact     string `firestore:"contact"`
	Status      string `firestore:"status"`
}

// RankedResource is a Resource plus its computed distance to the requester.
// Distance is planar Euclidean in coordinate-degree space, an approximation
// that is good enough for nearest-first ordering at disaster scale.
type RankedResource struct {
	Resource
	ResourceID string  `json:"resource_id"`
	Distance   float64 `json:"distance"`
}
