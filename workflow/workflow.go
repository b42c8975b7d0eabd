package workflow

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"sort"
	"strconv"

	"go-lifeline/types"
)

// maxRankedResources caps how many nearby resources survive ranking.
const maxRankedResources = 5

// ErrInvalidCoordinate marks a submission whose latitude or longitude could
// not be parsed. A caller error, distinct from pipeline failures.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Store is the document-store surface the pipeline depends on.
type Store interface {
	GetDisaster(ctx context.Context, disasterID string) (types.Disaster, error)
	ListResources(ctx context.Context, disasterID string) ([]types.Resource, error)
	ListTasks(ctx context.Context, userID, disasterID string) ([]types.Task, error)
	SaveTask(ctx context.Context, task types.Task) error
	DeleteTask(ctx context.Context, taskID string) error
	SaveUserRequest(ctx context.Context, userID string, request types.UserRequest) error
	DeleteUserRequest(ctx context.Context, userID string) error
}

// Completer is the language model surface: prompt in, text out, fallible.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// State carries a request through the pipeline. Each stage receives a State
// by value and returns an augmented copy; nothing mutates a prior stage's
// view of it.
type State struct {
	DisasterID string
	UserID     string
	Help       string
	Urgency    types.Urgency
	Latitude   float64
	Longitude  float64

	EmergencyType   string
	NearbyResources []types.RankedResource
	GeneratedTask   types.Task
	UserRequest     types.UserRequest

	// Warnings collects advisory persistence failures. They never fail the
	// run; the caller logs them.
	Warnings []string
}

func (s State) warnf(format string, args ...interface{}) State {
	s.Warnings = append(s.Warnings, fmt.Sprintf(format, args...))
	return s
}

// Pipeline generates a dispatch task from a citizen help request. Stages run
// strictly in order: resolve disaster context, rank nearby resources,
// synthesize the task, persist it, record the request.
type Pipeline struct {
	Store     Store
	Completer Completer
}

func NewPipeline(store Store, completer Completer) *Pipeline {
	return &Pipeline{Store: store, Completer: completer}
}

// Process runs the full pipeline for one submitted help request. All inputs
// arrive as strings from the transport layer; coordinates are parsed and the
// urgency label normalized here, once, before any stage runs. The only
// fatal outcome after that is an unresolvable disaster context.
func (p *Pipeline) Process(ctx context.Context, disasterID, userID, help, urgencyType, latitude, longitude string) (State, error) {
	lat, err := strconv.ParseFloat(latitude, 64)
	if err != nil {
		return State{}, fmt.Errorf("%w: latitude %q", ErrInvalidCoordinate, latitude)
	}
	long, err := strconv.ParseFloat(longitude, 64)
	if err != nil {
		return State{}, fmt.Errorf("%w: longitude %q", ErrInvalidCoordinate, longitude)
	}

	state := State{
		DisasterID: disasterID,
		UserID:     userID,
		Help:       help,
		Urgency:    types.NormalizeUrgency(urgencyType),
		Latitude:   lat,
		Longitude:  long,
	}

	state, err = p.resolveContext(ctx, state)
	if err != nil {
		return State{}, err
	}
	state = p.rankResources(ctx, state)
	state = p.synthesizeTask(ctx, state)
	state = p.persistTask(ctx, state)
	state = p.recordRequest(ctx, state)

	for _, w := range state.Warnings {
		log.Printf("Warning: %s", w)
	}

	return state, nil
}

// AdminDeleteTask removes a task directly by ID, bypassing the pipeline.
func (p *Pipeline) AdminDeleteTask(ctx context.Context, taskID string) error {
	return p.Store.DeleteTask(ctx, taskID)
}

// resolveContext loads the disaster document and extracts its emergency
// category. Missing context is fatal: without it the request cannot be
// classified.
func (p *Pipeline) resolveContext(ctx context.Context, state State) (State, error) {
	disaster, err := p.Store.GetDisaster(ctx, state.DisasterID)
	if err != nil {
		return state, fmt.Errorf("disaster data not found: %w", err)
	}

	state.EmergencyType = disaster.EmergencyType
	if state.EmergencyType == "" {
		state.EmergencyType = "general emergency"
	}
	return state, nil
}

// rankResources lists the disaster's resources, attaches planar distance to
// the requester, sorts nearest-first and keeps the closest few. Retrieval
// failure degrades to an empty list rather than blocking the request.
func (p *Pipeline) rankResources(ctx context.Context, state State) State {
	resources, err := p.Store.ListResources(ctx, state.DisasterID)
	if err != nil {
		log.Printf("Error listing resources for disaster %s: %v. Continuing without resource context.", state.DisasterID, err)
		state.NearbyResources = []types.RankedResource{}
		return state
	}

	var ranked []types.RankedResource
	for _, resource := range resources {
		if resource.Latitude == "" || resource.Longitude == "" {
			continue
		}
		resLat, err := strconv.ParseFloat(resource.Latitude, 64)
		if err != nil {
			continue
		}
		resLong, err := strconv.ParseFloat(resource.Longitude, 64)
		if err != nil {
			continue
		}

		distance := math.Sqrt(
			(state.Latitude-resLat)*(state.Latitude-resLat) +
				(state.Longitude-resLong)*(state.Longitude-resLong),
		)
		ranked = append(ranked, types.RankedResource{
			Resource:   resource,
			ResourceID: resource.ID,
			Distance:   distance,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return sortableDistance(ranked[i].Distance) < sortableDistance(ranked[j].Distance)
	})

	if len(ranked) > maxRankedResources {
		ranked = ranked[:maxRankedResources]
	}
	state.NearbyResources = ranked
	return state
}

// sortableDistance pushes non-comparable distance values to the end.
func sortableDistance(d float64) float64 {
	if math.IsNaN(d) {
		return math.Inf(1)
	}
	return d
}
