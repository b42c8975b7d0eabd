package db

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"go-lifeline/types"
)

// Store bundles the Firestore client behind the method set the workflow
// package consumes, so the pipeline can run against fakes in tests.
type Store struct {
	Client *firestore.Client
}

func NewStore(client *firestore.Client) *Store {
	return &Store{Client: client}
}

func (s *Store) GetDisaster(ctx context.Context, disasterID string) (types.Disaster, error) {
	return GetDisasterByID(ctx, s.Client, disasterID)
}

func (s *Store) ListResources(ctx context.Context, disasterID string) ([]types.Resource, error) {
	return ListResourcesForDisaster(ctx, s.Client, disasterID)
}

func (s *Store) ListTasks(ctx context.Context, userID, disasterID string) ([]types.Task, error) {
	return ListTasksByUserAndDisaster(ctx, s.Client, userID, disasterID)
}

func (s *Store) SaveTask(ctx context.Context, task types.Task) error {
	return SaveTask(ctx, s.Client, task)
}

func (s *Store) DeleteTask(ctx context.Context, taskID string) error {
	return DeleteTask(ctx, s.Client, taskID)
}

func (s *Store) SaveUserRequest(ctx context.Context, userID string, request types.UserRequest) error {
	return SaveUserRequest(ctx, s.Client, userID, request)
}

func (s *Store) DeleteUserRequest(ctx context.Context, userID string) error {
	return DeleteUserRequest(ctx, s.Client, userID)
}

func (s *Store) PurgeStaleTasks(ctx context.Context, cutoff time.Time) (int, error) {
	return PurgeStaleTasks(ctx, s.Client, cutoff)
}
