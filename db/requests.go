package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"go-lifeline/types"
)

// SaveUserRequest writes the request record keyed by user ID, so each user
// has at most one live record and a new submission replaces the last.
func SaveUserRequest(ctx context.Context, client *firestore.Client, userID string, request types.UserRequest) error {
	_, err := client.Collection(requestsCollection).Doc(userID).Set(ctx, request)
	if err != nil {
		return fmt.Errorf("error saving request record for user %s: %w", userID, err)
	}
	return nil
}

// DeleteUserRequest removes the request record for a user. Deleting a
// missing document is not an error in Firestore, which suits the
// replace-by-id semantics here.
func DeleteUserRequest(ctx context.Context, client *firestore.Client, userID string) error {
	_, err := client.Collection(requestsCollection).Doc(userID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("error deleting request record for user %s: %w", userID, err)
	}
	return nil
}
