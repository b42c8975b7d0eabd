package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"go-lifeline/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GetDisasterByID retrieves a single disaster document by its ID.
func GetDisasterByID(ctx context.Context, client *firestore.Client, disasterID string) (types.Disaster, error) {
	var disaster types.Disaster

	docSnap, err := client.Collection(disastersCollection).Doc(disasterID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return disaster, fmt.Errorf("disaster %s does not exist", disasterID)
		}
		return disaster, fmt.Errorf("error getting disaster %s: %w", disasterID, err)
	}

	if err := docSnap.DataTo(&disaster); err != nil {
		return disaster, fmt.Errorf("error converting document %s to Disaster: %w", disasterID, err)
	}
	disaster.ID = docSnap.Ref.ID

	return disaster, nil
}

// UpdateDisasterStatus flips the status field on a disaster document.
func UpdateDisasterStatus(ctx context.Context, client *firestore.Client, disasterID string, newStatus types.DisasterStatus) error {
	_, err := client.Collection(disastersCollection).Doc(disasterID).Update(ctx, []firestore.Update{
		{Path: "status", Value: newStatus},
	})
	if err != nil {
		return fmt.Errorf("error updating status for disaster %s: %w", disasterID, err)
	}
	return nil
}
