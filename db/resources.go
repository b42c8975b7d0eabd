package db

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"go-lifeline/types"
	"google.golang.org/api/iterator"
)

// ListResourcesForDisaster retrieves all resource documents registered
// against the given disaster.
func ListResourcesForDisaster(ctx context.Context, client *firestore.Client, disasterID string) ([]types.Resource, error) {
	var resources []types.Resource

	iter := client.Collection(resourcesCollection).
		Where("disaster_id", "==", disasterID).
		Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating resources for disaster %s: %w", disasterID, err)
		}

		var resource types.Resource
		if err := doc.DataTo(&resource); err != nil {
			log.Printf("Warning: Error converting document %s to Resource: %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		resource.ID = doc.Ref.ID
		resources = append(resources, resource)
	}

	return resources, nil
}

// SaveResource writes a resource document, letting Firestore mint the ID.
func SaveResource(ctx context.Context, client *firestore.Client, resource types.Resource) (string, error) {
	docRef, _, err := client.Collection(resourcesCollection).Add(ctx, resource)
	if err != nil {
		return "", fmt.Errorf("error saving resource %s: %w", resource.Name, err)
	}
	return docRef.ID, nil
}

// UpdateResourceStatus updates the availability status of a resource.
func UpdateResourceStatus(ctx context.Context, client *firestore.Client, resourceID, newStatus string) error {
	_, err := client.Collection(resourcesCollection).Doc(resourceID).Update(ctx, []firestore.Update{
		{Path: "status", Value: newStatus},
	})
	if err != nil {
		return fmt.Errorf("error updating status for resource %s: %w", resourceID, err)
	}
	return nil
}

// DeleteResource removes a resource document by its ID.
func DeleteResource(ctx context.Context, client *firestore.Client, resourceID string) error {
	_, err := client.Collection(resourcesCollection).Doc(resourceID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("error deleting resource %s: %w", resourceID, err)
	}
	return nil
}
