package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"go-lifeline/types"
	"google.golang.org/api/iterator"
)

// ListTasksByUserAndDisaster retrieves every task owned by the given user
// for the given disaster, including onboarding tasks.
func ListTasksByUserAndDisaster(ctx context.Context, client *firestore.Client, userID, disasterID string) ([]types.Task, error) {
	var tasks []types.Task

	iter := client.Collection(tasksCollection).
		Where("user_id", "==", userID).
		Where("disaster_id", "==", disasterID).
		Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating tasks for user %s: %w", userID, err)
		}

		var task types.Task
		if err := doc.DataTo(&task); err != nil {
			log.Printf("Warning: Error converting document %s to Task: %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		if task.TaskID == "" {
			task.TaskID = doc.Ref.ID
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

// SaveTask writes a task document using the pre-generated task ID as the
// Firestore document ID.
func SaveTask(ctx context.Context, client *firestore.Client, task types.Task) error {
	if task.TaskID == "" {
		return fmt.Errorf("cannot save task with empty task_id")
	}
	_, err := client.Collection(tasksCollection).Doc(task.TaskID).Set(ctx, task)
	if err != nil {
		return fmt.Errorf("error saving task %s: %w", task.TaskID, err)
	}
	return nil
}

// DeleteTask removes a task document by its ID.
func DeleteTask(ctx context.Context, client *firestore.Client, taskID string) error {
	_, err := client.Collection(tasksCollection).Doc(taskID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("error deleting task %s: %w", taskID, err)
	}
	return nil
}

// PurgeStaleTasks deletes pending non-onboarding tasks created before the
// cutoff, using BulkWriter for efficient non-transactional deletes.
// Returns the number of deletes enqueued.
func PurgeStaleTasks(ctx context.Context, client *firestore.Client, cutoff time.Time) (int, error) {
	iter := client.Collection(tasksCollection).
		Where("status", "==", types.TaskPending).
		Where("created_at", "<", cutoff).
		Documents(ctx)
	defer iter.Stop()

	bw := client.BulkWriter(ctx)
	purged := 0

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return purged, fmt.Errorf("error iterating stale tasks: %w", err)
		}

		// Onboarding tasks are kept regardless of age.
		if first, ok := doc.Data()["first_Task"].(bool); ok && first {
			continue
		}

		if _, err := bw.Delete(doc.Ref); err != nil {
			log.Printf("Error enqueueing stale task %s for delete: %v", doc.Ref.ID, err)
			continue
		}
		purged++
	}

	bw.Flush()
	return purged, nil
}
