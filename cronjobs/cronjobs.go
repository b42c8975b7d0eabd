package cronjobs

import (
	"context"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/robfig/cron/v3"
	"go-lifeline/db"
)

// staleTaskAge is how long a pending task may sit unclaimed before the
// hourly sweep removes it. Onboarding tasks are exempt.
const staleTaskAge = 24 * time.Hour

// InitCronJobs starts the background maintenance schedule.
func InitCronJobs(firestoreClient *firestore.Client) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("@hourly", func() {
		cutoff := time.Now().UTC().Add(-staleTaskAge)
		purged, err := db.PurgeStaleTasks(context.Background(), firestoreClient, cutoff)
		if err != nil {
			log.Printf("Stale task purge failed: %v", err)
			return
		}
		if purged > 0 {
			log.Printf("Purged %d stale pending tasks older than %s", purged, staleTaskAge)
		}
	})
	if err != nil {
		log.Printf("Failed to schedule stale task purge: %v", err)
	}

	c.Start()
	log.Println("Cron jobs initialized")
	return c
}
