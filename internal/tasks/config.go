package tasks

import "time"

// Config controls the background task queue.
type Config struct {
	Workers           int
	ReleaseAfter      time.Duration
	CleanupInterval   time.Duration
	RetentionDuration time.Duration
}
