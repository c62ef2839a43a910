package housekeeping

import "context"

type Client interface {
	// ScheduleCleanup starts the periodic view-history pruning job. Stops
	// cleanly when ctx is cancelled.
	ScheduleCleanup(ctx context.Context) error
}
