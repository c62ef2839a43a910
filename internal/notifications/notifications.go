package notifications

import "context"

// Client tracks the unread notification count for the signed-in user. The
// count refreshes on a poll interval and immediately when the socket pushes
// a notification event.
type Client interface {
	SchedulePolling(ctx context.Context) error
	Unread() int
	// Subscribe receives the unread count after every refresh.
	Subscribe() <-chan int
}
