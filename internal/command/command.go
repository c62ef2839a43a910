package command

import "context"

// Client runs the interactive command loop until EOF, quit or ctx
// cancellation.
type Client interface {
	HandleCommands(ctx context.Context) error
}
