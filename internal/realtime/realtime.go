package realtime

import (
	"context"
	"encoding/json"
)

// Event kinds pushed by the backend over the socket.
const (
	EventNotification = "notification"
	EventStoryCreated = "story_created"
	EventStoryViewed  = "story_viewed"
	EventChatMessage  = "chat_message"
)

// Event is one push message from the socket channel.
type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type Client interface {
	// Start connects in the background and keeps the connection alive,
	// reconnecting with backoff until ctx is cancelled.
	Start(ctx context.Context) error
	// Subscribe registers an event sink. The returned func removes it.
	Subscribe() (<-chan Event, func())
	// Send publishes an event upstream. Fails when no connection is live.
	Send(ev Event) error
	Close() error
}

// ChatMessage is the payload of an EventChatMessage in both directions.
type ChatMessage struct {
	From string `json:"from,omitempty"`
	Body string `json:"body"`
}
