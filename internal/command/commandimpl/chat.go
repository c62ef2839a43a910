package commandimpl

import (
	"encoding/json"
	"fmt"

	"github.com/fanhubapp/fanhub-client/internal/realtime"
)

// handleChat sends one text message over the socket channel. Delivery is
// fire-and-forget; the echo comes back as an inbound chat event like any
// other participant's message.
func (c *CommandImpl) handleChat(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: chat <message>")
	}
	if c.Realtime == nil {
		return fmt.Errorf("chat channel is not available")
	}
	if !c.limiter.Allow("chat") {
		return fmt.Errorf("slow down")
	}

	msg := realtime.ChatMessage{Body: joinArgs(args)}
	if current := c.Session.Current(); current != nil {
		msg.From = current.User.Username
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode chat message: %w", err)
	}

	if err := c.Realtime.Send(realtime.Event{Type: realtime.EventChatMessage, Payload: payload}); err != nil {
		return fmt.Errorf("chat send failed: %w", err)
	}
	return nil
}

// renderEvent prints the pushes worth interrupting the prompt for. Badge
// counts are the notifications poller's job, not handled here.
func (c *CommandImpl) renderEvent(ev realtime.Event) {
	switch ev.Type {
	case realtime.EventChatMessage:
		var msg realtime.ChatMessage
		if err := json.Unmarshal(ev.Payload, &msg); err != nil {
			c.Logger.Warn("Failed to decode chat event", "error", err)
			return
		}
		from := msg.From
		if from == "" {
			from = "anonymous"
		}
		c.printf("%s\n", c.Presenter.Info(fmt.Sprintf("[chat] @%s: %s", from, msg.Body)))
	case realtime.EventStoryCreated:
		c.printf("%s\n", c.Presenter.Info("a new story just landed, run 'stories' to see it"))
	}
}
