// Package pubsub is the in-process event bus. Content watchers publish change
// notifications on it and the content cache subscribes to them.
package pubsub

import (
	"context"
)

// TopicContentChanged is published whenever a file under the content directory changes.
const TopicContentChanged = "content.changed"

// Message is the structure passed between components on the bus.
type Message struct {
	// Topic identifies the channel the message belongs to (e.g., "content.changed").
	Topic string
	// Payload contains the raw message data.
	Payload []byte
	// Metadata carries arbitrary key-value pairs such as the changed path.
	Metadata map[string]string
}

// Handler defines the function signature for processing a received message.
type Handler func(ctx context.Context, msg Message) error

// Publisher defines the contract for sending messages to the bus.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber defines the contract for receiving messages from the bus.
type Subscriber interface {
	// Subscribe starts listening to the given topic and returns immediately.
	// Messages are handled in the background until ctx is canceled or the bus closes.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}
