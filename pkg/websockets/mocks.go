package websockets

import "context"

// NoOpPublisher is a publisher that does nothing. Used when no WebSocket
// endpoint is configured.
type NoOpPublisher struct{}

// Publish does nothing.
func (p *NoOpPublisher) Publish(ctx context.Context, message Message) error {
	return nil
}
