package websockets

import (
	"context"
)

// ConnectionRegistry tracks the live client connections that marketplace
// updates fan out to.
type ConnectionRegistry interface {
	AddConnection(ctx context.Context, connectionID string) error
	RemoveConnection(ctx context.Context, connectionID string) error
	GetAllConnections(ctx context.Context) ([]string, error)
}

// Publisher defines the interface for pushing marketplace messages to
// connected clients.
type Publisher interface {
	Publish(ctx context.Context, message Message) error
}
