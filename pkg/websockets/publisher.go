package websockets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi"
	apigwtypes "github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi/types"
)

// PostToConnectionAPI is the slice of the API Gateway management client the
// broadcaster uses to deliver messages.
type PostToConnectionAPI interface {
	PostToConnection(ctx context.Context, params *apigatewaymanagementapi.PostToConnectionInput, optFns ...func(*apigatewaymanagementapi.Options)) (*apigatewaymanagementapi.PostToConnectionOutput, error)
}

// Broadcaster pushes wallet, listing, and depletion updates to every connected
// marketplace client. Connections that API Gateway reports as gone are pruned
// from the registry as they are discovered.
type Broadcaster struct {
	registry ConnectionRegistry
	client   PostToConnectionAPI
}

// NewBroadcaster creates a Broadcaster on an existing management API client.
func NewBroadcaster(registry ConnectionRegistry, client PostToConnectionAPI) *Broadcaster {
	return &Broadcaster{
		registry: registry,
		client:   client,
	}
}

// NewPublisher creates a Broadcaster wired to the given API Gateway endpoint.
func NewPublisher(registry ConnectionRegistry, apiEndpoint string) (*Broadcaster, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := apigatewaymanagementapi.NewFromConfig(cfg, func(o *apigatewaymanagementapi.Options) {
		o.BaseEndpoint = aws.String(apiEndpoint)
	})

	return NewBroadcaster(registry, client), nil
}

// Publish sends one marketplace message to all connected clients. A failed
// delivery is logged and skipped so one bad connection cannot stall the rest
// of the fan-out.
func (b *Broadcaster) Publish(ctx context.Context, message Message) error {
	connectionIDs, err := b.registry.GetAllConnections(ctx)
	if err != nil {
		return fmt.Errorf("failed to list connections: %w", err)
	}

	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal %s message: %w", message.Type, err)
	}

	var delivered, pruned int
	for _, connectionID := range connectionIDs {
		_, err := b.client.PostToConnection(ctx, &apigatewaymanagementapi.PostToConnectionInput{
			ConnectionId: aws.String(connectionID),
			Data:         payload,
		})
		if err == nil {
			delivered++
			continue
		}

		var goneErr *apigwtypes.GoneException
		if errors.As(err, &goneErr) {
			pruned++
			slog.Info("pruning stale connection", "connectionId", connectionID)
			if err := b.registry.RemoveConnection(ctx, connectionID); err != nil {
				slog.Error("failed to remove stale connection", "connectionId", connectionID, "error", err)
			}
			continue
		}

		slog.Error("failed to push marketplace update", "type", message.Type, "connectionId", connectionID, "error", err)
	}

	slog.Info("marketplace update fanned out", "type", message.Type, "delivered", delivered, "pruned", pruned)
	return nil
}
