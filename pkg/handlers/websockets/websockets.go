package websockets

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	ws "github.com/restart-exchange/material-exchange/pkg/websockets"
)

// Handler registers and unregisters the marketplace client connections that
// trade updates are pushed to. Clients never send anything meaningful; the
// socket is a one-way notification channel.
type Handler struct {
	registry ws.ConnectionRegistry
}

// NewHandler creates a new Handler.
func NewHandler(registry ws.ConnectionRegistry) *Handler {
	return &Handler{
		registry: registry,
	}
}

// HandleConnect registers a new marketplace client connection.
func (h *Handler) HandleConnect(ctx context.Context, request events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	slog.Info("marketplace client connected", "connectionId", request.RequestContext.ConnectionID)

	if err := h.registry.AddConnection(ctx, request.RequestContext.ConnectionID); err != nil {
		slog.Error("failed to register connection", "error", err)
		return events.APIGatewayProxyResponse{StatusCode: 500}, err
	}

	return events.APIGatewayProxyResponse{StatusCode: 200}, nil
}

// HandleDisconnect removes a departed client connection.
func (h *Handler) HandleDisconnect(ctx context.Context, request events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	slog.Info("marketplace client disconnected", "connectionId", request.RequestContext.ConnectionID)

	if err := h.registry.RemoveConnection(ctx, request.RequestContext.ConnectionID); err != nil {
		slog.Error("failed to unregister connection", "error", err)
		return events.APIGatewayProxyResponse{StatusCode: 500}, err
	}

	return events.APIGatewayProxyResponse{StatusCode: 200}, nil
}

// HandleDefault handles messages sent from a client.
func (h *Handler) HandleDefault(ctx context.Context, request events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	slog.Info("received client message", "connectionId", request.RequestContext.ConnectionID, "body", request.Body)
	// Clients only receive pushes; inbound messages are logged and dropped.
	return events.APIGatewayProxyResponse{StatusCode: 200}, nil
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all connections by default for local development.
		return true
	},
}

// ServeHTTP handles WebSocket requests for the local development server.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	// Local connections mint their own id; API Gateway assigns one in prod.
	connectionID := uuid.New().String()
	slog.Info("marketplace client connected locally", "connectionId", connectionID)

	ctx := r.Context()
	if err := h.registry.AddConnection(ctx, connectionID); err != nil {
		slog.Error("failed to register local connection", "error", err)
		return
	}

	defer func() {
		slog.Info("marketplace client disconnected locally", "connectionId", connectionID)
		if err := h.registry.RemoveConnection(ctx, connectionID); err != nil {
			slog.Error("failed to unregister local connection", "error", err)
		}
	}()

	// The read loop exists only to detect when the client closes the
	// connection; pushes happen out of band through the publisher.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Error("unexpected close error", "error", err)
			}
			break
		}
	}
}
