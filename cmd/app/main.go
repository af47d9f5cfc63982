package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/restart-exchange/material-exchange/pkg/classifier"
	"github.com/restart-exchange/material-exchange/pkg/events"
	"github.com/restart-exchange/material-exchange/pkg/handlers"
	wshandlers "github.com/restart-exchange/material-exchange/pkg/handlers/websockets"
	"github.com/restart-exchange/material-exchange/pkg/identity"
	"github.com/restart-exchange/material-exchange/pkg/middleware"
	dydbstore "github.com/restart-exchange/material-exchange/pkg/storage/dynamodb"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// AWS Session
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	accountsTable := os.Getenv("DYNAMODB_ACCOUNTS_TABLE_NAME")
	inventoryTable := os.Getenv("DYNAMODB_INVENTORY_TABLE_NAME")
	listingsTable := os.Getenv("DYNAMODB_LISTINGS_TABLE_NAME")
	transactionsTable := os.Getenv("DYNAMODB_TRANSACTIONS_TABLE_NAME")
	connectionsTable := os.Getenv("DYNAMODB_CONNECTIONS_TABLE_NAME")

	if accountsTable == "" || inventoryTable == "" || listingsTable == "" || transactionsTable == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	// Create our storage implementation
	store := dydbstore.New(dbClient, accountsTable, inventoryTable, listingsTable, transactionsTable, connectionsTable)

	// Trade event publisher. Without a queue configured the service still
	// settles trades, it just skips the downstream fan-out.
	var publisher events.Publisher = &events.NoOpPublisher{}
	if queueURL := os.Getenv("SQS_TRADE_EVENTS_QUEUE_URL"); queueURL != "" {
		publisher = events.NewSQSPublisher(sqs.NewFromConfig(cfg), queueURL)
	} else {
		log.Println("SQS_TRADE_EVENTS_QUEUE_URL not set, trade events will not be published")
	}

	// Listing-assist classifier.
	var materialClassifier classifier.Classifier = &classifier.Disabled{}
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		materialClassifier, err = classifier.NewGeminiClassifier(context.TODO(), apiKey)
		if err != nil {
			log.Fatalf("failed to create gemini classifier: %v", err)
		}
	} else {
		log.Println("GEMINI_API_KEY not set, material analysis is disabled")
	}

	// Create our handler
	handler := handlers.NewApiHandler(store, publisher, materialClassifier)

	// Create a new Chi router
	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.NewStructuredLogger(slog.Default()))
	router.Use(identity.Middleware(identity.NewHeaderProvider(identity.DefaultHeader)))

	handler.RegisterRoutes(router)

	// WebSocket endpoint for the local development server.
	wsHandler := wshandlers.NewHandler(store)
	router.Handle("/ws", wsHandler)

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	log.Printf("Starting server on port %s", port)

	// Start the server
	err = http.ListenAndServe(":"+port, router)
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
