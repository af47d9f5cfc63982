package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	awsevents "github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"

	"github.com/restart-exchange/material-exchange/pkg/events"
	"github.com/restart-exchange/material-exchange/pkg/models"
	dydbstore "github.com/restart-exchange/material-exchange/pkg/storage/dynamodb"
	"github.com/restart-exchange/material-exchange/pkg/websockets"
)

var publisher websockets.Publisher

func init() {
	// Load environment variables from .env file (useful for local testing).
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize dependencies once.
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	connectionsTable := os.Getenv("DYNAMODB_CONNECTIONS_TABLE_NAME")
	if connectionsTable == "" {
		log.Fatal("DYNAMODB_CONNECTIONS_TABLE_NAME environment variable not set")
	}

	apiEndpoint := os.Getenv("WEBSOCKET_API_ENDPOINT")
	if apiEndpoint == "" {
		log.Fatal("WEBSOCKET_API_ENDPOINT environment variable not set")
	}

	// The notifier only touches the connections table.
	store := dydbstore.New(dbClient, "", "", "", "", connectionsTable)

	publisher, err = websockets.NewPublisher(store, apiEndpoint)
	if err != nil {
		log.Fatalf("failed to create websocket publisher: %v", err)
	}
}

// HandleRequest fans settled trades out to connected clients. Every trade
// produces a wallet update; sells additionally announce the new listing and,
// when the sale consumed the last of an item, its depletion.
func HandleRequest(ctx context.Context, sqsEvent awsevents.SQSEvent) error {
	for _, message := range sqsEvent.Records {
		log.Printf("Processing message %s", message.MessageId)

		var event events.TradeEvent
		if err := json.Unmarshal([]byte(message.Body), &event); err != nil {
			log.Printf("ERROR: failed to unmarshal trade event from SQS message %s: %v", message.MessageId, err)
			// Returning an error will cause SQS to retry the message, which is appropriate here.
			return err
		}

		change := -event.Total
		if event.Direction == models.DirectionSell {
			change = 0
		}

		walletMsg := websockets.Message{
			Type: websockets.MessageTypeWalletUpdate,
			Payload: websockets.WalletUpdatePayload{
				AccountID:     event.AccountId,
				TransactionID: event.TransactionId,
				Change:        change,
				NewBalance:    event.NewBalance,
			},
		}
		if err := publisher.Publish(ctx, walletMsg); err != nil {
			log.Printf("ERROR: failed to publish wallet update for trade %s: %v", event.TransactionId, err)
			return err
		}

		if event.ListingId != "" {
			pricePerUnit := 0.0
			if event.Quantity > 0 {
				pricePerUnit = event.Total / event.Quantity
			}
			listingMsg := websockets.Message{
				Type: websockets.MessageTypeListingPublished,
				Payload: websockets.ListingPublishedPayload{
					ListingID:    event.ListingId,
					SellerID:     event.AccountId,
					Material:     string(event.Material),
					Quantity:     event.Quantity,
					PricePerUnit: pricePerUnit,
				},
			}
			if err := publisher.Publish(ctx, listingMsg); err != nil {
				log.Printf("ERROR: failed to publish listing announcement for trade %s: %v", event.TransactionId, err)
				return err
			}
		}

		if event.DepletedItemId != "" {
			depletedMsg := websockets.Message{
				Type: websockets.MessageTypeInventoryDepleted,
				Payload: websockets.InventoryDepletedPayload{
					AccountID: event.AccountId,
					ItemID:    event.DepletedItemId,
					Material:  string(event.Material),
				},
			}
			if err := publisher.Publish(ctx, depletedMsg); err != nil {
				log.Printf("ERROR: failed to publish inventory depletion for trade %s: %v", event.TransactionId, err)
				return err
			}
		}

		log.Printf("Successfully notified clients for trade %s", event.TransactionId)
	}

	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
