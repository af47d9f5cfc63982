package main

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"

	"github.com/restart-exchange/material-exchange/pkg/storage"
	dydbstore "github.com/restart-exchange/material-exchange/pkg/storage/dynamodb"
)

var store storage.Storage

func init() {
	// Load environment variables for local testing.
	godotenv.Load()

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

	store = dydbstore.New(dbClient, accountsTable, inventoryTable, listingsTable, transactionsTable, connectionsTable)
}

// HandleRequest is triggered by an EventBridge Schedule. Depleted inventory
// rows are normally removed inside the settlement transaction; this sweep
// cleans up any left behind by older writers or manual edits.
func HandleRequest(ctx context.Context) error {
	log.Println("Starting reconciliation sweep for depleted inventory...")

	depleted, err := store.GetDepletedInventory(ctx)
	if err != nil {
		log.Printf("ERROR: failed to get depleted inventory: %v", err)
		return err
	}

	if len(depleted) == 0 {
		log.Println("No depleted inventory found.")
		return nil
	}

	log.Printf("Found %d depleted inventory items. Removing them...", len(depleted))

	for _, item := range depleted {
		if err := store.DeleteInventoryItem(ctx, item.AccountId, item.Id); err != nil {
			log.Printf("ERROR: failed to delete inventory item %s: %v", item.Id, err)
			// Continue to the next item, don't let one failure stop the whole batch.
			continue
		}
		log.Printf("Successfully removed depleted inventory item %s", item.Id)
	}

	log.Println("Reconciliation sweep finished.")
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
