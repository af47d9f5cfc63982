package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/restart-exchange/material-exchange/pkg/models"
	"github.com/restart-exchange/material-exchange/pkg/storage"
)

// ListInventory retrieves all active inventory items for an account.
func (s *Store) ListInventory(ctx context.Context, accountID string) ([]models.InventoryItem, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.InventoryTableName),
		KeyConditionExpression: aws.String("account_id = :account_id"),
		// Rows at zero quantity are settled-out stock awaiting the
		// reconciliation sweep; they are never part of the active set.
		FilterExpression: aws.String("quantity > :zero"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":account_id": &types.AttributeValueMemberS{Value: accountID},
			":zero":       &types.AttributeValueMemberN{Value: "0"},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory: %w", err)
	}

	var items []models.InventoryItem
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal inventory items: %w", err)
	}

	return items, nil
}

// GetInventoryItem retrieves a single inventory item.
func (s *Store) GetInventoryItem(ctx context.Context, accountID, itemID string) (*models.InventoryItem, error) {
	key, err := attributevalue.MarshalMap(map[string]string{
		"account_id": accountID,
		"id":         itemID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal inventory item key: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.InventoryTableName),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory item from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("inventory item %s: %w", itemID, storage.ErrNotFound)
	}

	var item models.InventoryItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal inventory item: %w", err)
	}

	return &item, nil
}

// AddInventoryItem records new stock on hand.
func (s *Store) AddInventoryItem(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error) {
	itemAV, err := attributevalue.MarshalMap(item)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal inventory item: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.InventoryTableName),
		Item:                itemAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}

	_, err = s.Client.PutItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, fmt.Errorf("inventory item %s: %w", item.Id, storage.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create inventory item in DynamoDB: %w", err)
	}

	return item, nil
}

// DeleteInventoryItem removes an item from the active inventory set.
func (s *Store) DeleteInventoryItem(ctx context.Context, accountID, itemID string) error {
	key, err := attributevalue.MarshalMap(map[string]string{
		"account_id": accountID,
		"id":         itemID,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal inventory item key: %w", err)
	}

	input := &dynamodb.DeleteItemInput{
		TableName:           aws.String(s.InventoryTableName),
		Key:                 key,
		ConditionExpression: aws.String("attribute_exists(id)"),
	}

	_, err = s.Client.DeleteItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return fmt.Errorf("inventory item %s: %w", itemID, storage.ErrNotFound)
		}
		return fmt.Errorf("failed to delete inventory item from DynamoDB: %w", err)
	}

	return nil
}

// GetDepletedInventory retrieves items whose quantity has reached zero but
// were not removed. Used by the reconciliation sweep.
func (s *Store) GetDepletedInventory(ctx context.Context) ([]models.InventoryItem, error) {
	input := &dynamodb.ScanInput{
		TableName:        aws.String(s.InventoryTableName),
		FilterExpression: aws.String("quantity <= :zero"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":zero": &types.AttributeValueMemberN{Value: "0"},
		},
	}

	result, err := s.Client.Scan(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to scan for depleted inventory: %w", err)
	}

	var items []models.InventoryItem
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal depleted inventory items: %w", err)
	}

	return items, nil
}
