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
	"github.com/restart-exchange/material-exchange/pkg/trading"
)

// ApplySettlement applies a validated settlement plan as a single
// TransactWriteItems call. Either every write in the plan lands or none do,
// so no partially-settled state is ever visible. The condition expressions
// re-check stock and balance against the versions the plan was computed
// from, which rejects concurrent mutation by another session.
func (s *Store) ApplySettlement(ctx context.Context, plan *trading.Plan) error {
	var writes []types.TransactWriteItem

	switch plan.Transaction.Direction {
	case models.DirectionSell:
		sellWrites, err := s.sellWrites(plan)
		if err != nil {
			return err
		}
		writes = sellWrites
	case models.DirectionBuy:
		buyWrites, err := s.buyWrites(plan)
		if err != nil {
			return err
		}
		writes = buyWrites
	default:
		return fmt.Errorf("unknown trade direction %q", plan.Transaction.Direction)
	}

	txAV, err := attributevalue.MarshalMap(plan.Transaction)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}
	writes = append(writes, types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(s.TransactionsTableName),
			Item:                txAV,
			ConditionExpression: aws.String("attribute_not_exists(id)"),
		},
	})

	_, err = s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: writes,
	})
	if err != nil {
		var txc *types.TransactionCanceledException
		if errors.As(err, &txc) {
			for _, reason := range txc.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return fmt.Errorf("settlement for transaction %s: %w", plan.Transaction.Id, storage.ErrConflict)
				}
			}
		}
		return fmt.Errorf("failed to execute settlement transaction: %w", err)
	}

	return nil
}

// sellWrites builds the inventory decrement (or removal, when the sale
// depletes the item) and the listing put for a sell plan.
func (s *Store) sellWrites(plan *trading.Plan) ([]types.TransactWriteItem, error) {
	if plan.Listing == nil {
		return nil, fmt.Errorf("sell plan for transaction %s has no listing", plan.Transaction.Id)
	}

	itemKey := map[string]types.AttributeValue{
		"account_id": &types.AttributeValueMemberS{Value: plan.AccountId},
		"id":         &types.AttributeValueMemberS{Value: plan.ItemId},
	}
	qtyAV, err := attributevalue.Marshal(plan.SoldQuantity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sold quantity: %w", err)
	}
	versionAV := &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", plan.ItemVersion)}

	var inventoryWrite types.TransactWriteItem
	if plan.DepletesItem {
		// Selling the full remaining quantity removes the item from the
		// active inventory set in the same transaction.
		inventoryWrite = types.TransactWriteItem{
			Delete: &types.Delete{
				TableName:           aws.String(s.InventoryTableName),
				Key:                 itemKey,
				ConditionExpression: aws.String("quantity >= :qty AND version = :version"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":qty":     qtyAV,
					":version": versionAV,
				},
			},
		}
	} else {
		inventoryWrite = types.TransactWriteItem{
			Update: &types.Update{
				TableName:           aws.String(s.InventoryTableName),
				Key:                 itemKey,
				UpdateExpression:    aws.String("SET quantity = quantity - :qty, version = version + :inc"),
				ConditionExpression: aws.String("quantity >= :qty AND version = :version"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":qty":     qtyAV,
					":version": versionAV,
					":inc":     &types.AttributeValueMemberN{Value: "1"},
				},
			},
		}
	}

	listingAV, err := attributevalue.MarshalMap(plan.Listing)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal listing: %w", err)
	}

	return []types.TransactWriteItem{
		inventoryWrite,
		{
			Put: &types.Put{
				TableName:           aws.String(s.ListingsTableName),
				Item:                listingAV,
				ConditionExpression: aws.String("attribute_not_exists(id)"),
			},
		},
	}, nil
}

// buyWrites builds the wallet debit for a buy plan.
func (s *Store) buyWrites(plan *trading.Plan) ([]types.TransactWriteItem, error) {
	totalAV, err := attributevalue.Marshal(plan.Transaction.Price)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal trade total: %w", err)
	}

	return []types.TransactWriteItem{
		{
			Update: &types.Update{
				TableName: aws.String(s.AccountsTableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: plan.AccountId},
				},
				UpdateExpression:    aws.String("SET wallet_balance = wallet_balance - :total, version = version + :inc"),
				ConditionExpression: aws.String("wallet_balance >= :total AND version = :version"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":total":   totalAV,
					":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", plan.AccountVersion)},
					":inc":     &types.AttributeValueMemberN{Value: "1"},
				},
			},
		},
	}, nil
}
