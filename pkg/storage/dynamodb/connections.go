package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// connectionRecord is a single live WebSocket connection.
type connectionRecord struct {
	ConnectionID string `dynamodbav:"connection_id"`
}

// AddConnection stores a WebSocket connection ID.
func (s *Store) AddConnection(ctx context.Context, connectionID string) error {
	record, err := attributevalue.MarshalMap(connectionRecord{ConnectionID: connectionID})
	if err != nil {
		return fmt.Errorf("failed to marshal connection record: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.ConnectionsTableName),
		Item:      record,
	})
	if err != nil {
		return fmt.Errorf("failed to store connection ID: %w", err)
	}

	return nil
}

// RemoveConnection deletes a WebSocket connection ID.
func (s *Store) RemoveConnection(ctx context.Context, connectionID string) error {
	key, err := attributevalue.MarshalMap(map[string]string{"connection_id": connectionID})
	if err != nil {
		return fmt.Errorf("failed to marshal connection key: %w", err)
	}

	_, err = s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.ConnectionsTableName),
		Key:       key,
	})
	if err != nil {
		return fmt.Errorf("failed to delete connection ID: %w", err)
	}

	return nil
}

// GetAllConnections retrieves every live WebSocket connection ID.
func (s *Store) GetAllConnections(ctx context.Context) ([]string, error) {
	result, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.ConnectionsTableName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan connections table: %w", err)
	}

	var records []connectionRecord
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal connection records: %w", err)
	}

	connectionIDs := make([]string, len(records))
	for i, record := range records {
		connectionIDs[i] = record.ConnectionID
	}

	return connectionIDs, nil
}
