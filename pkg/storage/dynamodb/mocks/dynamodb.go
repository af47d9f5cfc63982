// Package mocks provides a testify mock of the DynamoDB client subset the
// store depends on.
package mocks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/mock"
)

// DynamoDBAPI is a mock implementation of the dynamodb.DynamoDBAPI interface.
type DynamoDBAPI struct {
	mock.Mock
}

func (m *DynamoDBAPI) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	args := m.Called(ctx, params)
	var out *dynamodb.GetItemOutput
	if args.Get(0) != nil {
		out = args.Get(0).(*dynamodb.GetItemOutput)
	}
	return out, args.Error(1)
}

func (m *DynamoDBAPI) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	args := m.Called(ctx, params)
	var out *dynamodb.PutItemOutput
	if args.Get(0) != nil {
		out = args.Get(0).(*dynamodb.PutItemOutput)
	}
	return out, args.Error(1)
}

func (m *DynamoDBAPI) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	args := m.Called(ctx, params)
	var out *dynamodb.UpdateItemOutput
	if args.Get(0) != nil {
		out = args.Get(0).(*dynamodb.UpdateItemOutput)
	}
	return out, args.Error(1)
}

func (m *DynamoDBAPI) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	args := m.Called(ctx, params)
	var out *dynamodb.DeleteItemOutput
	if args.Get(0) != nil {
		out = args.Get(0).(*dynamodb.DeleteItemOutput)
	}
	return out, args.Error(1)
}

func (m *DynamoDBAPI) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	args := m.Called(ctx, params)
	var out *dynamodb.QueryOutput
	if args.Get(0) != nil {
		out = args.Get(0).(*dynamodb.QueryOutput)
	}
	return out, args.Error(1)
}

func (m *DynamoDBAPI) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	args := m.Called(ctx, params)
	var out *dynamodb.ScanOutput
	if args.Get(0) != nil {
		out = args.Get(0).(*dynamodb.ScanOutput)
	}
	return out, args.Error(1)
}

func (m *DynamoDBAPI) TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	args := m.Called(ctx, params)
	var out *dynamodb.TransactWriteItemsOutput
	if args.Get(0) != nil {
		out = args.Get(0).(*dynamodb.TransactWriteItemsOutput)
	}
	return out, args.Error(1)
}
