package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/restart-exchange/material-exchange/pkg/models"
	"github.com/restart-exchange/material-exchange/pkg/storage"
	"github.com/restart-exchange/material-exchange/pkg/storage/dynamodb/mocks"
)

func TestCreateAccount(t *testing.T) {
	account := &models.Account{Id: "acct-1", Name: "Veridian Recyclers", Version: 1}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)

		mockClient.On("PutItem", mock.Anything, mock.AnythingOfType("*dynamodb.PutItemInput")).Return(&dynamodb.PutItemOutput{}, nil).Once()

		created, err := store.CreateAccount(context.Background(), account)

		assert.NoError(t, err)
		assert.Equal(t, "acct-1", created.Id)
		mockClient.AssertExpectations(t)
	})

	t.Run("Already Exists", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)

		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{}).Once()

		_, err := store.CreateAccount(context.Background(), account)

		assert.ErrorIs(t, err, storage.ErrAlreadyExists)
	})
}

func TestGetAccount(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)

		accountAV, _ := attributevalue.MarshalMap(models.Account{Id: "acct-1", WalletBalance: 1200, Version: 4})
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: accountAV}, nil).Once()

		account, err := store.GetAccount(context.Background(), "acct-1")

		require.NoError(t, err)
		assert.Equal(t, 1200.0, account.WalletBalance)
		assert.Equal(t, int64(4), account.Version)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: nil}, nil).Once()

		_, err := store.GetAccount(context.Background(), "missing")

		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("Client Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(nil, errors.New("throttled")).Once()

		_, err := store.GetAccount(context.Background(), "acct-1")

		assert.Error(t, err)
	})
}

func TestUpdateAccount(t *testing.T) {
	t.Run("Success Bumps Version", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)

		var captured *dynamodb.PutItemInput
		mockClient.On("PutItem", mock.Anything, mock.AnythingOfType("*dynamodb.PutItemInput")).
			Run(func(args mock.Arguments) { captured = args.Get(1).(*dynamodb.PutItemInput) }).
			Return(&dynamodb.PutItemOutput{}, nil).Once()

		account := &models.Account{Id: "acct-1", Name: "Veridian Recyclers", Version: 2}
		updated, err := store.UpdateAccount(context.Background(), account)

		require.NoError(t, err)
		assert.Equal(t, int64(3), updated.Version)
		require.NotNil(t, captured)
		// The condition guards against concurrent writers using the version
		// the caller read.
		assert.Contains(t, *captured.ConditionExpression, "version = :version")
	})

	t.Run("Concurrent Write Conflicts", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)

		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{}).Once()

		_, err := store.UpdateAccount(context.Background(), &models.Account{Id: "acct-1", Version: 2})

		assert.ErrorIs(t, err, storage.ErrConflict)
	})
}

func TestTopUpWallet(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)

		updatedAV, _ := attributevalue.MarshalMap(models.Account{Id: "acct-1", WalletBalance: 1500, Version: 5})
		mockClient.On("UpdateItem", mock.Anything, mock.AnythingOfType("*dynamodb.UpdateItemInput")).
			Return(&dynamodb.UpdateItemOutput{Attributes: updatedAV}, nil).Once()

		account, err := store.TopUpWallet(context.Background(), "acct-1", 500)

		require.NoError(t, err)
		assert.Equal(t, 1500.0, account.WalletBalance)
	})

	t.Run("Missing Account", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{}).Once()

		_, err := store.TopUpWallet(context.Background(), "missing", 500)

		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}
