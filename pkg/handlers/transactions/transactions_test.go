package transactions

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/restart-exchange/material-exchange/pkg/api"
	"github.com/restart-exchange/material-exchange/pkg/models"
	"github.com/restart-exchange/material-exchange/pkg/storage"
	"github.com/restart-exchange/material-exchange/pkg/storage/mocks"
)

func TestGetTransactionById(t *testing.T) {
	txId := uuid.New().String()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		tx := &models.Transaction{
			Id:        txId,
			AccountId: "acct-1",
			Direction: models.DirectionSell,
			Material:  models.MaterialCardboard,
			Quantity:  5,
			Price:     500,
			Timestamp: time.Now(),
		}
		mockStorage := new(mocks.Storage)
		mockStorage.On("GetTransaction", mock.Anything, txId).Return(tx, nil)

		h := NewTransactionsHandler(mockStorage)

		req := httptest.NewRequest(http.MethodGet, "/transactions/"+txId, nil)
		rr := httptest.NewRecorder()

		// Act
		h.GetTransactionById(rr, req, txId)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var returnedTx api.Transaction
		json.Unmarshal(rr.Body.Bytes(), &returnedTx)
		assert.Equal(t, txId, returnedTx.Id.String())
		assert.Equal(t, 500.0, returnedTx.Price)
		assert.Equal(t, string(models.DirectionSell), returnedTx.Direction)
	})

	t.Run("NotFound", func(t *testing.T) {
		// Arrange
		mockStorage := new(mocks.Storage)
		mockStorage.On("GetTransaction", mock.Anything, "missing").Return(nil, storage.ErrNotFound)

		h := NewTransactionsHandler(mockStorage)

		req := httptest.NewRequest(http.MethodGet, "/transactions/missing", nil)
		rr := httptest.NewRecorder()

		// Act
		h.GetTransactionById(rr, req, "missing")

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestListTransactionsByAccountId(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		txs := []models.Transaction{
			{Id: uuid.New().String(), AccountId: "acct-1", Direction: models.DirectionSell, Price: 500},
			{Id: uuid.New().String(), AccountId: "acct-1", Direction: models.DirectionBuy, Price: 240},
		}
		mockStorage := new(mocks.Storage)
		mockStorage.On("ListTransactionsByAccountID", mock.Anything, "acct-1").Return(txs, nil)

		h := NewTransactionsHandler(mockStorage)

		req := httptest.NewRequest(http.MethodGet, "/accounts/acct-1/transactions", nil)
		rr := httptest.NewRecorder()

		// Act
		h.ListTransactionsByAccountId(rr, req, "acct-1")

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var returnedTxs []api.Transaction
		json.Unmarshal(rr.Body.Bytes(), &returnedTxs)
		assert.Len(t, returnedTxs, 2)
	})

	t.Run("Empty", func(t *testing.T) {
		// Arrange
		mockStorage := new(mocks.Storage)
		mockStorage.On("ListTransactionsByAccountID", mock.Anything, "acct-1").Return([]models.Transaction{}, nil)

		h := NewTransactionsHandler(mockStorage)

		req := httptest.NewRequest(http.MethodGet, "/accounts/acct-1/transactions", nil)
		rr := httptest.NewRecorder()

		// Act
		h.ListTransactionsByAccountId(rr, req, "acct-1")

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})
}
