package inventory

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/restart-exchange/material-exchange/pkg/api"
	"github.com/restart-exchange/material-exchange/pkg/models"
	"github.com/restart-exchange/material-exchange/pkg/storage"
	"github.com/restart-exchange/material-exchange/pkg/storage/mocks"
)

func TestListInventory(t *testing.T) {
	t.Run("SortedNewestFirst", func(t *testing.T) {
		// Arrange
		older := models.InventoryItem{Id: "item-old", AccountId: "acct-1", Material: models.MaterialPaper, Quantity: 2, CreatedAt: time.Now().Add(-2 * time.Hour)}
		newer := models.InventoryItem{Id: "item-new", AccountId: "acct-1", Material: models.MaterialGlass, Quantity: 4, CreatedAt: time.Now()}

		mockStorage := new(mocks.Storage)
		mockStorage.On("ListInventory", mock.Anything, "acct-1").Return([]models.InventoryItem{older, newer}, nil)

		h := NewInventoryHandler(mockStorage)

		req := httptest.NewRequest(http.MethodGet, "/accounts/acct-1/inventory", nil)
		rr := httptest.NewRecorder()

		// Act
		h.ListInventory(rr, req, "acct-1")

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var returnedItems []api.InventoryItem
		json.Unmarshal(rr.Body.Bytes(), &returnedItems)
		assert.Len(t, returnedItems, 2)
		assert.Equal(t, "item-new", returnedItems[0].Id)
		assert.Equal(t, "item-old", returnedItems[1].Id)
	})

	t.Run("Empty", func(t *testing.T) {
		// Arrange
		mockStorage := new(mocks.Storage)
		mockStorage.On("ListInventory", mock.Anything, "acct-1").Return([]models.InventoryItem{}, nil)

		h := NewInventoryHandler(mockStorage)

		req := httptest.NewRequest(http.MethodGet, "/accounts/acct-1/inventory", nil)
		rr := httptest.NewRecorder()

		// Act
		h.ListInventory(rr, req, "acct-1")

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})
}

func TestAddInventoryItem(t *testing.T) {
	newApiItem := api.NewInventoryItem{
		Material: string(models.MaterialCardboard),
		Quantity: 12,
		Grade:    string(models.GradeA),
	}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockStorage := new(mocks.Storage)
		createdItem := &models.InventoryItem{
			Id:        "item-1",
			AccountId: "acct-1",
			Material:  models.MaterialCardboard,
			Quantity:  12,
			Unit:      "tons",
			Grade:     models.GradeA,
			Version:   1,
		}
		mockStorage.On("AddInventoryItem", mock.Anything, mock.MatchedBy(func(item *models.InventoryItem) bool {
			return item.AccountId == "acct-1" && item.Id != "" && item.Unit == "tons"
		})).Return(createdItem, nil)

		h := NewInventoryHandler(mockStorage)

		body, _ := json.Marshal(newApiItem)
		req := httptest.NewRequest(http.MethodPost, "/accounts/acct-1/inventory", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		// Act
		h.AddInventoryItem(rr, req, "acct-1")

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)

		var returnedItem api.InventoryItem
		json.Unmarshal(rr.Body.Bytes(), &returnedItem)
		assert.Equal(t, "item-1", returnedItem.Id)
		assert.Equal(t, "tons", returnedItem.Unit)
	})

	t.Run("NonPositiveQuantity", func(t *testing.T) {
		// Arrange
		mockStorage := new(mocks.Storage)
		h := NewInventoryHandler(mockStorage)

		invalid := newApiItem
		invalid.Quantity = 0
		body, _ := json.Marshal(invalid)
		req := httptest.NewRequest(http.MethodPost, "/accounts/acct-1/inventory", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		// Act
		h.AddInventoryItem(rr, req, "acct-1")

		// Assert
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		mockStorage.AssertNotCalled(t, "AddInventoryItem", mock.Anything, mock.Anything)
	})
}

func TestDeleteInventoryItem(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockStorage := new(mocks.Storage)
		mockStorage.On("DeleteInventoryItem", mock.Anything, "acct-1", "item-1").Return(nil)

		h := NewInventoryHandler(mockStorage)

		req := httptest.NewRequest(http.MethodDelete, "/accounts/acct-1/inventory/item-1", nil)
		rr := httptest.NewRecorder()

		// Act
		h.DeleteInventoryItem(rr, req, "acct-1", "item-1")

		// Assert
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		// Arrange
		mockStorage := new(mocks.Storage)
		mockStorage.On("DeleteInventoryItem", mock.Anything, "acct-1", "missing").Return(storage.ErrNotFound)

		h := NewInventoryHandler(mockStorage)

		req := httptest.NewRequest(http.MethodDelete, "/accounts/acct-1/inventory/missing", nil)
		rr := httptest.NewRecorder()

		// Act
		h.DeleteInventoryItem(rr, req, "acct-1", "missing")

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
