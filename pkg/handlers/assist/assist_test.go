package assist

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/restart-exchange/material-exchange/pkg/api"
	"github.com/restart-exchange/material-exchange/pkg/classifier"
	"github.com/restart-exchange/material-exchange/pkg/models"
)

// mockClassifier is a testify mock for the classifier.Classifier interface.
type mockClassifier struct {
	mock.Mock
}

func (m *mockClassifier) Classify(ctx context.Context, image []byte, mimeType string) (*models.Assessment, error) {
	args := m.Called(ctx, image, mimeType)
	var assessment *models.Assessment
	if args.Get(0) != nil {
		assessment = args.Get(0).(*models.Assessment)
	}
	return assessment, args.Error(1)
}

func TestAnalyzeMaterial(t *testing.T) {
	imageBytes := []byte{0xFF, 0xD8, 0xFF}
	analyzeReq := api.AnalyzeRequest{
		Image:    base64.StdEncoding.EncodeToString(imageBytes),
		MimeType: "image/jpeg",
	}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		assessment := &models.Assessment{
			Material:             "PET Plastic",
			Grade:                "Grade A Clean",
			Confidence:           0.9,
			ContaminationPercent: 2,
			Notes:                "Clean baled bottles.",
		}
		mc := new(mockClassifier)
		mc.On("Classify", mock.Anything, imageBytes, "image/jpeg").Return(assessment, nil)

		h := NewAssistHandler(mc)

		body, _ := json.Marshal(analyzeReq)
		req := httptest.NewRequest(http.MethodPost, "/assist/material", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		// Act
		h.AnalyzeMaterial(rr, req)

		// Assert
		require.Equal(t, http.StatusOK, rr.Code)

		var returned api.Assessment
		json.Unmarshal(rr.Body.Bytes(), &returned)
		assert.Equal(t, "PET Plastic", returned.Material)
		assert.Equal(t, 0.9, returned.Confidence)
		mc.AssertExpectations(t)
	})

	t.Run("MissingImage", func(t *testing.T) {
		// Arrange
		mc := new(mockClassifier)
		h := NewAssistHandler(mc)

		body, _ := json.Marshal(api.AnalyzeRequest{})
		req := httptest.NewRequest(http.MethodPost, "/assist/material", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		// Act
		h.AnalyzeMaterial(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		mc.AssertNotCalled(t, "Classify", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("BadBase64", func(t *testing.T) {
		// Arrange
		mc := new(mockClassifier)
		h := NewAssistHandler(mc)

		body, _ := json.Marshal(api.AnalyzeRequest{Image: "not base64!!!"})
		req := httptest.NewRequest(http.MethodPost, "/assist/material", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		// Act
		h.AnalyzeMaterial(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})

	t.Run("ClassifierUnavailable", func(t *testing.T) {
		// Arrange
		mc := new(mockClassifier)
		mc.On("Classify", mock.Anything, mock.Anything, mock.Anything).Return(nil, classifier.ErrUnavailable)

		h := NewAssistHandler(mc)

		body, _ := json.Marshal(analyzeReq)
		req := httptest.NewRequest(http.MethodPost, "/assist/material", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		// Act
		h.AnalyzeMaterial(rr, req)

		// Assert
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})

	t.Run("DefaultMimeType", func(t *testing.T) {
		// Arrange
		mc := new(mockClassifier)
		mc.On("Classify", mock.Anything, imageBytes, "image/jpeg").
			Return(&models.Assessment{Material: "Glass"}, nil)

		h := NewAssistHandler(mc)

		noMime := analyzeReq
		noMime.MimeType = ""
		body, _ := json.Marshal(noMime)
		req := httptest.NewRequest(http.MethodPost, "/assist/material", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		// Act
		h.AnalyzeMaterial(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mc.AssertExpectations(t)
	})
}
