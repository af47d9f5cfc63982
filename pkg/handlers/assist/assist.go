package assist

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/restart-exchange/material-exchange/pkg/api"
	"github.com/restart-exchange/material-exchange/pkg/classifier"
	"github.com/restart-exchange/material-exchange/pkg/mapping"
)

// AssistHandler holds the dependencies for the listing-assist endpoints.
type AssistHandler struct {
	Classifier classifier.Classifier
}

// NewAssistHandler creates a new AssistHandler.
func NewAssistHandler(c classifier.Classifier) *AssistHandler {
	return &AssistHandler{Classifier: c}
}

// AnalyzeMaterial classifies a photographed material into a type and quality
// grade. The classifier is an external service; when it is unreachable the
// caller gets a 503 and should fall back to manual entry.
func (h *AssistHandler) AnalyzeMaterial(w http.ResponseWriter, r *http.Request) {
	var analyzeReq api.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&analyzeReq); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if analyzeReq.Image == "" {
		http.Error(w, "An image is required", http.StatusUnprocessableEntity)
		return
	}

	image, err := base64.StdEncoding.DecodeString(analyzeReq.Image)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid image encoding: %v", err), http.StatusUnprocessableEntity)
		return
	}

	mimeType := analyzeReq.MimeType
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	assessment, err := h.Classifier.Classify(r.Context(), image, mimeType)
	if err != nil {
		if errors.Is(err, classifier.ErrUnavailable) {
			http.Error(w, "Material analysis is temporarily unavailable", http.StatusServiceUnavailable)
		} else {
			http.Error(w, fmt.Sprintf("Failed to analyze material: %v", err), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(mapping.ToApiAssessment(assessment)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
