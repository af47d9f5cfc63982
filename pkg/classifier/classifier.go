// Package classifier is the boundary to the external generative-AI image
// classification service. Results are advisory: they pre-fill the listing
// form and the user may override every field, so an unavailable classifier
// never blocks listing creation.
package classifier

import (
	"context"
	"errors"

	"github.com/restart-exchange/material-exchange/pkg/models"
)

// ErrUnavailable is returned when the classification service failed or timed out.
// Callers treat it as non-fatal and proceed without pre-filled suggestions.
var ErrUnavailable = errors.New("material classifier unavailable")

// Classifier defines the interface for assessing a material photo.
type Classifier interface {
	// Classify analyzes image bytes and returns a structured quality assessment.
	Classify(ctx context.Context, image []byte, mimeType string) (*models.Assessment, error)
}

// Disabled is a classifier used when no API key is configured.
type Disabled struct{}

// Classify always reports the service as unavailable.
func (Disabled) Classify(ctx context.Context, image []byte, mimeType string) (*models.Assessment, error) {
	return nil, ErrUnavailable
}
