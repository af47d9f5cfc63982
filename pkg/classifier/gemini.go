package classifier

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"github.com/restart-exchange/material-exchange/pkg/models"
)

const defaultModel = "gemini-3-flash-preview"

const inspectionPrompt = `You are an expert industrial recycling quality inspector.
Analyze this image of scrap material and provide a detailed quality assessment in JSON format.
Include:
1. detectedMaterial (one of: PET Plastic, HDPE Plastic, Aluminum, Copper, Paper/Cardboard, Glass)
2. suggestedGrade (Grade A Clean, Grade B Mixed, Grade C Contaminated)
3. confidenceScore (0-1)
4. contaminationPercentage (0-100)
5. observations (Brief summary of what you see)`

// GeminiClassifier implements the Classifier interface on the Gemini API,
// asking for a structured JSON assessment of the submitted image.
type GeminiClassifier struct {
	client *genai.Client
	model  string
}

// NewGeminiClassifier creates a GeminiClassifier for the given API key.
func NewGeminiClassifier(ctx context.Context, apiKey string) (*GeminiClassifier, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiClassifier{
		client: client,
		model:  defaultModel,
	}, nil
}

// Make sure we conform to the interface
var _ Classifier = (*GeminiClassifier)(nil)

// assessmentWire matches the JSON schema the model is asked to produce.
type assessmentWire struct {
	DetectedMaterial        string  `json:"detectedMaterial"`
	SuggestedGrade          string  `json:"suggestedGrade"`
	ConfidenceScore         float64 `json:"confidenceScore"`
	ContaminationPercentage float64 `json:"contaminationPercentage"`
	Observations            string  `json:"observations"`
}

var assessmentSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"detectedMaterial":        {Type: genai.TypeString},
		"suggestedGrade":          {Type: genai.TypeString},
		"confidenceScore":         {Type: genai.TypeNumber},
		"contaminationPercentage": {Type: genai.TypeNumber},
		"observations":            {Type: genai.TypeString},
	},
	Required: []string{"detectedMaterial", "suggestedGrade", "confidenceScore", "contaminationPercentage", "observations"},
}

// Classify sends the image to the Gemini API and parses the structured
// assessment. Any transport, API, or parse failure is wrapped in
// ErrUnavailable so callers can treat them uniformly as non-fatal.
func (c *GeminiClassifier) Classify(ctx context.Context, image []byte, mimeType string) (*models.Assessment, error) {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(image, mimeType),
			genai.NewPartFromText(inspectionPrompt),
		}, genai.RoleUser),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   assessmentSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("%w: empty response", ErrUnavailable)
	}

	var wire assessmentWire
	if err := json.Unmarshal([]byte(text), &wire); err != nil {
		return nil, fmt.Errorf("%w: malformed assessment: %v", ErrUnavailable, err)
	}

	return &models.Assessment{
		Material:             wire.DetectedMaterial,
		Grade:                wire.SuggestedGrade,
		Confidence:           wire.ConfidenceScore,
		ContaminationPercent: wire.ContaminationPercentage,
		Notes:                wire.Observations,
	}, nil
}
