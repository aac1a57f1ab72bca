package textgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"everytime/fitness-backend/internal/config"
)

// Fixed generation parameters: prose-length output with light sampling.
const (
	generationMaxLength   = 1000
	generationTemperature = 0.7
)

// huggingFaceGenerator implements Generator against the Hugging Face
// Inference API.
type huggingFaceGenerator struct {
	apiURL string
	model  string
	token  string
	client *http.Client
}

// NewHuggingFaceGenerator creates a Generator backed by a hosted
// Hugging Face model.
func NewHuggingFaceGenerator(cfg config.HuggingFaceConfig) Generator {
	log.Printf("Text generation client initialized for model: %s", cfg.Model)
	return &huggingFaceGenerator{
		apiURL: cfg.APIURL,
		model:  cfg.Model,
		token:  cfg.APIToken,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// generationRequest is the inference payload.
type generationRequest struct {
	Inputs     string               `json:"inputs"`
	Parameters generationParameters `json:"parameters"`
}

type generationParameters struct {
	MaxLength   int     `json:"max_length"`
	Temperature float64 `json:"temperature"`
	DoSample    bool    `json:"do_sample"`
}

// Generate sends one inference request and extracts the generated text.
// The API answers with a list of generations once the model is up, with an
// object carrying estimated_time while it is still loading, or with an
// error body on non-200 status.
func (g *huggingFaceGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	payload := generationRequest{
		Inputs: prompt,
		Parameters: generationParameters{
			MaxLength:   generationMaxLength,
			Temperature: generationTemperature,
			DoSample:    true,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal generation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.apiURL+g.model, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build generation request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call generation API: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read generation response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if jsonErr := json.Unmarshal(raw, &apiErr); jsonErr == nil && apiErr.Error != "" {
			return "", fmt.Errorf("generation API returned %d: %s", resp.StatusCode, apiErr.Error)
		}
		return "", fmt.Errorf("generation API returned %d", resp.StatusCode)
	}

	var generations []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(raw, &generations); err == nil {
		if len(generations) == 0 {
			return "", ErrEmptyResult
		}
		return generations[0].GeneratedText, nil
	}

	// The loading signal is the presence of estimated_time, whatever its
	// value or type.
	var status map[string]json.RawMessage
	if err := json.Unmarshal(raw, &status); err == nil {
		if est, ok := status["estimated_time"]; ok {
			return "", fmt.Errorf("%w (estimated time: %s)", ErrModelLoading, est)
		}
	}

	// Unrecognized success payload; hand the raw body back best-effort.
	return string(raw), nil
}
