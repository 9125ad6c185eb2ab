package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"examsense/config"
	"examsense/internal/model"
)

// AnalysisClient speaks the external behavioral-analysis service's HTTP API.
// Implementations must keep calls bounded; callers rely on them returning
// promptly even when the service is down.
type AnalysisClient interface {
	Health(ctx context.Context) (bool, error)
	StartSession(ctx context.Context, participantID, assessmentPublicID string) (string, error)
	EndSession(ctx context.Context, sessionID string) error
}

type analysisClient struct {
	baseURL string
	client  *http.Client
}

// NewAnalysisClient builds the production client. With no base URL
// configured every call reports the service as unavailable.
func NewAnalysisClient(cfg *config.Config) AnalysisClient {
	if cfg.Analysis.BaseURL == "" {
		log.Warn().Msg("ANALYSIS_BASE_URL is not set. Analysis sessions will be unavailable.")
	}
	return newAnalysisClient(cfg.Analysis.BaseURL, &http.Client{Timeout: cfg.Analysis.CallTimeout})
}

func newAnalysisClient(baseURL string, client *http.Client) AnalysisClient {
	return &analysisClient{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

type analysisHealthResponse struct {
	Status       string `json:"status"`
	ModelsLoaded bool   `json:"models_loaded"`
	Message      string `json:"message"`
}

type analysisSessionResponse struct {
	Success   bool   `json:"success"`
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

func (c *analysisClient) Health(ctx context.Context) (bool, error) {
	if c.baseURL == "" {
		return false, model.ErrAnalysisUnavailable
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return false, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("analysis health check returned status %d", resp.StatusCode)
	}

	var body analysisHealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, fmt.Errorf("decode analysis health response: %w", err)
	}
	if !body.ModelsLoaded {
		log.Warn().Str("message", body.Message).Msg("Analysis service is up but its models are not loaded")
	}
	return body.Status == "ok", nil
}

func (c *analysisClient) StartSession(ctx context.Context, participantID, assessmentPublicID string) (string, error) {
	if c.baseURL == "" {
		return "", model.ErrAnalysisUnavailable
	}

	// The analysis service keys its monitoring on student_id/exam_id; the
	// session it hands back is already associated with both.
	payload, err := json.Marshal(map[string]string{
		"student_id": participantID,
		"exam_id":    assessmentPublicID,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/create_session", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("analysis create_session returned status %d", resp.StatusCode)
	}

	var body analysisSessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode analysis session response: %w", err)
	}
	if !body.Success || body.SessionID == "" {
		return "", fmt.Errorf("analysis service refused session: %s", body.Message)
	}
	return body.SessionID, nil
}

func (c *analysisClient) EndSession(ctx context.Context, sessionID string) error {
	if c.baseURL == "" {
		return model.ErrAnalysisUnavailable
	}

	payload, err := json.Marshal(map[string]string{"session_id": sessionID})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/end_session", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("analysis end_session returned status %d", resp.StatusCode)
	}

	var body analysisSessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("decode analysis session response: %w", err)
	}
	if !body.Success {
		return fmt.Errorf("analysis service failed to end session: %s", body.Message)
	}
	return nil
}
