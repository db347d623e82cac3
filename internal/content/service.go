package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"HalalGuardian/internal/alert"
	"HalalGuardian/internal/config"
	"HalalGuardian/internal/directory"
)

// Service drafts alert messages through the Gemini text-generation API.
type Service struct {
	config     *config.GeminiConfig
	directory  *directory.Service
	httpClient *http.Client
}

// NewService creates a content service over the given Gemini configuration.
func NewService(cfg *config.GeminiConfig, dir *directory.Service) *Service {
	return &Service{
		config:     cfg,
		directory:  dir,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// -- Gemini API types --

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content generateContent `json:"content"`
	} `json:"candidates"`
}

// GenerateAlertContent asks the model to draft the notification message for
// one incident. The response is treated as opaque text: the prompt demands a
// fixed template, but nothing here parses or validates what comes back.
func (s *Service) GenerateAlertContent(ctx context.Context, input alert.AlertInput) (string, error) {
	if s.config.APIKey == "" {
		return "", alert.ErrMissingCredential
	}

	prompt, err := s.buildPrompt(input)
	if err != nil {
		return "", fmt.Errorf("failed to build prompt: %w", err)
	}

	payload := generateRequest{
		Contents: []generateContent{{Parts: []generatePart{{Text: prompt}}}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal generation payload: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", s.config.APIURL, s.config.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.config.APIKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("generation request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read generation response: %w", err)
	}
	if resp.StatusCode >= 400 {
		log.Printf("[ERROR] Gemini API returned status %d: %s", resp.StatusCode, respBody)
		return "", fmt.Errorf("generation request failed with status %d", resp.StatusCode)
	}

	var genResp generateResponse
	if err := json.Unmarshal(respBody, &genResp); err != nil {
		return "", fmt.Errorf("failed to parse generation response: %w", err)
	}

	text := extractText(genResp)
	if text == "" {
		return "", alert.ErrEmptyDraft
	}
	return text, nil
}

func extractText(resp generateResponse) string {
	var b strings.Builder
	for _, cand := range resp.Candidates {
		for _, p := range cand.Content.Parts {
			b.WriteString(p.Text)
		}
		break
	}
	return strings.TrimSpace(b.String())
}

// buildPrompt renders the drafting instructions for the model: outlet and
// incident context plus the exact output template the dashboard preview
// expects, with today's date in day/month/year form.
func (s *Service) buildPrompt(input alert.AlertInput) (string, error) {
	outletName := s.directory.ResolveOutletName(input.OutletID)
	details, err := json.Marshal(input.Details)
	if err != nil {
		return "", err
	}
	today := time.Now().Format("02/01/2006")

	return fmt.Sprintf(`You are an intelligent alert generation agent for the Hotel Seri Malaysia Halal Audit System.

TASK: Generate a strictly formatted alert message based on the JSON input below.

CONTEXT:
Outlet Name: %s
Trigger Type: %s
Severity: %s
Details: %s

RULES:
1. Use Malaysian English (e.g., use "certificate" instead of "certification" where appropriate).
2. Be professional yet urgent based on severity.
3. Calculate specific dates based on "today" (assume today is %s).
4. Follow this EXACT template format:

[🔴/🟡/🟢] [SEVERITY]: [Material Name] certificate [issue description]

Outlet: [Outlet Name]
Material: [Material Name] ([Category])
Supplier: [Supplier Name]
Expiry Date: [Date] ([X] days from now)

IMPACT:
[Briefly describe impact on menus]

ACTION REQUIRED:
1. [Action 1]
2. [Action 2]
3. [Action 3]

DEADLINE: [Date]

This alert will escalate to Top Management if unresolved within [X] days.

Ensure the "ACTION REQUIRED" steps are realistic for a Halal Executive in Malaysia.`,
		outletName, input.TriggerType, input.Severity, details, today), nil
}
