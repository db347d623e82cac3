package alert

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"HalalGuardian/internal/config"
	"HalalGuardian/internal/directory"
)

func newTestHandler(drafter *stubDrafter) *AlertHandler {
	dir := directory.NewService()
	svc := NewAlertService(dir, drafter, NewSMTPSimulator(fastSMTPConfig()))
	return NewAlertHandler(svc, dir, &config.SMTPConfig{
		Host:     "smtp.gmail.com",
		Port:     "587",
		User:     "system@hsm.com.my",
		Secure:   "tls",
		FromName: "Halal Audit Dashboard - Hotel Seri Malaysia",
	})
}

func doGenerate(t *testing.T, h *AlertHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/alerts/generate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.GenerateAlert(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

// sseEvents parses an SSE body into (event, data) pairs.
func sseEvents(body string) [][2]string {
	var events [][2]string
	var current [2]string
	for _, line := range strings.Split(body, "\n") {
		switch {
		case strings.HasPrefix(line, "event: "):
			current[0] = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			current[1] = strings.TrimPrefix(line, "data: ")
			events = append(events, current)
			current = [2]string{}
		}
	}
	return events
}

func TestGenerateAlert_InvalidSeverity(t *testing.T) {
	h := newTestHandler(&stubDrafter{message: "drafted"})

	rec := doGenerate(t, h, `{"outlet_id":3,"severity":"CRITICAL","details":{}}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGenerateAlert_InvalidTrigger(t *testing.T) {
	h := newTestHandler(&stubDrafter{message: "drafted"})

	rec := doGenerate(t, h, `{"outlet_id":3,"severity":"LOW","trigger_type":"FIRE","details":{}}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGenerateAlert_StreamsLogsThenAlert(t *testing.T) {
	h := newTestHandler(&stubDrafter{message: "drafted alert body"})

	rec := doGenerate(t, h, `{"outlet_id":3,"severity":"LOW","details":{"material_name":"Chicken Breast"}}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); ct != "text/event-stream" {
		t.Fatalf("expected text/event-stream, got %q", ct)
	}

	events := sseEvents(rec.Body.String())
	if len(events) != 5 {
		t.Fatalf("expected 4 log events and 1 alert event, got %d", len(events))
	}
	for i := 0; i < 4; i++ {
		if events[i][0] != "log" {
			t.Errorf("event %d: expected log, got %s", i, events[i][0])
		}
	}
	if events[4][0] != "alert" {
		t.Fatalf("expected final alert event, got %s", events[4][0])
	}

	var generated GeneratedAlert
	if err := json.Unmarshal([]byte(events[4][1]), &generated); err != nil {
		t.Fatalf("failed to parse alert event: %v", err)
	}
	if generated.Message != "drafted alert body" {
		t.Errorf("unexpected message: %q", generated.Message)
	}
	if len(generated.TargetUsers) != 1 {
		t.Errorf("expected 1 recipient at LOW, got %d", len(generated.TargetUsers))
	}

	var last EmailLogEntry
	if err := json.Unmarshal([]byte(events[3][1]), &last); err != nil {
		t.Fatalf("failed to parse log event: %v", err)
	}
	if last.Status != StatusSent {
		t.Errorf("expected final log entry SENT, got %s", last.Status)
	}
}

func TestGenerateAlert_MissingCredential_ErrorEvent(t *testing.T) {
	h := newTestHandler(&stubDrafter{err: ErrMissingCredential})

	rec := doGenerate(t, h, `{"outlet_id":3,"severity":"HIGH","details":{}}`)

	events := sseEvents(rec.Body.String())
	if len(events) != 1 {
		t.Fatalf("expected only an error event, got %d events", len(events))
	}
	if events[0][0] != "error" {
		t.Fatalf("expected error event, got %s", events[0][0])
	}
	var payload map[string]string
	if err := json.Unmarshal([]byte(events[0][1]), &payload); err != nil {
		t.Fatalf("failed to parse error event: %v", err)
	}
	if payload["code"] != "CONFIGURATION_ERROR" {
		t.Errorf("expected CONFIGURATION_ERROR, got %s", payload["code"])
	}
}

func TestGenerateAlert_DrafterFailure_ErrorEvent(t *testing.T) {
	h := newTestHandler(&stubDrafter{err: ErrEmptyDraft})

	rec := doGenerate(t, h, `{"outlet_id":3,"severity":"HIGH","details":{}}`)

	events := sseEvents(rec.Body.String())
	if len(events) != 1 || events[0][0] != "error" {
		t.Fatalf("expected a single error event, got %v", events)
	}
	var payload map[string]string
	if err := json.Unmarshal([]byte(events[0][1]), &payload); err != nil {
		t.Fatalf("failed to parse error event: %v", err)
	}
	if payload["code"] != "CONTENT_GENERATION_ERROR" {
		t.Errorf("expected CONTENT_GENERATION_ERROR, got %s", payload["code"])
	}
}

func TestListOutlets(t *testing.T) {
	h := newTestHandler(&stubDrafter{})
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/outlets", nil)
	rec := httptest.NewRecorder()
	if err := h.ListOutlets(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	var outlets []directory.Outlet
	if err := json.Unmarshal(rec.Body.Bytes(), &outlets); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(outlets) != 4 {
		t.Fatalf("expected 4 outlets, got %d", len(outlets))
	}
	if outlets[2].Name != "Hotel Seri Malaysia Seremban" {
		t.Errorf("unexpected outlet 3 name: %s", outlets[2].Name)
	}
}

func TestSMTPConfigEndpoint(t *testing.T) {
	h := newTestHandler(&stubDrafter{})
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/config/smtp", nil)
	rec := httptest.NewRecorder()
	if err := h.SMTPConfig(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	var cfg map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &cfg); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if cfg["smtp_host"] != "smtp.gmail.com" || cfg["smtp_secure"] != "tls" {
		t.Errorf("unexpected SMTP display config: %v", cfg)
	}
}
