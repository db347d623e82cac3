package alert

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"HalalGuardian/internal/config"
	"HalalGuardian/internal/directory"
)

// AlertHandler exposes the dashboard's HTTP interface: roster reads, the SMTP
// panel values, and the streaming generation endpoint.
type AlertHandler struct {
	service   *AlertService
	directory *directory.Service
	smtp      *config.SMTPConfig
}

// NewAlertHandler creates a new AlertHandler.
func NewAlertHandler(service *AlertService, dir *directory.Service, smtp *config.SMTPConfig) *AlertHandler {
	return &AlertHandler{service: service, directory: dir, smtp: smtp}
}

// GenerateAlertRequest is the body of a generation request. TriggerType may
// be omitted and defaults to EXPIRY.
type GenerateAlertRequest struct {
	OutletID    int          `json:"outlet_id"`
	Severity    Severity     `json:"severity"`
	TriggerType TriggerType  `json:"trigger_type,omitempty"`
	Details     AlertDetails `json:"details"`
}

// ListOutlets returns the outlet roster for the dashboard's outlet picker.
func (h *AlertHandler) ListOutlets(c echo.Context) error {
	return c.JSON(http.StatusOK, h.directory.ListOutlets())
}

// ListUsers returns the user roster.
func (h *AlertHandler) ListUsers(c echo.Context) error {
	return c.JSON(http.StatusOK, h.directory.ListUsers())
}

// SMTPConfig returns the display values for the dashboard's SMTP panel.
func (h *AlertHandler) SMTPConfig(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"smtp_host":   h.smtp.Host,
		"smtp_port":   h.smtp.Port,
		"smtp_user":   h.smtp.User,
		"smtp_secure": h.smtp.Secure,
		"from_name":   h.smtp.FromName,
	})
}

// DefaultDetails returns the stock incident the form is pre-filled with.
func (h *AlertHandler) DefaultDetails(c echo.Context) error {
	return c.JSON(http.StatusOK, AlertDetails{
		MaterialName:    "Chicken Breast",
		SupplierName:    "Ahmad Food Supplies Sdn Bhd",
		DaysUntilExpiry: 7,
		AffectedMenus:   []string{"Nasi Ayam", "Mee Goreng Mamak"},
		Category:        "Meat",
	})
}

// GenerateAlert runs one generation and streams its progress as server-sent
// events: one "log" event per delivery entry as it happens, then either an
// "alert" event with the assembled record or an "error" event if drafting
// failed. Closing the connection cancels the run.
func (h *AlertHandler) GenerateAlert(c echo.Context) error {
	var req GenerateAlertRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if !req.Severity.Valid() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Severity must be LOW, MEDIUM or HIGH"})
	}
	if req.TriggerType != "" && !req.TriggerType.Valid() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Unknown trigger type"})
	}

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set("Cache-Control", "no-cache")
	resp.Header().Set("Connection", "keep-alive")
	resp.WriteHeader(http.StatusOK)

	ctx := c.Request().Context()
	emit := func(e EmailLogEntry) {
		writeEvent(resp, "log", e)
	}

	generated, _, err := h.service.Generate(ctx, req.OutletID, req.Severity, req.TriggerType, req.Details, emit)
	if err != nil {
		if ctx.Err() != nil {
			// Client went away; nobody is listening anymore.
			return nil
		}
		writeEvent(resp, "error", map[string]string{
			"error": err.Error(),
			"code":  errorCode(err),
		})
		return nil
	}

	writeEvent(resp, "alert", generated)
	return nil
}

func errorCode(err error) string {
	if errors.Is(err, ErrMissingCredential) {
		return "CONFIGURATION_ERROR"
	}
	return "CONTENT_GENERATION_ERROR"
}

func writeEvent(resp *echo.Response, event string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	fmt.Fprintf(resp, "event: %s\ndata: %s\n\n", event, data)
	resp.Flush()
}
