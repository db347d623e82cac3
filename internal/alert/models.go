package alert

import (
	"time"

	"HalalGuardian/internal/directory"
)

// Severity is the operator-selected seriousness of an incident. MEDIUM and
// HIGH escalate to top management; LOW stays with the outlet executive.
type Severity string

const (
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
)

// Valid reports whether s is one of the three known severities.
func (s Severity) Valid() bool {
	return s == SeverityLow || s == SeverityMedium || s == SeverityHigh
}

// Escalates reports whether the severity pulls top management into the
// recipient set.
func (s Severity) Escalates() bool {
	return s == SeverityMedium || s == SeverityHigh
}

// TriggerType is the category of event causing an alert. The dashboard form
// currently only raises EXPIRY; the other types are accepted over the API.
type TriggerType string

const (
	TriggerExpiry   TriggerType = "EXPIRY"
	TriggerNCR      TriggerType = "NCR"
	TriggerAuditDue TriggerType = "AUDIT_DUE"
)

// Valid reports whether t is one of the known trigger types.
func (t TriggerType) Valid() bool {
	return t == TriggerExpiry || t == TriggerNCR || t == TriggerAuditDue
}

// AlertDetails is the operator-supplied description of the expiring material.
type AlertDetails struct {
	MaterialName    string   `json:"material_name"`
	SupplierName    string   `json:"supplier_name"`
	DaysUntilExpiry int      `json:"days_until_expiry"`
	AffectedMenus   []string `json:"affected_menus"`
	Category        string   `json:"category"`
}

// AlertInput is the full incident description handed to the content drafter.
// It is built fresh per submission and never persisted.
type AlertInput struct {
	TriggerType TriggerType  `json:"trigger_type"`
	OutletID    int          `json:"outlet_id"`
	Severity    Severity     `json:"severity"`
	Details     AlertDetails `json:"details"`
}

// GeneratedAlert is the assembled result of one successful generation.
// It is immutable once created and lives only for the session that made it.
type GeneratedAlert struct {
	AlertID     int64            `json:"alert_id"`
	Severity    Severity         `json:"severity"`
	Message     string           `json:"message"`
	TargetUsers []directory.User `json:"target_users"`
	CreatedAt   time.Time        `json:"created_at"`
}

// EmailStatus is one stage of the simulated SMTP transmission.
type EmailStatus string

const (
	StatusConnecting     EmailStatus = "CONNECTING"
	StatusAuthenticating EmailStatus = "AUTHENTICATING"
	StatusSending        EmailStatus = "SENDING"
	StatusSent           EmailStatus = "SENT"
	StatusFailed         EmailStatus = "FAILED"
)

// Terminal reports whether the status ends a recipient's delivery run.
func (s EmailStatus) Terminal() bool {
	return s == StatusSent || s == StatusFailed
}

// EmailLogEntry is one timestamped event in the simulated transmission log.
// Recipient is empty on the initial CONNECTING entry and set on every entry
// after it, so a combined log partitions cleanly by recipient.
type EmailLogEntry struct {
	ID        string      `json:"id"`
	Timestamp time.Time   `json:"timestamp"`
	Status    EmailStatus `json:"status"`
	Details   string      `json:"details"`
	Recipient string      `json:"recipient,omitempty"`
}
