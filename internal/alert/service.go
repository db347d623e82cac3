package alert

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"HalalGuardian/internal/directory"
)

// ContentDrafter drafts the notification message for one incident. The
// content package provides the Gemini-backed implementation.
type ContentDrafter interface {
	GenerateAlertContent(ctx context.Context, input AlertInput) (string, error)
}

// alertIDSeq hands out alert identifiers, unique for the life of the process.
var alertIDSeq atomic.Int64

// AlertService runs one alert generation end to end: resolve recipients,
// draft the message, then simulate delivery to each recipient in turn.
type AlertService struct {
	directory *directory.Service
	drafter   ContentDrafter
	mailer    *SMTPSimulator
}

// NewAlertService creates the orchestrating service.
func NewAlertService(dir *directory.Service, drafter ContentDrafter, mailer *SMTPSimulator) *AlertService {
	return &AlertService{directory: dir, drafter: drafter, mailer: mailer}
}

// Generate produces one alert and its delivery log. Recipients are resolved
// before drafting so the message and the delivery run target the same set. A
// drafting failure aborts everything: no alert, no log entries, the error
// surfaced as-is. Once the alert is assembled, recipients are delivered to
// strictly one at a time; a FAILED recipient does not stop the ones after it.
// Each log entry reaches emit (when non-nil) the moment it occurs, before the
// pacing delay that follows it. An empty trigger defaults to EXPIRY.
func (s *AlertService) Generate(ctx context.Context, outletID int, severity Severity, trigger TriggerType, details AlertDetails, emit EmitFunc) (*GeneratedAlert, []EmailLogEntry, error) {
	if trigger == "" {
		trigger = TriggerExpiry
	}

	targets := TargetRecipients(s.directory.ListUsers(), outletID, severity)
	log.Printf("[DEBUG] Resolved %d recipient(s) for outlet %d at severity %s", len(targets), outletID, severity)

	input := AlertInput{
		TriggerType: trigger,
		OutletID:    outletID,
		Severity:    severity,
		Details:     details,
	}

	message, err := s.drafter.GenerateAlertContent(ctx, input)
	if err != nil {
		return nil, nil, err
	}

	generated := &GeneratedAlert{
		AlertID:     alertIDSeq.Add(1),
		Severity:    severity,
		Message:     message,
		TargetUsers: targets,
		CreatedAt:   time.Now(),
	}

	subject := fmt.Sprintf("[URGENT] Halal Compliance Alert - %s", details.MaterialName)

	var entries []EmailLogEntry
	record := func(e EmailLogEntry) {
		entries = append(entries, e)
		if emit != nil {
			emit(e)
		}
	}

	for _, user := range targets {
		if ctx.Err() != nil {
			return generated, entries, ctx.Err()
		}
		if !s.mailer.Deliver(ctx, user.Email, subject, record) {
			log.Printf("[ERROR] Delivery to %s did not complete", user.Email)
		}
	}

	if ctx.Err() != nil {
		return generated, entries, ctx.Err()
	}
	return generated, entries, nil
}
