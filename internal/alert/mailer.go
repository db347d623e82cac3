package alert

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"HalalGuardian/internal/config"
)

// EmitFunc receives each log entry the moment it is produced, before the
// pacing delay that precedes the next stage.
type EmitFunc func(EmailLogEntry)

// SMTPSimulator plays back a scripted SMTP transmission for one recipient at
// a time. No connection is made; the four stages and their pacing delays
// exist so the operator can watch a believable relay conversation scroll by.
type SMTPSimulator struct {
	cfg *config.SMTPConfig
}

// NewSMTPSimulator creates a simulator using the given display and pacing
// configuration.
func NewSMTPSimulator(cfg *config.SMTPConfig) *SMTPSimulator {
	return &SMTPSimulator{cfg: cfg}
}

// Deliver runs the CONNECTING → AUTHENTICATING → SENDING → SENT sequence for
// one recipient, emitting each entry before waiting out the stage delay.
// Cancelling ctx mid-wait abandons the run without emitting anything further;
// any other fault inside the sequence produces exactly one FAILED terminal
// entry instead of SENT. The returned bool reports whether SENT was reached.
func (s *SMTPSimulator) Deliver(ctx context.Context, toEmail, subject string, emit EmitFunc) (sent bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ERROR] Simulated delivery to %s aborted: %v", toEmail, r)
			emit(s.entry(StatusFailed, "Connection timeout or Auth failed.", toEmail))
			sent = false
		}
	}()

	log.Printf("[DEBUG] Simulating delivery of %q to %s", subject, toEmail)

	emit(s.entry(StatusConnecting, fmt.Sprintf("Connecting to %s:%s...", s.cfg.Host, s.cfg.Port), ""))
	if !s.pause(ctx, s.cfg.ConnectDelay) {
		return false
	}

	emit(s.entry(StatusAuthenticating, fmt.Sprintf("Performing TLS handshake. Authenticating as %s...", s.cfg.User), toEmail))
	if !s.pause(ctx, s.cfg.AuthDelay) {
		return false
	}

	emit(s.entry(StatusSending, fmt.Sprintf("Sending payload to <%s>...", toEmail), toEmail))
	if !s.pause(ctx, s.cfg.SendDelay) {
		return false
	}

	emit(s.entry(StatusSent, fmt.Sprintf("250 2.0.0 OK %s - Message accepted for delivery", uuid.NewString()), toEmail))
	return true
}

// pause waits out one stage delay, returning false if ctx is cancelled first.
func (s *SMTPSimulator) pause(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func (s *SMTPSimulator) entry(status EmailStatus, details, recipient string) EmailLogEntry {
	return EmailLogEntry{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		Status:    status,
		Details:   details,
		Recipient: recipient,
	}
}
