package config

import (
	"os"
	"strconv"
	"time"
)

// SMTPConfig holds the display values shown in the dashboard's SMTP panel and
// the pacing delays of the simulated transmission. No connection is ever made
// to the host; the values exist so the simulated log reads like a real relay.
type SMTPConfig struct {
	Host     string
	Port     string
	User     string
	Secure   string
	FromName string

	// Delay after each non-terminal stage of the simulated send. They pace
	// the log feed for the operator watching it; ordering of the stages is
	// fixed regardless of the values.
	ConnectDelay time.Duration
	AuthDelay    time.Duration
	SendDelay    time.Duration
}

// NewSMTPConfig reads the SMTP display settings from the environment, falling
// back to the stock Hotel Seri Malaysia values.
func NewSMTPConfig() *SMTPConfig {
	return &SMTPConfig{
		Host:         envOr("SMTP_HOST", "smtp.gmail.com"),
		Port:         envOr("SMTP_PORT", "587"),
		User:         envOr("SMTP_USER", "system@hsm.com.my"),
		Secure:       envOr("SMTP_SECURE", "tls"),
		FromName:     envOr("SMTP_FROM_NAME", "Halal Audit Dashboard - Hotel Seri Malaysia"),
		ConnectDelay: envDuration("SMTP_SIM_CONNECT_MS", 800*time.Millisecond),
		AuthDelay:    envDuration("SMTP_SIM_AUTH_MS", 1200*time.Millisecond),
		SendDelay:    envDuration("SMTP_SIM_SEND_MS", 1000*time.Millisecond),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms < 0 {
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}
