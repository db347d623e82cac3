package alert

import "errors"

// ErrMissingCredential means no AI credential is configured. The drafter
// reports it before attempting any call; the whole generation aborts.
var ErrMissingCredential = errors.New("GEMINI_API_KEY is not configured")

// ErrEmptyDraft means the AI service answered but produced no usable text.
// Treated the same as any other drafting failure: the generation aborts.
var ErrEmptyDraft = errors.New("empty response from AI agent")
