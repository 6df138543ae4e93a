package service

import (
	"encoding/json"
	"errors"
	"log"
	"time"
)

// Sentinel errors shared by the services. Handlers translate these to HTTP
// statuses; anything else maps to an internal server error.
var (
	ErrNotFound        = errors.New("content not found")
	ErrMediaNotFound   = errors.New("media not found")
	ErrMissingFields   = errors.New("missing required fields: title, content")
	ErrInvalidInput    = errors.New("invalid input")
	ErrQueryRequired   = errors.New("query parameter required")
	ErrPromptRequired  = errors.New("prompt required")
	ErrContentRequired = errors.New("content required")
	ErrReaderNil       = errors.New("reader is nil")
)

// logJSON writes a one-line JSON log entry, matching the structured log style
// used across the app.
func logJSON(fields map[string]any) {
	fields["ts"] = time.Now().UTC().Format(time.RFC3339Nano)
	if b, err := json.Marshal(fields); err == nil {
		log.SetFlags(0)
		log.Println(string(b))
	}
}
