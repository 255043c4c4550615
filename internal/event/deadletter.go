package event

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/osse101/FishingOverhaul_Go/internal/logger"
)

// DeadLetterWriter appends undeliverable events to a JSON-lines file
type DeadLetterWriter struct {
	file *os.File
	path string
	mu   sync.Mutex
}

// DeadLetterEntry is one line of the dead-letter file
type DeadLetterEntry struct {
	SchemaVersion string    `json:"schema_version"`
	Timestamp     time.Time `json:"timestamp"`
	Event         Event     `json:"event"`
	Attempts      int       `json:"attempts"`
	LastError     string    `json:"last_error,omitempty"`
}

// NewDeadLetterWriter opens (or creates) the dead-letter file for appending
func NewDeadLetterWriter(path string) (*DeadLetterWriter, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		return nil, err
	}
	return &DeadLetterWriter{file: f, path: path}, nil
}

// Write records a failed event
func (w *DeadLetterWriter) Write(evt Event, attempts int, lastErr error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	entry := DeadLetterEntry{
		SchemaVersion: DeadLetterSchemaVersion,
		Timestamp:     time.Now(),
		Event:         evt,
		Attempts:      attempts,
	}
	if lastErr != nil {
		entry.LastError = lastErr.Error()
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	if _, err := w.file.Write(append(data, '\n')); err != nil {
		return err
	}

	logger.Warn(LogMsgEventDeadLettered, LogFieldEventType, evt.Type, LogFieldAttempt, attempts, LogFieldPath, w.path)
	return nil
}

// Close closes the dead-letter file
func (w *DeadLetterWriter) Close() error {
	return w.file.Close()
}
