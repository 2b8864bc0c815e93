package service

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/saranya-m1904/contract-risk-bot/model"
)

// AuditLog is an append-only action history persisted as a JSON array file.
// Each append reads the whole array, appends one entry and rewrites the
// file; the mutex serializes that read-modify-write so concurrent requests
// cannot drop each other's entries.
type AuditLog struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

func NewAuditLog(path string) *AuditLog {
	return &AuditLog{path: path, now: time.Now}
}

// Append records one action. Entries keep append order; a malformed
// existing file is surfaced as an error and never overwritten.
func (l *AuditLog) Append(action string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, _, err := l.read()
	if err != nil {
		return err
	}

	entries = append(entries, model.NewAuditEntry(action, l.now()))

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode audit log: %w", err)
	}
	if err := os.WriteFile(l.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	return nil
}

// Entries returns all recorded entries. The second return value reports
// whether the log file exists: a missing file is an explicit empty state,
// not an error.
func (l *AuditLog) Entries() ([]model.AuditEntry, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.read()
}

func (l *AuditLog) read() ([]model.AuditEntry, bool, error) {
	data, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read audit log: %w", err)
	}

	var entries []model.AuditEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, true, fmt.Errorf("audit log %s is corrupted: %w", l.path, err)
	}
	return entries, true, nil
}
