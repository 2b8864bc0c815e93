package model

import (
	"time"
)

// AuditTimeFormat is the persisted timestamp layout, DD-MM-YYYY HH:MM:SS.
const AuditTimeFormat = "02-01-2006 15:04:05"

// AuditEntry is one appended record of a user-triggered action.
// Entries are never modified or removed once persisted.
type AuditEntry struct {
	Timestamp string `json:"timestamp"`
	Action    string `json:"action"`
}

// NewAuditEntry stamps an action with the given UTC time.
func NewAuditEntry(action string, now time.Time) AuditEntry {
	return AuditEntry{
		Timestamp: now.UTC().Format(AuditTimeFormat),
		Action:    action,
	}
}
