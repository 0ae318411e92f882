package models

import "time"

// AuditLog is an append-only record of a management console action.
// Entries are written on login and on every administrative mutation and are
// never updated afterwards.
type AuditLog struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	User      string    `json:"user"`
	Action    string    `json:"action"`
	Details   string    `json:"details,omitempty"`
}

// TableName returns the backend table holding audit logs.
func (AuditLog) TableName() string {
	return "logs"
}
