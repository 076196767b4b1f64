// Package models holds the server-side domain types backing the durable
// store: department credentials and submitted data entries.
package models

import "time"

// Department is one tenant's identity record. Provisioned once, read-only
// at runtime; the server core never mutates it.
type Department struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
