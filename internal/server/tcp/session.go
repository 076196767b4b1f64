// Package tcp implements the connection server: the accept loop, the
// per-connection session workers, and the protocol state machine. Each
// accepted connection gets its own goroutine owning its Session value; no
// session is ever shared between workers.
package tcp

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/haroontrailblazer/College-Departments-Portal/internal/protocol"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/server/models"
)

// SessionState is the protocol state of one connection.
type SessionState int

const (
	StateUnauthenticated SessionState = iota
	StateAuthenticated
	StateClosed
)

func (s SessionState) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Session is the per-connection state. It is created by the dispatcher when
// a connection is accepted and mutated only by the worker owning that
// connection.
type Session struct {
	ID         string
	Remote     string
	State      SessionState
	Department *models.Department
	LastSeen   time.Time
}

func NewSession(remote string) *Session {
	return &Session{
		ID:       uuid.NewString(),
		Remote:   remote,
		State:    StateUnauthenticated,
		LastSeen: time.Now(),
	}
}

// Touch records activity, resetting the idle clock.
func (s *Session) Touch() {
	s.LastSeen = time.Now()
}

// Authenticate binds the department and moves the session to
// StateAuthenticated.
func (s *Session) Authenticate(dept *models.Department) {
	s.Department = dept
	s.State = StateAuthenticated
}

// Close moves the session to its terminal state.
func (s *Session) Close() {
	s.State = StateClosed
}

// Stats holds the server's activity counters, shared across workers via
// atomics.
type Stats struct {
	connections atomic.Int64
	dataEntries atomic.Int64
	exports     atomic.Int64
}

func (s *Stats) snapshot() protocol.ServerStats {
	return protocol.ServerStats{
		Connections: s.connections.Load(),
		DataEntries: s.dataEntries.Load(),
		Exports:     s.exports.Load(),
	}
}
