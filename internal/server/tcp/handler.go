package tcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/haroontrailblazer/College-Departments-Portal/internal/common"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/logging"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/protocol"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/server/export"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/server/services"
)

// Handler maps a decoded request plus the session it arrived on to a store
// operation and exactly one response. It is stateless itself; all
// per-connection state lives in the Session.
type Handler struct {
	auth        *services.AuthService
	submissions *services.SubmissionService
	exporter    *export.Engine
	stats       *Stats
	logger      logging.Logger
}

func NewHandler(auth *services.AuthService, submissions *services.SubmissionService, exporter *export.Engine, stats *Stats, l logging.Logger) *Handler {
	return &Handler{
		auth:        auth,
		submissions: submissions,
		exporter:    exporter,
		stats:       stats,
		logger:      l.With("module", "handler"),
	}
}

// Handle runs one request through the state machine. The returned bool
// reports whether the connection must be closed after the response is
// written. Every request gets exactly one response.
func (h *Handler) Handle(ctx context.Context, sess *Session, req protocol.Request) (protocol.Response, bool) {

	// Legal in every non-closed state.
	if _, ok := req.(protocol.Disconnect); ok {
		sess.Close()
		return protocol.OK("goodbye"), true
	}

	switch sess.State {

	case StateUnauthenticated:
		login, ok := req.(protocol.Login)
		if !ok {
			return protocol.Err(protocol.CodeAuth, "not authenticated"), false
		}
		return h.handleLogin(ctx, sess, login), false

	case StateAuthenticated:
		switch r := req.(type) {
		case protocol.Login:
			return protocol.Err(protocol.CodeAuth, "already authenticated"), false
		case protocol.SubmitData:
			return h.handleSubmit(ctx, sess, r), false
		case protocol.Export:
			return h.handleExport(ctx, sess), false
		case protocol.Recent:
			return h.handleRecent(ctx, r), false
		case protocol.Stats:
			stats := h.stats.snapshot()
			return protocol.Response{Status: protocol.StatusSuccess, Stats: &stats}, false
		default:
			return protocol.Err(protocol.CodeProtocol, "unsupported request"), false
		}

	default:
		// StateClosed: the worker stops reading before this can happen.
		return protocol.Err(protocol.CodeProtocol, "session closed"), true
	}
}

func (h *Handler) handleLogin(ctx context.Context, sess *Session, req protocol.Login) protocol.Response {

	dept, err := h.auth.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			h.logger.Warn(ctx, "failed login attempt", "session", sess.ID, "email", req.Email)
			return protocol.Err(protocol.CodeAuth, "invalid credentials")
		}
		h.logger.Error(ctx, "credential lookup failed", "session", sess.ID, "error", err.Error())
		return protocol.Err(protocol.CodeStore, "authentication system error")
	}

	sess.Authenticate(dept)
	h.logger.Info(ctx, "successful login", "session", sess.ID, "department", dept.Name)

	return protocol.Response{
		Status:   protocol.StatusSuccess,
		Message:  fmt.Sprintf("Welcome %s!", dept.Name),
		DeptName: dept.Name,
	}
}

func (h *Handler) handleSubmit(ctx context.Context, sess *Session, req protocol.SubmitData) protocol.Response {

	id, err := h.submissions.Submit(ctx, sess.Department.ID, req.EntryType, req.Content)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			return protocol.Err(protocol.CodeValidation, err.Error())
		}
		h.logger.Error(ctx, "submission failed", "session", sess.ID, "error", err.Error())
		return protocol.Err(protocol.CodeStore, "could not save entry")
	}

	h.stats.dataEntries.Add(1)
	h.logger.Info(ctx, "data saved", "session", sess.ID, "entry_id", id, "department", sess.Department.Name, "type", req.EntryType)

	return protocol.Response{
		Status:   protocol.StatusSuccess,
		Message:  fmt.Sprintf("Data saved successfully! Entry ID: %d", id),
		EntryID:  id,
		DeptName: sess.Department.Name,
	}
}

func (h *Handler) handleExport(ctx context.Context, sess *Session) protocol.Response {

	artifact, err := h.exporter.Export(ctx)
	if err != nil {
		h.logger.Error(ctx, "export failed", "session", sess.ID, "error", err.Error())
		return protocol.Err(protocol.CodeStore, "export failed")
	}

	h.stats.exports.Add(1)

	return protocol.Response{
		Status:   protocol.StatusSuccess,
		Message:  fmt.Sprintf("Data exported to %s", artifact),
		Artifact: artifact,
	}
}

func (h *Handler) handleRecent(ctx context.Context, req protocol.Recent) protocol.Response {

	rows, err := h.submissions.Recent(ctx, req.Limit)
	if err != nil {
		h.logger.Error(ctx, "recent entries lookup failed", "error", err.Error())
		return protocol.Err(protocol.CodeStore, "could not read recent entries")
	}

	previews := make([]protocol.EntryPreview, 0, len(rows))
	for _, row := range rows {
		previews = append(previews, protocol.EntryPreview{
			Department: row.Department,
			EntryType:  string(row.EntryType),
			Preview:    row.Content,
			CreatedAt:  row.CreatedAt,
		})
	}

	return protocol.Response{Status: protocol.StatusSuccess, Entries: previews}
}
