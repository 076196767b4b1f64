package tcp

import (
	"context"
	"testing"

	"github.com/haroontrailblazer/College-Departments-Portal/internal/logging"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/protocol"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/server/config"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/server/export"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/server/models"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/server/repositories/repomanager"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type fixture struct {
	handler *Handler
	manager repomanager.RepositoryManager
	stats   *Stats
	cfg     *config.Config
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.ExportDir = t.TempDir()

	manager := repomanager.NewInMemoryRepositoryManager()

	hash, err := services.HashPassword("secret123")
	require.NoError(t, err)
	_, err = manager.Departments().Create(context.Background(), &models.Department{
		Name:         "Computer Science",
		Email:        "cs@dept.edu",
		PasswordHash: hash,
	})
	require.NoError(t, err)

	auth := services.NewAuthService(manager.Departments())
	submissions := services.NewSubmissionService(manager.Entries(), cfg)
	engine := export.NewEngine(manager.Entries(), cfg, nopLogger{})

	stats := &Stats{}
	return &fixture{
		handler: NewHandler(auth, submissions, engine, stats, nopLogger{}),
		manager: manager,
		stats:   stats,
		cfg:     cfg,
	}
}

func (f *fixture) login(t *testing.T, sess *Session) {
	t.Helper()
	resp, closed := f.handler.Handle(context.Background(), sess, protocol.Login{Email: "cs@dept.edu", Password: "secret123"})
	require.False(t, resp.IsError())
	require.False(t, closed)
	require.Equal(t, StateAuthenticated, sess.State)
}

func TestHandle_LoginSuccess(t *testing.T) {
	f := newFixture(t)
	sess := NewSession("test")

	resp, closed := f.handler.Handle(context.Background(), sess, protocol.Login{Email: "cs@dept.edu", Password: "secret123"})

	assert.False(t, closed)
	assert.False(t, resp.IsError())
	assert.Equal(t, "Computer Science", resp.DeptName)
	assert.Equal(t, StateAuthenticated, sess.State)
	require.NotNil(t, sess.Department)
	assert.Equal(t, "cs@dept.edu", sess.Department.Email)
}

func TestHandle_LoginWrongPassword(t *testing.T) {
	f := newFixture(t)
	sess := NewSession("test")

	resp, closed := f.handler.Handle(context.Background(), sess, protocol.Login{Email: "cs@dept.edu", Password: "nope"})

	assert.False(t, closed)
	assert.True(t, resp.IsError())
	assert.Equal(t, protocol.CodeAuth, resp.Code)
	// no state change, retry permitted
	assert.Equal(t, StateUnauthenticated, sess.State)
}

func TestHandle_UnauthenticatedSubmitRejected(t *testing.T) {
	f := newFixture(t)
	sess := NewSession("test")
	ctx := context.Background()

	resp, closed := f.handler.Handle(ctx, sess, protocol.SubmitData{EntryType: "student_records", Content: "Enrolled 30 new students this term"})

	assert.False(t, closed)
	assert.Equal(t, protocol.CodeAuth, resp.Code)
	assert.Equal(t, StateUnauthenticated, sess.State)

	count, err := f.manager.Entries().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "store must not be mutated")
}

func TestHandle_SecondLoginRejected(t *testing.T) {
	f := newFixture(t)
	sess := NewSession("test")
	f.login(t, sess)

	resp, closed := f.handler.Handle(context.Background(), sess, protocol.Login{Email: "cs@dept.edu", Password: "secret123"})

	assert.False(t, closed)
	assert.Equal(t, protocol.CodeAuth, resp.Code)
	assert.Equal(t, StateAuthenticated, sess.State)
}

func TestHandle_SubmitSuccess(t *testing.T) {
	f := newFixture(t)
	sess := NewSession("test")
	f.login(t, sess)

	resp, closed := f.handler.Handle(context.Background(), sess, protocol.SubmitData{
		EntryType: "student_records",
		Content:   "Enrolled 30 new students this term",
	})

	assert.False(t, closed)
	assert.False(t, resp.IsError())
	assert.Equal(t, int64(1), resp.EntryID)
	assert.Equal(t, "Computer Science", resp.DeptName)
}

func TestHandle_SubmitValidationError(t *testing.T) {
	f := newFixture(t)
	sess := NewSession("test")
	f.login(t, sess)
	ctx := context.Background()

	resp, closed := f.handler.Handle(ctx, sess, protocol.SubmitData{EntryType: "student_records", Content: "short"})

	assert.False(t, closed)
	assert.Equal(t, protocol.CodeValidation, resp.Code)
	// session stays authenticated
	assert.Equal(t, StateAuthenticated, sess.State)

	count, err := f.manager.Entries().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestHandle_ExportAfterSubmit(t *testing.T) {
	f := newFixture(t)
	sess := NewSession("test")
	f.login(t, sess)
	ctx := context.Background()

	resp, _ := f.handler.Handle(ctx, sess, protocol.SubmitData{
		EntryType: "student_records",
		Content:   "Enrolled 30 new students this term",
	})
	require.False(t, resp.IsError())

	resp, closed := f.handler.Handle(ctx, sess, protocol.Export{})

	assert.False(t, closed)
	require.False(t, resp.IsError())
	assert.NotEmpty(t, resp.Artifact)
}

func TestHandle_RecentAndStats(t *testing.T) {
	f := newFixture(t)
	sess := NewSession("test")
	f.login(t, sess)
	ctx := context.Background()

	resp, _ := f.handler.Handle(ctx, sess, protocol.SubmitData{
		EntryType: "faculty_data",
		Content:   "Two new professors joined the faculty",
	})
	require.False(t, resp.IsError())

	resp, _ = f.handler.Handle(ctx, sess, protocol.Recent{})
	require.False(t, resp.IsError())
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "Computer Science", resp.Entries[0].Department)

	resp, _ = f.handler.Handle(ctx, sess, protocol.Stats{})
	require.False(t, resp.IsError())
	require.NotNil(t, resp.Stats)
	assert.Equal(t, int64(1), resp.Stats.DataEntries)
}

func TestHandle_DisconnectClosesFromAnyState(t *testing.T) {
	f := newFixture(t)

	sess := NewSession("test")
	resp, closed := f.handler.Handle(context.Background(), sess, protocol.Disconnect{})
	assert.True(t, closed)
	assert.False(t, resp.IsError())
	assert.Equal(t, StateClosed, sess.State)

	authed := NewSession("test")
	f.login(t, authed)
	_, closed = f.handler.Handle(context.Background(), authed, protocol.Disconnect{})
	assert.True(t, closed)
	assert.Equal(t, StateClosed, authed.State)
}
