package cli

import (
	"bufio"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/haroontrailblazer/College-Departments-Portal/internal/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	loginDept string
	loginErr  error
	submitID  int64
	submitErr error
	artifact  string
	entries   []protocol.EntryPreview
	stats     protocol.ServerStats

	gotEmail    string
	gotPassword string
	gotType     string
	gotContent  string
}

func (f *fakeAPI) Close() error { return nil }
func (f *fakeAPI) Login(ctx context.Context, email, password string) (string, error) {
	f.gotEmail, f.gotPassword = email, password
	return f.loginDept, f.loginErr
}
func (f *fakeAPI) Submit(ctx context.Context, entryType, content string) (int64, error) {
	f.gotType, f.gotContent = entryType, content
	return f.submitID, f.submitErr
}
func (f *fakeAPI) Export(ctx context.Context) (string, error) { return f.artifact, nil }
func (f *fakeAPI) Recent(ctx context.Context, limit int) ([]protocol.EntryPreview, error) {
	return f.entries, nil
}
func (f *fakeAPI) Stats(ctx context.Context) (protocol.ServerStats, error) { return f.stats, nil }
func (f *fakeAPI) Disconnect(ctx context.Context) error                    { return nil }

func newTestApp(api *fakeAPI, input string) *App {
	return &App{api: api, reader: bufio.NewReader(strings.NewReader(input))}
}

func TestLoginCommand(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) { return []byte("secret123"), nil }

	api := &fakeAPI{loginDept: "Computer Science"}
	a := newTestApp(api, "cs@dept.edu\n")

	require.NoError(t, a.Login(context.Background()))

	assert.Equal(t, "cs@dept.edu", api.gotEmail)
	assert.Equal(t, "secret123", api.gotPassword)
	assert.Equal(t, "Computer Science", a.deptName)
	assert.True(t, a.isLoggedIn())
}

func TestLoginCommand_Rejected(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) { return []byte("nope"), nil }

	api := &fakeAPI{loginErr: errors.New("unauthorized")}
	a := newTestApp(api, "cs@dept.edu\n")

	require.Error(t, a.Login(context.Background()))
	assert.False(t, a.isLoggedIn())
}

func TestSubmitCommand(t *testing.T) {
	api := &fakeAPI{submitID: 7}
	a := newTestApp(api, "student_records\nline one\nline two\n\n")

	require.NoError(t, a.Submit(context.Background()))

	assert.Equal(t, "student_records", api.gotType)
	assert.Equal(t, "line one\nline two", api.gotContent)
}

func TestSubmitCommand_Rejected(t *testing.T) {
	api := &fakeAPI{submitErr: errors.New("content too short")}
	a := newTestApp(api, "other\nshort\n\n")

	require.Error(t, a.Submit(context.Background()))
}

func TestReadOnlyCommands(t *testing.T) {
	api := &fakeAPI{
		artifact: "college_data_export_x.csv",
		entries:  []protocol.EntryPreview{{Department: "Physics"}},
		stats:    protocol.ServerStats{DataEntries: 3},
	}
	a := newTestApp(api, "")

	ctx := context.Background()
	assert.NoError(t, a.Recent(ctx))
	assert.NoError(t, a.Export(ctx))
	assert.NoError(t, a.Stats(ctx))
}
