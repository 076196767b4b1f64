// Package protocol defines the wire contract between department clients and
// the portal server: one JSON object per newline-terminated frame, with an
// "action" discriminator on requests. Requests are decoded once, at the
// boundary, into a closed set of variants; everything past the decoder works
// with typed values only.
package protocol

import (
	"encoding/json"
	"fmt"
	"time"
)

// Actions recognized on the wire.
const (
	ActionLogin      = "login"
	ActionSubmitData = "submit_data"
	ActionExportCSV  = "export_csv"
	ActionGetRecent  = "get_recent"
	ActionGetStats   = "get_stats"
	ActionDisconnect = "disconnect"
)

// Error codes carried in error responses.
const (
	CodeAuth       = "auth"
	CodeValidation = "validation"
	CodeProtocol   = "protocol"
	CodeStore      = "store"
	CodeBusy       = "busy"
)

// Response statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Request is the closed union of client request variants.
type Request interface {
	action() string
}

// Login authenticates the connection as a department.
type Login struct {
	Email    string
	Password string
}

// SubmitData stores one data entry for the authenticated department.
type SubmitData struct {
	EntryType string
	Content   string
}

// Export asks the server to produce a consolidated CSV artifact.
type Export struct{}

// Recent asks for a preview of the latest entries. Limit 0 means the
// server default.
type Recent struct {
	Limit int
}

// Stats asks for the server's activity counters.
type Stats struct{}

// Disconnect announces a clean close of the connection.
type Disconnect struct{}

func (Login) action() string      { return ActionLogin }
func (SubmitData) action() string { return ActionSubmitData }
func (Export) action() string     { return ActionExportCSV }
func (Recent) action() string     { return ActionGetRecent }
func (Stats) action() string      { return ActionGetStats }
func (Disconnect) action() string { return ActionDisconnect }

// envelope is the single JSON shape all requests share on the wire.
type envelope struct {
	Action    string `json:"action"`
	Email     string `json:"email,omitempty"`
	Password  string `json:"password,omitempty"`
	EntryType string `json:"entry_type,omitempty"`
	Content   string `json:"data_content,omitempty"`
	Limit     int    `json:"limit,omitempty"`
}

// DecodeRequest parses one frame body into a request variant. An error here
// is recoverable at the session level: the frame was well delimited, only
// its contents were bad.
func DecodeRequest(data []byte) (Request, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("undecodable message: %w", err)
	}

	switch env.Action {
	case ActionLogin:
		return Login{Email: env.Email, Password: env.Password}, nil
	case ActionSubmitData:
		return SubmitData{EntryType: env.EntryType, Content: env.Content}, nil
	case ActionExportCSV:
		return Export{}, nil
	case ActionGetRecent:
		return Recent{Limit: env.Limit}, nil
	case ActionGetStats:
		return Stats{}, nil
	case ActionDisconnect:
		return Disconnect{}, nil
	case "":
		return nil, fmt.Errorf("missing action")
	default:
		return nil, fmt.Errorf("unknown action %q", env.Action)
	}
}

// EncodeRequest renders a request variant to its wire envelope.
func EncodeRequest(req Request) ([]byte, error) {
	env := envelope{Action: req.action()}

	switch r := req.(type) {
	case Login:
		env.Email = r.Email
		env.Password = r.Password
	case SubmitData:
		env.EntryType = r.EntryType
		env.Content = r.Content
	case Recent:
		env.Limit = r.Limit
	case Export, Stats, Disconnect:
	default:
		return nil, fmt.Errorf("unsupported request type %T", req)
	}

	return json.Marshal(env)
}

// EntryPreview is one row of a get_recent response.
type EntryPreview struct {
	Department string    `json:"dept_name"`
	EntryType  string    `json:"entry_type"`
	Preview    string    `json:"content_preview"`
	CreatedAt  time.Time `json:"created_at"`
}

// ServerStats mirrors the server's activity counters.
type ServerStats struct {
	Connections int64 `json:"connections"`
	DataEntries int64 `json:"data_entries"`
	Exports     int64 `json:"exports"`
}

// Response is the single reply shape for every request. Status is always
// set; Code is set only on errors; the payload fields depend on the action.
type Response struct {
	Status   string         `json:"status"`
	Code     string         `json:"code,omitempty"`
	Message  string         `json:"message,omitempty"`
	DeptName string         `json:"dept_name,omitempty"`
	EntryID  int64          `json:"entry_id,omitempty"`
	Artifact string         `json:"filename,omitempty"`
	Entries  []EntryPreview `json:"data,omitempty"`
	Stats    *ServerStats   `json:"stats,omitempty"`
}

// OK returns a success response with an optional human-readable message.
func OK(message string) Response {
	return Response{Status: StatusSuccess, Message: message}
}

// Err returns an error response with the given code and message.
func Err(code, message string) Response {
	return Response{Status: StatusError, Code: code, Message: message}
}

// IsError reports whether the response carries an error status.
func (r Response) IsError() bool {
	return r.Status != StatusSuccess
}
