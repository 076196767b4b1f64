package client

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/haroontrailblazer/College-Departments-Portal/internal/protocol"
)

// requestTimeout bounds a single round trip when the caller's context
// carries no deadline of its own.
const requestTimeout = 15 * time.Second

type TCPClient struct {
	endpointAddr string

	mu     sync.Mutex
	conn   net.Conn
	reader *bufio.Reader
}

func NewPortalClient(endpointAddr string, dialTimeout time.Duration) (*TCPClient, error) {
	conn, err := net.DialTimeout("tcp", endpointAddr, dialTimeout)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return &TCPClient{
		endpointAddr: endpointAddr,
		conn:         conn,
		reader:       protocol.NewFrameReader(conn),
	}, nil
}

func (c *TCPClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.Close()
}

// roundTrip sends one request and reads the matching reply. The server
// answers strictly in order, so the whole exchange happens under the mutex.
func (c *TCPClient) roundTrip(ctx context.Context, req protocol.Request) (protocol.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(requestTimeout)
	}
	if err := c.conn.SetDeadline(deadline); err != nil {
		return protocol.Response{}, err
	}

	body, err := protocol.EncodeRequest(req)
	if err != nil {
		return protocol.Response{}, err
	}
	if _, err := c.conn.Write(append(body, '\n')); err != nil {
		return protocol.Response{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	frame, err := protocol.ReadFrame(c.reader)
	if err != nil {
		return protocol.Response{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var resp protocol.Response
	if err := json.Unmarshal(frame, &resp); err != nil {
		return protocol.Response{}, fmt.Errorf("malformed reply: %w", err)
	}

	if resp.IsError() {
		return resp, c.mapError(resp)
	}
	return resp, nil
}

// mapError converts an error reply into a sentinel the caller can match
// with errors.Is, keeping the server's message for display.
func (c *TCPClient) mapError(resp protocol.Response) error {
	switch resp.Code {
	case protocol.CodeAuth:
		return fmt.Errorf("%w: %s", ErrUnauthorized, resp.Message)
	case protocol.CodeValidation:
		return fmt.Errorf("%w: %s", ErrRejected, resp.Message)
	case protocol.CodeBusy:
		return fmt.Errorf("%w: %s", ErrServerBusy, resp.Message)
	default:
		return fmt.Errorf("server error: %s", resp.Message)
	}
}

// Login authenticates the connection and returns the department name.
func (c *TCPClient) Login(ctx context.Context, email string, password string) (string, error) {
	resp, err := c.roundTrip(ctx, protocol.Login{Email: email, Password: password})
	if err != nil {
		return "", err
	}
	return resp.DeptName, nil
}

// Submit stores one data entry and returns its assigned id.
func (c *TCPClient) Submit(ctx context.Context, entryType string, content string) (int64, error) {
	resp, err := c.roundTrip(ctx, protocol.SubmitData{EntryType: entryType, Content: content})
	if err != nil {
		return 0, err
	}
	return resp.EntryID, nil
}

// Export triggers a consolidated CSV export and returns the artifact name.
func (c *TCPClient) Export(ctx context.Context) (string, error) {
	resp, err := c.roundTrip(ctx, protocol.Export{})
	if err != nil {
		return "", err
	}
	return resp.Artifact, nil
}

// Recent returns previews of the latest entries. Limit 0 means the server
// default.
func (c *TCPClient) Recent(ctx context.Context, limit int) ([]protocol.EntryPreview, error) {
	resp, err := c.roundTrip(ctx, protocol.Recent{Limit: limit})
	if err != nil {
		return nil, err
	}
	return resp.Entries, nil
}

// Stats returns the server's activity counters.
func (c *TCPClient) Stats(ctx context.Context) (protocol.ServerStats, error) {
	resp, err := c.roundTrip(ctx, protocol.Stats{})
	if err != nil {
		return protocol.ServerStats{}, err
	}
	if resp.Stats == nil {
		return protocol.ServerStats{}, fmt.Errorf("malformed reply: missing stats")
	}
	return *resp.Stats, nil
}

// Disconnect announces a clean close; the connection is unusable afterwards.
func (c *TCPClient) Disconnect(ctx context.Context) error {
	_, err := c.roundTrip(ctx, protocol.Disconnect{})
	return err
}
