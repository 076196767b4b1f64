package client

import (
	"context"

	"github.com/haroontrailblazer/College-Departments-Portal/internal/protocol"
)

type Client interface {
	Close() error
	Login(ctx context.Context, email string, password string) (string, error)
	Submit(ctx context.Context, entryType string, content string) (int64, error)
	Export(ctx context.Context) (string, error)
	Recent(ctx context.Context, limit int) ([]protocol.EntryPreview, error)
	Stats(ctx context.Context) (protocol.ServerStats, error)
	Disconnect(ctx context.Context) error
}
