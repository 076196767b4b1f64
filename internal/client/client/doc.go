// Package client contains client-side building blocks for the department CLI.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk
//     to the portal backend: Login, Submit, Export, Recent, Stats and
//     Disconnect.
//  2. A concrete TCP implementation (see TCPClient) that manages a single
//     connection, frames one JSON message per line, and maps error replies
//     to sentinel errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrRejected, ErrServerBusy.
//
// Concurrency & Contexts
//
// The server answers requests on a connection strictly in order, so TCPClient
// serializes round trips with a mutex. All operations accept context.Context
// and honor cancellation/timeouts via connection deadlines.
package client
