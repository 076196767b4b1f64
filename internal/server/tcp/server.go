package tcp

import (
	"context"
	"errors"
	"io"
	"net"
	"sync"
	"time"

	"github.com/haroontrailblazer/College-Departments-Portal/internal/logging"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/protocol"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/server/config"
)

// writeTimeout bounds a single response write; a client that stops reading
// must not pin a worker forever.
const writeTimeout = 10 * time.Second

// Server is the dispatcher: it owns the listening socket, spawns one worker
// per accepted connection, enforces the session cap, and coordinates
// graceful shutdown.
type Server struct {
	address         string
	maxSessions     int
	idleTimeout     time.Duration
	shutdownTimeout time.Duration
	handler         *Handler
	stats           *Stats
	logger          logging.Logger

	mu    sync.Mutex
	conns map[net.Conn]struct{}
	addr  net.Addr
}

func NewServer(cfg *config.Config, l logging.Logger, handler *Handler, stats *Stats) *Server {
	return &Server{
		address:         cfg.EndpointAddr,
		maxSessions:     cfg.MaxSessions,
		idleTimeout:     cfg.IdleTimeout,
		shutdownTimeout: cfg.ShutdownTimeout,
		handler:         handler,
		stats:           stats,
		logger:          l.With("module", "dispatcher"),
		conns:           make(map[net.Conn]struct{}),
	}
}

// Run accepts connections until ctx is cancelled. On cancellation it stops
// accepting immediately and gives in-flight workers the shutdown grace
// period to finish their current request before force-closing them.
func (s *Server) Run(ctx context.Context) error {

	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.addr = listener.Addr()
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping server...")
		listener.Close()
	}()

	s.logger.Info(ctx, "Starting server", "address", s.address)

	var wg sync.WaitGroup

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			s.logger.Warn(ctx, "accept error", "error", err.Error())
			continue
		}

		if !s.register(conn) {
			// Session cap reached; refuse politely before any session exists.
			s.logger.Warn(ctx, "session cap reached, refusing connection", "remote", conn.RemoteAddr().String())
			conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			_ = protocol.WriteFrame(conn, protocol.Err(protocol.CodeBusy, "server busy, try again later"))
			conn.Close()
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			s.handleConn(ctx, conn)
		}()
	}

	s.drain(ctx, &wg)
	return nil
}

// drain waits for in-flight workers up to the shutdown grace period, then
// force-closes whatever connections remain. Closing a connection unblocks
// its worker's pending read.
func (s *Server) drain(ctx context.Context, wg *sync.WaitGroup) {

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(s.shutdownTimeout):
		s.logger.Warn(ctx, "shutdown grace period expired, closing remaining sessions")
		s.closeAll()
		<-done
	}

	s.logger.Info(ctx, "Server stopped")
}

// Addr returns the bound listener address, or nil before Run has started
// listening. Useful when the configured address picks an ephemeral port.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

func (s *Server) register(conn net.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxSessions > 0 && len(s.conns) >= s.maxSessions {
		return false
	}
	s.conns[conn] = struct{}{}
	return true
}

func (s *Server) unregister(conn net.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conns, conn)
}

func (s *Server) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.conns {
		conn.Close()
	}
}

// handleConn is the per-connection worker. It owns the Session for its
// lifetime; a failure here never touches any other session.
func (s *Server) handleConn(ctx context.Context, conn net.Conn) {

	sess := NewSession(conn.RemoteAddr().String())
	s.stats.connections.Add(1)

	log := s.logger.With("session", sess.ID, "remote", sess.Remote)
	log.Info(ctx, "New connection")

	defer func() {
		conn.Close()
		s.unregister(conn)
		log.Info(ctx, "Connection closed")
	}()

	reader := protocol.NewFrameReader(conn)

	for sess.State != StateClosed {

		conn.SetReadDeadline(time.Now().Add(s.idleTimeout))

		frame, err := protocol.ReadFrame(reader)
		if err != nil {
			switch {
			case errors.Is(err, io.EOF):
				// client went away
			case isTimeout(err):
				log.Info(ctx, "Session idle timeout")
			case errors.Is(err, protocol.ErrFrameTooLarge):
				log.Warn(ctx, "Oversized frame, closing connection")
				s.respond(ctx, conn, log, protocol.Err(protocol.CodeProtocol, "frame too large"))
			default:
				log.Warn(ctx, "Read error", "error", err.Error())
			}
			sess.Close()
			return
		}

		sess.Touch()

		req, err := protocol.DecodeRequest(frame)
		if err != nil {
			// Bad message in a well-delimited frame: recoverable, no state change.
			if !s.respond(ctx, conn, log, protocol.Err(protocol.CodeProtocol, err.Error())) {
				sess.Close()
				return
			}
			continue
		}

		resp, closeAfter := s.handler.Handle(ctx, sess, req)

		if !s.respond(ctx, conn, log, resp) {
			sess.Close()
			return
		}

		if closeAfter {
			return
		}
	}
}

// respond writes exactly one response frame, reporting whether the
// connection is still usable.
func (s *Server) respond(ctx context.Context, conn net.Conn, log logging.Logger, resp protocol.Response) bool {
	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := protocol.WriteFrame(conn, resp); err != nil {
		log.Warn(ctx, "Write error", "error", err.Error())
		return false
	}
	return true
}

func isTimeout(err error) bool {
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
