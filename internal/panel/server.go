package panel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/scrollprompt/internal/logging"
	"github.com/muurk/scrollprompt/internal/prompt"
)

// ErrServerClosed is returned by Accept after Shutdown
var ErrServerClosed = errors.New("panel server closed")

// Config holds the server configuration
type Config struct {
	Host    string
	Port    int // 0 picks a free port
	Layout  prompt.Layout
	Profile string
}

// Server accepts one panel at a time on /ws
type Server struct {
	config   Config
	upgrader websocket.Upgrader
	pending  chan *Session
	closed   chan struct{}

	mu         sync.Mutex
	active     *Session
	listener   net.Listener
	httpServer *http.Server
	closeOnce  sync.Once
}

// New creates a new Server instance
func New(config Config) (*Server, error) {
	if err := config.Layout.Validate(); err != nil {
		return nil, err
	}
	return &Server{
		config: config,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  maxMessageSize,
			WriteBufferSize: 4096,
			// Panels are local companion apps, not browsers on other origins
			CheckOrigin: func(*http.Request) bool { return true },
		},
		pending: make(chan *Session, 1),
		closed:  make(chan struct{}),
	}, nil
}

// Handler returns the HTTP handler serving /ws and /layout
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/layout", s.handleLayout)
	return mux
}

// Listen opens the TCP listener; Addr is valid afterwards
func (s *Server) Listen() error {
	addr := net.JoinHostPort(s.config.Host, fmt.Sprint(s.config.Port))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s.mu.Lock()
	s.listener = listener
	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.mu.Unlock()

	logging.Info("Panel server listening",
		zap.String("addr", listener.Addr().String()),
		zap.Int("chars_per_line", s.config.Layout.CharsPerLine),
		zap.Int("lines_per_page", s.config.Layout.LinesPerPage),
	)
	return nil
}

// Addr returns the listening address, or nil before Listen
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Serve serves HTTP until Shutdown. Listen must have been called.
func (s *Server) Serve() error {
	s.mu.Lock()
	srv, listener := s.httpServer, s.listener
	s.mu.Unlock()
	if srv == nil {
		return errors.New("panel server is not listening")
	}

	if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Accept blocks until a panel connects
func (s *Server) Accept(ctx context.Context) (*Session, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-s.closed:
		return nil, ErrServerClosed
	case session := <-s.pending:
		return session, nil
	}
}

// Shutdown stops accepting panels and closes the active one
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down panel server...")
	s.closeOnce.Do(func() { close(s.closed) })

	s.mu.Lock()
	srv, active := s.httpServer, s.active
	s.mu.Unlock()

	if active != nil {
		logging.Info("Closing active panel", zap.String("remote_addr", active.RemoteAddr()))
		_ = active.Close()
	}
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	select {
	case <-s.closed:
		http.Error(w, "server is shutting down", http.StatusServiceUnavailable)
		return
	default:
	}

	s.mu.Lock()
	busy := s.active != nil
	s.mu.Unlock()
	if busy {
		logging.Warn("Rejecting second panel", zap.String("remote_addr", r.RemoteAddr))
		http.Error(w, "a panel is already connected", http.StatusConflict)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Error("Invalid WebSocket upgrade request",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}

	session := newSession(conn)

	s.mu.Lock()
	if s.active != nil {
		s.mu.Unlock()
		_ = session.Close()
		return
	}
	s.active = session
	s.mu.Unlock()

	logging.LogConnection(session.RemoteAddr(), "connected")

	go func() {
		<-session.Done()
		s.mu.Lock()
		if s.active == session {
			s.active = nil
		}
		s.mu.Unlock()
		logging.LogConnection(session.RemoteAddr(), "disconnected")
	}()

	select {
	case s.pending <- session:
	default:
		// A connected panel nobody accepted yet; replace it
		select {
		case stale := <-s.pending:
			_ = stale.Close()
		default:
		}
		s.pending <- session
	}
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(LayoutInfo{
		Chars:   s.config.Layout.CharsPerLine,
		Lines:   s.config.Layout.LinesPerPage,
		Profile: s.config.Profile,
	})
}

// RunSessions runs fn for each panel that connects, one at a time, until ctx is
// done or the server shuts down. The decision or error of each run is sent
// to the panel before it is closed.
func (s *Server) RunSessions(ctx context.Context, fn func(ctx context.Context, session *Session) (prompt.Decision, error)) error {
	for {
		session, err := s.Accept(ctx)
		if err != nil {
			if errors.Is(err, ErrServerClosed) || errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		decision, err := fn(ctx, session)
		switch {
		case err == nil:
			_ = session.SendDecision(decision)
		case errors.Is(err, ErrDisconnected):
			logging.Info("Panel left before a decision", zap.String("remote_addr", session.RemoteAddr()))
		default:
			logging.Warn("Prompt failed", zap.String("remote_addr", session.RemoteAddr()), zap.Error(err))
			_ = session.SendError(err)
		}
		_ = session.Close()
	}
}
