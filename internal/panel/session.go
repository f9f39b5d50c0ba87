package panel

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/scrollprompt/internal/input"
	"github.com/muurk/scrollprompt/internal/logging"
	"github.com/muurk/scrollprompt/internal/prompt"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 1024

	// Button presses that may queue ahead of the prompt
	eventBuffer = 16
)

// ErrDisconnected is returned once the panel has gone away
var ErrDisconnected = errors.New("panel disconnected")

// Session is one connected panel
type Session struct {
	conn       *websocket.Conn
	remoteAddr string

	events  chan prompt.InputEvent
	decoder *input.Decoder
	done    chan struct{}

	writeMu   sync.Mutex
	closeOnce sync.Once
	err       error
}

func newSession(conn *websocket.Conn) *Session {
	s := &Session{
		conn:       conn,
		remoteAddr: conn.RemoteAddr().String(),
		events:     make(chan prompt.InputEvent, eventBuffer),
		decoder:    input.NewDecoder(nil),
		done:       make(chan struct{}),
	}
	s.decoder.OnPress = s.sendPress
	go s.readLoop()
	go s.pingLoop()
	return s
}

// RemoteAddr returns the panel's address
func (s *Session) RemoteAddr() string {
	return s.remoteAddr
}

// Done is closed when the panel disconnects or the session is closed
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Render implements prompt.DisplaySink
func (s *Session) Render(frame prompt.Frame) error {
	return s.write(Message{Type: TypeFrame, Frame: NewFrameMessage(frame)})
}

// NextEvent implements prompt.InputSource
func (s *Session) NextEvent(ctx context.Context) (prompt.InputEvent, error) {
	// Presses that arrived before the disconnect are still delivered
	select {
	case event := <-s.events:
		return event, nil
	default:
	}

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case event := <-s.events:
		return event, nil
	case <-s.done:
		return 0, s.closeErr()
	}
}

// SendDecision tells the panel how the confirmation ended
func (s *Session) SendDecision(d prompt.Decision) error {
	return s.write(Message{Type: TypeDecision, Decision: d.String()})
}

// SendError reports a failure to the panel
func (s *Session) SendError(err error) error {
	return s.write(Message{Type: TypeError, Error: err.Error()})
}

// Close sends a close frame and releases the connection
func (s *Session) Close() error {
	s.writeMu.Lock()
	_ = s.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait))
	s.writeMu.Unlock()

	s.shutdown(nil)
	return s.conn.Close()
}

func (s *Session) write(msg Message) error {
	select {
	case <-s.done:
		return s.closeErr()
	default:
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	if err := s.conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("write %s message: %w", msg.Type, err)
	}
	return nil
}

func (s *Session) readLoop() {
	defer func() { _ = s.conn.Close() }()

	s.conn.SetReadLimit(maxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg Message
		if err := s.conn.ReadJSON(&msg); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logging.LogConnection(s.remoteAddr, "closed_by_panel")
				s.shutdown(nil)
			} else {
				logging.Info("Connection closed or error reading message",
					zap.String("remote_addr", s.remoteAddr),
					zap.Error(err),
				)
				s.shutdown(err)
			}
			return
		}

		if msg.Type != TypeButton {
			logging.Warn("Ignoring panel message",
				zap.String("remote_addr", s.remoteAddr),
				zap.String("type", msg.Type),
			)
			continue
		}

		event, ok, err := s.decode(msg.Button)
		if err != nil {
			logging.Warn("Invalid button from panel",
				zap.String("remote_addr", s.remoteAddr),
				zap.Error(err),
			)
			_ = s.SendError(err)
			continue
		}
		if !ok {
			continue
		}

		select {
		case s.events <- event:
		case <-s.done:
			return
		default:
			logging.Warn("Dropping button press, input queue full",
				zap.String("remote_addr", s.remoteAddr),
				zap.String("event", event.String()),
			)
		}
	}
}

// decode maps a button message to an input event. Raw edges only complete
// an event on release.
func (s *Session) decode(button string) (prompt.InputEvent, bool, error) {
	name := strings.ToLower(strings.TrimSpace(button))
	if strings.Contains(name, "-") {
		edge, err := input.ParseButtonEvent(name)
		if err != nil {
			return 0, false, err
		}
		event, ok := s.decoder.Feed(edge)
		return event, ok, nil
	}

	event, err := prompt.ParseInputEvent(name)
	if err != nil {
		return 0, false, err
	}
	return event, true, nil
}

func (s *Session) sendPress(b input.Button) {
	if err := s.write(Message{Type: TypePress, Button: b.String()}); err != nil {
		logging.Debug("Press feedback not delivered",
			zap.String("remote_addr", s.remoteAddr),
			zap.Error(err),
		)
	}
}

func (s *Session) pingLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.writeMu.Lock()
			err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
			s.writeMu.Unlock()
			if err != nil {
				logging.Debug("Ping failed",
					zap.String("remote_addr", s.remoteAddr),
					zap.Error(err),
				)
				s.shutdown(err)
				return
			}
		}
	}
}

func (s *Session) shutdown(err error) {
	s.closeOnce.Do(func() {
		s.err = err
		close(s.done)
	})
}

func (s *Session) closeErr() error {
	if s.err != nil {
		return fmt.Errorf("%w: %v", ErrDisconnected, s.err)
	}
	return ErrDisconnected
}
