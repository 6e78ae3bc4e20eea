package parley

import (
	"strings"
	"sync"
)

// Session is the sole owner of one chat session's state: the online-user
// roster and the append-only message history. Mutation happens under a single
// mutex so hosts may drive it from any goroutine.
type Session struct {
	username string
	send     SendFunc
	logger   Logger

	mu      sync.Mutex
	users   []UserProfile
	history []ChatMessage
	subs    []func()
}

// SessionOption customizes a Session at start.
type SessionOption func(*Session)

// WithSessionLogger attaches a logger to the session.
func WithSessionLogger(l Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// StartSession creates an empty session and announces username to the server
// with a single register frame. The username is forwarded as-is, untrimmed.
// A failed send is logged and the session proceeds; there is no retry.
func StartSession(username string, send SendFunc, opts ...SessionOption) *Session {
	s := &Session{username: username, send: send, logger: noopLogger{}}
	for _, opt := range opts {
		opt(s)
	}
	frame, err := EncodeRegister(username)
	if err != nil {
		s.logger.Warn("encode register", map[string]any{"error": err.Error()})
		return s
	}
	if err := s.send(frame); err != nil {
		s.logger.Warn("register send failed", map[string]any{"user": username, "error": err.Error()})
	}
	return s
}

// Username returns the name this session registered with.
func (s *Session) Username() string { return s.username }

// Subscribe registers a callback invoked after every state change. The
// rendering layer pulls Users/History when called. Subscribers live for the
// session's duration.
func (s *Session) Subscribe(fn func()) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// HandleFrame folds one inbound wire frame into the session state and reports
// whether anything changed. Frames that fail to decode are dropped silently:
// the session favors availability over strictness, so noise never tears down
// a session.
func (s *Session) HandleFrame(raw string) bool {
	msg, err := DecodeFrame(raw)
	if err != nil {
		s.logger.Debug("dropping frame", map[string]any{"error": err.Error()})
		return false
	}

	changed := false
	switch msg.Kind {
	case KindUsers:
		// Full replace, never a merge. A name missing from one broadcast is
		// offline until the server lists it again.
		roster := make([]UserProfile, 0, len(msg.DataList))
		for _, name := range msg.DataList {
			roster = append(roster, NewUserProfile(name))
		}
		s.mu.Lock()
		s.users = roster
		s.mu.Unlock()
		changed = true
	case KindMessage:
		if msg.Data == nil {
			return false
		}
		cm, err := DecodeChatPayload(*msg.Data)
		if err != nil {
			s.logger.Debug("dropping chat payload", map[string]any{"error": err.Error()})
			return false
		}
		s.mu.Lock()
		s.history = append(s.history, cm)
		s.mu.Unlock()
		changed = true
	}

	if changed {
		s.notify()
	}
	return changed
}

// SubmitMessage trims raw input and sends it as a chat frame. Blank input is
// a no-op with no frame sent. Send failures are logged, not retried; the
// message enters history only when the server echoes it back with From
// stamped.
func (s *Session) SubmitMessage(raw string) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return
	}
	frame, err := EncodeChatMessage(text)
	if err != nil {
		s.logger.Warn("encode message", map[string]any{"error": err.Error()})
		return
	}
	if err := s.send(frame); err != nil {
		s.logger.Warn("message send failed", map[string]any{"error": err.Error()})
	}
}

// Users returns a copy of the current roster in server order.
func (s *Session) Users() []UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]UserProfile, len(s.users))
	copy(out, s.users)
	return out
}

// History returns a copy of the messages received so far in arrival order.
func (s *Session) History() []ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ChatMessage, len(s.history))
	copy(out, s.history)
	return out
}

// ProfileFor finds the roster entry matching a sender name exactly. The
// second result is false when the sender is not currently listed; renderers
// show a neutral placeholder in that case.
func (s *Session) ProfileFor(name string) (UserProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Name == name {
			return u, true
		}
	}
	return UserProfile{}, false
}

func (s *Session) notify() {
	s.mu.Lock()
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}
