// Package session maps browser sessions to transcript controllers.
// Each session owns exactly one conversation: its controller, its
// update broadcaster and an activity timestamp used for idle eviction.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"quill-server/internal/domain/chat"
	"quill-server/internal/utils/idgen"
)

// Factory builds a fresh transcript controller for a new conversation.
type Factory func() *chat.TranscriptService

// Session ties one browser session to one conversation.
type Session struct {
	ID      string
	Updates *Broadcaster

	service *chat.TranscriptService

	// turnMu serializes turns: the controller itself is lock-free and
	// must never see a second turn while one is outstanding.
	turnMu sync.Mutex

	mu         sync.Mutex
	snapshot   []chat.Message
	lastActive time.Time
}

// SendTurn runs one chat turn on this session's conversation. Each
// controller notification refreshes the read snapshot and then signals
// the session broadcaster.
func (s *Session) SendTurn(ctx context.Context, text string) {
	s.turnMu.Lock()
	defer s.turnMu.Unlock()

	s.touch()
	s.service.SendTurn(ctx, text, s.onUpdate)
}

// onUpdate is the controller's notification callback. The snapshot is
// refreshed before the signal fans out, so a subscriber that reads the
// transcript on the first signal never races the in-flight append of
// the assistant entry.
func (s *Session) onUpdate() {
	messages := s.service.Transcript()
	s.mu.Lock()
	s.snapshot = messages
	s.mu.Unlock()

	s.Updates.Notify()
}

// Transcript returns the conversation history as of the latest
// notification. It is safe to call while a turn is in flight.
func (s *Session) Transcript() []chat.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()
	return s.snapshot
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastActive = time.Now()
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Registry holds all live sessions. Transcripts live only here; when a
// session is evicted its conversation is gone.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	factory     Factory
	idleTimeout time.Duration
	log         zerolog.Logger
}

// NewRegistry creates a registry that builds controllers with factory
// and evicts sessions idle longer than idleTimeout.
func NewRegistry(factory Factory, idleTimeout time.Duration, log zerolog.Logger) *Registry {
	return &Registry{
		sessions:    make(map[string]*Session),
		factory:     factory,
		idleTimeout: idleTimeout,
		log:         log,
	}
}

// Get returns the session with the given id, if it is still live.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sess, ok := r.sessions[id]
	return sess, ok
}

// Create starts a new session with a fresh conversation.
func (r *Registry) Create() (*Session, error) {
	id, err := idgen.GenerateSessionID()
	if err != nil {
		return nil, err
	}

	service := r.factory()
	sess := &Session{
		ID:         id,
		Updates:    NewBroadcaster(),
		service:    service,
		snapshot:   service.Transcript(),
		lastActive: time.Now(),
	}

	r.mu.Lock()
	r.sessions[id] = sess
	r.mu.Unlock()

	r.log.Info().Str("session_id", id).Msg("session created")
	return sess, nil
}

// GetOrCreate resolves id to a live session, starting a new one when
// the id is unknown or empty. The second return reports whether a new
// session was created.
func (r *Registry) GetOrCreate(id string) (*Session, bool, error) {
	if id != "" {
		if sess, ok := r.Get(id); ok {
			return sess, false, nil
		}
	}
	sess, err := r.Create()
	return sess, err == nil, err
}

// Count returns the number of live sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// SweepIdle evicts sessions that have been idle longer than the
// registry's idle timeout and returns how many were removed.
func (r *Registry) SweepIdle() int {
	cutoff := time.Now().Add(-r.idleTimeout)

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, sess := range r.sessions {
		if sess.idleSince().Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}

	if removed > 0 {
		r.log.Info().Int("evicted", removed).Int("live", len(r.sessions)).Msg("idle sessions evicted")
	}
	return removed
}
