package world

import (
	"fmt"
	"sort"
	"sync"

	"github.com/KalpShah999/TMGame/internal/game"
	"github.com/google/uuid"
)

// State is the single source of truth for all mutable game state: player
// records and the live session registry. All access must go through its
// methods; the one mutex is held for the duration of a single logical
// operation and never across network writes or combat rounds.
type State struct {
	mu      sync.Mutex
	catalog *game.Catalog

	players  map[string]*game.Player
	sessions map[string]*SessionHandle
}

func NewState(catalog *game.Catalog) *State {
	return &State{
		catalog:  catalog,
		players:  make(map[string]*game.Player),
		sessions: make(map[string]*SessionHandle),
	}
}

// Catalog returns the read-only world content catalog.
func (s *State) Catalog() *game.Catalog {
	return s.catalog
}

// GetOrCreatePlayer returns a copy of the record for username, creating it
// from the starting stats template if unseen. The second return reports
// whether the record already existed.
func (s *State) GetOrCreatePlayer(username string) (*game.Player, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[username]
	if !ok {
		p = game.NewPlayer(s.catalog.Stats)
		s.players[username] = p
	}
	return p.Clone(), ok
}

// WithPlayer runs fn against the live record for username under the state
// lock. fn must not block on I/O.
func (s *State) WithPlayer(username string, fn func(*game.Player) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[username]
	if !ok {
		return fmt.Errorf("%w: %s", game.ErrPlayerNotFound, username)
	}
	return fn(p)
}

// ViewPlayer returns an independent copy of the record for username.
func (s *State) ViewPlayer(username string) (*game.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[username]
	if !ok {
		return nil, fmt.Errorf("%w: %s", game.ErrPlayerNotFound, username)
	}
	return p.Clone(), nil
}

// RegisterSession binds username to a new session handle. If a session for
// the same username is already registered it is replaced, and the displaced
// handle is returned so the caller can kick it: the new connection wins.
func (s *State) RegisterSession(username string) (handle, old *SessionHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old = s.sessions[username]
	handle = &SessionHandle{
		ID:       uuid.New().String(),
		Username: username,
		done:     make(chan struct{}),
	}
	s.sessions[username] = handle
	return handle, old
}

// UnregisterSession removes the session binding for username, but only if it
// still belongs to the given handle. A session that was displaced by a
// reconnect must not tear down its successor's registration.
func (s *State) UnregisterSession(handle *SessionHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cur, ok := s.sessions[handle.Username]; ok && cur.ID == handle.ID {
		delete(s.sessions, handle.Username)
	}
}

// ListActive returns the usernames with a live session, sorted.
func (s *State) ListActive() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.sessions))
	for name := range s.sessions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ActiveAt returns the usernames of live sessions whose player is at the
// given location, excluding the named user.
func (s *State) ActiveAt(location, exclude string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var names []string
	for name := range s.sessions {
		if name == exclude {
			continue
		}
		if p, ok := s.players[name]; ok && p.Location == location {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// HasPlayers reports whether any player records exist.
func (s *State) HasPlayers() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.players) > 0
}

// KickAll evicts every live session, used during shutdown.
func (s *State) KickAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, h := range s.sessions {
		h.Kick(KickShutdown)
	}
}

// KickReason explains why a session was evicted.
type KickReason string

const (
	KickTakeover KickReason = "takeover"
	KickShutdown KickReason = "shutdown"
)

// SessionHandle represents one live connection's registry entry.
type SessionHandle struct {
	ID       string
	Username string

	reason   KickReason
	kickOnce sync.Once
	done     chan struct{}
}

// Done returns the channel closed when this session is evicted.
func (h *SessionHandle) Done() <-chan struct{} {
	return h.done
}

// Kick evicts the session. Safe to call concurrently; the first reason wins.
func (h *SessionHandle) Kick(reason KickReason) {
	h.kickOnce.Do(func() {
		h.reason = reason
		close(h.done)
	})
}

// Reason returns the kick reason. Only valid after Done is closed.
func (h *SessionHandle) Reason() KickReason {
	return h.reason
}
