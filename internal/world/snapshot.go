package world

import (
	"time"

	"github.com/KalpShah999/TMGame/internal/game"
	"github.com/pixil98/go-errors"
)

// SnapshotVersion is the current on-disk snapshot format version.
const SnapshotVersion = 1

// ServerInfo records where the snapshot was taken.
type ServerInfo struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// Snapshot is a complete, point-in-time, independently-owned copy of all
// player records. It is written and read as a complete-replace unit.
type Snapshot struct {
	Version    int                     `json:"version"`
	SavedAt    time.Time               `json:"saved_at"`
	Players    map[string]*game.Player `json:"players"`
	ServerInfo ServerInfo              `json:"server_info"`
}

// Snapshot builds a deep copy of all player records under the state lock, so
// an in-flight save can never observe a half-applied mutation.
func (s *State) Snapshot(info ServerInfo) *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	players := make(map[string]*game.Player, len(s.players))
	for name, p := range s.players {
		players[name] = p.Clone()
	}

	return &Snapshot{
		Version:    SnapshotVersion,
		SavedAt:    time.Now().UTC(),
		Players:    players,
		ServerInfo: info,
	}
}

// Restore replaces all player records with the snapshot's contents. Every
// record is checked against the catalog first; a snapshot referencing
// unknown ids is rejected wholesale. Used once at startup, before any
// session is accepted.
func (s *State) Restore(snap *Snapshot) error {
	el := errors.NewErrorList()
	for name, p := range snap.Players {
		el.Add(s.catalog.CheckPlayer(name, p))
	}
	if err := el.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.players = make(map[string]*game.Player, len(snap.Players))
	for name, p := range snap.Players {
		s.players[name] = p.Clone()
	}
	return nil
}
