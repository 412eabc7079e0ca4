package listener

import (
	"context"
	"io"
	"log/slog"

	"github.com/KalpShah999/TMGame/internal/session"
)

// ConnectionManager is the seam between transport listeners and game
// sessions. Listeners hand it raw connections; it runs the session to
// completion and logs how it ended.
type ConnectionManager struct {
	sessions *session.Manager
}

func NewConnectionManager(sm *session.Manager) *ConnectionManager {
	return &ConnectionManager{
		sessions: sm,
	}
}

func (m *ConnectionManager) AcceptConnection(ctx context.Context, conn io.ReadWriter) {
	if err := m.sessions.RunSession(ctx, conn); err != nil {
		slog.WarnContext(ctx, "player session ended", "error", err)
	}
}
