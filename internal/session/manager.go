package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/KalpShah999/TMGame/internal/commands"
	"github.com/KalpShah999/TMGame/internal/messaging"
	"github.com/KalpShah999/TMGame/internal/world"
)

// ErrSessionReplaced is returned by a session loop that was displaced by a
// newer connection for the same username.
var ErrSessionReplaced = errors.New("session replaced by a new connection")

// Subscriber provides the ability to subscribe to message subjects.
type Subscriber interface {
	Subscribe(subject string, handler func(data []byte)) (unsubscribe func(), err error)
}

// Manager owns the full lifecycle of player connections: login, the
// interactive loop, and teardown. Listeners hand it raw connections and it
// does the rest.
type Manager struct {
	world      *world.State
	cmdHandler *commands.Handler
	pub        *messaging.Publisher
	subscriber Subscriber
}

func NewManager(w *world.State, cmd *commands.Handler, pub *messaging.Publisher, sub Subscriber) *Manager {
	return &Manager{
		world:      w,
		cmdHandler: cmd,
		pub:        pub,
		subscriber: sub,
	}
}

// RunSession drives one connection from login to disconnect. It blocks until
// the player disconnects, is kicked, or the context is cancelled.
func (m *Manager) RunSession(ctx context.Context, conn io.ReadWriter) error {
	// One buffered reader for the whole connection: commands pipelined
	// behind the username stay in its buffer for the command loop.
	reader := bufio.NewReader(conn)

	username, err := runLogin(reader, conn)
	if err != nil {
		return err
	}

	_, existed := m.world.GetOrCreatePlayer(username)

	handle, old := m.world.RegisterSession(username)
	if old != nil {
		old.Kick(world.KickTakeover)
	}

	s := &session{
		conn:       conn,
		reader:     reader,
		username:   username,
		handle:     handle,
		world:      m.world,
		cmdHandler: m.cmdHandler,
		pub:        m.pub,
		msgs:       make(chan []byte, 16),
		done:       make(chan struct{}),
	}

	unsub, err := m.subscriber.Subscribe(messaging.PlayerSubject(username), func(data []byte) {
		select {
		case s.msgs <- data:
		case <-s.done:
		}
	})
	if err != nil {
		m.world.UnregisterSession(handle)
		return fmt.Errorf("subscribing player %s: %w", username, err)
	}

	defer func() {
		close(s.done)
		unsub()
		m.world.UnregisterSession(handle)

		// A displaced session must not announce a departure; the player is
		// still here on the new connection.
		if !s.replaced() {
			_ = m.pub.Broadcast(fmt.Sprintf("[SERVER] %s has left the realm.", username))
		}
	}()

	if err := s.greet(ctx, existed); err != nil {
		return err
	}

	return s.run(ctx)
}
