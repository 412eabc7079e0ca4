package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/KalpShah999/TMGame/internal/commands"
	"github.com/KalpShah999/TMGame/internal/messaging"
	"github.com/KalpShah999/TMGame/internal/world"
)

type session struct {
	conn       io.ReadWriter
	reader     *bufio.Reader
	username   string
	handle     *world.SessionHandle
	world      *world.State
	cmdHandler *commands.Handler
	pub        *messaging.Publisher

	msgs chan []byte

	// done is closed at teardown to release any sender blocked on msgs or
	// on the input channel.
	done chan struct{}
}

// greet sends the post-login sequence: the personal welcome, the join
// announcement, and the opening status and look.
func (s *session) greet(ctx context.Context, existed bool) error {
	var welcome string
	if existed {
		welcome = fmt.Sprintf("[RETURNING PLAYER] Welcome back, %s!", s.username)
	} else {
		welcome = fmt.Sprintf("[NEW PLAYER] Welcome, %s! Your adventure begins...", s.username)
	}
	if err := s.writeLine(welcome); err != nil {
		return err
	}

	if err := s.pub.Broadcast(fmt.Sprintf("[SERVER] %s has joined the realm!", s.username), s.username); err != nil {
		return fmt.Errorf("announcing join: %w", err)
	}

	for _, cmd := range []string{"status", "look"} {
		if err := s.cmdHandler.Exec(ctx, s.username, cmd); err != nil {
			return fmt.Errorf("initial %s failed: %w", cmd, err)
		}
	}

	return s.pub.SendTo(s.username, "[TIP] Type 'help' to see the help menu with command categories.")
}

// run is the session's main loop: one goroutine reads input lines into a
// channel, and this goroutine multiplexes input, published messages, and
// eviction. It is the only writer to the connection, so output stays ordered.
func (s *session) run(ctx context.Context) error {
	inputChan := make(chan string)
	inputErrChan := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(s.reader)
		for scanner.Scan() {
			select {
			case inputChan <- scanner.Text():
			case <-s.done:
				return
			}
		}
		inputErrChan <- scanner.Err()
		close(inputChan)
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-s.handle.Done():
			var msg string
			if s.handle.Reason() == world.KickTakeover {
				msg = "\nAnother connection has taken over your session."
			} else {
				msg = "\nConnection closed by server."
			}
			if err := s.writeLine(msg); err != nil {
				slog.Warn("failed to write disconnect message", "username", s.username, "error", err)
			}
			if s.handle.Reason() == world.KickTakeover {
				return ErrSessionReplaced
			}
			return nil

		case msg := <-s.msgs:
			if err := s.writeLine("\n" + string(msg)); err != nil {
				return err
			}
			if err := s.prompt(); err != nil {
				return err
			}

		case line, ok := <-inputChan:
			if !ok {
				// Connection lost.
				select {
				case err := <-inputErrChan:
					return err
				default:
					return nil
				}
			}

			line = strings.ToLower(strings.TrimSpace(line))
			if line == "" {
				if err := s.prompt(); err != nil {
					return err
				}
				continue
			}

			if err := s.cmdHandler.Exec(ctx, s.username, line); err != nil {
				var userErr *commands.UserError
				if errors.As(err, &userErr) {
					if err := s.writeLine(userErr.Message); err != nil {
						return err
					}
				} else {
					return fmt.Errorf("command execution failed: %w", err)
				}
			}

			if err := s.prompt(); err != nil {
				return err
			}
		}
	}
}

// replaced reports whether this session was kicked in favor of a newer
// connection for the same username.
func (s *session) replaced() bool {
	select {
	case <-s.handle.Done():
		return s.handle.Reason() == world.KickTakeover
	default:
		return false
	}
}

func (s *session) prompt() error {
	prompt := "> "
	if p, err := s.world.ViewPlayer(s.username); err == nil {
		prompt = fmt.Sprintf("[%d/%dHP] > ", p.Health, p.MaxHealth)
	}
	_, err := s.conn.Write([]byte(prompt))
	return err
}

func (s *session) writeLine(msg string) error {
	_, err := s.conn.Write([]byte(msg + "\n"))
	return err
}
