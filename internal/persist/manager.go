package persist

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/KalpShah999/TMGame/internal/storage"
	"github.com/KalpShah999/TMGame/internal/world"
)

const (
	// SaveExt is the extension for world snapshot files.
	SaveExt = ".tms"

	timestampFormat = "20060102_150405"
)

// Broadcaster sends a message to every connected player.
type Broadcaster interface {
	Broadcast(text string, exclude ...string) error
}

// Manager owns world snapshots: manual saves, autosaves on the driver tick,
// and the final save-notify-kick sequence on shutdown.
type Manager struct {
	world *world.State
	pub   Broadcaster

	dir      string
	saveFile string
	info     world.ServerInfo

	// saveMu serializes snapshot writes. The autosave tick and the shutdown
	// save target the same file and share its temp path, so they must never
	// run concurrently.
	saveMu       sync.Mutex
	shutdownOnce sync.Once
}

// NewManager creates a persistence manager writing snapshots under dir.
// saveFile is the configured save target; when empty, autosave is disabled
// and the shutdown save picks its own name.
func NewManager(w *world.State, pub Broadcaster, dir, saveFile string, info world.ServerInfo) *Manager {
	return &Manager{
		world:    w,
		pub:      pub,
		dir:      dir,
		saveFile: saveFile,
		info:     info,
	}
}

// Save writes a snapshot of the world to the named file in the saves
// directory and returns the full path. An empty name generates a
// timestamped one.
func (m *Manager) Save(name string) (string, error) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	if name == "" {
		name = fmt.Sprintf("world_%s%s", time.Now().Format(timestampFormat), SaveExt)
	}
	if !strings.HasSuffix(name, SaveExt) {
		name += SaveExt
	}

	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating saves directory: %w", err)
	}

	snap := m.world.Snapshot(m.info)
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding snapshot: %w", err)
	}

	path := filepath.Join(m.dir, name)
	if err := storage.AtomicWrite(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing snapshot %s: %w", path, err)
	}

	return path, nil
}

// Load restores the world from the named save file. A missing or corrupt
// file is an error; the caller decides whether to start fresh instead.
func (m *Manager) Load(name string) error {
	if !strings.HasSuffix(name, SaveExt) {
		name += SaveExt
	}
	path := filepath.Join(m.dir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading save file %s: %w", path, err)
	}

	var snap world.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("decoding save file %s: %w", path, err)
	}

	if err := m.world.Restore(&snap); err != nil {
		return fmt.Errorf("restoring save file %s: %w", path, err)
	}

	return nil
}

// Tick autosaves to the configured save target. It does nothing when no
// target is configured or no players have ever joined.
func (m *Manager) Tick(ctx context.Context) error {
	if m.saveFile == "" || !m.world.HasPlayers() {
		return nil
	}

	path, err := m.Save(m.saveFile)
	if err != nil {
		return fmt.Errorf("autosave: %w", err)
	}

	slog.InfoContext(ctx, "autosaved world", "path", path)
	return nil
}

// Start blocks until the context is cancelled, then runs the shutdown
// sequence: save, notify players, evict sessions.
func (m *Manager) Start(ctx context.Context) error {
	<-ctx.Done()
	return m.Shutdown(context.WithoutCancel(ctx))
}

// Shutdown performs the final save-notify-kick sequence exactly once.
func (m *Manager) Shutdown(ctx context.Context) error {
	var err error
	m.shutdownOnce.Do(func() {
		if m.world.HasPlayers() {
			name := m.saveFile
			if name == "" {
				name = fmt.Sprintf("autosave_%s%s", time.Now().Format(timestampFormat), SaveExt)
			}

			var path string
			path, err = m.Save(name)
			if err != nil {
				slog.ErrorContext(ctx, "shutdown save failed", "error", err)
			} else {
				slog.InfoContext(ctx, "world saved", "path", path)
			}
		}

		if berr := m.pub.Broadcast("[SERVER] Server is shutting down. Your progress has been saved."); berr != nil {
			slog.WarnContext(ctx, "shutdown notice failed", "error", berr)
		}

		// Let the broker deliver the notice before sessions close.
		time.Sleep(100 * time.Millisecond)

		m.world.KickAll()
	})
	return err
}
