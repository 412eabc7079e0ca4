package session

import (
	"context"
	"errors"
	"io"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/KalpShah999/TMGame/internal/combat"
	"github.com/KalpShah999/TMGame/internal/commands"
	"github.com/KalpShah999/TMGame/internal/game"
	"github.com/KalpShah999/TMGame/internal/messaging"
	"github.com/KalpShah999/TMGame/internal/storage"
	"github.com/KalpShah999/TMGame/internal/world"
)

// fakeBroker records publishes and captures subscription handlers so tests
// can drive deliveries by hand.
type fakeBroker struct {
	mu        sync.Mutex
	published []string
	handlers  map[string]func([]byte)

	subscribed chan string
}

func newFakeBroker() *fakeBroker {
	return &fakeBroker{
		handlers:   map[string]func([]byte){},
		subscribed: make(chan string, 8),
	}
}

func (b *fakeBroker) Publish(subject string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = append(b.published, subject+"|"+string(data))
	return nil
}

func (b *fakeBroker) Subscribe(subject string, handler func(data []byte)) (func(), error) {
	b.mu.Lock()
	b.handlers[subject] = handler
	b.mu.Unlock()
	b.subscribed <- subject
	return func() {}, nil
}

func (b *fakeBroker) publishedContains(sub string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, s := range b.published {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func (b *fakeBroker) publishedLines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.published...)
}

func (b *fakeBroker) handler(subject string) func([]byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.handlers[subject]
}

// scriptConn is a connection whose reads block until the test feeds a line.
type scriptConn struct {
	lines chan string
	buf   []byte

	mu  sync.Mutex
	out strings.Builder
}

func newScriptConn() *scriptConn {
	return &scriptConn{lines: make(chan string, 8)}
}

func (c *scriptConn) feed(line string) {
	c.lines <- line
}

func (c *scriptConn) Read(p []byte) (int, error) {
	for len(c.buf) == 0 {
		line, ok := <-c.lines
		if !ok {
			return 0, io.EOF
		}
		c.buf = []byte(line)
	}
	n := copy(p, c.buf)
	c.buf = c.buf[n:]
	return n, nil
}

func (c *scriptConn) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.out.Write(p)
}

func (c *scriptConn) output() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.out.String()
}

func testCatalog() *game.Catalog {
	return &game.Catalog{
		Locations: storage.NewMemStore(map[string]*game.Location{
			"square": {
				Name:        "Town Square",
				Description: "A bustling town square.",
				Exits:       map[string]string{"north": "forest"},
			},
			"forest": {
				Name:        "Dark Forest",
				Description: "A dense, dark forest.",
				Exits:       map[string]string{"south": "square"},
				Enemies:     []string{"rat"},
			},
		}),
		Enemies: storage.NewMemStore(map[string]*game.Enemy{
			"rat": {Name: "Rat", Health: 10, Damage: 2, ExpReward: 5, GoldReward: 3},
		}),
		Weapons: storage.NewMemStore(map[string]*game.Weapon{
			"stick": {Name: "Stick", Damage: 3, Description: "A stick."},
		}),
		Spells: storage.NewMemStore(map[string]*game.Spell{
			"spark": {Name: "Spark", Damage: 8, ManaCost: 4, Cost: 100, Description: "A small zap."},
		}),
		Stats: &game.StartingStats{
			Health: 100, MaxHealth: 100, Mana: 50, MaxMana: 50,
			Level: 1, ExpToLevel: 50, Gold: 50,
			Location: "square", Weapon: "stick",
		},
	}
}

func testManager(t *testing.T) (*Manager, *world.State, *fakeBroker) {
	t.Helper()

	catalog := testCatalog()
	w := world.NewState(catalog)
	broker := newFakeBroker()
	pub := messaging.NewPublisher(broker, w)
	engine := combat.NewEngine(catalog, w, pub, combat.WithRoller(func(min, max int) int { return 0 }))
	h := commands.NewHandler(w, engine, pub)

	return NewManager(w, h, pub, broker), w, broker
}

func TestRunSession_DispatchesPipelinedCommand(t *testing.T) {
	m, _, broker := testManager(t)

	// The client sends a command in the same burst as its username.
	conn := &fakeConn{Reader: strings.NewReader("alice\nsay hello\n")}
	if err := m.RunSession(context.Background(), conn); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !broker.publishedContains("player-alice|[alice]: hello") {
		t.Errorf("pipelined say was not dispatched; published: %v", broker.publishedLines())
	}
}

func TestRunSession_KickReleasesBlockedSenders(t *testing.T) {
	m, w, broker := testManager(t)
	baseline := runtime.NumGoroutine()

	conn := newScriptConn()
	conn.feed("alice\n")

	errCh := make(chan error, 1)
	go func() { errCh <- m.RunSession(context.Background(), conn) }()
	<-broker.subscribed

	w.KickAll()

	if err := <-errCh; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(conn.output(), "Connection closed by server.") {
		t.Error("missing shutdown notice")
	}

	// Deliveries after teardown must not block, even past the buffer size.
	deliver := broker.handler("player-alice")
	for i := 0; i < 20; i++ {
		deliver([]byte("late message"))
	}

	// A line scanned after teardown must not strand the input reader.
	conn.feed("say hi\n")
	deadline := time.Now().Add(2 * time.Second)
	for runtime.NumGoroutine() > baseline && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if n := runtime.NumGoroutine(); n > baseline {
		t.Errorf("goroutines leaked: %d running, baseline was %d", n, baseline)
	}
}

func TestRunSession_TakeoverDisplacesOldSession(t *testing.T) {
	m, _, broker := testManager(t)

	first := newScriptConn()
	first.feed("alice\n")
	defer close(first.lines)

	firstErr := make(chan error, 1)
	go func() { firstErr <- m.RunSession(context.Background(), first) }()
	<-broker.subscribed

	second := &fakeConn{Reader: strings.NewReader("alice\n")}
	secondErr := make(chan error, 1)
	go func() { secondErr <- m.RunSession(context.Background(), second) }()

	if err := <-firstErr; !errors.Is(err, ErrSessionReplaced) {
		t.Fatalf("expected ErrSessionReplaced, got %v", err)
	}
	if !strings.Contains(first.output(), "Another connection has taken over your session.") {
		t.Error("missing takeover notice")
	}

	if err := <-secondErr; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The displaced session must not announce a departure; the player is
	// still present on the new connection.
	if broker.publishedContains("has left the realm") {
		t.Errorf("unexpected departure broadcast in %v", broker.publishedLines())
	}
}
