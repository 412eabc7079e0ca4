package messaging

import (
	"fmt"
	"testing"

	"github.com/pixil98/go-testutil"
)

type fakeBroker struct {
	published []string
	fail      map[string]bool
}

func (b *fakeBroker) Publish(subject string, data []byte) error {
	if b.fail[subject] {
		return fmt.Errorf("publish to %s failed", subject)
	}
	b.published = append(b.published, fmt.Sprintf("%s|%s", subject, data))
	return nil
}

type fakeLister struct {
	names []string
}

func (l *fakeLister) ListActive() []string {
	return l.names
}

func TestPlayerSubject(t *testing.T) {
	testutil.AssertEqual(t, "subject", PlayerSubject("alice"), "player-alice")
}

func TestSendTo(t *testing.T) {
	broker := &fakeBroker{}
	p := NewPublisher(broker, &fakeLister{})

	if err := p.SendTo("alice", "hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "published count", len(broker.published), 1)
	testutil.AssertEqual(t, "message", broker.published[0], "player-alice|hello")
}

func TestBroadcast_ExcludesNames(t *testing.T) {
	broker := &fakeBroker{}
	p := NewPublisher(broker, &fakeLister{names: []string{"alice", "bob", "carol"}})

	if err := p.Broadcast("hi", "bob"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "published count", len(broker.published), 2)
	testutil.AssertEqual(t, "first", broker.published[0], "player-alice|hi")
	testutil.AssertEqual(t, "second", broker.published[1], "player-carol|hi")
}

func TestBroadcast_KeepsGoingAfterError(t *testing.T) {
	broker := &fakeBroker{fail: map[string]bool{"player-alice": true}}
	p := NewPublisher(broker, &fakeLister{names: []string{"alice", "bob"}})

	err := p.Broadcast("hi")
	if err == nil {
		t.Fatal("expected the first failure to be reported")
	}

	// The failure for one session must not stop delivery to the rest
	testutil.AssertEqual(t, "published count", len(broker.published), 1)
	testutil.AssertEqual(t, "delivered", broker.published[0], "player-bob|hi")
}
