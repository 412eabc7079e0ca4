package combat

import (
	"errors"
	"testing"

	"github.com/KalpShah999/TMGame/internal/game"
	"github.com/KalpShah999/TMGame/internal/world"
	"github.com/pixil98/go-testutil"
)

func learnSpells(t *testing.T, w *world.State, username string, spells ...string) {
	t.Helper()
	err := w.WithPlayer(username, func(p *game.Player) error {
		p.Spells = append(p.Spells, spells...)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCast_HealingClampsAtMax(t *testing.T) {
	e, w, pub := testFixture(t, fixedRoll(0))
	learnSpells(t, w, "alice", "mend")
	w.WithPlayer("alice", func(p *game.Player) error {
		p.Health = 95
		return nil
	})

	outcome, err := e.Cast("alice", "mend")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !outcome.Healed {
		t.Fatal("expected a healing outcome")
	}

	p, _ := w.ViewPlayer("alice")
	testutil.AssertEqual(t, "health clamped", p.Health, 100)
	testutil.AssertEqual(t, "mana deducted", p.Mana, 35)

	if !pub.contains("restore 20 health") {
		t.Errorf("missing heal message in %v", pub.sends)
	}
}

func TestCast_OffensiveHitsFirstEnemy(t *testing.T) {
	e, w, pub := testFixture(t, fixedRoll(2))
	learnSpells(t, w, "alice", "spark")
	moveTo(t, w, "alice", "forest")

	outcome, err := e.Cast("alice", "spark")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "damage", outcome.Damage, 10)
	p, _ := w.ViewPlayer("alice")
	testutil.AssertEqual(t, "mana", p.Mana, 46)

	if !pub.contains("[SPELL] You cast Spark for 10 damage!") {
		t.Errorf("missing spell message in %v", pub.sends)
	}
}

func TestCast_RefundsManaWithNoEnemies(t *testing.T) {
	e, w, pub := testFixture(t, fixedRoll(0))
	learnSpells(t, w, "alice", "spark")

	outcome, err := e.Cast("alice", "spark")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !outcome.Refunded {
		t.Fatal("expected a refund outcome")
	}

	p, _ := w.ViewPlayer("alice")
	testutil.AssertEqual(t, "mana refunded", p.Mana, 50)

	if !pub.contains("There are no enemies here!") {
		t.Errorf("missing refund message in %v", pub.sends)
	}
}

func TestCast_UnknownSpell(t *testing.T) {
	e, _, _ := testFixture(t, fixedRoll(0))

	_, err := e.Cast("alice", "spark")
	var unknown *SpellUnknownError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected SpellUnknownError for an unlearned spell, got %v", err)
	}

	_, err = e.Cast("alice", "wish")
	if !errors.As(err, &unknown) {
		t.Errorf("expected SpellUnknownError for a nonexistent spell, got %v", err)
	}
}

func TestCast_InsufficientMana(t *testing.T) {
	e, w, _ := testFixture(t, fixedRoll(0))
	learnSpells(t, w, "alice", "spark")
	w.WithPlayer("alice", func(p *game.Player) error {
		p.Mana = 2
		return nil
	})

	_, err := e.Cast("alice", "spark")
	var mana *InsufficientManaError
	if !errors.As(err, &mana) {
		t.Fatalf("expected InsufficientManaError, got %v", err)
	}
	testutil.AssertEqual(t, "need", mana.Need, 4)
	testutil.AssertEqual(t, "have", mana.Have, 2)

	// A failed cast must not spend anything
	p, _ := w.ViewPlayer("alice")
	testutil.AssertEqual(t, "mana unchanged", p.Mana, 2)
}
