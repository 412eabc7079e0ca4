package combat

import (
	"fmt"

	"github.com/KalpShah999/TMGame/internal/game"
)

// MaxRounds caps the melee exchange loop. The damage jitter makes
// termination probabilistic rather than guaranteed, so a fight that is
// still running after this many rounds breaks off with no rewards.
const MaxRounds = 200

// DefeatGoldPenalty is deducted (floored at zero) when a player loses.
const DefeatGoldPenalty = 20

// Notifier delivers combat narration. Sends happen outside the state lock.
type Notifier interface {
	SendTo(username, text string) error
	Broadcast(text string, exclude ...string) error
}

// PlayerStore is the engine's guarded access to player records. The lock is
// taken per call, never across rounds, so other sessions may observe a
// half-finished fight's intermediate state.
type PlayerStore interface {
	WithPlayer(username string, fn func(*game.Player) error) error
	ViewPlayer(username string) (*game.Player, error)
}

// Engine resolves attack and cast actions against enemy templates.
type Engine struct {
	catalog *game.Catalog
	store   PlayerStore
	pub     Notifier
	roll    Roller
}

type EngineOpt func(*Engine)

// WithRoller replaces the random source, used by tests for determinism.
func WithRoller(r Roller) EngineOpt {
	return func(e *Engine) {
		e.roll = r
	}
}

func NewEngine(catalog *game.Catalog, store PlayerStore, pub Notifier, opts ...EngineOpt) *Engine {
	e := &Engine{
		catalog: catalog,
		store:   store,
		pub:     pub,
		roll:    defaultRoller,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// MeleeOutcome reports how a melee fight ended.
type MeleeOutcome struct {
	Victory    bool
	Defeated   bool
	BrokeOff   bool
	ExpGained  int
	GoldGained int
	LeveledUp  bool
}

// Melee runs the alternating-exchange loop for username against the enemy
// template with the given id, which must be present at the player's
// location. The enemy fights as a private copy of its template; only the
// player's record is mutated, one guarded operation per round.
func (e *Engine) Melee(username, enemyId string) (*MeleeOutcome, error) {
	p, err := e.store.ViewPlayer(username)
	if err != nil {
		return nil, err
	}

	loc := e.catalog.Locations.Get(p.Location)
	if loc == nil {
		return nil, fmt.Errorf("location %q not in catalog", p.Location)
	}
	if len(loc.Enemies) == 0 {
		return nil, &NoEnemiesError{}
	}
	if !loc.HasEnemy(enemyId) {
		return nil, &EnemyNotHereError{EnemyId: enemyId}
	}

	enemy := e.catalog.Enemies.Get(enemyId)
	if enemy == nil {
		return nil, fmt.Errorf("enemy %q not in catalog", enemyId)
	}
	weapon := e.catalog.Weapons.Get(p.Weapon)
	if weapon == nil {
		return nil, fmt.Errorf("weapon %q not in catalog", p.Weapon)
	}

	e.pub.SendTo(username, fmt.Sprintf("[COMBAT] Battle started with %s!", enemy.Name))
	e.pub.Broadcast(fmt.Sprintf("[COMBAT] %s is fighting a %s!", username, enemy.Name), username)

	enemyHealth := enemy.Health
	playerHealth := p.Health

	for round := 0; round < MaxRounds && enemyHealth > 0 && playerHealth > 0; round++ {
		playerHit := weapon.Damage + e.roll(playerJitterMin, playerJitterMax)
		enemyHealth -= playerHit
		e.pub.SendTo(username, fmt.Sprintf("You strike for %d damage! Enemy health: %d", playerHit, max(0, enemyHealth)))

		// Enemy dies before retaliating
		if enemyHealth <= 0 {
			break
		}

		enemyHit := enemy.Damage + e.roll(enemyJitterMin, enemyJitterMax)
		err = e.store.WithPlayer(username, func(p *game.Player) error {
			p.Health -= enemyHit
			if p.Health < 0 {
				p.Health = 0
			}
			playerHealth = p.Health
			return nil
		})
		if err != nil {
			return nil, err
		}
		e.pub.SendTo(username, fmt.Sprintf("Enemy hits you for %d damage! Your health: %d", enemyHit, playerHealth))
	}

	switch {
	case enemyHealth <= 0:
		return e.resolveVictory(username, enemy)
	case playerHealth <= 0:
		return e.resolveDefeat(username, enemy)
	default:
		e.pub.SendTo(username, fmt.Sprintf("You and the %s break off, both too worn to continue.", enemy.Name))
		return &MeleeOutcome{BrokeOff: true}, nil
	}
}

func (e *Engine) resolveVictory(username string, enemy *game.Enemy) (*MeleeOutcome, error) {
	outcome := &MeleeOutcome{
		Victory:    true,
		ExpGained:  enemy.ExpReward,
		GoldGained: enemy.GoldReward,
	}

	var health, mana, gold, exp int
	var level, maxHealth, maxMana int
	err := e.store.WithPlayer(username, func(p *game.Player) error {
		p.Exp += enemy.ExpReward
		p.Gold += enemy.GoldReward

		// The INFO line reports totals as earned, before any level-up
		// rolls the exp counter and refills health.
		health, mana, gold, exp = p.Health, p.Mana, p.Gold, p.Exp

		// Exactly one level-up per combat, even if the reward crosses
		// multiple thresholds.
		if p.Exp >= p.ExpToLevel {
			p.LevelUp()
			outcome.LeveledUp = true
		}

		level, maxHealth, maxMana = p.Level, p.MaxHealth, p.MaxMana
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.pub.SendTo(username, fmt.Sprintf("[VICTORY] You gained %d EXP and %d gold!", enemy.ExpReward, enemy.GoldReward))
	e.pub.SendTo(username, fmt.Sprintf("[INFO] You now have %d health, %d mana, %d gold, and %d EXP.", health, mana, gold, exp))
	e.pub.Broadcast(fmt.Sprintf("[COMBAT] %s defeated a %s!", username, enemy.Name), username)

	if outcome.LeveledUp {
		e.pub.SendTo(username, fmt.Sprintf("*** LEVEL UP! You are now level %d! ***\nMax Health: +20 (now %d)\nMax Mana: +10 (now %d)", level, maxHealth, maxMana))
		e.pub.Broadcast(fmt.Sprintf("[SERVER] %s reached level %d!", username, level), username)
	}

	return outcome, nil
}

func (e *Engine) resolveDefeat(username string, enemy *game.Enemy) (*MeleeOutcome, error) {
	err := e.store.WithPlayer(username, func(p *game.Player) error {
		p.Health = p.MaxHealth / 2
		p.Location = e.catalog.RespawnLocation()
		p.Gold = max(0, p.Gold-DefeatGoldPenalty)
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.pub.SendTo(username, "[DEFEAT] You were defeated! You wake up in the town square with reduced gold.")
	e.pub.Broadcast(fmt.Sprintf("[COMBAT] %s was defeated by a %s!", username, enemy.Name), username)

	return &MeleeOutcome{Defeated: true}, nil
}
