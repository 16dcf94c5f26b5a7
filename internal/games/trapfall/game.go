// Package trapfall implements Trap Fall, a descending platformer where
// the tower is full of platforms that lie: some crumble, some kill, some
// only appear once you are right on top of them. A fog line rises from
// below and resets the run if it catches the player.
package trapfall

import (
	"time"

	"github.com/vovakirdan/trapfall/internal/config"
	"github.com/vovakirdan/trapfall/internal/core"
	"github.com/vovakirdan/trapfall/internal/registry"
)

// Mode selects how a run is seeded.
type Mode int

const (
	ModeClassic Mode = iota // Same tower every run
	ModeDaily               // Tower changes once per UTC day
)

// Registry IDs.
const (
	ClassicID = "trapfall"
	DailyID   = "trapfall_daily"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// DailySeed returns the base seed of the daily tower for t, e.g. 20261017.
func DailySeed(t time.Time) int64 {
	y, m, d := t.UTC().Date()
	return int64(y*10000 + int(m)*100 + d)
}

// Game adapts a Session to the terminal platform: key latching, pause,
// restart and terminal-sized rendering.
type Game struct {
	mode Mode
	now  func() time.Time

	cfg      config.TrapfallConfig
	rt       core.RuntimeConfig
	baseSeed int64
	session  *Session
	snap     Snapshot
	paused   bool

	// Terminals send repeated key presses, not key-up events, so each
	// direction stays active for a few ticks after its last press.
	holdLeft  int
	holdRight int
}

// New creates a Trap Fall game in the given mode.
func New(mode Mode) *Game {
	return &Game{
		mode: mode,
		now:  time.Now,
		cfg:  config.DefaultTrapfallConfig(),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeDaily {
		return DailyID
	}
	return ClassicID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeDaily {
		return "Trap Fall (Daily)"
	}
	return "Trap Fall"
}

// Reset loads configuration and starts a fresh run at level 1.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadTrapfall(configPath)
	if err != nil {
		cfg = config.DefaultTrapfallConfig()
	}
	g.cfg = cfg
	g.rt = rt
	g.baseSeed = g.pickSeed(rt.Seed)
	g.restart()
}

// pickSeed resolves the base seed: an explicit override wins, then the mode.
func (g *Game) pickSeed(override int64) int64 {
	switch {
	case override != 0:
		return override
	case g.mode == ModeDaily:
		return DailySeed(g.now())
	default:
		return g.cfg.BaseSeed
	}
}

// restart begins a new run on the same tower.
func (g *Game) restart() {
	g.session = NewSession(SessionConfig{
		BaseSeed:  g.baseSeed,
		ViewportW: g.cfg.World.Width,
		ViewportH: g.cfg.WorldHeight(g.rt.ScreenW, g.rt.ScreenH),
	})
	g.snap = g.session.Snapshot()
	g.paused = false
	g.holdLeft, g.holdRight = 0, 0
}

// Resize adapts the view to a new terminal size without losing progress.
func (g *Game) Resize(screenW, screenH int) {
	g.rt.ScreenW = screenW
	g.rt.ScreenH = screenH
	if g.session == nil {
		return
	}
	g.session.Resize(g.cfg.World.Width, g.cfg.WorldHeight(screenW, screenH))
	g.snap = g.session.Snapshot()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionPause):
		g.paused = !g.paused
	case g.paused && in.Has(core.ActionConfirm):
		g.paused = false
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.snap = g.session.Tick(g.latch(in))

	var events []core.Event
	switch g.snap.Outcome {
	case OutcomeRespawned:
		events = append(events, core.Event{Kind: core.EventRespawn, Level: g.snap.Level, Attempts: g.snap.Attempts})
	case OutcomeLevelCleared:
		events = append(events, core.Event{Kind: core.EventLevelCleared, Level: g.snap.Level - 1, Attempts: g.snap.Attempts})
	}

	return core.StepResult{State: g.State(), Events: events}
}

// latch turns this frame's key presses into held intent.
// A new press on one side releases the other.
func (g *Game) latch(in core.InputFrame) Input {
	hold := g.cfg.Input.HoldTicks
	left, right := in.Has(core.ActionLeft), in.Has(core.ActionRight)
	switch {
	case left && right:
		g.holdLeft, g.holdRight = hold, hold
	case left:
		g.holdLeft, g.holdRight = hold, 0
	case right:
		g.holdLeft, g.holdRight = 0, hold
	}

	out := Input{
		Left:  g.holdLeft > 0,
		Right: g.holdRight > 0,
		Jump:  in.Has(core.ActionJump),
	}
	if g.holdLeft > 0 {
		g.holdLeft--
	}
	if g.holdRight > 0 {
		g.holdRight--
	}
	return out
}

// State returns the current game state. Score is the deepest level reached;
// a run never ends on its own.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Level(),
		Level:    g.session.Level(),
		Attempts: g.session.Attempts(),
		Ticks:    g.session.Ticks(),
		Seed:     g.baseSeed,
		Paused:   g.paused,
	}
}

// Snapshot returns the last simulated frame.
func (g *Game) Snapshot() Snapshot {
	return g.snap
}

// Register the game with the registry
func init() {
	registry.Register(ClassicID, func() registry.Game {
		return New(ModeClassic)
	})
	registry.Register(DailyID, func() registry.Game {
		return New(ModeDaily)
	})
}
