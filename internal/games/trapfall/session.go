package trapfall

import (
	"github.com/vovakirdan/trapfall/internal/core"
)

// DefaultBaseSeed is the base seed of the classic tower.
const DefaultBaseSeed = 41

// SessionConfig sets up a Session.
type SessionConfig struct {
	BaseSeed  int64
	ViewportW float64 // World units
	ViewportH float64 // World units
}

// Session is the top-level state machine of one run: level progression,
// attempts, the player, the platform arena, camera and fog.
// A Session is not safe for concurrent use; the host ticks it from one goroutine.
type Session struct {
	baseSeed  int64
	levelSeed int64
	level     int
	attempts  int
	tick      uint64

	viewW float64
	viewH float64

	rng       *Stream
	platforms []Platform
	player    core.RectF
	velocity  core.Vec2
	cameraY   float64
	fogY      float64
}

// NewSession starts a run at level 1.
func NewSession(cfg SessionConfig) *Session {
	s := &Session{
		baseSeed:  cfg.BaseSeed,
		levelSeed: LevelSeed(cfg.BaseSeed, 1),
		level:     1,
	}
	s.viewW, s.viewH = usableView(cfg.ViewportW, cfg.ViewportH)
	s.loadLevel()
	return s
}

// loadLevel regenerates the arena for the current level and resets the player.
func (s *Session) loadLevel() {
	s.rng = NewStream(s.levelSeed)
	s.platforms = GenerateLevel(s.rng, s.level, s.viewW)
	s.resetPlayer()
}

// Tick advances the simulation by one frame and returns what the host should draw.
func (s *Session) Tick(in Input) Snapshot {
	s.tick++
	outcome := s.step(in)
	if outcome == OutcomeNone {
		s.followCamera()
	}
	return s.snapshot(outcome)
}

// Resize changes the viewport used for clamping, camera and fall checks.
// The current layout is kept; the new width applies from the next level.
func (s *Session) Resize(w, h float64) {
	s.viewW, s.viewH = usableView(w, h)
}

// usableView replaces a non-positive viewport: the width falls back to the
// generator's floor and the height to the width, so the goal stays inside
// the clamp.
func usableView(w, h float64) (float64, float64) {
	if w <= 0 {
		w = minGenWidth
	}
	if h <= 0 {
		h = w
	}
	return w, h
}

// Snapshot returns the current state without advancing.
func (s *Session) Snapshot() Snapshot {
	return s.snapshot(OutcomeNone)
}

// Level returns the current level number (1-based).
func (s *Session) Level() int {
	return s.level
}

// Attempts returns how many times the player has respawned.
func (s *Session) Attempts() int {
	return s.attempts
}

// LevelSeed returns the seed the current level was generated from.
func (s *Session) LevelSeed() int64 {
	return s.levelSeed
}

// BaseSeed returns the seed of level 1.
func (s *Session) BaseSeed() int64 {
	return s.baseSeed
}

// Ticks returns the number of ticks simulated.
func (s *Session) Ticks() uint64 {
	return s.tick
}

// Platforms returns a copy of the current arena.
func (s *Session) Platforms() []Platform {
	out := make([]Platform, len(s.platforms))
	copy(out, s.platforms)
	return out
}
