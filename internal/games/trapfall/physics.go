package trapfall

import (
	"math"

	"github.com/vovakirdan/trapfall/internal/core"
)

// Physics constants, tuned for one tick per rendered frame.
const (
	Gravity           = 0.86
	baseMoveSpeed     = 8.0
	moveSpeedPerLevel = 0.28
	jumpImpulse       = -16.0
	jumpLevelCap      = 8
	groundedEpsilon   = 0.5   // |vy| below this counts as standing
	landingTolerance  = 26.0
	hiddenRevealRange = 16.0
	confusionClear    = 40.0  // Height above the fog required for a pulse
	confusionChance   = 0.015
	confusionLevelCap = 12
	confusionImpulse  = 14.0
	fallLimit         = 220.0 // Below the view bottom
)

var spawnRect = core.NewRectF(80, 80, 130, 130)

// Input is the host's intent snapshot for one tick.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
}

// Outcome is the session-level result of a tick.
type Outcome int

const (
	OutcomeNone         Outcome = iota
	OutcomeRespawned
	OutcomeLevelCleared
)

// String returns a log-friendly name.
func (o Outcome) String() string {
	switch o {
	case OutcomeRespawned:
		return "respawned"
	case OutcomeLevelCleared:
		return "level_cleared"
	default:
		return "none"
	}
}

// MoveSpeed is the horizontal speed at a level.
func MoveSpeed(level int) float64 {
	return baseMoveSpeed + moveSpeedPerLevel*float64(level)
}

// JumpVelocity is the vertical velocity set by a jump at a level.
func JumpVelocity(level int) float64 {
	return jumpImpulse - float64(core.Min(level, jumpLevelCap))
}

// step runs the physics and collision pass for one tick.
// Respawn and level advance are applied before it returns.
func (s *Session) step(in Input) Outcome {
	if in.Jump && math.Abs(s.velocity.Y) < groundedEpsilon {
		s.velocity.Y = JumpVelocity(s.level)
	}

	speed := MoveSpeed(s.level)
	switch {
	case in.Left && !in.Right:
		s.velocity.X = -speed
	case in.Right && !in.Left:
		s.velocity.X = speed
	default:
		s.velocity.X = 0
	}

	s.velocity.Y += Gravity
	s.player.Offset(s.velocity.X, s.velocity.Y)
	s.clampToViewport()

	grounded := false
	for i := range s.platforms {
		p := &s.platforms[i]

		p.revealIfNear(s.player.CenterY())
		if !p.solid() || !p.catches(s.player, s.velocity.Y) {
			continue
		}

		if p.Kind == KindDeadly {
			s.respawn()
			return OutcomeRespawned
		}

		s.player.Offset(0, p.Bounds.Top-s.player.Bottom)
		s.velocity.Y = 0
		grounded = true

		switch p.Kind {
		case KindFake:
			p.Revealed = true
		case KindGoal:
			s.advanceLevel()
			return OutcomeLevelCleared
		}
	}

	if !grounded && s.player.Bottom < s.fogY-confusionClear &&
		s.rng.NextFloat() < confusionChance*float64(core.Min(s.level, confusionLevelCap)) {
		s.velocity.Y -= confusionImpulse
	}

	s.advanceFog()

	if s.player.Top > s.fogY || s.player.Top > s.cameraY+s.viewH+fallLimit {
		s.respawn()
		return OutcomeRespawned
	}
	return OutcomeNone
}

// clampToViewport keeps the player inside [0, viewW] horizontally.
func (s *Session) clampToViewport() {
	if s.player.Left < 0 {
		s.player.Offset(-s.player.Left, 0)
	}
	if s.player.Right > s.viewW {
		s.player.Offset(s.viewW-s.player.Right, 0)
	}
}

// respawn counts an attempt and puts the player back at the start of the
// current level with every trap re-armed.
func (s *Session) respawn() {
	s.attempts++
	s.resetPlayer()
	for i := range s.platforms {
		if s.platforms[i].resettable() {
			s.platforms[i].Revealed = false
		}
	}
}

// advanceLevel moves to the next level. Attempts are not counted.
func (s *Session) advanceLevel() {
	s.level++
	s.levelSeed += SeedStep
	s.loadLevel()
}

// resetPlayer restores spawn position, velocity, camera and fog.
func (s *Session) resetPlayer() {
	s.player = spawnRect
	s.velocity = core.Vec2{}
	s.cameraY = 0
	s.fogY = fogStart
}
