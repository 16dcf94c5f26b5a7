package trapfall

import "github.com/vovakirdan/trapfall/internal/core"

// Kind is the behavior category of a platform. Exactly one applies.
type Kind int

const (
	KindNormal           Kind = iota
	KindFake             // Holds the player for one tick, then falls away
	KindDeadly           // Landing on it kills
	KindHiddenUntilTouch // Invisible until the player gets close
	KindGoal             // Landing on it clears the level
)

// String returns the lowercase name used in logs and level dumps.
func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindFake:
		return "fake"
	case KindDeadly:
		return "deadly"
	case KindHiddenUntilTouch:
		return "hidden"
	case KindGoal:
		return "goal"
	default:
		return "unknown"
	}
}

// Platform is one collidable segment of a level.
type Platform struct {
	Bounds   core.RectF
	Kind     Kind
	Revealed bool // Only meaningful for KindFake and KindHiddenUntilTouch
}

// resettable reports whether respawn clears the Revealed flag.
func (p Platform) resettable() bool {
	return p.Kind == KindFake || p.Kind == KindHiddenUntilTouch
}

// revealIfNear uncovers a hidden platform once the player's vertical centre
// has come within hiddenRevealRange above its top.
func (p *Platform) revealIfNear(playerCenterY float64) {
	if p.Kind != KindHiddenUntilTouch || p.Revealed {
		return
	}
	if playerCenterY >= p.Bounds.Top-hiddenRevealRange {
		p.Revealed = true
	}
}

// solid reports whether the platform still takes part in collision.
// A fake platform that has been stepped on no longer does.
func (p Platform) solid() bool {
	return !(p.Kind == KindFake && p.Revealed)
}

// catches reports whether a player box moving with velocity vy lands on p.
func (p Platform) catches(player core.RectF, vy float64) bool {
	if vy < 0 || !player.OverlapsX(p.Bounds) {
		return false
	}
	return player.Bottom >= p.Bounds.Top && player.Bottom <= p.Bounds.Top+landingTolerance
}

// RenderKind is the drawing category handed to the renderer.
type RenderKind int

const (
	RenderNormal RenderKind = iota
	RenderFake
	RenderDeadly
)

// renderKind maps a platform to its drawing category. Hidden and goal
// platforms draw as normal ones.
func (p Platform) renderKind() RenderKind {
	switch p.Kind {
	case KindFake:
		return RenderFake
	case KindDeadly:
		return RenderDeadly
	default:
		return RenderNormal
	}
}

// visible is false only for a hidden platform not yet revealed.
func (p Platform) visible() bool {
	return p.Kind != KindHiddenUntilTouch || p.Revealed
}
