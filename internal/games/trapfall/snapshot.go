package trapfall

import "github.com/vovakirdan/trapfall/internal/core"

// PlatformView is how the host sees one platform.
type PlatformView struct {
	Bounds  core.RectF
	Kind    RenderKind
	Visible bool // False for a hidden platform that has not been revealed
	Goal    bool
}

// Snapshot is the per-frame output of a Session. It shares no memory with
// the session, so the host may keep it across ticks.
type Snapshot struct {
	Tick      uint64
	Player    core.RectF
	Velocity  core.Vec2
	CameraY   float64
	FogY      float64
	Level     int
	Attempts  int
	Seed      int64 // Seed of the current level
	Outcome   Outcome
	Platforms []PlatformView
}

func (s *Session) snapshot(outcome Outcome) Snapshot {
	views := make([]PlatformView, len(s.platforms))
	for i, p := range s.platforms {
		views[i] = PlatformView{
			Bounds:  p.Bounds,
			Kind:    p.renderKind(),
			Visible: p.visible(),
			Goal:    p.Kind == KindGoal,
		}
	}
	return Snapshot{
		Tick:      s.tick,
		Player:    s.player,
		Velocity:  s.velocity,
		CameraY:   s.cameraY,
		FogY:      s.fogY,
		Level:     s.level,
		Attempts:  s.attempts,
		Seed:      s.levelSeed,
		Outcome:   outcome,
		Platforms: views,
	}
}
