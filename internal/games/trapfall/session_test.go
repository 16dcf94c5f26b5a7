package trapfall

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/trapfall/internal/core"
)

func newTestSession(seed int64) *Session {
	return NewSession(SessionConfig{BaseSeed: seed, ViewportW: testViewW, ViewportH: 720})
}

func TestNewSession(t *testing.T) {
	s := newTestSession(DefaultBaseSeed)

	if s.Level() != 1 || s.Attempts() != 0 || s.Ticks() != 0 {
		t.Errorf("level=%d attempts=%d ticks=%d, want 1/0/0", s.Level(), s.Attempts(), s.Ticks())
	}
	if s.BaseSeed() != DefaultBaseSeed || s.LevelSeed() != DefaultBaseSeed {
		t.Errorf("seeds = %d/%d, want %d", s.BaseSeed(), s.LevelSeed(), DefaultBaseSeed)
	}

	snap := s.Snapshot()
	if snap.Player != spawnRect {
		t.Errorf("player = %+v, want spawn", snap.Player)
	}
	if snap.FogY != fogStart || snap.CameraY != 0 {
		t.Errorf("fog = %v camera = %v", snap.FogY, snap.CameraY)
	}
	if !reflect.DeepEqual(s.Platforms(), Generate(1, DefaultBaseSeed, testViewW)) {
		t.Error("level 1 layout differs from Generate")
	}
}

// script returns a repeatable input sequence that walks, jumps and idles.
func script(tick int) Input {
	switch phase := tick % 90; {
	case phase < 30:
		return Input{Right: true, Jump: phase%12 == 0}
	case phase < 50:
		return Input{}
	default:
		return Input{Left: true, Jump: phase%17 == 0}
	}
}

func TestSessionDeterministic(t *testing.T) {
	a := newTestSession(1234)
	b := newTestSession(1234)

	for i := 0; i < 2000; i++ {
		sa := a.Tick(script(i))
		sb := b.Tick(script(i))
		if !reflect.DeepEqual(sa, sb) {
			t.Fatalf("tick %d: sessions diverged", i)
		}
	}
	if a.Ticks() != 2000 {
		t.Errorf("ticks = %d, want 2000", a.Ticks())
	}
}

func TestSessionFallsOntoStartPlatform(t *testing.T) {
	s := newTestSession(DefaultBaseSeed)

	// A mid-air pulse can delay the landing but never prevent it.
	var snap Snapshot
	for i := 0; i < 200; i++ {
		snap = s.Tick(Input{})
		if snap.Outcome != OutcomeNone {
			t.Fatalf("tick %d: outcome %v", i, snap.Outcome)
		}
	}
	if !near(snap.Player.Bottom, 180) {
		t.Errorf("bottom = %v, want resting on the start platform at 180", snap.Player.Bottom)
	}
	if snap.Velocity.Y != 0 {
		t.Errorf("vy = %v, want 0", snap.Velocity.Y)
	}
}

func TestSessionFogEventuallyKills(t *testing.T) {
	s := newTestSession(DefaultBaseSeed)

	// Standing still on the start platform: the fog rises to meet the player.
	for i := 0; i < 5000; i++ {
		if snap := s.Tick(Input{}); snap.Outcome == OutcomeRespawned {
			if s.Attempts() != 1 {
				t.Errorf("attempts = %d, want 1", s.Attempts())
			}
			return
		}
	}
	t.Fatal("fog never reached the player")
}

func TestSnapshotIsolated(t *testing.T) {
	s := newTestSession(DefaultBaseSeed)
	snap := s.Tick(Input{})

	snap.Platforms[0].Bounds.Offset(100, 100)
	snap.Platforms[0].Visible = false
	if again := s.Snapshot(); again.Platforms[0].Bounds != s.platforms[0].Bounds || !again.Platforms[0].Visible {
		t.Error("mutating a snapshot changed the session")
	}

	platforms := s.Platforms()
	platforms[0].Kind = KindDeadly
	if s.platforms[0].Kind != KindNormal {
		t.Error("mutating Platforms() changed the session")
	}
}

func TestSnapshotHidesUnrevealed(t *testing.T) {
	s := arena(aside(KindHiddenUntilTouch, 5000), aside(KindGoal, 6000), aside(KindDeadly, 7000))
	snap := s.Snapshot()

	tests := []struct {
		name    string
		view    PlatformView
		kind    RenderKind
		visible bool
		goal    bool
	}{
		{"hidden", snap.Platforms[0], RenderNormal, false, false},
		{"goal", snap.Platforms[1], RenderNormal, true, true},
		{"deadly", snap.Platforms[2], RenderDeadly, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.view.Kind != tt.kind || tt.view.Visible != tt.visible || tt.view.Goal != tt.goal {
				t.Errorf("view = %+v", tt.view)
			}
		})
	}
}

func TestCameraFollow(t *testing.T) {
	s := arena()
	s.player = core.NewRectF(80, 975, 130, 1025)

	s.followCamera()
	target := 1000 - cameraLead*720
	if want := target * cameraSmoothing; !near(s.cameraY, want) {
		t.Errorf("camera = %v, want %v", s.cameraY, want)
	}

	for i := 0; i < 500; i++ {
		s.followCamera()
	}
	if !near(s.cameraY, target) {
		t.Errorf("camera = %v, want converged on %v", s.cameraY, target)
	}
}

func TestCameraNeverAboveTop(t *testing.T) {
	s := arena()
	s.cameraY = 10
	s.player = core.NewRectF(80, 0, 130, 50)

	s.followCamera()
	if s.cameraY < 0 {
		t.Errorf("camera = %v, want >= 0", s.cameraY)
	}
	for i := 0; i < 100; i++ {
		s.followCamera()
	}
	if s.cameraY != 0 {
		t.Errorf("camera = %v, want 0", s.cameraY)
	}
}

func TestFogSpeed(t *testing.T) {
	tests := []struct {
		level int
		want  float64
	}{
		{1, 0.61},
		{5, 0.85},
		{10, 1.15},
	}
	for _, tt := range tests {
		if got := FogSpeed(tt.level); !near(got, tt.want) {
			t.Errorf("FogSpeed(%d) = %v, want %v", tt.level, got, tt.want)
		}
	}

	s := newTestSession(DefaultBaseSeed)
	snap := s.Tick(Input{})
	if snap.Outcome == OutcomeNone && !near(snap.FogY, fogStart+FogSpeed(1)) {
		t.Errorf("fog = %v after one tick, want %v", snap.FogY, fogStart+FogSpeed(1))
	}
}

func TestResize(t *testing.T) {
	s := newTestSession(DefaultBaseSeed)
	before := s.Platforms()

	s.Resize(500, 300)
	if !reflect.DeepEqual(before, s.Platforms()) {
		t.Error("resize regenerated the current level")
	}

	s.player = core.NewRectF(480, 80, 530, 130)
	snap := s.Tick(Input{})
	if !near(snap.Player.Right, 500) {
		t.Errorf("right = %v, want clamped to the new width 500", snap.Player.Right)
	}
}

func TestNonPositiveViewport(t *testing.T) {
	tests := []struct {
		name string
		w, h float64
	}{
		{"zero", 0, 0},
		{"negative", -300, -10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(SessionConfig{BaseSeed: DefaultBaseSeed, ViewportW: tt.w, ViewportH: tt.h})
			if s.viewW != minGenWidth || s.viewH != minGenWidth {
				t.Fatalf("view = %vx%v, want %vx%v", s.viewW, s.viewH, minGenWidth, minGenWidth)
			}

			platforms := s.Platforms()
			goal := platforms[len(platforms)-1]
			if goal.Bounds.Left < 0 || goal.Bounds.Right > s.viewW {
				t.Errorf("goal = %+v, want inside [0, %v]", goal.Bounds, s.viewW)
			}

			snap := s.Tick(Input{})
			if snap.Player.Left != spawnRect.Left {
				t.Errorf("left = %v, want spawn column %v", snap.Player.Left, spawnRect.Left)
			}

			s.Resize(tt.w, tt.h)
			if s.viewW != minGenWidth || s.viewH != minGenWidth {
				t.Errorf("resized view = %vx%v, want %vx%v", s.viewW, s.viewH, minGenWidth, minGenWidth)
			}
		})
	}
}
