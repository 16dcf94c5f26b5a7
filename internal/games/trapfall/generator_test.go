package trapfall

import (
	"reflect"
	"testing"
)

const testViewW = 1080.0

// isSideTrap tells side traps apart from chain platforms, which are never
// narrower than minPlatformW.
func isSideTrap(p Platform) bool {
	return near(p.Bounds.Width(), sideTrapW)
}

func TestLevelSeed(t *testing.T) {
	tests := []struct {
		base  int64
		level int
		want  int64
	}{
		{41, 1, 41},
		{41, 2, 54},
		{41, 10, 41 + 13*9},
		{0, 3, 26},
	}
	for _, tt := range tests {
		if got := LevelSeed(tt.base, tt.level); got != tt.want {
			t.Errorf("LevelSeed(%d, %d) = %d, want %d", tt.base, tt.level, got, tt.want)
		}
	}
}

func TestKindChancesAreCapped(t *testing.T) {
	tests := []struct {
		name string
		fn   func(int) float64
		lvl1 float64
		cap  float64
	}{
		{"fake", fakeChance, 0.15, 0.45},
		{"deadly", deadlyChance, 0.07, 0.25},
		{"hidden", hiddenChance, 0.105, 0.40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(1); !near(got, tt.lvl1) {
				t.Errorf("level 1 chance = %v, want %v", got, tt.lvl1)
			}
			if got := tt.fn(100); got != tt.cap {
				t.Errorf("level 100 chance = %v, want cap %v", got, tt.cap)
			}
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(4, 41, testViewW)
	b := Generate(4, 41, testViewW)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same level and seed produced different layouts")
	}

	c := GenerateLevel(NewStream(LevelSeed(41, 4)), 4, testViewW)
	if !reflect.DeepEqual(a, c) {
		t.Error("Generate differs from GenerateLevel with the derived level seed")
	}

	d := Generate(4, 42, testViewW)
	if reflect.DeepEqual(a, d) {
		t.Error("different base seeds produced identical layouts")
	}
}

func TestGeneratePlatformCount(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 1 + 24 + 1},
		{2, 1 + 26 + 1},
		{3, 1 + 28 + 6 + 1}, // Side traps on chain indices 0, 5, ..., 25
		{5, 1 + 32 + 7 + 1},
	}
	for _, tt := range tests {
		if got := len(Generate(tt.level, 41, testViewW)); got != tt.want {
			t.Errorf("level %d: %d platforms, want %d", tt.level, got, tt.want)
		}
	}
}

func TestGenerateStartAndGoal(t *testing.T) {
	for level := 1; level <= 6; level++ {
		platforms := Generate(level, 41, testViewW)

		start := platforms[0]
		if start.Kind != KindNormal {
			t.Errorf("level %d: start kind = %v, want normal", level, start.Kind)
		}
		if start.Bounds.Left != 40 || start.Bounds.Top != 180 || start.Bounds.Right != 360 || start.Bounds.Bottom != 220 {
			t.Errorf("level %d: start bounds = %+v", level, start.Bounds)
		}

		goal := platforms[len(platforms)-1]
		if goal.Kind != KindGoal {
			t.Fatalf("level %d: last kind = %v, want goal", level, goal.Kind)
		}
		maxTop := 0.0
		for _, p := range platforms[:len(platforms)-1] {
			if p.Kind == KindGoal {
				t.Errorf("level %d: goal found before the end", level)
			}
			if p.Bounds.Top > maxTop {
				maxTop = p.Bounds.Top
			}
		}
		if !near(goal.Bounds.Top, maxTop+goalDrop) {
			t.Errorf("level %d: goal top = %v, want %v", level, goal.Bounds.Top, maxTop+goalDrop)
		}
		if !near(goal.Bounds.CenterX(), testViewW/2) || !near(goal.Bounds.Width(), 240) || !near(goal.Bounds.Height(), goalH) {
			t.Errorf("level %d: goal bounds = %+v", level, goal.Bounds)
		}
	}
}

func TestGenerateChainShape(t *testing.T) {
	for level := 1; level <= 12; level++ {
		platforms := Generate(level, 7, testViewW)
		maxX := testViewW - basePlatformW - edgeMargin

		prevTop := chainStartY
		for i, p := range platforms[1 : len(platforms)-1] {
			if isSideTrap(p) {
				if p.Kind != KindDeadly {
					t.Errorf("level %d: side trap %d kind = %v", level, i, p.Kind)
				}
				continue
			}
			if p.Bounds.Width() < minPlatformW-epsilon {
				t.Errorf("level %d: platform %d width %v below minimum", level, i, p.Bounds.Width())
			}
			if !near(p.Bounds.Height(), platformH) {
				t.Errorf("level %d: platform %d height %v", level, i, p.Bounds.Height())
			}
			if p.Bounds.Left < edgeMargin || p.Bounds.Left > maxX {
				t.Errorf("level %d: platform %d left %v outside [%v, %v]", level, i, p.Bounds.Left, edgeMargin, maxX)
			}
			gap := p.Bounds.Top - prevTop
			if gap < baseGap+gapJitterMin || gap >= baseGap+gapJitterMax {
				t.Errorf("level %d: platform %d gap %v", level, i, gap)
			}
			prevTop = p.Bounds.Top
		}
	}
}

func TestGenerateSideTrapsOnlyFromLevelThree(t *testing.T) {
	for level := 1; level <= 4; level++ {
		traps := 0
		for _, p := range Generate(level, 41, testViewW) {
			if isSideTrap(p) {
				traps++
			}
		}
		if level < sideTrapMinLvl && traps != 0 {
			t.Errorf("level %d: %d side traps, want none", level, traps)
		}
		if level >= sideTrapMinLvl && traps == 0 {
			t.Errorf("level %d: no side traps", level)
		}
	}
}

func TestGenerateNarrowViewport(t *testing.T) {
	platforms := Generate(2, 41, 200)
	for _, p := range platforms[1 : len(platforms)-1] {
		if p.Bounds.Left != edgeMargin {
			t.Errorf("left = %v, want %v on a narrow viewport", p.Bounds.Left, edgeMargin)
		}
	}
}

func TestGenerateUsesEveryKind(t *testing.T) {
	seen := map[Kind]int{}
	for level := 1; level <= 10; level++ {
		for _, p := range Generate(level, 41, testViewW) {
			seen[p.Kind]++
		}
	}
	for _, k := range []Kind{KindNormal, KindFake, KindDeadly, KindHiddenUntilTouch, KindGoal} {
		if seen[k] == 0 {
			t.Errorf("no %v platforms across ten levels", k)
		}
	}
	if seen[KindGoal] != 10 {
		t.Errorf("goals = %d, want one per level", seen[KindGoal])
	}
}

func TestPickKindDrawCount(t *testing.T) {
	// Fake still consumes the hidden roll; Deadly stops after two draws.
	want := map[Kind]int64{
		KindFake:             2,
		KindDeadly:           2,
		KindHiddenUntilTouch: 3,
		KindNormal:           3,
	}
	seen := map[Kind]int{}
	for level := 1; level <= 12; level++ {
		rng := NewStream(int64(level) * 7919)
		for i := 0; i < 200; i++ {
			before := rng.Draws()
			kind := pickKind(rng, level)
			if got := rng.Draws() - before; got != want[kind] {
				t.Fatalf("level %d roll %d: %v took %d draws, want %d", level, i, kind, got, want[kind])
			}
			seen[kind]++
		}
	}
	for kind := range want {
		if seen[kind] == 0 {
			t.Errorf("no %v rolls seen", kind)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindNormal, "normal"},
		{KindFake, "fake"},
		{KindDeadly, "deadly"},
		{KindHiddenUntilTouch, "hidden"},
		{KindGoal, "goal"},
		{Kind(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
