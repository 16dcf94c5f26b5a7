package trapfall

import (
	"math"

	"github.com/vovakirdan/trapfall/internal/core"
)

// Level layout constants in world units.
const (
	SeedStep = 13 // Level seed increment per level

	minGenWidth    = 900.0 // Viewport floor for the starting column and unusable viewports
	chainStartY    = 320.0
	chainBaseCount = 22
	chainPerLevel  = 2
	edgeMargin     = 40.0
	baseGap        = 170.0
	gapJitterMin   = -45
	gapJitterMax   = 95
	jumpXMin       = -180
	jumpXMax       = 180
	basePlatformW  = 220.0
	widthJitterMin = -70
	widthJitterMax = 40
	widthShrink    = 3.0   // Per level
	minPlatformW   = 110.0
	platformH      = 34.0
	sideTrapEvery  = 5
	sideTrapMinLvl = 3
	goalDrop       = 180.0
	goalHalfWidth  = 120.0
	goalH          = 36.0
	startPlatformL = 40.0
	startPlatformT = 180.0
	startPlatformR = 360.0
	startPlatformB = 220.0
	sideTrapGap    = 18.0
	sideTrapW      = 82.0
	sideTrapRise   = 20.0
	sideTrapBelow  = 14.0
)

// LevelSeed derives the seed for a level from the session's base seed.
func LevelSeed(baseSeed int64, level int) int64 {
	return baseSeed + SeedStep*int64(level-1)
}

// ChainLength returns how many chain platforms a level has.
func ChainLength(level int) int {
	return chainBaseCount + chainPerLevel*level
}

// Kind probabilities, evaluated in priority order.
func fakeChance(level int) float64 {
	return math.Min(0.45, 0.12+0.03*float64(level))
}

func deadlyChance(level int) float64 {
	return math.Min(0.25, 0.05+0.02*float64(level))
}

func hiddenChance(level int) float64 {
	return math.Min(0.40, 0.08+0.025*float64(level))
}

// Generate builds the platform set for a level from a fresh stream seeded
// with LevelSeed(baseSeed, level).
func Generate(level int, baseSeed int64, viewportW float64) []Platform {
	return GenerateLevel(NewStream(LevelSeed(baseSeed, level)), level, viewportW)
}

// GenerateLevel builds the platform set for a level, drawing from rng.
// The result starts with the safe start platform and ends with the goal.
func GenerateLevel(rng *Stream, level int, viewportW float64) []Platform {
	rng.Stir()

	count := ChainLength(level)
	platforms := make([]Platform, 0, count+count/sideTrapEvery+3)
	platforms = append(platforms, Platform{
		Bounds: core.NewRectF(startPlatformL, startPlatformT, startPlatformR, startPlatformB),
		Kind:   KindNormal,
	})

	maxX := math.Max(edgeMargin, viewportW-basePlatformW-edgeMargin)
	x := math.Max(viewportW, minGenWidth) * 0.1
	y := chainStartY

	for i := 0; i < count; i++ {
		x += float64(rng.NextInt(jumpXMin, jumpXMax))
		x = core.ClampF(x, edgeMargin, maxX)
		y += baseGap + float64(rng.NextInt(gapJitterMin, gapJitterMax))

		kind := pickKind(rng, level)

		w := basePlatformW + float64(rng.NextInt(widthJitterMin, widthJitterMax)) - widthShrink*float64(level)
		w = math.Max(minPlatformW, w)

		platforms = append(platforms, Platform{
			Bounds: core.NewRectF(x, y, x+w, y+platformH),
			Kind:   kind,
		})

		if i%sideTrapEvery == 0 && level >= sideTrapMinLvl {
			left := x + w + sideTrapGap
			platforms = append(platforms, Platform{
				Bounds: core.NewRectF(left, y-sideTrapRise, left+sideTrapW, y+sideTrapBelow),
				Kind:   KindDeadly,
			})
		}
	}

	maxTop := math.Inf(-1)
	for _, p := range platforms {
		maxTop = math.Max(maxTop, p.Bounds.Top)
	}
	top := maxTop + goalDrop
	mid := viewportW / 2
	platforms = append(platforms, Platform{
		Bounds: core.NewRectF(mid-goalHalfWidth, top, mid+goalHalfWidth, top+goalH),
		Kind:   KindGoal,
	})

	return platforms
}

// pickKind rolls a chain platform's kind. A fake platform still takes the
// hidden roll, a deadly one does not; Fake outranks HiddenUntilTouch.
func pickKind(rng *Stream, level int) Kind {
	if rng.NextFloat() < fakeChance(level) {
		rng.NextFloat() // hidden roll, outranked
		return KindFake
	}
	if rng.NextFloat() < deadlyChance(level) {
		return KindDeadly
	}
	if rng.NextFloat() < hiddenChance(level) {
		return KindHiddenUntilTouch
	}
	return KindNormal
}
