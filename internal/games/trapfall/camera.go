package trapfall

import "math"

const (
	cameraSmoothing = 0.09
	cameraLead      = 0.45 // Fraction of the view height above the player
	fogStart        = 900.0
	fogBaseSpeed    = 0.55
	fogLevelSpeed   = 0.06
)

// FogSpeed is how far the fog line moves per tick at a level.
func FogSpeed(level int) float64 {
	return fogBaseSpeed + fogLevelSpeed*float64(level)
}

// advanceFog moves the fog line one tick.
func (s *Session) advanceFog() {
	s.fogY += FogSpeed(s.level)
}

// followCamera eases the camera toward the player. It never scrolls above
// the top of the level.
func (s *Session) followCamera() {
	target := s.player.CenterY() - cameraLead*s.viewH
	s.cameraY += (target - s.cameraY) * cameraSmoothing
	s.cameraY = math.Max(0, s.cameraY)
}
