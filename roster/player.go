package roster

import "strings"

// StatNames lists the per-player attributes in display order.
// Load reads them from consecutive CSV columns starting at colStatsFirst.
var StatNames = []string{
	"Height", "Weight", "Crossing", "Finishing", "HeadingAccuracy",
	"ShortPassing", "Volleys", "Dribbling", "Curve", "LongPassing",
	"BallControl", "Acceleration", "SprintSpeed", "Agility", "Reactions",
	"Balance", "ShotPower", "Jumping", "Stamina", "Strength", "LongShots",
	"Interceptions", "Positioning", "Vision",
}

// Player is one roster record.
type Player struct {
	Name              string
	Age               int
	Nationality       string
	Club              string
	Overall           int
	Potential         int
	BestPosition      string
	BestOverallRating float64
	Stats             map[string]float64
}

// Key returns the roster key of the player.
func (p Player) Key() string { return Key(p.Name) }

// Stat returns the named attribute, or 0 if it was not recorded.
func (p Player) Stat(name string) float64 {
	return p.Stats[name]
}

// Key normalizes a player or club name: surrounding whitespace is trimmed
// and letters are lower-cased.
func Key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
