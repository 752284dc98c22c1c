package game

import "math"

// HalfWidth is the scoring unit on the 0-100 dial: the bullseye band
// extends HalfWidth to either side of the target.
const HalfWidth = 2.0

// Zone is the scoring tier a locked dial landed in
type Zone string

const (
	ZoneBullseye Zone = "bullseye"
	ZoneInner    Zone = "inner"
	ZoneOuter    Zone = "outer"
	ZoneMiss     Zone = "miss"
)

// Point values per zone
const (
	PointsBullseye = 4
	PointsInner    = 3
	PointsOuter    = 2
	PointsMiss     = 0
)

// ComputeGuessPoints scores the active team's dial against the target.
// Thresholds are inclusive: a distance of exactly HalfWidth is still a bullseye.
func ComputeGuessPoints(target, dial float64) (int, Zone) {
	d := math.Abs(target - dial)
	switch {
	case d <= HalfWidth:
		return PointsBullseye, ZoneBullseye
	case d <= 3*HalfWidth:
		return PointsInner, ZoneInner
	case d <= 5*HalfWidth:
		return PointsOuter, ZoneOuter
	default:
		return PointsMiss, ZoneMiss
	}
}

// ComputeBonusPoint returns the opposing team's bonus for a directional vote.
// No bonus is possible after a bullseye or when no vote was cast.
func ComputeBonusPoint(target, dial float64, guess Direction, guessPoints int) int {
	if guessPoints == PointsBullseye || guess == DirectionNone {
		return 0
	}
	if guess == CorrectDirection(target, dial) {
		return 1
	}
	return 0
}

// CorrectDirection reports which side of the dial the target lies on.
// A target exactly under the dial counts as right.
func CorrectDirection(target, dial float64) Direction {
	if target < dial {
		return DirectionLeft
	}
	return DirectionRight
}
