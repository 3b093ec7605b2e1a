package model

import "math"

// Percentage returns made/attempted as a whole percent, or 0 when nothing was attempted.
func Percentage(made, attempted int) int {
	if attempted <= 0 {
		return 0
	}
	return int(math.Round(float64(made) / float64(attempted) * 100))
}

// PerGame returns total/games rounded to one decimal, or 0 when games is 0.
func PerGame(total, games int) float64 {
	if games <= 0 {
		return 0
	}
	return roundTo(float64(total)/float64(games), 1)
}

// PerPossession returns points/possessions rounded to two decimals, or 0 when
// there were no possessions.
func PerPossession(points, possessions int) float64 {
	if possessions <= 0 {
		return 0
	}
	return roundTo(float64(points)/float64(possessions), 2)
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
