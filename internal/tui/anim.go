package tui

import "time"

// revealDuration is how long the staggered list reveal runs after a fresh
// page replaces the listing.
const revealDuration = 600 * time.Millisecond

// revealState is the list-reveal animation clock. While active, rows fade in
// top to bottom, the heartbeat runs at the fast interval, and the debounced
// metadata loads hold off so the animation stays smooth.
type revealState struct {
	until time.Time
}

func (a *revealState) start(now time.Time) {
	a.until = now.Add(revealDuration)
}

func (a revealState) active(now time.Time) bool {
	return now.Before(a.until)
}

// progress reports how far the reveal has run, from 0 to 1.
func (a revealState) progress(now time.Time) float64 {
	if !a.active(now) {
		return 1
	}
	remaining := a.until.Sub(now)
	return 1 - float64(remaining)/float64(revealDuration)
}
