package carousel

import (
	"math"
	"time"
)

// DefaultPeriod is how long one full copy-width of travel takes.
const DefaultPeriod = 20 * time.Second

// Loop is a linear, infinitely repeating translation from 0 to -Distance.
type Loop struct {
	Distance float64
	Period   time.Duration
}

func (l Loop) degenerate() bool {
	return l.Distance <= 0 || l.Period <= 0
}

// Offset returns the translation after elapsed time. The result stays in
// [-Distance, 0] and returns to 0 every Period.
func (l Loop) Offset(elapsed time.Duration) float64 {
	if l.degenerate() {
		return 0
	}
	phase := math.Mod(float64(elapsed)/float64(l.Period), 1)
	if phase < 0 {
		phase++
	}
	return -phase * l.Distance
}

// Elapsed is the inverse of Offset within one period: the time into the
// cycle at which the loop shows offset. Offsets outside [-Distance, 0]
// are clamped first.
func (l Loop) Elapsed(offset float64) time.Duration {
	if l.degenerate() {
		return 0
	}
	offset = clamp(offset, -l.Distance, 0)
	return time.Duration(-offset / l.Distance * float64(l.Period))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
