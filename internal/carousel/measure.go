package carousel

import "math"

// OneCopyWidth splits a measured strip width into the width of one copy.
// It reports false when the measurement is not usable yet: nothing
// rendered, a NaN or infinite reading, or a non-positive copy count.
func OneCopyWidth(total float64, copies int) (float64, bool) {
	if copies <= 0 || math.IsNaN(total) || math.IsInf(total, 0) || total <= 0 {
		return 0, false
	}
	return total / float64(copies), true
}

// StripWidth is the laid-out width of n items of itemWidth with gap after
// each one, so that consecutive copies tile without a seam.
func StripWidth(n int, itemWidth, gap float64) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n) * (itemWidth + gap)
}
