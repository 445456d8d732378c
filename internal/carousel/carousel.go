// Package carousel drives an infinitely looping, draggable track of
// repeated items.
//
// The track holds several identical copies of the item list. While
// animating it slides left by exactly one copy width and wraps, which is
// invisible because the next copy sits where the first one started. A
// drag suspends the loop, hands the offset to the pointer within one copy
// width of travel, and resumes the loop from wherever the drag left it.
//
// A Carousel is owned by a single event loop and is not safe for
// concurrent use. Every time-dependent call takes the current time so
// callers (and tests) control the clock.
package carousel

import "time"

// Phase names the two states of the carousel.
type Phase int

const (
	Animating Phase = iota
	Dragging
)

func (p Phase) String() string {
	switch p {
	case Animating:
		return "animating"
	case Dragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Carousel is the state machine behind one track.
type Carousel struct {
	copies int
	period time.Duration

	width float64 // one copy; 0 until measured
	phase Phase

	// Animating: the loop started at anchor showing anchorOffset.
	anchor       time.Time
	anchorOffset float64

	// Dragging: offset is frozen or pointer driven.
	offset      float64
	dragOffset  float64
	dragOriginX float64
}

// New returns an unmeasured carousel for a track of copies copies that
// travels one copy width per period.
func New(copies int, period time.Duration) *Carousel {
	if period <= 0 {
		period = DefaultPeriod
	}
	return &Carousel{copies: copies, period: period}
}

// Measure records the rendered width of the whole track. The first usable
// measurement fixes the copy width and starts the loop at now; later calls
// and unusable readings are ignored. It reports whether the width was set.
func (c *Carousel) Measure(totalWidth float64, now time.Time) bool {
	if c.Ready() {
		return false
	}
	w, ok := OneCopyWidth(totalWidth, c.copies)
	if !ok {
		return false
	}
	c.width = w
	if c.phase == Animating {
		c.anchor = now
		c.anchorOffset = 0
	} else {
		c.offset = clamp(c.offset, -w, 0)
	}
	return true
}

// Ready reports whether a usable width has been measured.
func (c *Carousel) Ready() bool { return c.width > 0 }

// Width is the measured width of one copy, 0 until Ready.
func (c *Carousel) Width() float64 { return c.width }

func (c *Carousel) Period() time.Duration { return c.period }

func (c *Carousel) Phase() Phase { return c.phase }

// Paused reports whether the loop is suspended by a drag.
func (c *Carousel) Paused() bool { return c.phase == Dragging }

func (c *Carousel) loop() Loop {
	return Loop{Distance: c.width, Period: c.period}
}

// Offset is the horizontal translation of the track at now.
func (c *Carousel) Offset(now time.Time) float64 {
	if c.phase == Dragging {
		return c.offset
	}
	if !c.Ready() {
		return 0
	}
	l := c.loop()
	return l.Offset(l.Elapsed(c.anchorOffset) + now.Sub(c.anchor))
}

// StartDrag suspends the loop, freezing the track where it is at now.
// pointerX is the pointer position the drag is measured from.
func (c *Carousel) StartDrag(now time.Time, pointerX float64) {
	if c.phase == Dragging {
		return
	}
	c.offset = c.Offset(now)
	c.dragOffset = c.offset
	c.dragOriginX = pointerX
	c.phase = Dragging
}

// DragTo moves the track with the pointer, keeping it within one copy
// width of travel, and returns the new offset. Outside a drag the call is
// ignored and reports false.
func (c *Carousel) DragTo(pointerX float64) (float64, bool) {
	if c.phase != Dragging {
		return 0, false
	}
	c.offset = clamp(c.dragOffset+(pointerX-c.dragOriginX), -c.width, 0)
	return c.offset, true
}

// DragBy moves the track by dx from where it currently is. Keyboard
// scrubbing uses it; pointers use DragTo. The pointer origin is kept, so
// a pointer drag in progress continues from the shifted track.
func (c *Carousel) DragBy(dx float64) (float64, bool) {
	if c.phase != Dragging {
		return 0, false
	}
	next := clamp(c.offset+dx, -c.width, 0)
	c.dragOffset += next - c.offset
	c.offset = next
	return c.offset, true
}

// EndDrag resumes the loop from the offset the drag left behind.
func (c *Carousel) EndDrag(now time.Time) {
	if c.phase != Dragging {
		return
	}
	c.phase = Animating
	c.anchor = now
	c.anchorOffset = c.offset
}
