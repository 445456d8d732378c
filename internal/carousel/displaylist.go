package carousel

import "errors"

var (
	ErrNoItems      = errors.New("carousel: no items")
	ErrTooFewCopies = errors.New("carousel: at least two copies are required")
)

// Slot is one rendered position in the track.
type Slot[T any] struct {
	Key  int // position in the display list, unique; use it as the render key
	Copy int // 0-based copy index
	Item T
}

// DisplayList is the items repeated copies times, copy by copy.
type DisplayList[T any] struct {
	slots  []Slot[T]
	items  int
	copies int
}

// NewDisplayList lays out items copies times in original order.
func NewDisplayList[T any](items []T, copies int) (DisplayList[T], error) {
	if len(items) == 0 {
		return DisplayList[T]{}, ErrNoItems
	}
	if copies < 2 {
		return DisplayList[T]{}, ErrTooFewCopies
	}

	slots := make([]Slot[T], 0, len(items)*copies)
	for c := 0; c < copies; c++ {
		for _, item := range items {
			slots = append(slots, Slot[T]{Key: len(slots), Copy: c, Item: item})
		}
	}
	return DisplayList[T]{slots: slots, items: len(items), copies: copies}, nil
}

func (d DisplayList[T]) Len() int    { return len(d.slots) }
func (d DisplayList[T]) Copies() int { return d.copies }

// Items returns the length of one copy.
func (d DisplayList[T]) Items() int { return d.items }

func (d DisplayList[T]) At(k int) Slot[T] { return d.slots[k] }

// Slots returns the rendered sequence. Callers must not modify it.
func (d DisplayList[T]) Slots() []Slot[T] { return d.slots }
