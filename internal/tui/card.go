package tui

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/uChase/portfolio/internal/portfolio"
)

// revealDuration is how long the tech stack takes to open or close.
const revealDuration = 300 * time.Millisecond

const mediaHeight = 3

// Reveal animates a card's tech stack between hidden and shown.
// The zero value is closed and at rest.
type Reveal struct {
	Open    bool
	Changed time.Time
}

// Toggle flips the target state, continuing from the current position if
// the previous transition has not finished.
func (r *Reveal) Toggle(now time.Time) {
	f := r.Fraction(now)
	r.Open = !r.Open
	progress := f
	if !r.Open {
		progress = 1 - f
	}
	r.Changed = now.Add(-time.Duration(progress * float64(revealDuration)))
}

// Fraction is how open the card is at now, from 0 to 1.
func (r Reveal) Fraction(now time.Time) float64 {
	p := 1.0
	if !r.Changed.IsZero() {
		p = float64(now.Sub(r.Changed)) / float64(revealDuration)
		p = math.Max(0, math.Min(1, p))
	}
	if r.Open {
		return p
	}
	return 1 - p
}

// visibleTags is how many of n tag lines show at fraction f.
func visibleTags(n int, f float64) int {
	return int(math.Ceil(f * float64(n)))
}

// renderCard draws one project card exactly width cells wide.
func renderCard(p portfolio.Project, width int, reveal Reveal, now time.Time) string {
	inner := width - 4 // border and padding

	var media string
	if p.HasImage() {
		media = mediaStyle.Width(inner).Height(mediaHeight).Render("▣ " + ansi.Truncate(p.Image, inner-2, "…"))
	} else {
		media = placeholderStyle.Width(inner).Height(mediaHeight).Render(p.Placeholder())
	}

	arrow := "▼"
	if reveal.Open {
		arrow = "▲"
	}

	lines := []string{
		media,
		cardTitleStyle.Render(ansi.Truncate(p.Title, inner, "…")),
		cardTextStyle.Width(inner).Render(p.Description),
		cardToggleStyle.Render("Tech Stack " + arrow),
	}

	shown := visibleTags(len(p.TechStack), reveal.Fraction(now))
	if shown > 0 {
		tags := make([]string, 0, shown)
		for _, t := range p.TechStack[:shown] {
			tags = append(tags, "• "+t)
		}
		lines = append(lines, cardTextStyle.Width(inner).Render(strings.Join(tags, "\n")))
	}

	return cardStyle.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
