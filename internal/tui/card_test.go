package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/uChase/portfolio/internal/portfolio"
)

func TestRevealFraction(t *testing.T) {
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	var r Reveal
	if f := r.Fraction(t0); f != 0 {
		t.Fatalf("zero reveal fraction = %v", f)
	}

	r.Toggle(t0)
	tests := []struct {
		at   time.Duration
		want float64
	}{
		{0, 0},
		{150 * time.Millisecond, 0.5},
		{300 * time.Millisecond, 1},
		{time.Second, 1},
	}
	for _, tt := range tests {
		if got := r.Fraction(t0.Add(tt.at)); got != tt.want {
			t.Errorf("Fraction(+%v) = %v, want %v", tt.at, got, tt.want)
		}
	}
}

func TestRevealToggleMidway(t *testing.T) {
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	var r Reveal
	r.Toggle(t0)

	mid := t0.Add(90 * time.Millisecond) // 0.3 open
	r.Toggle(mid)
	if r.Open {
		t.Fatal("second toggle should close")
	}
	if got := r.Fraction(mid); got < 0.299 || got > 0.301 {
		t.Errorf("fraction right after reversing = %v, want 0.3", got)
	}
	if got := r.Fraction(mid.Add(90 * time.Millisecond)); got > 1e-9 {
		t.Errorf("fraction after closing = %v, want 0", got)
	}
}

func TestVisibleTags(t *testing.T) {
	tests := []struct {
		n    int
		f    float64
		want int
	}{
		{8, 0, 0},
		{8, 0.5, 4},
		{8, 0.01, 1},
		{8, 1, 8},
		{0, 1, 0},
	}
	for _, tt := range tests {
		if got := visibleTags(tt.n, tt.f); got != tt.want {
			t.Errorf("visibleTags(%d, %v) = %d, want %d", tt.n, tt.f, got, tt.want)
		}
	}
}

func TestRenderCardWidth(t *testing.T) {
	now := time.Now()
	for _, p := range portfolio.Default().Projects {
		closed := renderCard(p, 34, Reveal{}, now)
		if w := lipgloss.Width(closed); w != 34 {
			t.Errorf("%s: closed width = %d, want 34", p.Title, w)
		}
		open := renderCard(p, 34, Reveal{Open: true}, now)
		if w := lipgloss.Width(open); w != 34 {
			t.Errorf("%s: open width = %d, want 34", p.Title, w)
		}
		if lipgloss.Height(open) <= lipgloss.Height(closed) {
			t.Errorf("%s: open card not taller than closed", p.Title)
		}
		for _, tag := range p.TechStack {
			if !strings.Contains(open, tag) {
				t.Errorf("%s: open card missing tag %q", p.Title, tag)
			}
		}
	}
}

func TestRenderCardPlaceholder(t *testing.T) {
	p := portfolio.Project{Title: "Lantern", Description: "A lamp.", TechStack: []string{"Go"}}
	out := renderCard(p, 34, Reveal{}, time.Now())
	if !strings.Contains(out, "Lantern Image") {
		t.Errorf("placeholder missing:\n%s", out)
	}
	if strings.Contains(out, "▣") {
		t.Error("image marker shown without an image")
	}
}
