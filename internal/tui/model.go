package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/uChase/portfolio/internal/carousel"
	"github.com/uChase/portfolio/internal/portfolio"
)

// cardGap is the blank space after every card in the strip.
const cardGap = 2

// Options configures the terminal portfolio.
type Options struct {
	Copies    int
	Period    time.Duration
	FPS       int
	CardWidth int
}

// frameMsg advances the animation by one frame.
type frameMsg struct{}

// Model is the Bubble Tea model for the terminal portfolio.
type Model struct {
	content  portfolio.Content
	list     carousel.DisplayList[portfolio.Project]
	carousel *carousel.Carousel
	reveals  map[int]*Reveal // by display list key

	cardWidth int
	interval  time.Duration
	keys      KeyMap
	help      help.Model
	now       func() time.Time

	width  int
	height int

	// Mouse drag bookkeeping.
	pressed bool
	pressX  int
	moved   bool
}

// NewModel lays out content for a terminal carousel.
func NewModel(content portfolio.Content, opts Options) (*Model, error) {
	if err := content.Validate(); err != nil {
		return nil, err
	}
	list, err := carousel.NewDisplayList(content.Projects, opts.Copies)
	if err != nil {
		return nil, fmt.Errorf("laying out carousel: %w", err)
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = 30
	}

	return &Model{
		content:   content,
		list:      list,
		carousel:  carousel.New(opts.Copies, opts.Period),
		reveals:   make(map[int]*Reveal),
		cardWidth: opts.CardWidth,
		interval:  time.Second / time.Duration(fps),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		now:       time.Now,
	}, nil
}

func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(_ time.Time) tea.Msg {
		return frameMsg{}
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		// The strip is rendered on every frame; measure it until a usable
		// width comes back.
		if !m.carousel.Ready() {
			m.carousel.Measure(float64(lipgloss.Width(m.renderStrip())), m.now())
		}
		return m, m.tick()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := m.now()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Pause):
		if m.carousel.Paused() {
			m.carousel.EndDrag(now)
		} else {
			m.carousel.StartDrag(now, 0)
		}
	case key.Matches(msg, m.keys.Left):
		m.carousel.DragBy(float64(m.slotWidth()))
	case key.Matches(msg, m.keys.Right):
		m.carousel.DragBy(-float64(m.slotWidth()))
	case key.Matches(msg, m.keys.Toggle):
		// First card fully on screen.
		slot := m.slotWidth()
		m.toggleSlot((m.scroll(now)+slot-1)/slot, now)
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	now := m.now()
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.inStrip(msg.Y) {
			return
		}
		m.pressed = true
		m.pressX = msg.X
		m.moved = false
		if m.carousel.Paused() {
			// Paused from the keyboard: re-anchor the drag on the pointer.
			m.carousel.EndDrag(now)
		}
		m.carousel.StartDrag(now, float64(msg.X))

	case tea.MouseActionMotion:
		if !m.pressed {
			return
		}
		if msg.X != m.pressX {
			m.moved = true
		}
		m.carousel.DragTo(float64(msg.X))

	case tea.MouseActionRelease:
		if !m.pressed {
			return
		}
		m.pressed = false
		if !m.moved {
			m.toggleAt(msg.X)
		}
		m.carousel.EndDrag(now)
	}
}

// toggleAt opens or closes the card under screen column x.
func (m *Model) toggleAt(x int) {
	now := m.now()
	col := x + m.scroll(now)
	slot := m.slotWidth()
	if col < 0 || col%slot >= m.cardWidth {
		return
	}
	m.toggleSlot(col/slot, now)
}

func (m *Model) toggleSlot(k int, now time.Time) {
	if k < 0 || k >= m.list.Len() {
		return
	}
	r, ok := m.reveals[k]
	if !ok {
		r = &Reveal{}
		m.reveals[k] = r
	}
	r.Toggle(now)
}

func (m *Model) slotWidth() int { return m.cardWidth + cardGap }

// scroll is the strip column shown at the left edge of the screen.
func (m *Model) scroll(now time.Time) int {
	return int(math.Round(-m.carousel.Offset(now)))
}

// Carousel exposes the state machine, mainly for tests.
func (m *Model) Carousel() *carousel.Carousel { return m.carousel }

func (m *Model) renderHeader() string {
	p := m.content.Profile

	links := make([]string, 0, len(p.Links))
	for _, l := range p.Links {
		style := linkStyle
		if l.Accent == "danger" {
			style = dangerStyle
		}
		links = append(links, style.Render(l.Name))
	}

	var hrefs []string
	for _, l := range p.Links {
		hrefs = append(hrefs, fmt.Sprintf("%s: %s", l.Name, l.Href))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Hello, I'm ")+nameStyle.Render(p.Name),
		"",
		taglineStyle.Render(p.Tagline),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, links...),
		footerStyle.Render(strings.Join(hrefs, "  ·  ")),
		headingStyle.Render("Projects"),
	)
}

func (m *Model) renderStrip() string {
	now := m.now()
	gap := strings.Repeat(" ", cardGap)
	cards := make([]string, 0, m.list.Len())
	for _, s := range m.list.Slots() {
		var r Reveal
		if rv, ok := m.reveals[s.Key]; ok {
			r = *rv
		}
		c := renderCard(s.Item, m.cardWidth, r, now)
		cards = append(cards, lipgloss.JoinHorizontal(lipgloss.Top, c, gap))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// inStrip reports whether screen row y falls on the carousel.
func (m *Model) inStrip(y int) bool {
	top := lipgloss.Height(m.renderHeader())
	return y >= top && y < top+lipgloss.Height(m.renderStrip())
}

func (m *Model) View() string {
	now := m.now()

	viewWidth := m.width
	if viewWidth <= 0 {
		viewWidth = 80
	}

	strip := m.renderStrip()
	left := m.scroll(now)
	lines := strings.Split(strip, "\n")
	for i, line := range lines {
		lines[i] = ansi.Cut(line, left, left+viewWidth)
	}

	status := ""
	if !m.carousel.Ready() {
		status = pausedStyle.Render("measuring…")
	} else if m.carousel.Paused() {
		status = pausedStyle.Render("paused")
	}

	year := now.Year()
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		strings.Join(lines, "\n"),
		status,
		footerStyle.Render(fmt.Sprintf("© %d %s. All rights reserved.", year, m.content.Profile.Name)),
		m.help.View(m.keys),
	)
}
