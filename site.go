package main

import (
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/uChase/portfolio/internal/carousel"
	"github.com/uChase/portfolio/internal/config"
	"github.com/uChase/portfolio/internal/portfolio"
)

// card is one rendered slot of the carousel track.
type card struct {
	Key         int
	Clone       bool // any copy after the first; hidden from assistive tech
	Project     portfolio.Project
	Image       string // empty when the project has no usable image
	Placeholder string
}

// site is the page, laid out once at startup.
type site struct {
	content   portfolio.Content
	cards     []card
	copies    int
	periodMS  int64
	cardWidth int
	cardGap   int
	widthHint float64 // expected width of one copy, before the browser measures
}

func newSite(cfg config.Config, content portfolio.Content) (*site, error) {
	if err := content.Validate(); err != nil {
		return nil, err
	}

	// Resolve each project's image once; items are shared by every copy.
	projects := content.Projects
	images := make([]string, len(projects))
	for i, p := range projects {
		images[i] = resolveImage(cfg.PublicDir, p)
	}

	type indexed struct {
		idx int
		p   portfolio.Project
	}
	items := make([]indexed, len(projects))
	for i, p := range projects {
		items[i] = indexed{idx: i, p: p}
	}
	dl, err := carousel.NewDisplayList(items, cfg.Copies)
	if err != nil {
		return nil, fmt.Errorf("laying out carousel: %w", err)
	}

	cards := make([]card, 0, dl.Len())
	for _, s := range dl.Slots() {
		cards = append(cards, card{
			Key:         s.Key,
			Clone:       s.Copy > 0,
			Project:     s.Item.p,
			Image:       images[s.Item.idx],
			Placeholder: s.Item.p.Placeholder(),
		})
	}

	return &site{
		content:   content,
		cards:     cards,
		copies:    dl.Copies(),
		periodMS:  cfg.LoopPeriod.Milliseconds(),
		cardWidth: cfg.CardWidth,
		cardGap:   cfg.CardGap,
		widthHint: carousel.StripWidth(dl.Items(), float64(cfg.CardWidth), float64(cfg.CardGap)),
	}, nil
}

// resolveImage returns the URL to render for p's image, or "" when the
// page should show the placeholder. Site-local paths must exist under
// publicDir; anything else is passed through untouched.
func resolveImage(publicDir string, p portfolio.Project) string {
	if !p.HasImage() {
		return ""
	}
	if !strings.HasPrefix(p.Image, "/") || strings.HasPrefix(p.Image, "//") {
		return p.Image
	}
	if _, ok := publicFile(publicDir, p.Image); !ok {
		log.Printf("Image %s for %q not found in %s, using placeholder", p.Image, p.Title, publicDir)
		return ""
	}
	return p.Image
}

// publicFile maps a URL path onto a regular file below dir.
func publicFile(dir, urlPath string) (string, bool) {
	clean := path.Clean("/" + urlPath)
	full := filepath.Join(dir, filepath.FromSlash(clean))
	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return "", false
	}
	return full, true
}
