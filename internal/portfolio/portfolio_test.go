package portfolio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "content.yml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write content: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(c.Projects) != 5 {
		t.Fatalf("projects = %d, want 5", len(c.Projects))
	}
	ids := make(map[int]int)
	for _, p := range c.Projects {
		ids[p.ID]++
		if p.Title == "" || p.Link == "" || len(p.TechStack) == 0 {
			t.Errorf("incomplete project %+v", p)
		}
	}
	if ids[4] != 2 {
		t.Errorf("expected the two projects sharing id 4, got %d", ids[4])
	}
	if c.Meta.Title != "ChaseX - Portfolio" {
		t.Errorf("title = %q", c.Meta.Title)
	}
}

func TestDefaultIsACopy(t *testing.T) {
	a := Default()
	a.Projects[0].Title = "changed"
	if Default().Projects[0].Title == "changed" {
		t.Error("Default shares state between calls")
	}
}

func TestPlaceholder(t *testing.T) {
	p := Project{Title: "VGLB"}
	if p.HasImage() {
		t.Error("HasImage with empty image")
	}
	if got := p.Placeholder(); got != "VGLB Image" {
		t.Errorf("Placeholder = %q", got)
	}
}

func TestLoadFileOverridesProjects(t *testing.T) {
	path := writeFile(t, `
projects:
  - id: 7
    title: Lantern
    description: A lamp.
    tech_stack: [Go, gin]
    link: https://example.com/lantern
  - id: 7
    title: Lantern 2
    description: Another lamp.
    tech_stack: [Go]
    link: https://example.com/lantern2
    image: /lantern.png
`)
	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(c.Projects) != 2 {
		t.Fatalf("projects = %d, want 2", len(c.Projects))
	}
	if c.Projects[0].HasImage() || !c.Projects[1].HasImage() {
		t.Errorf("images = %q, %q", c.Projects[0].Image, c.Projects[1].Image)
	}
	if got := c.Projects[0].TechStack; len(got) != 2 || got[1] != "gin" {
		t.Errorf("tech stack = %v", got)
	}
	if c.Profile.Name != "Chase Hameetman" {
		t.Errorf("profile should keep defaults, got %q", c.Profile.Name)
	}
}

func TestLoadFileOverridesProfile(t *testing.T) {
	path := writeFile(t, `
profile:
  name: Ada
  tagline: Engines.
  links:
    - name: GitHub
      href: https://github.com/ada
`)
	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c.Profile.Name != "Ada" || len(c.Profile.Links) != 1 {
		t.Errorf("profile = %+v", c.Profile)
	}
	if len(c.Projects) != 5 {
		t.Errorf("projects should keep defaults, got %d", len(c.Projects))
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("missing file: expected error")
	}
	if _, err := LoadFile(writeFile(t, "projects: [")); err == nil {
		t.Error("bad yaml: expected error")
	}
	if _, err := LoadFile(writeFile(t, "projects: []\n")); !errors.Is(err, ErrNoProjects) {
		t.Errorf("empty projects: err = %v, want ErrNoProjects", err)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(c.Projects) != 5 {
		t.Errorf("projects = %d", len(c.Projects))
	}
}
