package portfolio

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrNoProjects = errors.New("portfolio: no projects")

// Project is one card in the carousel. IDs are informational and may
// repeat.
type Project struct {
	ID          int      `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	TechStack   []string `yaml:"tech_stack" json:"tech_stack"`
	Link        string   `yaml:"link" json:"link"`
	Image       string   `yaml:"image,omitempty" json:"image,omitempty"`
}

// HasImage reports whether the project declares an image.
func (p Project) HasImage() bool { return p.Image != "" }

// Placeholder is shown in place of a missing image.
func (p Project) Placeholder() string { return p.Title + " Image" }

// Link is a call-to-action button in the hero section.
type Link struct {
	Name   string `yaml:"name"`
	Href   string `yaml:"href"`
	Accent string `yaml:"accent,omitempty"` // "danger" for the red button
}

type Profile struct {
	Name    string `yaml:"name"`
	Tagline string `yaml:"tagline"`
	Links   []Link `yaml:"links"`
}

// Meta describes the page head.
type Meta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	IconType    string `yaml:"icon_type"`
}

// Content is everything the page shows. It is built once at startup and
// never modified.
type Content struct {
	Meta     Meta      `yaml:"meta"`
	Profile  Profile   `yaml:"profile"`
	Projects []Project `yaml:"projects"`
}

func (c Content) Validate() error {
	if len(c.Projects) == 0 {
		return ErrNoProjects
	}
	return nil
}

// LoadFile reads a YAML content file. Sections the file leaves out keep
// their defaults; a projects list in the file replaces the default one.
func LoadFile(path string) (Content, error) {
	c := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("reading content %s: %w", path, err)
	}

	var file struct {
		Meta     *Meta      `yaml:"meta"`
		Profile  *Profile   `yaml:"profile"`
		Projects *[]Project `yaml:"projects"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return c, fmt.Errorf("parsing content %s: %w", path, err)
	}

	if file.Meta != nil {
		c.Meta = *file.Meta
	}
	if file.Profile != nil {
		c.Profile = *file.Profile
	}
	if file.Projects != nil {
		c.Projects = *file.Projects
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("content %s: %w", path, err)
	}
	return c, nil
}

// Load returns the defaults when path is empty and the file otherwise.
func Load(path string) (Content, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
