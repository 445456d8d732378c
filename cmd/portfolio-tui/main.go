package main

import (
	"flag"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/uChase/portfolio/internal/config"
	"github.com/uChase/portfolio/internal/portfolio"
	"github.com/uChase/portfolio/internal/tui"
)

func main() {
	var configPath string
	var contentPath string

	flag.StringVar(&configPath, "config", "", "config file (YAML)")
	flag.StringVar(&contentPath, "content", "", "override content file (YAML)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if contentPath != "" {
		cfg.ContentFile = contentPath
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	content, err := portfolio.Load(cfg.ContentFile)
	if err != nil {
		return err
	}

	model, err := tui.NewModel(content, tui.Options{
		Copies:    cfg.Copies,
		Period:    cfg.LoopPeriod,
		FPS:       cfg.TUIFPS,
		CardWidth: cfg.TUICardWidth,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
