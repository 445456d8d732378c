package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"

	"github.com/uChase/portfolio/internal/config"
	"github.com/uChase/portfolio/internal/portfolio"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "config file (YAML)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	content, err := portfolio.Load(cfg.ContentFile)
	if err != nil {
		log.Fatalf("Error loading content: %v", err)
	}

	gin.SetMode(cfg.GinMode)

	srv, err := NewServer(cfg, content)
	if err != nil {
		log.Fatalf("Error building site: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("Portfolio listening on %s (%d projects x %d copies)", cfg.Addr(), len(content.Projects), cfg.Copies)
	if err := srv.Run(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}
