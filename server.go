package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/uChase/portfolio/internal/config"
	"github.com/uChase/portfolio/internal/portfolio"
)

// Server serves the rendered page and its static files.
type Server struct {
	cfg    config.Config
	site   *site
	engine *gin.Engine
	now    func() time.Time
}

// NewServer lays out the site and registers routes.
func NewServer(cfg config.Config, content portfolio.Content) (*Server, error) {
	st, err := newSite(cfg, content)
	if err != nil {
		return nil, err
	}

	s := &Server{cfg: cfg, site: st, now: time.Now}

	salt, err := newSalt()
	if err != nil {
		return nil, fmt.Errorf("generating log salt: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(salt))
	r.LoadHTMLGlob(filepath.Join(cfg.TemplatesDir, "*"))

	r.Static("/static", cfg.StaticDir)

	// Home page route
	r.GET("/", s.handleIndex)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Project images, favicon, resume and anything else dropped in the
	// public directory.
	r.NoRoute(s.handlePublic)

	s.engine = r
	return s, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) handleIndex(c *gin.Context) {
	st := s.site
	c.HTML(http.StatusOK, "index.html", gin.H{
		"meta":      st.content.Meta,
		"profile":   st.content.Profile,
		"cards":     st.cards,
		"copies":    st.copies,
		"periodMS":  st.periodMS,
		"cardWidth": st.cardWidth,
		"cardGap":   st.cardGap,
		"widthHint": st.widthHint,
		"year":      s.now().Year(),
	})
}

func (s *Server) handlePublic(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.String(http.StatusNotFound, "404 page not found")
		return
	}
	full, ok := publicFile(s.cfg.PublicDir, c.Request.URL.Path)
	if !ok {
		c.String(http.StatusNotFound, "404 page not found")
		return
	}
	c.File(full)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.engine,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		log.Println("Shutting down...")
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
