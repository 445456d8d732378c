package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/uChase/portfolio/internal/carousel"
)

const (
	defaultPort            = "8080"
	defaultGinMode         = "release"
	defaultTemplatesDir    = "templates"
	defaultStaticDir       = "static"
	defaultPublicDir       = "public"
	defaultCopies          = 3
	defaultLoopPeriod      = carousel.DefaultPeriod
	defaultCardWidth       = 315
	defaultCardGap         = 32
	defaultTUIFPS          = 30
	defaultTUICardWidth    = 34
	defaultShutdownTimeout = 5 * time.Second
)

// Config holds settings shared by the web server and the terminal client.
type Config struct {
	Port            string        `mapstructure:"port"`
	GinMode         string        `mapstructure:"gin-mode"`
	ContentFile     string        `mapstructure:"content-file"`
	TemplatesDir    string        `mapstructure:"templates-dir"`
	StaticDir       string        `mapstructure:"static-dir"`
	PublicDir       string        `mapstructure:"public-dir"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown-timeout"`

	// Carousel
	Copies     int           `mapstructure:"copies"`
	LoopPeriod time.Duration `mapstructure:"loop-period"`
	CardWidth  int           `mapstructure:"card-width"` // px
	CardGap    int           `mapstructure:"card-gap"`   // px

	// Terminal
	TUIFPS       int `mapstructure:"tui-fps"`
	TUICardWidth int `mapstructure:"tui-card-width"` // cells

	ConfigPath string `mapstructure:"-"`
}

// Addr is the listen address for the web server.
func (c Config) Addr() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

// Load reads configuration from PORTFOLIO_* environment variables and an
// optional YAML file. A missing file is not an error; PORT is honored for
// the listen port.
func Load(configPath string) (Config, error) {
	var cfg Config

	v := viper.New()
	v.SetEnvPrefix("PORTFOLIO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	if err := v.BindEnv("port", "PORTFOLIO_PORT", "PORT"); err != nil {
		return cfg, err
	}

	v.SetDefault("port", defaultPort)
	v.SetDefault("gin-mode", defaultGinMode)
	v.SetDefault("content-file", "")
	v.SetDefault("templates-dir", defaultTemplatesDir)
	v.SetDefault("static-dir", defaultStaticDir)
	v.SetDefault("public-dir", defaultPublicDir)
	v.SetDefault("shutdown-timeout", defaultShutdownTimeout)
	v.SetDefault("copies", defaultCopies)
	v.SetDefault("loop-period", defaultLoopPeriod)
	v.SetDefault("card-width", defaultCardWidth)
	v.SetDefault("card-gap", defaultCardGap)
	v.SetDefault("tui-fps", defaultTUIFPS)
	v.SetDefault("tui-card-width", defaultTUICardWidth)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			var configFileNotFound viper.ConfigFileNotFoundError
			if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
				return cfg, fmt.Errorf("reading config %s: %w", configPath, err)
			}
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	cfg.ConfigPath = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid gin-mode: %q", c.GinMode)
	}
	if c.Copies < 2 {
		return fmt.Errorf("invalid copies: %d (need at least 2)", c.Copies)
	}
	if c.LoopPeriod <= 0 {
		return fmt.Errorf("invalid loop-period: %s", c.LoopPeriod)
	}
	if c.CardWidth <= 0 || c.CardGap < 0 {
		return fmt.Errorf("invalid card size: width %d gap %d", c.CardWidth, c.CardGap)
	}
	if c.TUIFPS < 1 || c.TUIFPS > 120 {
		return fmt.Errorf("invalid tui-fps: %d", c.TUIFPS)
	}
	if c.TUICardWidth < 12 {
		return fmt.Errorf("invalid tui-card-width: %d", c.TUICardWidth)
	}
	return nil
}
