package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configDirName  = ".roadmap"
	configFileName = "config.yaml"
	logFileName    = "roadmap.log"

	DefaultModel   = "gemini-3-flash-preview"
	DefaultTimeout = 2 * time.Minute
)

var ErrMissingAPIKey = errors.New("missing API key: set API_KEY (or GEMINI_API_KEY)")

// Config is the effective runtime configuration.
type Config struct {
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
	Theme   string        `yaml:"theme"`
	LogFile string        `yaml:"log_file"`
	LogMode string        `yaml:"log_mode"`

	// Never read from the file; the key only comes from the environment.
	APIKey    string `yaml:"-"`
	KeySource string `yaml:"-"` // "API_KEY" | "GEMINI_API_KEY" | ""
	Path      string `yaml:"-"` // file the config was loaded from, if any
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, configDirName), nil
}

// DefaultPath is ~/.roadmap/config.yaml unless ROADMAP_CONFIG says otherwise.
func DefaultPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv("ROADMAP_CONFIG")); p != "" {
		return p, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

func defaults() Config {
	c := Config{
		Model:   DefaultModel,
		Timeout: DefaultTimeout,
		Theme:   "classic",
		LogMode: "dev",
	}
	if dir, err := configDir(); err == nil {
		c.LogFile = filepath.Join(dir, logFileName)
	}
	return c
}

// Load reads the config file at path (empty means DefaultPath) and then
// applies environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := defaults()
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
		cfg.Path = path
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	applyEnv(&cfg)
	return cfg, nil
}

// env always wins over the file
func applyEnv(c *Config) {
	if v := strings.TrimSpace(os.Getenv("API_KEY")); v != "" {
		c.APIKey, c.KeySource = v, "API_KEY"
	} else if v := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); v != "" {
		c.APIKey, c.KeySource = v, "GEMINI_API_KEY"
	}
	if v := strings.TrimSpace(os.Getenv("ROADMAP_MODEL")); v != "" {
		c.Model = v
	}
	if v := strings.TrimSpace(os.Getenv("ROADMAP_LOG_FILE")); v != "" {
		c.LogFile = v
	}
	if strings.TrimSpace(c.Model) == "" {
		c.Model = DefaultModel
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return ErrMissingAPIKey
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	return nil
}

// MaskedKey shows only the last four characters of the API key.
func (c Config) MaskedKey() string {
	k := c.APIKey
	if k == "" {
		return "(not set)"
	}
	if len(k) <= 4 {
		return strings.Repeat("*", len(k))
	}
	return strings.Repeat("*", 8) + k[len(k)-4:]
}
