package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	herrors "github.com/matzehuels/hedi/pkg/errors"
	"github.com/matzehuels/hedi/pkg/hedge"
	"github.com/matzehuels/hedi/pkg/store"
)

// appName is the application name used for directories and display.
const appName = "hedi"

// Config holds the settings read from the TOML config file. Every field has
// a working default, so running without a config file is fine. Flags
// override file values.
//
// Example ~/.config/hedi/config.toml:
//
//	walk_limit = 3000000
//
//	[render]
//	detailed = true
//
//	[store]
//	backend = "file"
//	dir = "/var/lib/hedi/docs"
//
//	[serve]
//	addr = ":8080"
type Config struct {
	// WalkLimit caps boundary walks when loading diagrams.
	WalkLimit int `toml:"walk_limit"`

	Render RenderConfig `toml:"render"`
	Store  StoreConfig  `toml:"store"`
	Serve  ServeConfig  `toml:"serve"`
}

// RenderConfig holds render command defaults.
type RenderConfig struct {
	// Detailed includes twin handles, scalar tags, and metadata in labels.
	Detailed bool `toml:"detailed"`
}

// StoreConfig selects the document store backend.
type StoreConfig struct {
	Backend       string `toml:"backend"` // "memory", "file" (default), or "redis"
	Dir           string `toml:"dir"`     // file backend directory
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

// ServeConfig holds the HTTP API settings.
type ServeConfig struct {
	Addr string `toml:"addr"`
}

func defaultConfig() *Config {
	return &Config{
		WalkLimit: hedge.DefaultWalkLimit,
		Store: StoreConfig{
			Backend:   "file",
			RedisAddr: "localhost:6379",
		},
		Serve: ServeConfig{
			Addr: ":8080",
		},
	}
}

// loadConfig reads the TOML config from path, or from the default location
// when path is empty. A missing file is not an error; defaults apply.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		var err error
		if path, err = defaultConfigPath(); err != nil {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if explicit {
			return nil, herrors.Wrap(herrors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return cfg, nil
	}
	if err != nil {
		return nil, herrors.Wrap(herrors.ErrCodeInvalidPath, err, "config %s", path)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, herrors.Wrap(herrors.ErrCodeInvalidFormat, err, "config %s", path)
	}
	if cfg.WalkLimit < 1 {
		cfg.WalkLimit = hedge.DefaultWalkLimit
	}
	return cfg, nil
}

// defaultConfigPath returns the XDG config location (~/.config/hedi/config.toml).
func defaultConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// storeConfig converts the config's store section, applying the default
// document directory (~/.local/share/hedi/docs) for the file backend.
func (c *Config) storeConfig() store.Config {
	dir := c.Store.Dir
	if dir == "" {
		dir = defaultStoreDir()
	}
	return store.Config{
		Backend:       c.Store.Backend,
		Dir:           dir,
		RedisAddr:     c.Store.RedisAddr,
		RedisPassword: c.Store.RedisPassword,
		RedisDB:       c.Store.RedisDB,
	}
}

// defaultStoreDir returns the XDG data location for the file backend.
func defaultStoreDir() string {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appName, "docs")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", appName+"-docs")
	}
	return filepath.Join(home, ".local", "share", appName, "docs")
}
