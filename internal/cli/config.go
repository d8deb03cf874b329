package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/dialoguewheel/pkg/cache"
	"github.com/matzehuels/dialoguewheel/pkg/errors"
	"github.com/matzehuels/dialoguewheel/pkg/wheel"
)

// Cache backends selectable in the config file.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config is the CLI config file.
//
//	[appearance]
//	wheel_radius = 120
//	perspective_angle_x = 30
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//	ttl = "24h"
type Config struct {
	Appearance wheel.Appearance `toml:"appearance"`
	Cache      CacheConfig      `toml:"cache"`
}

// CacheConfig selects and configures the artifact cache.
type CacheConfig struct {
	Backend string `toml:"backend"`
	TTL     string `toml:"ttl"`
	cache.RedisConfig
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() Config {
	return Config{
		Appearance: wheel.DefaultAppearance(),
		Cache:      CacheConfig{Backend: BackendFile},
	}
}

// LoadConfig reads a TOML config file. Keys the file omits keep their
// defaults. Appearance values are normalized: out-of-range values clamp and
// invalid ones are an error.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := DefaultConfig()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the cache section and normalizes the appearance in place.
func (c *Config) Validate() error {
	a, err := c.Appearance.Normalize(wheel.DefaultAppearance())
	if err != nil {
		return err
	}
	c.Appearance = a

	switch c.Cache.Backend {
	case "":
		c.Cache.Backend = BackendFile
	case BackendFile, BackendNone:
	case BackendRedis:
		if c.Cache.Addr == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache.redis_addr is required for the redis backend")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q (must be file, redis, or none)", c.Cache.Backend)
	}

	if c.Cache.TTL != "" {
		d, err := time.ParseDuration(c.Cache.TTL)
		if err != nil || d <= 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "cache.ttl must be a positive duration, got %q", c.Cache.TTL)
		}
	}
	return nil
}

// ttl returns the configured TTL, or zero for the runner default.
func (c CacheConfig) ttl() time.Duration {
	d, err := time.ParseDuration(c.TTL)
	if err != nil {
		return 0
	}
	return d
}

// Redis returns the redis connection settings.
func (c CacheConfig) Redis() cache.RedisConfig {
	return c.RedisConfig
}

// String summarizes the cache settings for log output.
func (c CacheConfig) String() string {
	if c.Backend == BackendRedis {
		return fmt.Sprintf("redis %s/%d", c.Addr, c.DB)
	}
	return c.Backend
}
