// Package config loads runtime configuration from defaults, an optional file, MAGIC_LAB_* environment and flags
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/magic-lab/parameter"
)

// EnvPrefix namespaces environment overrides, e.g. MAGIC_LAB_PARAMS_ENTITY_COUNT
const EnvPrefix = "MAGIC_LAB"

var ErrInvalidConfig = errors.New("invalid config")

// Config is the resolved runtime configuration
type Config struct {
	Params Params `mapstructure:"params"`

	// Seed drives every random draw; 0 picks a time-based seed at startup
	Seed int64 `mapstructure:"seed"`

	LogFile  string `mapstructure:"log_file"`
	LogLevel string `mapstructure:"log_level"`

	Audio         bool    `mapstructure:"audio"`
	MaxFrameDelta float64 `mapstructure:"max_frame_delta"`
	FPS           int     `mapstructure:"fps"`
	Gravity       float64 `mapstructure:"gravity"`
}

// flagBinding ties a command-line flag to a viper key
type flagBinding struct {
	flag string
	key  string
}

var bindings = []flagBinding{
	{"entities", "params.entity_count"},
	{"spawn-radius", "params.spawn_radius"},
	{"particles", "params.particle_count"},
	{"strength", "params.explosion_strength"},
	{"orbit-speed", "params.orbit_speed"},
	{"ground-speed", "params.ground_speed"},
	{"time-scale", "params.time_scale"},
	{"fireflies", "params.firefly_count"},
	{"seed", "seed"},
	{"log-file", "log_file"},
	{"log-level", "log_level"},
	{"audio", "audio"},
	{"max-frame-delta", "max_frame_delta"},
	{"fps", "fps"},
	{"gravity", "gravity"},
}

func setDefaults(v *viper.Viper) {
	p := DefaultParams()
	v.SetDefault("params.entity_count", p.EntityCount)
	v.SetDefault("params.spawn_radius", p.SpawnRadius)
	v.SetDefault("params.particle_count", p.ParticleCount)
	v.SetDefault("params.explosion_strength", p.ExplosionStrength)
	v.SetDefault("params.orbit_speed", p.OrbitSpeed)
	v.SetDefault("params.ground_speed", p.GroundSpeed)
	v.SetDefault("params.time_scale", p.TimeScale)
	v.SetDefault("params.firefly_count", p.FireflyCount)
	v.SetDefault("seed", 0)
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("audio", true)
	v.SetDefault("max_frame_delta", parameter.MaxFrameDelta)
	v.SetDefault("fps", int(1000/parameter.FrameInterval.Milliseconds()))
	v.SetDefault("gravity", 0.0)
}

// NewFlagSet declares every command-line flag of the executables
func NewFlagSet(name string) *pflag.FlagSet {
	p := DefaultParams()
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringP("config", "c", "", "config file (toml, yaml or json)")
	fs.IntP("entities", "n", p.EntityCount, "number of dynamic entities")
	fs.Float64("spawn-radius", p.SpawnRadius, "half-width of the entity spawn box")
	fs.Int("particles", p.ParticleCount, "particles per burst")
	fs.Float64("strength", p.ExplosionStrength, "explosion strength")
	fs.Float64("orbit-speed", p.OrbitSpeed, "camera orbit in revolutions per second")
	fs.Float64("ground-speed", p.GroundSpeed, "ground rotation in radians per second")
	fs.Float64("time-scale", p.TimeScale, "simulation speed multiplier")
	fs.Int("fireflies", p.FireflyCount, "ambient firefly count")
	fs.Int64("seed", 0, "random seed, 0 for time-based")
	fs.String("log-file", "", "write logs to file instead of discarding")
	fs.String("log-level", "info", "debug, info, warn or error")
	fs.Bool("audio", true, "enable spell sounds")
	fs.Float64("max-frame-delta", parameter.MaxFrameDelta, "largest simulated step per frame in seconds")
	fs.Int("fps", int(1000/parameter.FrameInterval.Milliseconds()), "target frames per second")
	fs.Float64("gravity", 0, "downward gravity on entities")
	return fs
}

// Load resolves configuration with precedence flags > environment > file > defaults
func Load(name string, args []string) (Config, error) {
	fs := NewFlagSet(name)
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for _, b := range bindings {
		if err := v.BindPFlag(b.key, fs.Lookup(b.flag)); err != nil {
			return Config{}, fmt.Errorf("bind flag %s: %w", b.flag, err)
		}
	}

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg.normalize()
}

// Default returns the configuration Load produces with no inputs
func Default() Config {
	cfg, _ := Config{
		Params:        DefaultParams(),
		LogLevel:      "info",
		Audio:         true,
		MaxFrameDelta: parameter.MaxFrameDelta,
		FPS:           int(1000 / parameter.FrameInterval.Milliseconds()),
	}.normalize()
	return cfg
}

func (c Config) normalize() (Config, error) {
	c.Params = c.Params.Sanitize()
	if c.FPS <= 0 {
		c.FPS = 1
	}
	if !(c.MaxFrameDelta > 0) {
		c.MaxFrameDelta = parameter.MaxFrameDelta
	}
	if _, err := c.SlogLevel(); err != nil {
		return c, err
	}
	return c, nil
}

// SlogLevel parses LogLevel
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return lvl, nil
}
