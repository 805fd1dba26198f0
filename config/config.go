// Package config loads runtime settings from defaults, an optional config
// file, DEADWOOD_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/deadwood/constants"
)

// EnvPrefix prefixes every environment override, e.g. DEADWOOD_AUDIO_ENABLED
const EnvPrefix = "DEADWOOD"

// Config is the fully resolved runtime configuration
type Config struct {
	// Seed drives world layout and spawns; zero picks one from the clock
	Seed   uint64 `mapstructure:"seed"`
	FPS    int    `mapstructure:"fps"`
	Debug  bool   `mapstructure:"debug"`
	LogDir string `mapstructure:"log_dir"`
	Audio  Audio  `mapstructure:"audio"`
	Sim    Sim    `mapstructure:"sim"`
}

type Audio struct {
	Enabled       bool    `mapstructure:"enabled"`
	MasterVolume  float64 `mapstructure:"master_volume"`
	AmbientVolume float64 `mapstructure:"ambient_volume"`
}

// Sim configures the headless run
type Sim struct {
	Frames int           `mapstructure:"frames"`
	Step   time.Duration `mapstructure:"step"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		FPS:    60,
		LogDir: "logs",
		Audio: Audio{
			Enabled:       true,
			MasterVolume:  1,
			AmbientVolume: constants.AmbientVolume,
		},
		Sim: Sim{
			Frames: 60 * 60 * 3,
			Step:   constants.SimFrameStep,
		},
	}
}

// flag name → config key
var flagKeys = map[string]string{
	"seed":           "seed",
	"fps":            "fps",
	"debug":          "debug",
	"log-dir":        "log_dir",
	"audio":          "audio.enabled",
	"volume":         "audio.master_volume",
	"ambient-volume": "audio.ambient_volume",
	"frames":         "sim.frames",
	"step":           "sim.step",
}

// RegisterFlags adds the configuration flags to fs; defaults mirror Default
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String("config", "", "config file (default ./deadwood.{yaml,toml,json} if present)")
	fs.Uint64("seed", d.Seed, "world seed (0 = random)")
	fs.Int("fps", d.FPS, "target frame rate")
	fs.Bool("debug", d.Debug, "write debug logs to the log directory")
	fs.String("log-dir", d.LogDir, "log directory")
	fs.Bool("audio", d.Audio.Enabled, "enable audio")
	fs.Float64("volume", d.Audio.MasterVolume, "master volume 0..1")
	fs.Float64("ambient-volume", d.Audio.AmbientVolume, "ambient drone volume 0..1 (0 disables)")
}

// RegisterSimFlags adds the headless simulation flags to fs
func RegisterSimFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.Int("frames", d.Sim.Frames, "frames to simulate")
	fs.Duration("step", d.Sim.Step, "simulated time per frame")
}

// Load resolves the configuration; fs may be nil
// Only flags explicitly set on the command line override file and environment values
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var file string
	if fs != nil {
		if f := fs.Lookup("config"); f != nil {
			file = f.Value.String()
		}
	}
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("deadwood")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, eris.Wrap(err, "read config file")
		}
	}

	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, eris.Wrapf(err, "bind flag %s", name)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, eris.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("seed", d.Seed)
	v.SetDefault("fps", d.FPS)
	v.SetDefault("debug", d.Debug)
	v.SetDefault("log_dir", d.LogDir)
	v.SetDefault("audio.enabled", d.Audio.Enabled)
	v.SetDefault("audio.master_volume", d.Audio.MasterVolume)
	v.SetDefault("audio.ambient_volume", d.Audio.AmbientVolume)
	v.SetDefault("sim.frames", d.Sim.Frames)
	v.SetDefault("sim.step", d.Sim.Step)
}

// ErrInvalid is the root of every validation failure
var ErrInvalid = eris.New("invalid config")

// Validate checks ranges
func (c Config) Validate() error {
	switch {
	case c.FPS < 1 || c.FPS > 240:
		return eris.Wrapf(ErrInvalid, "fps %d outside 1..240", c.FPS)
	case c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1:
		return eris.Wrapf(ErrInvalid, "audio.master_volume %v outside 0..1", c.Audio.MasterVolume)
	case c.Audio.AmbientVolume < 0 || c.Audio.AmbientVolume > 1:
		return eris.Wrapf(ErrInvalid, "audio.ambient_volume %v outside 0..1", c.Audio.AmbientVolume)
	case c.Sim.Frames < 1:
		return eris.Wrapf(ErrInvalid, "sim.frames %d must be positive", c.Sim.Frames)
	case c.Sim.Step <= 0 || c.Sim.Step > constants.MaxFrameDelta:
		return eris.Wrapf(ErrInvalid, "sim.step %v outside (0, %v]", c.Sim.Step, constants.MaxFrameDelta)
	}
	return nil
}

// FrameInterval is the real-time tick for the terminal loop
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}
