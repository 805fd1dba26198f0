package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	RegisterSimFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

// inTempDir runs the test from an empty directory so no stray config file is picked up
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	inTempDir(t)
	cfg, err := Load(newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, time.Second/60, cfg.FrameInterval())
}

func TestLoadNilFlags(t *testing.T) {
	inTempDir(t)
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestEnvironmentOverrides(t *testing.T) {
	inTempDir(t)
	t.Setenv("DEADWOOD_FPS", "30")
	t.Setenv("DEADWOOD_SEED", "1234")
	t.Setenv("DEADWOOD_AUDIO_ENABLED", "false")
	t.Setenv("DEADWOOD_AUDIO_MASTER_VOLUME", "0.5")
	t.Setenv("DEADWOOD_SIM_STEP", "20ms")

	cfg, err := Load(newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.FPS)
	assert.Equal(t, uint64(1234), cfg.Seed)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, 0.5, cfg.Audio.MasterVolume)
	assert.Equal(t, 20*time.Millisecond, cfg.Sim.Step)
}

func TestFlagsBeatEnvironment(t *testing.T) {
	inTempDir(t)
	t.Setenv("DEADWOOD_FPS", "30")

	cfg, err := Load(newFlags(t, "--fps=45", "--seed=7", "--volume=0.25", "--frames=100", "--step=10ms"))
	require.NoError(t, err)
	assert.Equal(t, 45, cfg.FPS)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, 0.25, cfg.Audio.MasterVolume)
	assert.Equal(t, 100, cfg.Sim.Frames)
	assert.Equal(t, 10*time.Millisecond, cfg.Sim.Step)
}

func TestConfigFile(t *testing.T) {
	dir := inTempDir(t)
	body := "fps: 24\ndebug: true\naudio:\n  ambient_volume: 0\nsim:\n  frames: 500\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "deadwood.yaml"), []byte(body), 0o644))

	cfg, err := Load(newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.FPS)
	assert.True(t, cfg.Debug)
	assert.Zero(t, cfg.Audio.AmbientVolume)
	assert.Equal(t, 500, cfg.Sim.Frames)
	assert.True(t, cfg.Audio.Enabled, "unset keys keep defaults")
}

func TestExplicitConfigFileMustExist(t *testing.T) {
	dir := inTempDir(t)
	_, err := Load(newFlags(t, "--config="+filepath.Join(dir, "missing.toml")))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"huge fps", func(c *Config) { c.FPS = 1000 }},
		{"loud master", func(c *Config) { c.Audio.MasterVolume = 1.5 }},
		{"negative ambient", func(c *Config) { c.Audio.AmbientVolume = -0.1 }},
		{"no frames", func(c *Config) { c.Sim.Frames = 0 }},
		{"zero step", func(c *Config) { c.Sim.Step = 0 }},
		{"step beyond frame clamp", func(c *Config) { c.Sim.Step = time.Second }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
	assert.NoError(t, Default().Validate())
}

func TestLoadRejectsInvalidEnvironment(t *testing.T) {
	inTempDir(t)
	t.Setenv("DEADWOOD_FPS", "0")
	_, err := Load(newFlags(t))
	assert.ErrorIs(t, err, ErrInvalid)
}
