// SPDX-License-Identifier: EPL-2.0

package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmcabandara/openmpt/sample"
)

// t.Setenv forbids t.Parallel, so these tests run sequentially.

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Env)
	require.Equal(t, "info", cfg.LogLevel)
	require.False(t, cfg.ITPingPong)
	require.False(t, cfg.GlobalVolume)
	require.Zero(t, cfg.MaxLength)
	require.Equal(t, 4, cfg.Workers)
	require.Equal(t, 44100, cfg.RenderRate)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SMPCTL_ENV", "development")
	t.Setenv("SMPCTL_IT_PINGPONG", "true")
	t.Setenv("SMPCTL_GLOBAL_VOLUME", "true")
	t.Setenv("SMPCTL_MAX_LENGTH", "65536")
	t.Setenv("SMPCTL_WORKERS", "8")
	t.Setenv("SMPCTL_RENDER_RATE", "48000")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, EnvDevelopment, cfg.Env)
	require.Equal(t, 8, cfg.Workers)
	require.Equal(t, 48000, cfg.RenderRate)
	require.Equal(t, sample.Config{
		MaxLength:      65536,
		ITPingPongMode: true,
		GlobalVolume:   true,
	}, cfg.EditorConfig())
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"not a number", "SMPCTL_WORKERS", "many"},
		{"no workers", "SMPCTL_WORKERS", "0"},
		{"zero render rate", "SMPCTL_RENDER_RATE", "0"},
		{"negative max length", "SMPCTL_MAX_LENGTH", "-1"},
		{"max length too large", "SMPCTL_MAX_LENGTH", "268435457"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(tt.key, tt.value)

			_, err := LoadConfig()
			require.Error(t, err)
		})
	}
}
