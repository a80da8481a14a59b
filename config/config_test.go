package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Nodes, 8)
	assert.Equal(t, 75, cfg.Scene.TrailLength)
	assert.Equal(t, 0.6, cfg.Scene.CollisionDistance)
	assert.Equal(t, 2*time.Second, cfg.Transition.CoreDuration.Duration)
	assert.Equal(t, time.Second/60, cfg.FrameInterval())
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileOverrides(t *testing.T) {
	path := writeFile(t, `
[scene]
trail_length = 20

[transition]
core_duration = "3s"
flash_duration = "250ms"

[[nodes]]
title = "Solo"
category = "AI"
color = "#112233"
orbit_radius = 2
orbit_speed = 1
`)
	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Scene.TrailLength)
	assert.Equal(t, 0.6, cfg.Scene.CollisionDistance, "untouched keys keep defaults")
	assert.Equal(t, 3*time.Second, cfg.Transition.CoreDuration.Duration)
	assert.Equal(t, 250*time.Millisecond, cfg.Transition.FlashDuration.Duration)
	require.Len(t, cfg.Nodes, 1)
	assert.Equal(t, "Solo", cfg.Nodes[0].Title)
}

func TestLoad_FileWithoutNodesKeepsDefaults(t *testing.T) {
	path := writeFile(t, "[loop]\nfps = 30\n")
	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Loop.FPS)
	assert.Len(t, cfg.Nodes, 8)
}

func TestLoad_UnknownKey(t *testing.T) {
	path := writeFile(t, "[scene]\ntrail_lenght = 3\n")
	_, err := Load(path, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))
	assert.Contains(t, err.Error(), "trail_lenght")
}

func TestLoad_BadDuration(t *testing.T) {
	path := writeFile(t, "[transition]\nnode_duration = \"soon\"\n")
	_, err := Load(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "soon")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"), nil)
	require.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	ApplyEnv(cfg, envMap(map[string]string{
		EnvAudioEnabled: "false",
		EnvMasterVolume: "150",
		EnvTextureDir:   "/srv/tex",
		EnvFPS:          "30",
	}))
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, 1.0, cfg.Audio.MasterVolume)
	assert.Equal(t, "/srv/tex", cfg.Textures.Dir)
	assert.Equal(t, 30, cfg.Loop.FPS)
}

func TestApplyEnv_IgnoresMalformed(t *testing.T) {
	cfg := Default()
	ApplyEnv(cfg, envMap(map[string]string{
		EnvAudioEnabled: "maybe",
		EnvMasterVolume: "loud",
		EnvFPS:          "-5",
	}))
	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, 0.5, cfg.Audio.MasterVolume)
	assert.Equal(t, 60, cfg.Loop.FPS)
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Scene.TrailLength = 0
	cfg.Camera.FOV = 200
	cfg.Nodes[0].Color = "red-ish"
	cfg.Nodes[1].Category = "Core"

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))
	msg := err.Error()
	assert.Contains(t, msg, "trail_length")
	assert.Contains(t, msg, "camera.fov")
	assert.Contains(t, msg, "red-ish")
	assert.Contains(t, msg, "[core]")
}

func TestValidate_CoreRouteMustBeAPage(t *testing.T) {
	tests := []struct {
		route string
		want  string
	}{
		{"", "must not be empty"},
		{"/nope", `"/nope" is not a known page`},
	}
	for _, tt := range tests {
		cfg := Default()
		cfg.Transition.CoreRoute = tt.route
		err := cfg.Validate()
		require.ErrorIs(t, err, ErrInvalid, tt.route)
		assert.Contains(t, err.Error(), tt.want)
	}

	cfg := Default()
	cfg.Transition.CoreRoute = "/projects"
	assert.NoError(t, cfg.Validate())
}

func TestWrite_RoundTripsThroughLoad(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Default().Write(&buf))
	assert.Contains(t, buf.String(), `core_duration = "2s"`)

	path := writeFile(t, buf.String())
	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, Default().Nodes, cfg.Nodes)
	assert.Equal(t, Default().Transition, cfg.Transition)
}
