// Package config loads the scene configuration: built-in defaults, an optional
// TOML file and environment overrides, in that order.
package config

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Duration wraps time.Duration with text (un)marshalling as "2s", "500ms"
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration as a Go duration string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config holds every tunable of the scene and its host
type Config struct {
	Scene      SceneConfig      `toml:"scene"`
	Camera     CameraConfig     `toml:"camera"`
	Controls   ControlsConfig   `toml:"controls"`
	Transition TransitionConfig `toml:"transition"`
	Loop       LoopConfig       `toml:"loop"`
	Audio      AudioConfig      `toml:"audio"`
	Textures   TextureConfig    `toml:"textures"`
	Core       CoreConfig       `toml:"core"`
	Nodes      []NodeConfig     `toml:"nodes"`
}

// SceneConfig contains simulation constants
type SceneConfig struct {
	TickStep          float64 `toml:"tick_step"`          // simulated time per frame
	TrailLength       int     `toml:"trail_length"`       // samples per trail
	TrailDrawScale    float64 `toml:"trail_draw_scale"`   // drawn samples per elapsed push while warming
	CollisionDistance float64 `toml:"collision_distance"` // minimum node separation
	NodeRadius        float64 `toml:"node_radius"`
	CoreRadius        float64 `toml:"core_radius"`
	Stars             int     `toml:"stars"`
	StarSpread        float64 `toml:"star_spread"` // edge of the star cube
	StarSeed          int64   `toml:"star_seed"`
}

// CameraConfig contains the initial perspective camera
type CameraConfig struct {
	FOV      float64    `toml:"fov"` // vertical, degrees
	Near     float64    `toml:"near"`
	Far      float64    `toml:"far"`
	Position [3]float64 `toml:"position"`
}

// ControlsConfig contains orbit-controls tuning
type ControlsConfig struct {
	Damping     float64 `toml:"damping"`
	RotateSpeed float64 `toml:"rotate_speed"`
	MinDistance float64 `toml:"min_distance"`
	MaxDistance float64 `toml:"max_distance"`
	ZoomStep    float64 `toml:"zoom_step"`
}

// TransitionConfig contains the click-triggered camera flights
type TransitionConfig struct {
	CoreDuration   Duration   `toml:"core_duration"`
	NodeDuration   Duration   `toml:"node_duration"`
	FlashDuration  Duration   `toml:"flash_duration"`
	CoreTarget     [3]float64 `toml:"core_target"`
	RecenterRadius float64    `toml:"recenter_radius"`
	FocusStart     float64    `toml:"focus_start"`
	FocusRange     float64    `toml:"focus_range"`
	MaxAperture    float64    `toml:"max_aperture"`
	CoreRoute      string     `toml:"core_route"`
}

// LoopConfig contains host loop pacing
type LoopConfig struct {
	FPS int `toml:"fps"`
}

// AudioConfig contains cue playback settings
type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"` // 0.0-1.0
}

// TextureConfig maps categories to texture files under Dir
type TextureConfig struct {
	Dir   string            `toml:"dir"`
	Files map[string]string `toml:"files"`
}

// CoreConfig describes the central node
type CoreConfig struct {
	Title string `toml:"title"`
	Color string `toml:"color"`
}

// NodeConfig describes one orbiting node
type NodeConfig struct {
	Title       string     `toml:"title"`
	Category    string     `toml:"category"`
	Color       string     `toml:"color"`
	Position    [3]float64 `toml:"position"`
	OrbitRadius float64    `toml:"orbit_radius"`
	OrbitSpeed  float64    `toml:"orbit_speed"`
	Phase       float64    `toml:"phase"`
	OrbitPlane  float64    `toml:"orbit_plane"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Scene: SceneConfig{
			TickStep:          0.01,
			TrailLength:       75,
			TrailDrawScale:    1,
			CollisionDistance: 0.6,
			NodeRadius:        0.25,
			CoreRadius:        0.8,
			Stars:             1000,
			StarSpread:        100,
			StarSeed:          1,
		},
		Camera: CameraConfig{
			FOV:      75,
			Near:     0.1,
			Far:      1000,
			Position: [3]float64{0, 0, 6},
		},
		Controls: ControlsConfig{
			Damping:     0.05,
			RotateSpeed: 0.5,
			MinDistance: 3,
			MaxDistance: 10,
			ZoomStep:    0.5,
		},
		Transition: TransitionConfig{
			CoreDuration:   Duration{2 * time.Second},
			NodeDuration:   Duration{time.Second},
			FlashDuration:  Duration{500 * time.Millisecond},
			CoreTarget:     [3]float64{0, 0, 1.5},
			RecenterRadius: 3,
			FocusStart:     1,
			FocusRange:     2,
			MaxAperture:    0.025,
			CoreRoute:      "/computational-core",
		},
		Loop: LoopConfig{FPS: 60},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
		},
		Textures: TextureConfig{
			Dir: "textures",
			Files: map[string]string{
				"Core":    "core-processor.jpg",
				"AI":      "neural-network.jpg",
				"Finance": "finance-algo.jpg",
				"CompEng": "hardware.jpg",
				"DataSci": "data-analytics.jpg",
			},
		},
		Core: CoreConfig{
			Title: "Computational Core",
			Color: "#9C27B0",
		},
		Nodes: DefaultNodes(),
	}
}

// DefaultNodes returns the four two-node orbits of the portfolio scene
func DefaultNodes() []NodeConfig {
	return []NodeConfig{
		// AI/ML spectrum
		{Title: "Neural Networks", Category: "AI", Color: "#FF5252", Position: [3]float64{3, 0, 0}, OrbitRadius: 3, OrbitSpeed: 0.4, Phase: 0, OrbitPlane: 0},
		{Title: "Deep Learning", Category: "AI", Color: "#FF9800", Position: [3]float64{0, 3, 0}, OrbitRadius: 3, OrbitSpeed: 0.4, Phase: math.Pi, OrbitPlane: 0},
		// Financial models
		{Title: "Algorithmic Trading", Category: "Finance", Color: "#2196F3", Position: [3]float64{0, 0, 3.5}, OrbitRadius: 3.5, OrbitSpeed: 0.3, Phase: math.Pi / 2, OrbitPlane: math.Pi / 3},
		{Title: "Quantitative Analysis", Category: "Finance", Color: "#4CAF50", Position: [3]float64{0, 0, -3.5}, OrbitRadius: 3.5, OrbitSpeed: 0.3, Phase: 3 * math.Pi / 2, OrbitPlane: math.Pi / 3},
		// Computer engineering
		{Title: "Parallel Computing", Category: "CompEng", Color: "#FFEB3B", Position: [3]float64{4, 0, 0}, OrbitRadius: 4, OrbitSpeed: 0.25, Phase: 0, OrbitPlane: math.Pi / 4},
		{Title: "Distributed Systems", Category: "CompEng", Color: "#E91E63", Position: [3]float64{-4, 0, 0}, OrbitRadius: 4, OrbitSpeed: 0.25, Phase: math.Pi, OrbitPlane: math.Pi / 4},
		// Data science
		{Title: "Big Data Analytics", Category: "DataSci", Color: "#00BCD4", Position: [3]float64{0, 4.5, 0}, OrbitRadius: 4.5, OrbitSpeed: 0.2, Phase: math.Pi / 2, OrbitPlane: -math.Pi / 6},
		{Title: "Predictive Modeling", Category: "DataSci", Color: "#FFC107", Position: [3]float64{0, -4.5, 0}, OrbitRadius: 4.5, OrbitSpeed: 0.2, Phase: 3 * math.Pi / 2, OrbitPlane: -math.Pi / 6},
	}
}

// Load builds a configuration from defaults, the TOML file at path (if
// non-empty) and the process environment, then validates it
func Load(path string, getenv func(string) (string, bool)) (*Config, error) {
	cfg := Default()
	if path != "" {
		// A file with [[nodes]] replaces the default node list entirely
		cfg.Nodes = nil
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		if !md.IsDefined("nodes") {
			cfg.Nodes = DefaultNodes()
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalid, path, strings.Join(keys, ", "))
		}
	}
	if getenv != nil {
		ApplyEnv(cfg, getenv)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Write encodes cfg as TOML
func (c *Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// FrameInterval returns the host frame period derived from Loop.FPS
func (c *Config) FrameInterval() time.Duration {
	if c.Loop.FPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.Loop.FPS)
}
