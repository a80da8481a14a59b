package main

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/aether/config"
	"github.com/lixenwraith/aether/engine"
	"github.com/lixenwraith/aether/render"
	"github.com/lixenwraith/aether/scene"
	"github.com/lixenwraith/aether/status"
)

// snapshotOptions control a headless render
type snapshotOptions struct {
	width, height int
	ticks         int
	hover         string
	colour        bool
	hud           bool
	textures      bool
}

func snapshotCmd(opts *options) *cobra.Command {
	so := snapshotOptions{}
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render the scene headless after N ticks and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if f := setupLogging(opts.debug); f != nil {
				defer f.Close()
			}
			return snapshot(cmd.OutOrStdout(), cfg, so)
		},
	}
	f := cmd.Flags()
	f.IntVarP(&so.width, "width", "W", 100, "Surface width in cells")
	f.IntVarP(&so.height, "height", "H", 40, "Surface height in cells")
	f.IntVarP(&so.ticks, "ticks", "n", 60, "Frames to simulate before drawing")
	f.StringVar(&so.hover, "hover", "", "Title of a node to hover before drawing")
	f.BoolVar(&so.colour, "color", true, "Emit true-colour escape sequences")
	f.BoolVar(&so.hud, "hud", false, "Draw the metrics and key hint overlay")
	f.BoolVar(&so.textures, "textures", true, "Load category textures")
	return cmd
}

// snapshot simulates the scene on a mock clock and writes one frame to w
func snapshot(w io.Writer, cfg *config.Config, so snapshotOptions) error {
	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	queue := engine.NewFrameQueue(clock)
	stats := status.NewRegistry()

	deps := scene.Deps{Clock: clock, Scheduler: queue}
	if so.textures {
		deps.Textures = loadTextures(cfg)
	}
	vp := scene.Viewport{Width: so.width, Height: so.height}
	s, err := scene.Mount(cfg, vp, deps)
	if err != nil {
		return fmt.Errorf("mount: %w", err)
	}
	defer s.Unmount()

	for i := 0; i < so.ticks; i++ {
		clock.Advance(cfg.FrameInterval())
		queue.Pump()
	}
	stats.Ints.Get(status.KeyFrames).Store(int64(s.Ticks()))

	if so.hover != "" {
		if err := hoverNode(s, so.hover); err != nil {
			return err
		}
		stats.Strings.Get(status.KeyHovered).Store(so.hover)
	}

	r := render.NewRenderer(nil, stats)
	r.ShowHUD = so.hud
	r.SetRegion(0, 0, vp.Width, vp.Height)
	r.Compose(s)

	saved := color.NoColor
	color.NoColor = !so.colour
	defer func() { color.NoColor = saved }()
	return r.Buffer().WriteANSI(w)
}

// hoverNode moves the pointer over the named node
func hoverNode(s *scene.Session, title string) error {
	n := s.Graph().NodeByTitle(title)
	if n == nil {
		return fmt.Errorf("no node titled %q", title)
	}
	p, ok := s.Camera().Project(n.Pos())
	if !ok {
		return fmt.Errorf("node %q is behind the camera", title)
	}
	x, y := s.Viewport().ToCell(p.X, p.Y)
	s.PointerMove(int(math.Round(x)), int(math.Round(y)))
	if s.Hovered() != n {
		return fmt.Errorf("node %q is hidden behind another node", title)
	}
	return nil
}
