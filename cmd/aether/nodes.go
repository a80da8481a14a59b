package main

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/aether/config"
	"github.com/lixenwraith/aether/route"
	"github.com/lixenwraith/aether/scene"
)

func nodesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "nodes",
		Short: "List the scene nodes and their orbits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			return listNodes(cmd.OutOrStdout(), cfg)
		},
	}
}

func listNodes(w io.Writer, cfg *config.Config) error {
	g, err := scene.Build(cfg, nil)
	if err != nil {
		return err
	}
	banner(w, "scene nodes")

	deg := func(rad float64) string {
		return strconv.FormatFloat(rad*180/math.Pi, 'f', 0, 64) + "°"
	}
	rows := make([][]string, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		if n.IsCore() {
			rows = append(rows, []string{n.Material.Icon, n.Title, n.CategoryLabel(), "-", "-", "-", "-"})
			continue
		}
		o := n.Orbit
		rows = append(rows, []string{
			n.Material.Icon,
			n.Title,
			n.CategoryLabel(),
			strconv.FormatFloat(o.Radius, 'f', 1, 64),
			strconv.FormatFloat(o.Speed, 'f', 2, 64),
			deg(o.Phase),
			deg(o.Tilt),
		})
	}
	table(w, []string{"", "TITLE", "CATEGORY", "RADIUS", "SPEED", "PHASE", "TILT"}, rows)
	fmt.Fprintf(w, "\n  %d nodes, %d trails of %d samples\n", len(g.Nodes), len(g.Trails), cfg.Scene.TrailLength)
	return nil
}

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the site pages",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			listRoutes(cmd.OutOrStdout())
		},
	}
}

func listRoutes(w io.Writer) {
	banner(w, "pages")
	var rows [][]string
	for _, p := range route.Pages() {
		rows = append(rows, []string{p.Path, p.Title, statusIcon(p.Sidebar())})
	}
	table(w, []string{"PATH", "TITLE", "SIDEBAR"}, rows)
}
