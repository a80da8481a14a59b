package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/aether/app"
	"github.com/lixenwraith/aether/asset"
	"github.com/lixenwraith/aether/audio"
	"github.com/lixenwraith/aether/config"
	"github.com/lixenwraith/aether/route"
)

func runCmd(opts *options) *cobra.Command {
	var start string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the interactive scene",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if f := setupLogging(opts.debug); f != nil {
				defer f.Close()
			}
			return runScene(cmd.Context(), cfg, start)
		},
	}
	cmd.Flags().StringVar(&start, "page", route.Home, "Start page path")
	return cmd
}

// loadTextures loads the category textures, logging every file that fails
func loadTextures(cfg *config.Config) asset.Set {
	set, errs := asset.LoadSet(cfg.Textures.Dir, cfg.Textures.Files)
	for _, err := range errs {
		log.Printf("warning: %v, material left untextured", err)
	}
	return set
}

func runScene(ctx context.Context, cfg *config.Config, start string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	textures := loadTextures(cfg)

	player := audio.NewPlayer(cfg.Audio)
	if err := player.Initialize(); err != nil {
		log.Printf("audio init failed: %v (continuing without audio)", err)
	}
	defer player.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	// Panic recovery: restore the terminal before the trace is printed
	defer func() {
		if r := recover(); r != nil {
			app.HandleCrash(screen, r)
		}
	}()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))

	host := app.New(screen, cfg, app.Options{
		Player:    player,
		Textures:  textures,
		StartPath: start,
	})
	defer host.Close()

	log.Printf("run: %d fps, %d nodes, audio=%v", cfg.Loop.FPS, len(cfg.Nodes), cfg.Audio.Enabled)
	return host.Run(ctx)
}
