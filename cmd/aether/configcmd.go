package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/aether/asset"
)

func configCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			return cfg.Write(cmd.OutOrStdout())
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Validate the configuration and its texture files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkConfig(cmd.OutOrStdout(), opts)
		},
	})
	return cmd
}

// checkConfig reports configuration errors and missing textures
// Missing textures are warnings, the scene renders them untextured
func checkConfig(w io.Writer, opts *options) error {
	banner(w, "config check")
	cfg, err := opts.loadConfig()
	if err != nil {
		fmt.Fprintf(w, "  %s configuration\n", statusIcon(false))
		var joined interface{ Unwrap() []error }
		if errors.As(err, &joined) {
			for _, e := range joined.Unwrap() {
				uiBad.Fprintf(w, "    %v\n", e)
			}
		} else {
			uiBad.Fprintf(w, "    %v\n", err)
		}
		return err
	}
	fmt.Fprintf(w, "  %s configuration (%d nodes)\n", statusIcon(true), len(cfg.Nodes))

	set, errs := asset.LoadSet(cfg.Textures.Dir, cfg.Textures.Files)
	fmt.Fprintf(w, "  %s textures %d/%d from %s\n", statusIcon(len(errs) == 0), len(set), len(cfg.Textures.Files), cfg.Textures.Dir)
	for _, e := range errs {
		uiWarn.Fprintf(w, "    %v\n", e)
	}
	return nil
}
