package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/aether/config"
)

var version = "0.3.0"

// options are the persistent flags shared by every subcommand
type options struct {
	configPath string
	debug      bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "aether",
		Short: "aether - orbiting-node portfolio scene for the terminal",
		Long: uiBrand.Sprint(orb+" aether") + " - an interactive 3D node scene in your terminal\n" +
			uiSubtle.Sprint("Hover nodes for details, click to fly the camera, click the core to enter it"),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.SetVersionTemplate("aether {{ .Version }}\n")
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "TOML scene configuration file")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Write logs to logs/aether.log")

	root.AddCommand(
		runCmd(opts),
		snapshotCmd(opts),
		nodesCmd(opts),
		routesCmd(),
		configCmd(opts),
	)
	// A bare `aether` starts the scene
	root.RunE = runCmd(opts).RunE
	return root
}

// loadConfig reads defaults, the --config file and the environment
func (o *options) loadConfig() (*config.Config, error) {
	return config.Load(o.configPath, os.LookupEnv)
}
