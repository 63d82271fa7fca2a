package main

import (
	"runtime"

	"github.com/spf13/cobra"
)

func init() {
	// GLFW and GL calls must all land on the main thread.
	runtime.LockOSThread()
}

var (
	flagWidth         int
	flagHeight        int
	flagConfig        string
	flagSnapshotDir   string
	flagSnapshotScale int
)

var rootCmd = &cobra.Command{
	Use:   "mandelzoom",
	Short: "Interactive Mandelbrot explorer",
	Long: `mandelzoom renders the Mandelbrot set in a window and recomputes
every pixel on the GPU each frame while you pan and zoom.

Drag or hold the arrow keys to pan, scroll to zoom about the pointer,
press S to export the current view as a PNG.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := DefaultConfig()
		if flagConfig != "" {
			var err error
			cfg, err = LoadConfig(flagConfig)
			if err != nil {
				return err
			}
		}

		if cmd.Flags().Changed("width") {
			cfg.Width = flagWidth
		}
		if cmd.Flags().Changed("height") {
			cfg.Height = flagHeight
		}
		if cmd.Flags().Changed("snapshot-dir") {
			cfg.Snapshot.Dir = flagSnapshotDir
		}
		if cmd.Flags().Changed("snapshot-scale") {
			cfg.Snapshot.Scale = flagSnapshotScale
		}
		if err := cfg.validate(); err != nil {
			return err
		}

		return run(cfg)
	},
}

func main() {
	rootCmd.Flags().IntVar(&flagWidth, "width", DefaultWidth, "window width in pixels")
	rootCmd.Flags().IntVar(&flagHeight, "height", DefaultHeight, "window height in pixels")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "path to a yaml config file")
	rootCmd.Flags().StringVar(&flagSnapshotDir, "snapshot-dir", DefaultSnapshotDir, "directory PNG exports are written to")
	rootCmd.Flags().IntVar(&flagSnapshotScale, "snapshot-scale", DefaultSnapshotScale, "resolution multiplier for PNG exports")

	if err := rootCmd.Execute(); err != nil {
		fatalDialog(err)
	}
}
