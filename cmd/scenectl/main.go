package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "scenectl",
		Short:        "Directive-driven retail store scene engine",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (.toml, .yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(buildCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(diffCmd())
	rootCmd.AddCommand(cameraCmd())
	rootCmd.AddCommand(labelsCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildCmd() *cobra.Command {
	var plan bool

	cmd := &cobra.Command{
		Use:   "build [directive-file]",
		Short: "Build the scene for a directive and print it as JSON",
		Long:  "Build the scene for a directive and print it as JSON. Without a file the baseline store is built.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runBuild(path, plan)
		},
	}

	cmd.Flags().BoolVar(&plan, "plan", false, "print the top-down 2D plan instead of the 3D scene")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [directive-file]",
		Short: "Check a directive against the schema and the scene builder",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func diffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff [previous] [next]",
		Short: "Show zone changes between two directives",
		Long:  "Show zone changes between two directives. next is merged onto previous the way the engine applies it.",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runDiff(args[0], args[1])
		},
	}
}

func cameraCmd() *cobra.Command {
	var (
		fps       int
		maxFrames int
		every     int
	)

	cmd := &cobra.Command{
		Use:   "camera [directive-file...]",
		Short: "Simulate camera convergence after applying directives in order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runCamera(args, fps, maxFrames, every)
		},
	}

	cmd.Flags().IntVar(&fps, "fps", 60, "simulated frame rate")
	cmd.Flags().IntVar(&maxFrames, "max-frames", 1200, "stop after this many frames")
	cmd.Flags().IntVar(&every, "every", 30, "print every n-th frame")
	return cmd
}

func labelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "labels [labels.json]",
		Short: "Resolve overlaps among projected screen labels",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runLabels(args[0])
		},
	}
}

func serveCmd() *cobra.Command {
	var (
		addr  string
		watch string
		fps   int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the dev server for renderers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), serveFlags{
				addr:     addr,
				watch:    watch,
				fps:      fps,
				addrSet:  cmd.Flags().Changed("addr"),
				watchSet: cmd.Flags().Changed("watch"),
				fpsSet:   cmd.Flags().Changed("fps"),
			})
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":3000", "listen address")
	cmd.Flags().StringVarP(&watch, "watch", "w", "", "directive file to reload on change")
	cmd.Flags().IntVar(&fps, "fps", 30, "camera frames per second")
	return cmd
}
