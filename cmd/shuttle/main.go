package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/loomhq/shuttle/internal/app"
)

var version = "0.1.0-dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	root := newRootCmd(ctx)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "shuttle: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(ctx context.Context) *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:           "shuttle",
		Short:         "Terminal browser for Loom collections",
		Long:          "Shuttle is a terminal client for browsing and editing Loom platform collections:\nprompts, datasets, evaluators, and API keys.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(ctx, opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "override config path (default ~/.config/shuttle/config.toml)")
	root.PersistentFlags().StringVar(&opts.PrefsPath, "prefs", "", "override preferences path (default ~/.config/shuttle/prefs.toml)")
	root.PersistentFlags().StringVar(&opts.APIBind, "api", "", "override gateway address (host:port)")

	browse := &cobra.Command{
		Use:   "browse",
		Short: "Open the collection browser (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(ctx, opts)
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the shuttle version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "shuttle", version)
		},
	}

	root.AddCommand(browse, versionCmd)
	return root
}
