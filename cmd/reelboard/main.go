package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/reelboard/internal/app"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "reelboard: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:           "reelboard",
		Short:         "Terminal studio dashboard for short-form video production",
		Long:          "Reelboard tracks trends, drafts scripts, trims clips, plans uploads, and compares A/B variants from one terminal dashboard.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}
	root.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path (default ~/.config/reelboard/config.toml)")
	root.Flags().StringVar(&opts.PrefsPath, "prefs", "", "prefs file path (default ~/.config/reelboard/prefs.toml)")
	root.Flags().StringVar(&opts.Theme, "theme", "", "color theme: Studio, Midnight or Slate (overrides saved preference)")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the reelboard version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "reelboard", version)
		},
	})
	return root
}
