// Package main is the entry point for the service.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Running the root command serves.
func newRootCmd() *cobra.Command {
	var opts serveOptions

	root := &cobra.Command{
		Use:           "utm-service",
		Short:         "UTM attribution HTTP service",
		Long:          `Captures utm_* parameters and referrers into first-party cookies and exposes the attribution to handlers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), opts)
		},
	}

	root.PersistentFlags().StringVarP(&opts.profile, "profile", "p", "",
		"config profile to load from configs/ (default $APP_ENVIRONMENT or local)")
	root.PersistentFlags().StringVar(&opts.configDir, "config-dir", "configs", "directory holding base.yaml and profile files")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), opts)
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "utm-service %s (commit %s, built %s, %s)\n",
				Version, Commit, BuildTime, runtime.Version())
		},
	}

	root.AddCommand(serveCmd, versionCmd)

	return root
}
