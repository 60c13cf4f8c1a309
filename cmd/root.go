// Package cmd implements the netward command line interface.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/devharbor/netward/internal/adapters/out/appfile"
	"github.com/devharbor/netward/internal/app"
	"github.com/devharbor/netward/internal/domain"
)

var (
	cfgFile string
	appPath string

	// Build information, injected at link time.
	BuildVersion = "dev"
	BuildCommit  = "none"
	BuildDate    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "netward",
	Short: "Netward - shared network orchestration for local development",
	Long: `Netward keeps multi-project local development environments connected:
it guards the engine's network capacity, maintains the shared bridge
network, bootstraps the platform certificate authority, and attaches
application containers under their internal hostnames.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./netward.yaml)")
	rootCmd.PersistentFlags().StringVarP(&appPath, "app-file", "f", appfile.DefaultName, "application descriptor file")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// ExecuteCLI is the main entry point. It installs signal handling and runs
// the CLI with the given build information.
func ExecuteCLI(build, commit, date string) {
	if build != "" {
		BuildVersion = build
	}
	if commit != "" {
		BuildCommit = commit
	}
	if date != "" {
		BuildDate = date
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := Execute(ctx); err != nil {
		os.Exit(1)
	}
}

// newApp wires the application from the configured paths.
func newApp() (*app.App, error) {
	return app.New(cfgFile)
}

// loadApp reads the application descriptor the command operates on.
func loadApp() (domain.Application, error) {
	return appfile.Load(appPath)
}
