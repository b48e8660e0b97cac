package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/videoclk/wrpll/pkg/client"
)

var (
	logLevel       = "info"
	unixSocketPath = "/var/run/wrpll.sock"
	configPath     = "/etc/wrpll.json"
)

var (
	gCompute      = "Compute:"
	gDaemon       = "Daemon:"
	commandGroups = []string{
		gCompute,
		gDaemon,
	}
)

func setupLogger() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}

	return nil
}

func handleCmdError(err error) {
	if errors.Is(err, client.ErrDaemonNotRunning) {
		fmt.Fprintln(os.Stderr, "\nError: wrpll daemon is not running")
		fmt.Fprintln(os.Stderr, "Start it with 'wrpll daemon', or use the local commands (compute, budget, verify) which need no daemon")
	} else if errors.Is(err, client.ErrPermissionDenied) {
		fmt.Fprintln(os.Stderr, "\nError: Permission Denied")
		fmt.Fprintln(os.Stderr, "  - Try running the command again with 'sudo'")
		fmt.Fprintln(os.Stderr, "  - Or run the daemon with '--always-allow-non-root-access' to grant permissions to your user")
	}
}

func main() {
	cmd := NewCommand()
	if err := cmd.Execute(); err != nil {
		handleCmdError(err)
		os.Exit(1)
	}
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wrpll",
		Short: "wrpll computes WRPLL divider settings for TMDS pixel clocks",
		Long: `wrpll computes (P, N2, R2) divider settings for the WRPLL clock-synthesis
block on HSW/BDW display hardware, given a desired pixel clock.

It can compute dividers locally, verify the search against the
hardware-validated reference table, or serve computations over a unix
socket for other display tooling.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setupLogger()
		},
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&logLevel, "log-level", "l", "info", "log level (trace, debug, info, warn, error, fatal, panic)")
	globalFlags.StringVar(&configPath, "config", configPath, "daemon config file path")
	globalFlags.StringVar(&unixSocketPath, "daemon-socket", unixSocketPath, "wrpll daemon unix socket path")

	for _, i := range commandGroups {
		cmd.AddGroup(&cobra.Group{
			ID:    i,
			Title: i,
		})
	}

	cmd.AddCommand(
		NewComputeCommand(),
		NewBudgetCommand(),
		NewVerifyCommand(),
		NewQueryCommand(),
		NewDaemonCommand(),
		NewVersionCommand(),
	)

	return cmd
}
