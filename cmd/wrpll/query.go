package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/videoclk/wrpll/pkg/client"
)

func NewQueryCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "query [clock in Hz]",
		Short:   "Ask a running daemon for dividers",
		GroupID: gDaemon,
		Long: `Ask a running wrpll daemon for the dividers of a pixel clock.

Unlike 'wrpll compute', this goes over the daemon socket and therefore honors
the daemon's configured budget overrides.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			clock, err := parseClockArg(args)
			if err != nil {
				return err
			}

			apiClient := client.NewClient(unixSocketPath)
			res, err := apiClient.GetDividers(clock)
			if err != nil {
				return fmt.Errorf("failed to query daemon: %w", err)
			}

			printResult(cmd.Printf, *res)
			return nil
		},
	}
}
