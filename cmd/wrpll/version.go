package main

import (
	"github.com/spf13/cobra"

	"github.com/videoclk/wrpll/pkg/client"
	"github.com/videoclk/wrpll/pkg/version"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("%s %s\n", version.Version, version.GitCommit)

			apiClient := client.NewClient(unixSocketPath)
			if daemonVersion, err := apiClient.GetVersion(); err == nil {
				cmd.Printf("daemon: %s\n", daemonVersion)
			}
		},
	}
}
