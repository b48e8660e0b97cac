package main

import (
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/videoclk/wrpll/pkg/reftable"
)

func NewVerifyCommand() *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:     "verify",
		Short:   "Verify the search against the reference table",
		GroupID: gCompute,
		Long: `Recompute dividers for every entry of the hardware-validated reference table
and compare them for exact equality. Any mismatch means the search regressed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mismatches, err := reftable.Verify(cmd.Context(), workers)
			if err != nil {
				return fmt.Errorf("verification aborted: %w", err)
			}

			for _, m := range mismatches {
				cmd.Printf("%s computed value differs for %d Hz:\n", fail(), m.Clock)
				cmd.Printf("  Reference: (%d,%d,%d)\n", m.Want.R2, m.Want.N2, m.Want.P)
				cmd.Printf("  Computed:  (%d,%d,%d)\n", m.Got.R2, m.Got.N2, m.Got.P)
			}

			if len(mismatches) > 0 {
				return fmt.Errorf("%d of %d reference entries mismatched", len(mismatches), len(reftable.TMDS))
			}

			cmd.Printf("%s all %d reference entries match\n", pass(), len(reftable.TMDS))
			logrus.Debugf("verified %d entries on %d workers", len(reftable.TMDS), workers)
			return nil
		},
	}

	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "number of concurrent verification workers")

	return cmd
}
