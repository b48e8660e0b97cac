package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/videoclk/wrpll/pkg/types"
	"github.com/videoclk/wrpll/pkg/wrpll"
)

func NewComputeCommand() *cobra.Command {
	var (
		jsonOutput bool
		budgetPPM  int64 = -1
	)

	cmd := &cobra.Command{
		Use:     "compute [clock in Hz]",
		Short:   "Compute WRPLL dividers for a pixel clock",
		GroupID: gCompute,
		Long: `Compute the best (P, N2, R2) divider triple for a pixel clock in Hz.

Example: 'wrpll compute 148500000' for a 1080p60 HDMI pixel clock.

The accuracy budget normally comes from the built-in per-clock classification;
--budget replaces it with an explicit ppm value.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			clock, err := parseClockArg(args)
			if err != nil {
				return err
			}

			budget := wrpll.BudgetFor(clock)
			overridden := false
			if budgetPPM >= 0 {
				budget = uint64(budgetPPM)
				overridden = true
			}

			d := wrpll.ComputeDividersWithBudget(clock, budget)
			if !d.Valid() {
				return fmt.Errorf("no legal dividers for %d Hz", clock)
			}

			res := types.NewComputeResult(clock, budget, overridden, d)

			if jsonOutput {
				b, err := json.MarshalIndent(res, "", "  ")
				if err != nil {
					return err
				}
				cmd.Println(string(b))
				return nil
			}

			printResult(cmd.Printf, res)
			return nil
		},
	}

	f := cmd.Flags()
	f.BoolVar(&jsonOutput, "json", false, "print the result as JSON")
	f.Int64Var(&budgetPPM, "budget", -1, "override the accuracy budget in ppm (negative means the built-in classification)")

	return cmd
}

func NewBudgetCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "budget [clock in Hz]",
		Short:   "Print the accuracy budget for a pixel clock",
		GroupID: gCompute,
		Long: `Print the ppm accuracy budget the divider search would use for a pixel clock.

Well-known video clocks get a curated budget; everything else gets the default.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			clock, err := parseClockArg(args)
			if err != nil {
				return err
			}

			cmd.Printf("%d\n", wrpll.BudgetFor(clock))
			return nil
		},
	}
}
