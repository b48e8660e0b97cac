package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"

	"github.com/videoclk/wrpll/pkg/types"
)

func parseClockArg(args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("invalid number of arguments")
	}

	clock, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock: %v", err)
	}

	if clock <= 0 {
		return 0, fmt.Errorf("clock must be a positive number of Hz, got %d", clock)
	}

	return clock, nil
}

func bold(format string, a ...interface{}) string {
	return color.New(color.Bold).Sprintf(format, a...)
}

func pass() string {
	return color.New(color.Bold, color.FgGreen).Sprint("PASS")
}

func fail() string {
	return color.New(color.Bold, color.FgRed).Sprint("FAIL")
}

// printResult renders a compute result the way a human wants to read it.
func printResult(print func(format string, a ...interface{}), res types.ComputeResult) {
	print("%s\n", bold("%d Hz", res.Clock))
	print("  P:   %d\n", res.Dividers.P)
	print("  N2:  %d\n", res.Dividers.N2)
	print("  R2:  %d\n", res.Dividers.R2)
	print("  Ref: %d MHz, VCO: %d MHz\n", res.RefMHz, res.VCOMHz)
	if res.BudgetOverridden {
		print("  Error: %.3f ppm (budget %d ppm, overridden)\n", res.ErrorPPM, res.BudgetPPM)
	} else {
		print("  Error: %.3f ppm (budget %d ppm)\n", res.ErrorPPM, res.BudgetPPM)
	}
}
