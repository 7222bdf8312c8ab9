package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/chic-attire/storefront-contract-tests/framework"
)

// consoleCheckLogger echoes checks to standard output as they happen. The
// summary at the end of the run is printed separately.
type consoleCheckLogger struct {
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *consoleCheckLogger) StageStarted(name string) {
	fmt.Printf("\n=== %s ===\n", name)
}

func (c *consoleCheckLogger) StageSkipped(name string, reason string) {
	if reason == "" {
		fmt.Printf("\n=== %s ===\n  SKIPPED\n", name)
	} else {
		fmt.Printf("\n=== %s ===\n  SKIPPED (%s)\n", name, reason)
	}
}

func (c *consoleCheckLogger) CheckFinished(result framework.CheckResult) {
	status := color.GreenString("PASS")
	if !result.Success {
		status = color.RedString("FAIL")
	}
	fmt.Printf("%s: %s - %s\n", status, result.Name, result.Message)
	if result.Details != "" {
		fmt.Printf("   Details: %s\n", result.Details)
	}
}

func (c *consoleCheckLogger) StageFinished(name string, failed bool, debugOutput framework.CapturedOutput) {
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(os.Stdout, "    DEBUG ")
	}
}
