package main

import (
	"fmt"
	"os"

	"care-companion/internal/assessment"
	"care-companion/internal/cli"
)

func main() {
	if err := cli.NewAssessCommand(assessment.DefaultEngine()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
