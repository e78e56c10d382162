package main

import (
	"fmt"
	"os"

	"github.com/dtnitsch/llm-readability/internal/analyze"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:            "llm-readability",
		Usage:           "compute readability statistics for JSON text piped on stdin",
		HideHelpCommand: true,
		Action:          analyze.AnalyzeAction,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
