package main

import (
	"context"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func main() {
	initDisplay()
	cobra.CheckErr(newCLI().ExecuteContext(context.Background()))
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
