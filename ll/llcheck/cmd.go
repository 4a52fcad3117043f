package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/predict/ll"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

// options control what is displayed for a grammar.
type options struct {
	sets  bool
	table bool
	html  string
}

func newCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "llcheck",
		Short: "Check grammars for the LL(1) property",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Disable usage printing on errors
			cmd.SilenceUsage = true
			level, _ := cmd.Flags().GetString("trace")
			setupTracing(level)
		},
	}
	rootCmd.PersistentFlags().StringP("trace", "t", "Error", "Trace level [Debug|Info|Error]")

	var opts options
	checkCmd := &cobra.Command{
		Use:   "check FILE...",
		Args:  cobra.MinimumNArgs(1),
		Short: "Check grammar files",
		Long:  "Check grammar files for the LL(1) property and report all violations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.html != "" && len(args) > 1 {
				return fmt.Errorf("--html needs exactly one grammar file")
			}
			return checkFiles(args, opts)
		},
	}
	checkCmd.Flags().BoolVarP(&opts.sets, "sets", "s", false, "Print FIRST, FOLLOW and PREDICT sets")
	checkCmd.Flags().BoolVar(&opts.table, "table", false, "Print the LL(1) parse table")
	checkCmd.Flags().StringVar(&opts.html, "html", "", "Export the LL(1) parse table as HTML to `FILE`")

	replCmd := &cobra.Command{
		Use:   "repl",
		Args:  cobra.NoArgs,
		Short: "Enter rules interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL()
		},
	}

	rootCmd.AddCommand(
		checkCmd,
		replCmd,
	)
	return rootCmd
}

func setupTracing(level string) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracer().SetTraceLevel(tracing.TraceLevelFromString(level))
	tracer().Infof("Trace level is %s", tracer().GetTraceLevel())
}

// checkFiles checks every grammar file and displays the results. It returns
// an error if any of the grammars is not LL(1).
func checkFiles(files []string, opts options) error {
	failed := 0
	for _, name := range files {
		r := checkFile(name)
		display(r, opts)
		if !r.ok() {
			failed++
			continue
		}
		if opts.html != "" {
			if err := exportHTML(r, opts.html); err != nil {
				return err
			}
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d grammars failed the LL(1) check", failed, len(files))
	}
	return nil
}

func checkFile(name string) *report {
	f, err := os.Open(name)
	if err != nil {
		return &report{name: name, err: err}
	}
	defer f.Close()
	return analyseReader(name, f)
}

func exportHTML(r *report, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err = ll.ParseTableAsHTML(r.table, f); err != nil {
		f.Close()
		return fmt.Errorf("exporting parse table: %w", err)
	}
	tracer().Infof("Parse table for %s written to %s", r.name, filename)
	return f.Close()
}
