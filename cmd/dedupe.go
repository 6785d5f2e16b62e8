package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/colefleming/dupless/internal/exporter"
	"github.com/colefleming/dupless/internal/pipeline"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	flagColumn int
	flagOutput string
	flagStrict bool
)

var dedupeCmd = &cobra.Command{
	Use:   "dedupe FILE...",
	Short: "Detect and remove duplicates without the interactive interface",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDedupe,
}

func init() {
	dedupeCmd.Flags().IntVarP(&flagColumn, "column", "c", 0, "1-based column to check for duplicates (required)")
	dedupeCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output file (.csv or .xlsx; default from config)")
	dedupeCmd.Flags().BoolVar(&flagStrict, "strict", false, "fail on rows too short for the selected column")
	_ = dedupeCmd.MarkFlagRequired("column")

	rootCmd.AddCommand(dedupeCmd)
}

func runDedupe(cmd *cobra.Command, args []string) error {
	session := pipeline.NewSession()
	session.StrictRows = flagStrict || cfg.StrictRows

	if err := session.Load(args); err != nil {
		for _, ierr := range session.ImportErrors() {
			color.Yellow("⚠ skipped %s", ierr.Error())
		}
		return err
	}
	for _, ierr := range session.ImportErrors() {
		color.Yellow("⚠ skipped %s", ierr.Error())
	}

	if err := session.SelectColumn(flagColumn); err != nil {
		return err
	}
	if err := session.Process(); err != nil {
		return err
	}

	if !session.HasDuplicates() {
		color.Green("No duplicates detected in column %d (%d rows).", flagColumn, len(session.Table()))
	} else {
		printReport(session)
	}

	output := flagOutput
	if output == "" {
		output = cfg.OutputFile
	}
	if err := writeOutput(output, session); err != nil {
		return err
	}
	color.Green("✓ Wrote %d row(s) to %s", len(session.Result()), output)
	return nil
}

func printReport(session *pipeline.Session) {
	bold := color.New(color.Bold)
	bold.Printf("Duplicate Detection Report (%d value(s))\n", len(session.Report()))

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "VALUE\tCOUNT\tLINE NUMBERS")
	for _, entry := range session.Report() {
		fmt.Fprintf(w, "%s\t%d\t%s\n", entry.Value.String(), entry.Count, entry.LineNumbers)
	}
	w.Flush()
}

func writeOutput(path string, session *pipeline.Session) error {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return exporter.WriteXLSX(path, session.Result(), cfg.SheetName)
	}
	return exporter.Write(path, session.Result())
}
