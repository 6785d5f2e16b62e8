package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/colefleming/dupless/internal/config"
	"github.com/colefleming/dupless/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *cfgpkg.Settings
)

var rootCmd = &cobra.Command{
	Use:   "dupless",
	Short: "Detect and remove duplicate values in CSV/XLSX files",
	Long: `dupless imports one or more tabular files, finds duplicate values in a
chosen column, reports where they occur, and writes a copy that keeps only
the last occurrence of each value.

Run without arguments for the interactive interface, or use the dedupe
subcommand for headless processing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := tea.NewProgram(ui.InitialModel(cfg), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

// Execute is the entry point called by main.main().
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

// SetVersionInfo wires build metadata injected by the linker.
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.dupless/config.yaml)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = &cfgpkg.Settings{
			OutputFile: "data_without_duplicates.xlsx",
			SheetName:  "Sheet1",
		}
	}
	cfg = c
}
