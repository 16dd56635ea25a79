package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/traceforge/traceforge/gen/export"
	"github.com/traceforge/traceforge/gen/trace"
)

var (
	functionsTraceDir string // Directory holding the Azure trace CSV files
	functionsTraceDay int    // Recorded trace day to load
	functionsOutPath  string // Output file path; stdout if empty
)

// functionsCmd lists every function in the trace as a JSON catalog for
// registry ingestion, in first-seen order.
var functionsCmd = &cobra.Command{
	Use:     "functions",
	Aliases: []string{"func"},
	Short:   "Output the trace's function catalog as a JSON list",
	Run: func(cmd *cobra.Command, args []string) {
		idx, err := trace.LoadAzureDay(functionsTraceDir, functionsTraceDay)
		if err != nil {
			logrus.Fatalf("Loading trace: %v", err)
		}

		out, done, err := openOutput(functionsOutPath)
		if err != nil {
			logrus.Fatalf("Opening output: %v", err)
		}
		defer done()

		if err := export.WriteCatalogJSON(out, idx.Catalog()); err != nil {
			logrus.Fatalf("Writing catalog: %v", err)
		}
	},
}

func init() {
	functionsCmd.Flags().StringVar(&functionsTraceDir, "trace-dir", "", "Directory containing the Azure trace CSV files (required)")
	functionsCmd.Flags().IntVar(&functionsTraceDay, "trace-day", 1, "Recorded trace day to load (1-14)")
	functionsCmd.Flags().StringVarP(&functionsOutPath, "out", "o", "", "Output file path (stdout if unset)")

	functionsCmd.MarkFlagRequired("trace-dir")
	rootCmd.AddCommand(functionsCmd)
}
