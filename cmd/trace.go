package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/traceforge/traceforge/gen"
	"github.com/traceforge/traceforge/gen/export"
	"github.com/traceforge/traceforge/gen/trace"
)

var (
	// CLI flags for the trace subcommand
	traceDir       string  // Directory holding the Azure trace CSV files
	traceDay       int     // Recorded trace day to load (1-14)
	requestRate    float64 // Target request rate in requests per second
	targetDuration int     // Target experiment duration in minutes
	generationMode string  // Arrival generation variant: spec or smirnov
	timeScaling    string  // Time scaling strategy: thumbnails or minute_range
	rateMode       string  // Rate normalization: capped or flat
	firstMinute    int     // First source minute (minute_range only)
	seedFlag       int64   // RNG seed for smirnov generation
	totalRequests  int     // Number of requests to draw in smirnov mode
	configPath     string  // Optional YAML config file; flags override it
	outPath        string  // Output file path; stdout if empty
	outFormat      string  // Output format: csv or json
)

// traceCmd generates a request schedule from a trace window.
var traceCmd = &cobra.Command{
	Use:     "trace",
	Aliases: []string{"tr"},
	Short:   "Generate a rate-constrained request schedule from a trace window",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := buildConfig(cmd)
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("Configuration rejected: %v", err)
		}

		idx, err := trace.LoadAzureDay(traceDir, traceDay)
		if err != nil {
			logrus.Fatalf("Loading trace: %v", err)
		}

		schedule, err := gen.Generate(idx, *cfg)
		if err != nil {
			logrus.Fatalf("Generation failed: %v", err)
		}

		out, done, err := openOutput(outPath)
		if err != nil {
			logrus.Fatalf("Opening output: %v", err)
		}
		defer done()

		switch outFormat {
		case "csv":
			err = export.WriteScheduleCSV(out, schedule)
		case "json":
			err = export.WriteScheduleJSON(out, schedule)
		default:
			logrus.Fatalf("Unknown output format %q (want csv or json)", outFormat)
		}
		if err != nil {
			logrus.Fatalf("Writing schedule: %v", err)
		}
	},
}

// buildConfig merges the optional YAML config file with CLI flags; any
// flag the user set explicitly wins over the file.
func buildConfig(cmd *cobra.Command) *gen.Config {
	cfg := &gen.Config{}
	if configPath != "" {
		loaded, err := gen.LoadConfig(configPath)
		if err != nil {
			logrus.Fatalf("Loading config file: %v", err)
		}
		cfg = loaded
	}

	flagSet := func(name string) bool { return configPath == "" || cmd.Flags().Changed(name) }
	if flagSet("time-scaling") {
		cfg.TimeScaling = gen.ScalingMode(timeScaling)
	}
	if flagSet("first-minute") {
		cfg.StartMinute = firstMinute
	}
	if flagSet("target-duration") {
		cfg.DurationMinutes = targetDuration
	}
	if flagSet("request-rate") {
		cfg.TargetRate = requestRate
	}
	if flagSet("rate-mode") {
		cfg.RateMode = gen.RateMode(rateMode)
	}
	if flagSet("generation-mode") {
		cfg.GenerationMode = gen.GenerationMode(generationMode)
	}
	if cmd.Flags().Changed("seed") {
		seed := seedFlag
		cfg.Seed = &seed
	}
	if cmd.Flags().Changed("total-requests") {
		cfg.TotalRequests = totalRequests
	}
	cfg.ApplyDefaults()
	return cfg
}

func init() {
	traceCmd.Flags().StringVar(&traceDir, "trace-dir", "", "Directory containing the Azure trace CSV files (required)")
	traceCmd.Flags().IntVar(&traceDay, "trace-day", 1, "Recorded trace day to load (1-14)")
	traceCmd.Flags().Float64VarP(&requestRate, "request-rate", "r", 0, "Target maximum requests per second (required)")
	traceCmd.Flags().IntVarP(&targetDuration, "target-duration", "d", 0, "Target experiment duration in minutes (required)")
	traceCmd.Flags().StringVar(&generationMode, "generation-mode", "spec", "Generation mode (spec, smirnov)")
	traceCmd.Flags().StringVar(&timeScaling, "time-scaling", "thumbnails", "Time scaling method (thumbnails, minute_range)")
	traceCmd.Flags().StringVar(&rateMode, "rate-mode", "capped", "Rate normalization (capped, flat)")
	traceCmd.Flags().IntVarP(&firstMinute, "first-minute", "f", 0, "First minute of the source window (minute_range only)")
	traceCmd.Flags().Int64Var(&seedFlag, "seed", gen.DefaultSeed, "RNG seed for smirnov generation")
	traceCmd.Flags().IntVar(&totalRequests, "total-requests", 0, "Requests to draw in smirnov mode (default rate*duration)")
	traceCmd.Flags().StringVar(&configPath, "config", "", "YAML config file; explicit flags override it")
	traceCmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file path (stdout if unset)")
	traceCmd.Flags().StringVar(&outFormat, "format", "csv", "Output format (csv, json)")

	traceCmd.MarkFlagRequired("trace-dir")
	rootCmd.AddCommand(traceCmd)
}
