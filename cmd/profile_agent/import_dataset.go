package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/teachsmart/profile-engine/internal/config"
	"github.com/teachsmart/profile-engine/internal/dataset"
	"github.com/teachsmart/profile-engine/internal/observability"
	"github.com/teachsmart/profile-engine/internal/types"
)

var importDatasetCmd = &cobra.Command{
	Use:   "import-dataset",
	Short: "Derive support profiles from a batch of assessment rows",
	Long:  "Reads a JSON array of raw assessment rows, derives a support profile for each valid row in parallel, and reports how many rows were processed and rejected.",
	RunE:  runImportDataset,
}

var (
	importInputFile  string
	importOutputFile string
	importSource     string
	importWorkers    int
	importConfigFile string
	importVerbose    bool
)

func init() {
	importDatasetCmd.Flags().StringVarP(&importInputFile, "in", "i", "", "Path to JSON array of raw assessment rows (required)")
	importDatasetCmd.Flags().StringVarP(&importOutputFile, "out", "o", "", "Path to output profiles JSON file (default: stdout)")
	importDatasetCmd.Flags().StringVar(&importSource, "source", string(types.SourceDataset), "Profile provenance: manual or dataset")
	importDatasetCmd.Flags().IntVar(&importWorkers, "workers", 0, "Worker pool size (default: 4)")
	importDatasetCmd.Flags().StringVar(&importConfigFile, "config", "", "Path to JSON config file")
	importDatasetCmd.Flags().BoolVarP(&importVerbose, "verbose", "v", false, "Print a formatted import summary to stderr")

	if err := importDatasetCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(importDatasetCmd)
}

func runImportDataset(cmd *cobra.Command, _ []string) error {
	cfg := config.Config{
		Output:  importOutputFile,
		Source:  importSource,
		Workers: importWorkers,
		Verbose: importVerbose,
	}
	if importConfigFile != "" {
		fileCfg, err := config.LoadConfig(importConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// 1. Load the rows
	inputContent, err := os.ReadFile(importInputFile)
	if err != nil {
		return fmt.Errorf("failed to read dataset file %s: %w", importInputFile, err)
	}

	var rows []types.RawRecord
	if err := json.Unmarshal(inputContent, &rows); err != nil {
		return fmt.Errorf("failed to unmarshal dataset JSON: %w", err)
	}

	// 2. Derive in parallel
	profiles, summary, err := dataset.DeriveBatch(cmd.Context(), rows, dataset.Options{
		Source:  types.Source(cfg.Source),
		Workers: cfg.Workers,
	})
	if err != nil {
		return fmt.Errorf("failed to derive profiles: %w", err)
	}

	now := time.Now().UTC()
	for _, p := range profiles {
		p.CreatedAt = now
	}

	// 3. Write the profiles
	jsonOutput, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profiles to JSON: %w", err)
	}
	if err := writeOutput(cfg.Output, jsonOutput); err != nil {
		return err
	}

	// 4. Report the outcome
	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintBatchSummary(summary)
	}
	_, _ = fmt.Fprintf(os.Stdout, "%s\n", summary.String())

	return nil
}
