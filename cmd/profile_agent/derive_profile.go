package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/teachsmart/profile-engine/internal/config"
	"github.com/teachsmart/profile-engine/internal/normalize"
	"github.com/teachsmart/profile-engine/internal/observability"
	"github.com/teachsmart/profile-engine/internal/profile"
	"github.com/teachsmart/profile-engine/internal/schemas"
	"github.com/teachsmart/profile-engine/internal/types"
)

var deriveProfileCmd = &cobra.Command{
	Use:   "derive-profile",
	Short: "Derive a support profile from one assessment record",
	Long:  "Normalizes a raw assessment record, classifies per-domain support levels, and synthesizes a complete SupportProfile JSON with recommendations and AI prompt context.",
	RunE:  runDeriveProfile,
}

var (
	deriveInputFile  string
	deriveOutputFile string
	deriveSource     string
	deriveConfigFile string
	deriveVerbose    bool
)

func init() {
	deriveProfileCmd.Flags().StringVarP(&deriveInputFile, "in", "i", "", "Path to raw assessment record JSON file (required)")
	deriveProfileCmd.Flags().StringVarP(&deriveOutputFile, "out", "o", "", "Path to output SupportProfile JSON file (default: stdout)")
	deriveProfileCmd.Flags().StringVar(&deriveSource, "source", "", "Profile provenance: manual or dataset (default: manual)")
	deriveProfileCmd.Flags().StringVar(&deriveConfigFile, "config", "", "Path to JSON config file")
	deriveProfileCmd.Flags().BoolVarP(&deriveVerbose, "verbose", "v", false, "Print a formatted profile summary to stderr")

	if err := deriveProfileCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(deriveProfileCmd)
}

func runDeriveProfile(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Output:  deriveOutputFile,
		Source:  deriveSource,
		Verbose: deriveVerbose,
	}
	if deriveConfigFile != "" {
		fileCfg, err := config.LoadConfig(deriveConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	} else {
		cfg = cfg.MergeWithDefaults(config.Config{})
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// 1. Load the raw record
	inputContent, err := os.ReadFile(deriveInputFile)
	if err != nil {
		return fmt.Errorf("failed to read record file %s: %w", deriveInputFile, err)
	}

	var raw types.RawRecord
	if err := json.Unmarshal(inputContent, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal record JSON: %w", err)
	}

	// 2. Normalize; a rejected record is a hard error for single derivation
	rec, err := normalize.Normalize(raw)
	if err != nil {
		return fmt.Errorf("record rejected: %w", err)
	}

	// 3. Synthesize the profile
	p := profile.Synthesize(rec, types.Source(cfg.Source))
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()

	// 4. Marshal to JSON with indentation
	jsonOutput, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile to JSON: %w", err)
	}

	// 5. Validate against the embedded schema
	if err := schemas.ValidateProfile(jsonOutput); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("generated profile does not validate against schema: %w", err)
		}
		// Schema loading issues are non-fatal
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
	}

	if err := writeOutput(cfg.Output, jsonOutput); err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintSupportProfile(p)
	}
	if cfg.Output != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Successfully derived profile %s to %s\n", p.ID, cfg.Output)
	}

	return nil
}
