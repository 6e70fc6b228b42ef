package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teachsmart/profile-engine/internal/catalog"
	"github.com/teachsmart/profile-engine/internal/config"
	"github.com/teachsmart/profile-engine/internal/matching"
	"github.com/teachsmart/profile-engine/internal/observability"
	"github.com/teachsmart/profile-engine/internal/schemas"
)

var matchResourcesCmd = &cobra.Command{
	Use:   "match-resources",
	Short: "Rank catalog resources against a support profile",
	Long:  "Scores every resource in a catalog against a derived support profile and produces a MatchResults JSON sorted by match score, with adaptation suggestions per resource.",
	RunE:  runMatchResources,
}

var (
	matchProfileFile string
	matchCatalogFile string
	matchOutputFile  string
	matchMaxResults  int
	matchConfigFile  string
	matchVerbose     bool
)

func init() {
	matchResourcesCmd.Flags().StringVarP(&matchProfileFile, "profile", "p", "", "Path to input SupportProfile JSON file (required)")
	matchResourcesCmd.Flags().StringVarP(&matchCatalogFile, "catalog", "c", "", "Path to resource catalog file, JSON or YAML (required unless set in config)")
	matchResourcesCmd.Flags().StringVarP(&matchOutputFile, "out", "o", "", "Path to output MatchResults JSON file (default: stdout)")
	matchResourcesCmd.Flags().IntVar(&matchMaxResults, "max-results", 0, "Maximum matches to report (0 = all)")
	matchResourcesCmd.Flags().StringVar(&matchConfigFile, "config", "", "Path to JSON config file")
	matchResourcesCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print a formatted match summary to stderr")

	if err := matchResourcesCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(matchResourcesCmd)
}

func runMatchResources(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Catalog:    matchCatalogFile,
		Output:     matchOutputFile,
		MaxResults: matchMaxResults,
		Verbose:    matchVerbose,
	}
	if matchConfigFile != "" {
		fileCfg, err := config.LoadConfig(matchConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Catalog == "" {
		return fmt.Errorf("catalog is required (use --catalog or set 'catalog' in config)")
	}

	// 1. Load the profile
	p, err := loadProfile(matchProfileFile)
	if err != nil {
		return err
	}

	// 2. Load the catalog
	resources, err := catalog.Load(cfg.Catalog)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	// 3. Rank resources
	results := matching.MatchResources(resources, p)
	if cfg.MaxResults > 0 && len(results) > cfg.MaxResults {
		results = results[:cfg.MaxResults]
	}

	// 4. Marshal to JSON with indentation
	jsonOutput, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal match results to JSON: %w", err)
	}

	// 5. Validate output against the embedded schema (non-fatal)
	if err := schemas.ValidateMatchResults(jsonOutput); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("generated match results do not validate against schema: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
	}

	if err := writeOutput(cfg.Output, jsonOutput); err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintMatchResults(results)
	}
	if cfg.Output != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Successfully ranked %d resources to %s\n", len(results), cfg.Output)
	}

	return nil
}
