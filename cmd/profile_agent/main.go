// Package main implements the profile_agent CLI for deriving student support
// profiles and matching educational resources against them.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/teachsmart/profile-engine/internal/types"
)

var rootCmd = &cobra.Command{
	Use:   "profile_agent",
	Short: "Support profile derivation and resource matching engine",
	Long:  "profile_agent derives structured support profiles from autism-assessment records, generates educational recommendations and AI prompt context, and ranks learning resources against a profile.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadProfile reads a serialized support profile from disk.
func loadProfile(path string) (*types.SupportProfile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}

	var p types.SupportProfile
	if err := json.Unmarshal(content, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile JSON: %w", err)
	}
	return &p, nil
}

// writeOutput writes data to the given path, creating parent directories as
// needed. An empty path writes to stdout.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := fmt.Fprintf(os.Stdout, "%s\n", data)
		return err
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
