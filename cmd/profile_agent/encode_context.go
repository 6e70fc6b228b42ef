package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teachsmart/profile-engine/internal/aicontext"
)

var encodeContextCmd = &cobra.Command{
	Use:   "encode-context",
	Short: "Encode a support profile as AI prompt context",
	Long:  "Renders the ordered label/value descriptors that summarize a support profile for inclusion in an AI tutoring prompt.",
	RunE:  runEncodeContext,
}

var (
	contextProfileFile string
	contextOutputFile  string
	contextAsJSON      bool
)

func init() {
	encodeContextCmd.Flags().StringVarP(&contextProfileFile, "profile", "p", "", "Path to input SupportProfile JSON file (required)")
	encodeContextCmd.Flags().StringVarP(&contextOutputFile, "out", "o", "", "Path to output file (default: stdout)")
	encodeContextCmd.Flags().BoolVar(&contextAsJSON, "json", false, "Emit entries as a JSON array instead of label: value lines")

	if err := encodeContextCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(encodeContextCmd)
}

func runEncodeContext(_ *cobra.Command, _ []string) error {
	p, err := loadProfile(contextProfileFile)
	if err != nil {
		return err
	}

	// Stored profiles already carry their encoded context; re-encode so the
	// output reflects the current profile fields even for edited files.
	entries := aicontext.Encode(p)

	var output []byte
	if contextAsJSON {
		output, err = json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal context to JSON: %w", err)
		}
	} else {
		output = []byte(strings.Join(aicontext.Strings(entries), "\n"))
	}

	if err := writeOutput(contextOutputFile, output); err != nil {
		return err
	}
	if contextOutputFile != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Successfully wrote %d context entries to %s\n", len(entries), contextOutputFile)
	}

	return nil
}
