package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teachsmart/profile-engine/internal/matching"
)

var profileTagsCmd = &cobra.Command{
	Use:   "profile-tags",
	Short: "Generate matching tags for a support profile",
	Long:  "Derives the tag set used for resource matching (support level, communication, structure and sensory tags) from a SupportProfile JSON.",
	RunE:  runProfileTags,
}

var (
	tagsProfileFile string
	tagsOutputFile  string
	tagsAsJSON      bool
)

func init() {
	profileTagsCmd.Flags().StringVarP(&tagsProfileFile, "profile", "p", "", "Path to input SupportProfile JSON file (required)")
	profileTagsCmd.Flags().StringVarP(&tagsOutputFile, "out", "o", "", "Path to output file (default: stdout)")
	profileTagsCmd.Flags().BoolVar(&tagsAsJSON, "json", false, "Emit tags as a JSON array instead of one per line")

	if err := profileTagsCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(profileTagsCmd)
}

func runProfileTags(_ *cobra.Command, _ []string) error {
	p, err := loadProfile(tagsProfileFile)
	if err != nil {
		return err
	}

	tags := matching.GenerateProfileTags(p)

	var output []byte
	if tagsAsJSON {
		output, err = json.MarshalIndent(tags, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal tags to JSON: %w", err)
		}
	} else {
		output = []byte(strings.Join(tags, "\n"))
	}

	if err := writeOutput(tagsOutputFile, output); err != nil {
		return err
	}
	if tagsOutputFile != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Successfully wrote %d tags to %s\n", len(tags), tagsOutputFile)
	}

	return nil
}
