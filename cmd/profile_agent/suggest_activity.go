package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teachsmart/profile-engine/internal/activity"
	"github.com/teachsmart/profile-engine/internal/observability"
	"github.com/teachsmart/profile-engine/internal/types"
)

var suggestActivityCmd = &cobra.Command{
	Use:   "suggest-activity",
	Short: "Suggest a classroom activity from an assessment",
	Long:  "Classifies a three-observation assessment into a readiness condition and suggests a matching classroom activity, personalized by student name, age and interests.",
	RunE:  runSuggestActivity,
}

var (
	suggestAssessmentFile string
	suggestOutputFile     string
	suggestStudentName    string
	suggestStudentAge     int
	suggestInterests      string
	suggestVerbose        bool
)

func init() {
	suggestActivityCmd.Flags().StringVarP(&suggestAssessmentFile, "assessment", "a", "", "Path to input Assessment JSON file (required)")
	suggestActivityCmd.Flags().StringVarP(&suggestOutputFile, "out", "o", "", "Path to output activity JSON file (default: stdout)")
	suggestActivityCmd.Flags().StringVar(&suggestStudentName, "name", "", "Student name for personalization")
	suggestActivityCmd.Flags().IntVar(&suggestStudentAge, "age", 0, "Student age for duration adjustment")
	suggestActivityCmd.Flags().StringVar(&suggestInterests, "interests", "", "Comma-separated interests (default: extracted from the activity note)")
	suggestActivityCmd.Flags().BoolVarP(&suggestVerbose, "verbose", "v", false, "Print a formatted activity summary to stderr")

	if err := suggestActivityCmd.MarkFlagRequired("assessment"); err != nil {
		panic(fmt.Sprintf("failed to mark assessment flag as required: %v", err))
	}

	rootCmd.AddCommand(suggestActivityCmd)
}

func runSuggestActivity(_ *cobra.Command, _ []string) error {
	// 1. Load the assessment
	content, err := os.ReadFile(suggestAssessmentFile)
	if err != nil {
		return fmt.Errorf("failed to read assessment file %s: %w", suggestAssessmentFile, err)
	}

	var a types.Assessment
	if err := json.Unmarshal(content, &a); err != nil {
		return fmt.Errorf("failed to unmarshal assessment JSON: %w", err)
	}

	// 2. Classify and suggest
	var interests []string
	if suggestInterests != "" {
		for _, s := range strings.Split(suggestInterests, ",") {
			if s = strings.TrimSpace(s); s != "" {
				interests = append(interests, s)
			}
		}
	}

	condition := activity.ClassifyCondition(a)
	act := activity.Suggest(a, activity.SuggestOptions{
		StudentName: suggestStudentName,
		Age:         suggestStudentAge,
		Interests:   interests,
	})

	// 3. Write the result
	result := struct {
		Condition types.Condition `json:"condition"`
		Activity  types.Activity  `json:"activity"`
	}{Condition: condition, Activity: act}

	jsonOutput, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal activity to JSON: %w", err)
	}
	if err := writeOutput(suggestOutputFile, jsonOutput); err != nil {
		return err
	}

	if suggestVerbose {
		observability.NewPrinter(os.Stderr).PrintActivity(condition, act)
	}
	if suggestOutputFile != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Successfully suggested %q (%s) to %s\n", act.Name, condition, suggestOutputFile)
	}

	return nil
}
