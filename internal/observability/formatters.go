// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/teachsmart/profile-engine/internal/dataset"
	"github.com/teachsmart/profile-engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSupportProfile outputs a human-readable summary of a derived profile.
func (p *Printer) PrintSupportProfile(profile *types.SupportProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall support:  %s\n", profile.SupportLevels.Overall))
	sb.WriteString(fmt.Sprintf("Age group:        %s\n", profile.Demographics.AgeGroup))
	sb.WriteString(fmt.Sprintf("Communication:    %s (%s)\n", profile.CommunicationProfile.Level, profile.CommunicationProfile.Mode))
	sb.WriteString(fmt.Sprintf("Structure:        %s\n", profile.BehaviorProfile.StructureLevel))
	sb.WriteString("\n")

	sb.WriteString("Domain levels:\n")
	sb.WriteString(fmt.Sprintf("  • communication: %s\n", profile.SupportLevels.Communication))
	sb.WriteString(fmt.Sprintf("  • social:        %s\n", profile.SupportLevels.Social))
	sb.WriteString(fmt.Sprintf("  • repetitive:    %s\n", profile.SupportLevels.Repetitive))
	sb.WriteString(fmt.Sprintf("  • sensory:       %s\n", profile.SupportLevels.Sensory))

	if len(profile.LearningProfile.Strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		count := min(len(profile.LearningProfile.Strengths), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.LearningProfile.Strengths[i]))
		}
		if len(profile.LearningProfile.Strengths) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.LearningProfile.Strengths)-maxItemsToShow))
		}
	}

	if len(profile.LearningProfile.Challenges) > 0 {
		sb.WriteString("\nChallenges:\n")
		count := min(len(profile.LearningProfile.Challenges), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.LearningProfile.Challenges[i]))
		}
		if len(profile.LearningProfile.Challenges) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.LearningProfile.Challenges)-maxItemsToShow))
		}
	}

	p.printBox("SUPPORT PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResults outputs the top ranked resources with scores and tags.
func (p *Printer) PrintMatchResults(results []types.MatchResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total resources ranked: %d\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		result := results[i]
		title := result.Resource.Title
		if title == "" {
			title = result.Resource.ID
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
		sb.WriteString(fmt.Sprintf("    Score: %d (%s)\n", result.MatchScore, result.Resource.Format))
		if len(result.Resource.Tags) > 0 {
			tags := strings.Join(result.Resource.Tags, ", ")
			if len(tags) > 40 {
				tags = tags[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Tags: %s\n", tags))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more resources", len(results)-maxItemsToShow))
	}

	p.printBox("TOP MATCHED RESOURCES", sb.String())
}

// PrintActivity outputs a suggested activity with its steps and materials.
func (p *Printer) PrintActivity(condition types.Condition, act types.Activity) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Condition: %s\n", condition))
	sb.WriteString(fmt.Sprintf("Activity:  %s\n", act.Name))
	sb.WriteString(fmt.Sprintf("Duration:  %s\n", act.Duration))
	if act.Personalization != "" {
		sb.WriteString(fmt.Sprintf("Note:      %s\n", act.Personalization))
	}

	if len(act.Materials) > 0 {
		sb.WriteString("\nMaterials:\n")
		for _, m := range act.Materials {
			sb.WriteString(fmt.Sprintf("  • %s\n", m))
		}
	}

	if len(act.Steps) > 0 {
		sb.WriteString("\nSteps:\n")
		count := min(len(act.Steps), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, act.Steps[i]))
		}
		if len(act.Steps) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more steps\n", len(act.Steps)-maxItemsToShow))
		}
	}

	p.printBox("SUGGESTED ACTIVITY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBatchSummary outputs the outcome of a dataset import.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintBatchSummary(summary dataset.Summary) {
	if summary.Rejected == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, fmt.Sprintf("✅ %s", summary.String()))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s\n\n", summary.String()))

	for i, f := range summary.Failures {
		sb.WriteString(fmt.Sprintf("⚠ row %d\n", f.Row))
		sb.WriteString(fmt.Sprintf("  %s\n", f.Reason))
		if i < len(summary.Failures)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("IMPORT SUMMARY", sb.String())
}
