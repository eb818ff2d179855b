// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/candidate-ranker/internal/requirements"
	"github.com/jonathan/candidate-ranker/internal/types"
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

// PrintJobPosting outputs a human-readable summary of the posting being ranked.
func (p *Printer) PrintJobPosting(posting *types.JobPosting) {
	if posting == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:  %s\n", posting.Title))
	sb.WriteString("\n")

	if len(posting.Requirements) > 0 {
		sb.WriteString("Requirements:\n")
		count := min(len(posting.Requirements), maxItemsToShow)
		for i := 0; i < count; i++ {
			req := posting.Requirements[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s)", req.Name, req.Kind))
			if req.MinimumYears > 0 {
				sb.WriteString(fmt.Sprintf(" %d+ yrs", req.MinimumYears))
			}
			sb.WriteString("\n")
		}
		if len(posting.Requirements) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(posting.Requirements)-maxItemsToShow))
		}
	}

	p.printBox("JOB POSTING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRequirements outputs each requirement with its resolved viable set.
func (p *Printer) PrintRequirements(reqs []requirements.Requirement) {
	if len(reqs) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Resolved %d requirements:\n\n", len(reqs)))

	count := min(len(reqs), maxItemsToShow)
	for i := 0; i < count; i++ {
		req := reqs[i]
		sb.WriteString(fmt.Sprintf("• %s\n", req.Canonical))

		alternatives := make([]string, 0, len(req.Viable))
		for name := range req.Viable {
			if name != req.Canonical {
				alternatives = append(alternatives, name)
			}
		}
		sort.Strings(alternatives)
		if len(alternatives) > 0 {
			alts := strings.Join(alternatives, ", ")
			if len(alts) > 40 {
				alts = alts[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("  ≈ %s\n", alts))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(reqs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more requirements", len(reqs)-maxItemsToShow))
	}

	p.printBox("RESOLVED REQUIREMENTS", sb.String())
}

// PrintRankedCandidates outputs the top ranked candidates with their scores
// and matched entities.
func (p *Printer) PrintRankedCandidates(result *types.RankedResult) {
	if result == nil || len(result.Ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidates ranked: %d\n\n", len(result.Ranked)))

	count := min(len(result.Ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		c := result.Ranked[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", c.Rank, c.Name))
		sb.WriteString(fmt.Sprintf("    Score: %.2f (%d matches)\n", c.TotalScore, c.MatchCount))
		if len(c.MatchedEntities) > 0 {
			matched := strings.Join(c.MatchedEntities, ", ")
			if len(matched) > 40 {
				matched = matched[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Matched: %s\n", matched))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(result.Ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(result.Ranked)-maxItemsToShow))
	}

	p.printBox("RANKED CANDIDATES", sb.String())
}

// PrintRunReport outputs the bookkeeping counters for a completed run.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRunReport(report *types.RunReport) {
	if report == nil {
		return
	}

	if report.SkippedEntities == 0 && report.ClampedYears == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO DATA ISSUES FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidates in:   %d\n", report.CandidatesIn))
	sb.WriteString(fmt.Sprintf("Candidates out:  %d\n", report.CandidatesOut))
	if report.SkippedEntities > 0 {
		sb.WriteString(fmt.Sprintf("⚠ Skipped malformed entities: %d\n", report.SkippedEntities))
	}
	if report.ClampedYears > 0 {
		sb.WriteString(fmt.Sprintf("⚠ Clamped negative years:     %d\n", report.ClampedYears))
	}

	p.printBox("RUN REPORT", strings.TrimSuffix(sb.String(), "\n"))
}
