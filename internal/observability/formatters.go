// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
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

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most limit runes, marking the cut with "..."
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit-3]) + "..."
}

// PrintBundleSummary outputs how much was collected for each resume section.
func (p *Printer) PrintBundleSummary(bundle *types.Bundle) {
	if bundle == nil {
		return
	}

	var sb strings.Builder

	name := bundle.PersonalInfo.Name()
	if name == "" {
		name = "(none)"
	}
	sb.WriteString(fmt.Sprintf("Name:     %s\n", name))
	picture := bundle.ProfilePicture
	if picture == "" {
		picture = "(none)"
	}
	sb.WriteString(fmt.Sprintf("Picture:  %s\n", picture))
	if contact := rendering.ContactLine(bundle.PersonalInfo); contact != "" {
		sb.WriteString(fmt.Sprintf("Contact:  %s\n", contact))
	}
	sb.WriteString("\n")

	if len(bundle.Skills) > 0 {
		sb.WriteString("Skills:\n")
		count := min(len(bundle.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			group := bundle.Skills[i]
			sb.WriteString(fmt.Sprintf("  • %s (%d)\n", group.Category, len(group.Skills)))
		}
		if len(bundle.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(bundle.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(bundle.Experiences) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(bundle.Experiences), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := bundle.Experiences[i]
			sb.WriteString(fmt.Sprintf("  • %s, %s [%d details]\n", exp.Position, exp.Company, len(exp.Details)))
		}
		if len(bundle.Experiences) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(bundle.Experiences)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Education:        %d\n", len(bundle.Education)))
	sb.WriteString(fmt.Sprintf("Certifications:   %d\n", len(bundle.Certifications)))
	sb.WriteString(fmt.Sprintf("Hobbies:          %d\n", len(bundle.Hobbies)))
	sb.WriteString(fmt.Sprintf("Languages:        %d\n", len(bundle.Languages)))
	sb.WriteString(fmt.Sprintf("Personal details: %d", len(bundle.PersonalDetails)))

	p.printBox("COLLECTED RESUME DATA", sb.String())
}

// PrintOutline outputs the sections that will be written, with their block counts.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintOutline(doc *rendering.Document) {
	if doc == nil {
		return
	}

	headings := doc.Headings()
	if len(headings) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "HEADER ONLY, NO SECTIONS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d sections:\n\n", len(headings)))
	for _, heading := range headings {
		blocks := doc.Section(heading)
		bullets := 0
		for _, b := range blocks {
			if b.Kind == rendering.BlockBullet {
				bullets++
			}
		}
		sb.WriteString(fmt.Sprintf("# %s\n", heading))
		sb.WriteString(fmt.Sprintf("  %d paragraphs, %d bullets\n", len(blocks)-bullets, bullets))
	}

	p.printBox("DOCUMENT OUTLINE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRunInfo outputs where the document went and which run produced it.
func (p *Printer) PrintRunInfo(runID, output string) {
	p.printBox("RESUME WRITTEN", fmt.Sprintf("Run:     %s\nOutput:  %s", runID, output))
}
