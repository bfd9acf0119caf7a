package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/camelcase"

	"github.com/bakebuild/bakecheck/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	bannerStyle   = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderSuite renders a full suite report: header, one banner and
// result line per check, and the summary block with the passed/total
// ratio and the overall verdict.
func RenderSuite(summary *domain.SuiteSummary, repo domain.RepoInfo, hasRepo bool) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("bakecheck")
	subtitle := dimStyle.Render("Bake Configuration Schema Validation")
	header := title + "\n" + subtitle
	if hasRepo {
		header += "\n" + faintStyle.Render(repoLine(repo))
	}
	b.WriteString(boxStyle.Render(header))
	b.WriteString("\n\n")

	// ── Checks ──
	for _, result := range summary.Results {
		renderResult(&b, result)
	}

	// ── Summary ──
	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")
	b.WriteString("  " + bannerStyle.Render("SUMMARY"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "  Passed: %d/%d\n", summary.Passed, summary.Total)

	if summary.AllPassed() {
		b.WriteString("  " + passStyle.Render("All schema validations passed!") + "\n")
	} else {
		b.WriteString("  " + failStyle.Render("Some validations failed. Please check the schemas.") + "\n")
	}

	return b.String()
}

func renderResult(b *strings.Builder, result domain.CheckResult) {
	fmt.Fprintf(b, "\n%s\n", bannerStyle.Render(fmt.Sprintf("=== %s ===", result.Check.Description)))

	switch result.Outcome {
	case domain.OutcomePass:
		fmt.Fprintf(b, "  %s %s\n",
			passStyle.Render("✓"),
			dimStyle.Render(fmt.Sprintf("%s is valid against %s", result.Check.DocumentPath, result.Check.SchemaPath)),
		)
	case domain.OutcomeFail:
		first := result.FirstViolation()
		fmt.Fprintf(b, "  %s %s\n",
			failStyle.Render("✗"),
			dimStyle.Render(fmt.Sprintf("%s validation failed:", result.Check.DocumentPath)),
		)
		fmt.Fprintf(b, "      Error: %s\n", first.Message)
		fmt.Fprintf(b, "      Path:  %s\n", domain.FormatPath(first.Path))
	default:
		fmt.Fprintf(b, "  %s %s: %s\n",
			warnStyle.Render("⚠"),
			warnStyle.Render(OutcomeLabel(result.Outcome)),
			dimStyle.Render(result.Detail),
		)
	}
}

// OutcomeLabel humanizes an outcome name, e.g. "SchemaMissing" becomes
// "Schema Missing".
func OutcomeLabel(outcome domain.Outcome) string {
	return strings.Join(camelcase.Split(string(outcome)), " ")
}

func repoLine(repo domain.RepoInfo) string {
	if repo.Branch == "" {
		return repo.Commit
	}
	return fmt.Sprintf("%s @ %s", repo.Branch, repo.Commit)
}
