package history

import (
	"fmt"
	"strings"
)

// Format renders recent runs and per-path aggregates for terminal output.
func Format(runs []Run, summaries []PathSummary) string {
	var b strings.Builder

	b.WriteString("Run History\n")
	b.WriteString(strings.Repeat("=", 40) + "\n\n")

	if len(runs) == 0 {
		b.WriteString("No runs recorded yet.\n")
		b.WriteString("Run `dlint check <file>` to record one.\n")
		return b.String()
	}

	for _, r := range runs {
		when := r.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Fprintf(&b, "  %s  %-5s  %-30s turns:%-4d issues:%d\n",
			when, r.Kind, r.Path, r.Turns, r.TotalIssues)
	}

	if len(summaries) > 0 {
		b.WriteString("\nPaths\n")
		for _, s := range summaries {
			trend := ""
			if s.PrevIssues >= 0 {
				switch {
				case s.LastIssues < s.PrevIssues:
					trend = fmt.Sprintf("  improving (%d -> %d)", s.PrevIssues, s.LastIssues)
				case s.LastIssues > s.PrevIssues:
					trend = fmt.Sprintf("  worsening (%d -> %d)", s.PrevIssues, s.LastIssues)
				default:
					trend = "  steady"
				}
			}
			fmt.Fprintf(&b, "  %-30s %d runs  last:%d%s\n", s.Path, s.Runs, s.LastIssues, trend)
		}
	}

	return b.String()
}
