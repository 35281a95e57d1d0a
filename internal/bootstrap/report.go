package bootstrap

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/daffahilmyf/dictators-seed/internal/domain/entity"
)

// WriteSummary prints a human readable table of every outcome in report.
func WriteSummary(out io.Writer, report entity.Report) {
	if out == nil {
		return
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "\n=== Seed Summary ===")
	if report.BaseURL != "" {
		fmt.Fprintf(tw, "api\t%s\n", report.BaseURL)
	}
	if report.Health.Operation != "" {
		writeOutcome(tw, report.Health)
		if !report.Health.OK() {
			fmt.Fprintln(tw, "API is not accessible; nothing was written.")
			return
		}
	}
	if report.Bulk.Operation != "" {
		writeOutcome(tw, report.Bulk)
	}
	if report.BulkResult != nil {
		r := report.BulkResult
		fmt.Fprintf(tw, "  dictators created\t%d\n", r.DictatorsCreated)
		fmt.Fprintf(tw, "  achievements created\t%d\n", r.AchievementsCreated)
		fmt.Fprintf(tw, "  total dictators\t%d\n", r.TotalDictators)
		fmt.Fprintf(tw, "  total achievements\t%d\n", r.TotalAchievements)
	}
	for _, o := range report.Dictators {
		writeOutcome(tw, o)
	}
	for _, o := range report.Achievements {
		writeOutcome(tw, o)
	}
	for _, o := range report.Verification {
		writeOutcome(tw, o)
	}

	if report.Path != entity.PathNone {
		d, a := report.Created()
		fmt.Fprintf(tw, "path\t%s\n", report.Path)
		fmt.Fprintf(tw, "created\t%d dictators, %d achievements\n", d, a)
		fmt.Fprintf(tw, "seed failures\t%d\n", report.SeedFailures())
	}
	if len(report.Verification) > 0 {
		fmt.Fprintf(tw, "verify failures\t%d\n", report.VerifyFailures())
	}
}

func writeOutcome(w io.Writer, o entity.Outcome) {
	mark := "✓"
	switch {
	case o.Failed():
		mark = "✗"
	case o.Kind == entity.OutcomeSkipped:
		mark = "-"
	}
	detail := o.Detail
	if o.StatusCode != 0 {
		detail = fmt.Sprintf("status %d: %s", o.StatusCode, detail)
	}
	fmt.Fprintf(w, "%s %s\t%s\t%s\n", mark, o.Operation, o.Target, detail)
}
