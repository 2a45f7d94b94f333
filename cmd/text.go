package cmd

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/jdlms/aws-costs/internal/aggregate"
	"github.com/jdlms/aws-costs/internal/types"
	"github.com/jdlms/aws-costs/internal/ui"
)

// textNameWidth is wider than the dashboard column since plain output has room
const textNameWidth = 38

type currentMonthSource interface {
	GetCurrentMonth(ctx context.Context) (types.CostSummary, error)
}

// printCurrentMonth writes the current month as a plain table. On failure the
// error and the remediation checklist go to errOut.
func printCurrentMonth(ctx context.Context, src currentMonthSource, out, errOut io.Writer) error {
	summary, err := src.GetCurrentMonth(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "Error fetching cost data: %v\n\nMake sure you have:\n", err)
		for _, item := range ui.RemediationChecklist {
			fmt.Fprintf(errOut, "  • %s\n", item)
		}
		return errors.Wrap(err, "failed to load current month")
	}

	fmt.Fprintf(out, "AWS Costs for %s\n", summary.Period)
	fmt.Fprintf(out, "Total: %s %s\n\n", ui.FormatMoney(summary.TotalCost), summary.Currency)

	if len(summary.Breakdown) == 0 {
		fmt.Fprintln(out, "No data available")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Service\tCost\tShare\t")
	for _, sc := range aggregate.ComputePercentages(summary) {
		fmt.Fprintf(w, "%s\t%s\t%s\t\n",
			ui.TruncateServiceName(sc.Service, textNameWidth),
			ui.FormatMoney(sc.Cost),
			ui.FormatPercent(sc.Percentage),
		)
	}
	return errors.Wrap(w.Flush(), "write cost table")
}
