// Package aggregate derives display values from cost summaries.
// Every function here is pure and cheap enough to call on each frame.
package aggregate

import (
	"sort"

	"github.com/jdlms/aws-costs/internal/types"
	"github.com/samber/lo"
)

// DefaultTopServices is how many services the trend view tracks
const DefaultTopServices = 8

// ChangeThreshold is the month-over-month percentage beyond which a change
// counts as an increase or decrease
const ChangeThreshold = 10.0

// Change classifies a month-over-month change
type Change int

const (
	ChangeNeutral Change = iota
	ChangeIncrease
	ChangeDecrease
)

// Severity is a cost magnitude band used for color selection
type Severity int

const (
	SeverityLow Severity = iota
	SeverityModerate
	SeverityHigh
	SeverityCritical
)

// ComputePercentages returns a copy of the summary's breakdown with each
// percentage set against the summary total, ordered by descending cost.
// Equal costs keep their original relative order.
func ComputePercentages(summary types.CostSummary) []types.ServiceCost {
	out := make([]types.ServiceCost, len(summary.Breakdown))
	copy(out, summary.Breakdown)

	for i := range out {
		out[i].Percentage = percentOf(out[i].Cost, summary.TotalCost)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Cost > out[j].Cost
	})
	return out
}

func percentOf(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}

// TopServicesAcrossMonths sums each service's cost over every month of the
// trend and returns up to k service names by descending total. Services
// missing from a month contribute nothing for that month. Ties keep the
// order in which the services first appear.
func TopServicesAcrossMonths(trend []types.CostSummary, k int) []string {
	if k <= 0 {
		return []string{}
	}

	totals := make(map[string]float64)
	for _, month := range trend {
		for _, s := range month.Breakdown {
			totals[s.Service] += s.Cost
		}
	}

	names := lo.Uniq(lo.FlatMap(trend, func(month types.CostSummary, _ int) []string {
		return lo.Map(month.Breakdown, func(s types.ServiceCost, _ int) string {
			return s.Service
		})
	}))
	sort.SliceStable(names, func(i, j int) bool {
		return totals[names[i]] > totals[names[j]]
	})
	return lo.Slice(names, 0, k)
}

// ServiceCostIn returns the service's cost in the given month, or 0 when the
// service has no entry that month
func ServiceCostIn(month types.CostSummary, service string) float64 {
	entry, ok := lo.Find(month.Breakdown, func(s types.ServiceCost) bool {
		return s.Service == service
	})
	if !ok {
		return 0
	}
	return entry.Cost
}

// MonthOverMonthChange returns the percentage change of trend[i]'s total
// against trend[i-1]'s. The first month, an out-of-range index, and a zero
// previous total all yield 0.
func MonthOverMonthChange(trend []types.CostSummary, i int) float64 {
	if i <= 0 || i >= len(trend) {
		return 0
	}
	prev := trend[i-1].TotalCost
	if prev == 0 {
		return 0
	}
	return (trend[i].TotalCost - prev) / prev * 100
}

// ClassifyChange places a percentage change into its display band
func ClassifyChange(change float64) Change {
	switch {
	case change > ChangeThreshold:
		return ChangeIncrease
	case change < -ChangeThreshold:
		return ChangeDecrease
	default:
		return ChangeNeutral
	}
}

// CostSeverity maps a cost to its magnitude band
func CostSeverity(cost float64) Severity {
	switch {
	case cost > 1000:
		return SeverityCritical
	case cost > 100:
		return SeverityHigh
	case cost > 10:
		return SeverityModerate
	default:
		return SeverityLow
	}
}
