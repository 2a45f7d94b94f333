// Package types: internal types
package types

// ServiceCost is one service's share of a billing period
type ServiceCost struct {
	Service    string
	Cost       float64
	Percentage float64
}

// CostSummary holds one billing period's total and its per-service breakdown.
// Breakdown is ordered by descending cost and that order is the display order.
type CostSummary struct {
	Period    string
	TotalCost float64
	Currency  string
	Breakdown []ServiceCost
}

// Tab identifies one of the dashboard views
type Tab int

const (
	TabCurrentMonth Tab = iota
	TabPreviousMonth
	TabTrend
)

// TabCount is the number of dashboard views
const TabCount = 3

// Tabs lists the views in display order
var Tabs = [TabCount]Tab{TabCurrentMonth, TabPreviousMonth, TabTrend}

func (t Tab) String() string {
	switch t {
	case TabCurrentMonth:
		return "Current Month"
	case TabPreviousMonth:
		return "Previous Month"
	case TabTrend:
		return "6-Month Trend"
	default:
		return "Unknown"
	}
}

// Next returns the following tab, wrapping after the last one
func (t Tab) Next() Tab {
	return Tab((int(t) + 1) % TabCount)
}

// Prev returns the preceding tab, wrapping before the first one
func (t Tab) Prev() Tab {
	return Tab((int(t) + TabCount - 1) % TabCount)
}

// DashboardState holds everything the dashboard renders from. It is mutated
// only by the input step and read only by the render step.
type DashboardState struct {
	SelectedTab Tab
	SelectedRow int

	Current  *CostSummary
	Previous *CostSummary
	// Trend is ordered oldest to newest
	Trend []CostSummary

	// Err is set when the current month could not be loaded
	Err           error
	Loading       bool
	QuitRequested bool
}

// NewDashboardState returns the state the dashboard starts in, before any data is loaded
func NewDashboardState() DashboardState {
	return DashboardState{
		SelectedTab: TabCurrentMonth,
		Loading:     true,
	}
}
