package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/jdlms/aws-costs/internal/types"
	"github.com/rivo/tview"
)

// Variant is the kind of content a tab shows for the current state
type Variant int

const (
	VariantLoading Variant = iota
	VariantError
	VariantNoData
	VariantBreakdown
	VariantTrend
)

func (v Variant) String() string {
	switch v {
	case VariantLoading:
		return "loading"
	case VariantError:
		return "error"
	case VariantNoData:
		return "no data"
	case VariantBreakdown:
		return "breakdown"
	case VariantTrend:
		return "trend"
	default:
		return "unknown"
	}
}

// ContentVariant decides what the selected tab shows. Only the current
// month tab surfaces the fatal load error; the others fall back to no data.
func ContentVariant(state types.DashboardState) Variant {
	if state.Loading {
		return VariantLoading
	}

	switch state.SelectedTab {
	case types.TabCurrentMonth:
		if state.Err != nil {
			return VariantError
		}
		if state.Current == nil {
			return VariantNoData
		}
		return VariantBreakdown
	case types.TabPreviousMonth:
		if state.Previous == nil {
			return VariantNoData
		}
		return VariantBreakdown
	case types.TabTrend:
		if len(state.Trend) == 0 {
			return VariantNoData
		}
		return VariantTrend
	default:
		return VariantNoData
	}
}

// CreateContent builds the body of the selected tab
func CreateContent(state types.DashboardState, settings Settings) tview.Primitive {
	switch ContentVariant(state) {
	case VariantLoading:
		return CreateLoadingPanel()
	case VariantError:
		return CreateErrorPanel(state.Err)
	case VariantBreakdown:
		summary, accent := state.Current, colorGreen
		if state.SelectedTab == types.TabPreviousMonth {
			summary, accent = state.Previous, colorPurple
		}
		return CreateBreakdownView(*summary, state.SelectedRow, accent, settings)
	case VariantTrend:
		return CreateTrendView(state.Trend, state.SelectedRow, settings)
	default:
		return CreateNoDataPanel()
	}
}

// SetupGrid composes one full frame: header, tab strip, content, footer
func SetupGrid(state types.DashboardState, settings Settings) *tview.Grid {
	grid := tview.NewGrid().
		SetRows(3, 3, 0, 3).
		SetColumns(0).
		SetBorders(false)

	grid.AddItem(CreateHeader(), 0, 0, 1, 1, 0, 0, false)
	grid.AddItem(CreateTabs(state.SelectedTab), 1, 0, 1, 1, 0, 0, false)
	grid.AddItem(CreateContent(state, settings), 2, 0, 1, 1, 0, 0, false)
	grid.AddItem(CreateFooter(), 3, 0, 1, 1, 0, 0, false)

	return grid
}

// Render draws the frame for state onto the whole screen
func Render(screen tcell.Screen, state types.DashboardState, settings Settings) {
	width, height := screen.Size()
	screen.Clear()

	root := SetupGrid(state, settings)
	root.SetRect(0, 0, width, height)
	root.Draw(screen)
	screen.Show()
}
