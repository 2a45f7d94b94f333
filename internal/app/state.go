// state.go - dashboard state transitions and the initial load
package app

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jdlms/aws-costs/internal/aggregate"
	"github.com/jdlms/aws-costs/internal/types"
	"go.uber.org/zap"
)

// Source supplies the summaries the dashboard shows
type Source interface {
	GetCurrentMonth(ctx context.Context) (types.CostSummary, error)
	GetPreviousMonth(ctx context.Context) (types.CostSummary, error)
	GetTrend(ctx context.Context, months int) ([]types.CostSummary, error)
}

// VisibleRows is the number of selectable rows on the selected tab
func VisibleRows(state types.DashboardState, topServices int) int {
	switch state.SelectedTab {
	case types.TabCurrentMonth:
		if state.Current == nil {
			return 0
		}
		return len(state.Current.Breakdown)
	case types.TabPreviousMonth:
		if state.Previous == nil {
			return 0
		}
		return len(state.Previous.Breakdown)
	case types.TabTrend:
		return len(aggregate.TopServicesAcrossMonths(state.Trend, topServices))
	default:
		return 0
	}
}

// Step applies one action to the state and returns the result. Tab changes
// wrap and reset the row; row moves clamp at both ends.
func Step(state types.DashboardState, action Action, topServices int) types.DashboardState {
	switch action {
	case ActionQuit:
		state.QuitRequested = true
	case ActionNextTab:
		state.SelectedTab = state.SelectedTab.Next()
		state.SelectedRow = 0
	case ActionPrevTab:
		state.SelectedTab = state.SelectedTab.Prev()
		state.SelectedRow = 0
	case ActionRowDown:
		if state.SelectedRow < VisibleRows(state, topServices)-1 {
			state.SelectedRow++
		}
	case ActionRowUp:
		if state.SelectedRow > 0 {
			state.SelectedRow--
		}
	case ActionTop:
		state.SelectedRow = 0
	case ActionBottom:
		state.SelectedRow = max(VisibleRows(state, topServices)-1, 0)
	}
	return state
}

// Load fills the state once before the first frame. A failed current month
// is fatal and stops the load; previous month and trend failures only leave
// those views empty.
func Load(ctx context.Context, src Source, state *types.DashboardState, trendMonths int, log *zap.SugaredLogger) {
	state.Loading = true
	state.Err = nil
	defer func() { state.Loading = false }()

	log.Infow("loading current month")
	current, err := src.GetCurrentMonth(ctx)
	if err != nil {
		state.Err = errors.Wrap(err, "failed to load current month")
		log.Errorw("current month unavailable", "error", err)
		return
	}
	state.Current = &current

	previous, err := src.GetPreviousMonth(ctx)
	if err != nil {
		log.Warnw("previous month unavailable", "error", err)
	} else {
		state.Previous = &previous
	}

	trend, err := src.GetTrend(ctx, trendMonths)
	if err != nil {
		log.Warnw("monthly trend unavailable", "error", err)
	} else {
		state.Trend = trend
	}

	log.Infow("cost data loaded",
		"current_services", len(current.Breakdown),
		"previous_loaded", state.Previous != nil,
		"trend_months", len(state.Trend),
	)
}
