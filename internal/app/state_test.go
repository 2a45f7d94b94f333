package app

import (
	"context"
	"errors"
	"testing"

	"github.com/jdlms/aws-costs/internal/aggregate"
	"github.com/jdlms/aws-costs/internal/logger"
	"github.com/jdlms/aws-costs/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	current    types.CostSummary
	previous   types.CostSummary
	trend      []types.CostSummary
	currentErr error
	prevErr    error
	trendErr   error

	calls     []string
	onCurrent func()
}

func (f *fakeSource) GetCurrentMonth(context.Context) (types.CostSummary, error) {
	f.calls = append(f.calls, "current")
	if f.onCurrent != nil {
		f.onCurrent()
	}
	return f.current, f.currentErr
}

func (f *fakeSource) GetPreviousMonth(context.Context) (types.CostSummary, error) {
	f.calls = append(f.calls, "previous")
	return f.previous, f.prevErr
}

func (f *fakeSource) GetTrend(_ context.Context, months int) ([]types.CostSummary, error) {
	f.calls = append(f.calls, "trend")
	return f.trend, f.trendErr
}

func summary(period string, services ...string) types.CostSummary {
	s := types.CostSummary{Period: period, Currency: "USD"}
	for i, name := range services {
		cost := float64(10 * (len(services) - i))
		s.TotalCost += cost
		s.Breakdown = append(s.Breakdown, types.ServiceCost{Service: name, Cost: cost})
	}
	s.Breakdown = aggregate.ComputePercentages(s)
	return s
}

func withRows(tab types.Tab, rows int) types.DashboardState {
	state := types.NewDashboardState()
	state.Loading = false
	state.SelectedTab = tab
	services := make([]string, rows)
	for i := range services {
		services[i] = string(rune('A' + i))
	}
	s := summary("March 2025", services...)
	state.Current = &s
	state.Previous = &s
	state.Trend = []types.CostSummary{s}
	return state
}

func TestStep_TabsWrap(t *testing.T) {
	state := withRows(types.TabCurrentMonth, 3)

	state = Step(state, ActionPrevTab, aggregate.DefaultTopServices)
	assert.Equal(t, types.TabTrend, state.SelectedTab)

	state = Step(state, ActionNextTab, aggregate.DefaultTopServices)
	assert.Equal(t, types.TabCurrentMonth, state.SelectedTab)

	for range types.TabCount {
		state = Step(state, ActionNextTab, aggregate.DefaultTopServices)
	}
	assert.Equal(t, types.TabCurrentMonth, state.SelectedTab)
}

func TestStep_TabChangeResetsRow(t *testing.T) {
	state := withRows(types.TabCurrentMonth, 5)
	state.SelectedRow = 3

	next := Step(state, ActionNextTab, aggregate.DefaultTopServices)
	assert.Equal(t, types.TabPreviousMonth, next.SelectedTab)
	assert.Zero(t, next.SelectedRow)

	prev := Step(state, ActionPrevTab, aggregate.DefaultTopServices)
	assert.Zero(t, prev.SelectedRow)
}

func TestStep_RowMovesClamp(t *testing.T) {
	state := withRows(types.TabCurrentMonth, 3)

	state = Step(state, ActionRowUp, aggregate.DefaultTopServices)
	assert.Zero(t, state.SelectedRow)

	for range 5 {
		state = Step(state, ActionRowDown, aggregate.DefaultTopServices)
	}
	assert.Equal(t, 2, state.SelectedRow)

	state = Step(state, ActionTop, aggregate.DefaultTopServices)
	assert.Zero(t, state.SelectedRow)

	state = Step(state, ActionBottom, aggregate.DefaultTopServices)
	assert.Equal(t, 2, state.SelectedRow)
}

func TestStep_NoRows(t *testing.T) {
	state := types.NewDashboardState()
	state.Loading = false

	state = Step(state, ActionRowDown, aggregate.DefaultTopServices)
	assert.Zero(t, state.SelectedRow)

	state = Step(state, ActionBottom, aggregate.DefaultTopServices)
	assert.Zero(t, state.SelectedRow)
}

func TestStep_TrendRowsLimitedToTopServices(t *testing.T) {
	state := withRows(types.TabTrend, 12)
	assert.Equal(t, 8, VisibleRows(state, aggregate.DefaultTopServices))

	state = Step(state, ActionBottom, aggregate.DefaultTopServices)
	assert.Equal(t, 7, state.SelectedRow)

	state = Step(state, ActionRowDown, aggregate.DefaultTopServices)
	assert.Equal(t, 7, state.SelectedRow)
}

func TestStep_QuitAndNone(t *testing.T) {
	state := withRows(types.TabCurrentMonth, 3)
	state.SelectedRow = 1

	assert.Equal(t, state, Step(state, ActionNone, aggregate.DefaultTopServices))

	quit := Step(state, ActionQuit, aggregate.DefaultTopServices)
	assert.True(t, quit.QuitRequested)
	assert.Equal(t, 1, quit.SelectedRow)
	assert.False(t, state.QuitRequested, "step returns a new state")
}

func TestVisibleRows_MissingData(t *testing.T) {
	state := types.NewDashboardState()
	for _, tab := range types.Tabs {
		state.SelectedTab = tab
		assert.Zero(t, VisibleRows(state, aggregate.DefaultTopServices), tab.String())
	}
}

func TestLoad_AllSucceed(t *testing.T) {
	src := &fakeSource{
		current:  summary("March 2025", "EC2", "S3"),
		previous: summary("February 2025", "EC2"),
		trend:    []types.CostSummary{summary("February 2025", "EC2"), summary("March 2025", "EC2", "S3")},
	}
	state := types.NewDashboardState()

	Load(context.Background(), src, &state, 6, logger.Nop())

	assert.False(t, state.Loading)
	assert.NoError(t, state.Err)
	require.NotNil(t, state.Current)
	require.NotNil(t, state.Previous)
	assert.Equal(t, "March 2025", state.Current.Period)
	assert.Equal(t, "February 2025", state.Previous.Period)
	assert.Len(t, state.Trend, 2)
	assert.Equal(t, []string{"current", "previous", "trend"}, src.calls)
}

func TestLoad_CurrentMonthFailureIsFatal(t *testing.T) {
	src := &fakeSource{currentErr: errors.New("AccessDeniedException")}
	state := types.NewDashboardState()

	Load(context.Background(), src, &state, 6, logger.Nop())

	assert.False(t, state.Loading)
	require.Error(t, state.Err)
	assert.Contains(t, state.Err.Error(), "failed to load current month")
	assert.Contains(t, state.Err.Error(), "AccessDeniedException")
	assert.Nil(t, state.Current)
	assert.Nil(t, state.Previous)
	assert.Empty(t, state.Trend)
	assert.Equal(t, []string{"current"}, src.calls)
}

func TestLoad_OtherFailuresAreNotFatal(t *testing.T) {
	src := &fakeSource{
		current:  summary("March 2025", "EC2"),
		prevErr:  errors.New("throttled"),
		trendErr: errors.New("throttled"),
	}
	state := types.NewDashboardState()

	Load(context.Background(), src, &state, 6, logger.Nop())

	assert.False(t, state.Loading)
	assert.NoError(t, state.Err)
	assert.NotNil(t, state.Current)
	assert.Nil(t, state.Previous)
	assert.Empty(t, state.Trend)
}
