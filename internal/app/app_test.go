package app

import (
	"context"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/jdlms/aws-costs/internal/logger"
	"github.com/jdlms/aws-costs/internal/types"
	"github.com/jdlms/aws-costs/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedScreen queues keys on Init and counts Fini calls
type scriptedScreen struct {
	tcell.SimulationScreen
	keys        []*tcell.EventKey
	finis       int
	panicOnShow bool
}

func newScriptedScreen(keys ...*tcell.EventKey) *scriptedScreen {
	return &scriptedScreen{SimulationScreen: tcell.NewSimulationScreen("UTF-8"), keys: keys}
}

func (s *scriptedScreen) Init() error {
	if err := s.SimulationScreen.Init(); err != nil {
		return err
	}
	s.SetSize(100, 30)
	for _, k := range s.keys {
		s.InjectKey(k.Key(), k.Rune(), k.Modifiers())
	}
	return nil
}

func (s *scriptedScreen) Fini() {
	s.finis++
	s.SimulationScreen.Fini()
}

func (s *scriptedScreen) Show() {
	if s.panicOnShow {
		panic("draw failed")
	}
	s.SimulationScreen.Show()
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestRun_NavigatesAndQuits(t *testing.T) {
	src := &fakeSource{current: summary("March 2025", "EC2", "S3", "Lambda")}
	screen := newScriptedScreen(key('j'), key('j'), key('k'), key('q'))

	a := New(screen, src, ui.DefaultSettings(), logger.Nop())
	require.NoError(t, a.Run(context.Background()))

	state := a.State()
	assert.True(t, state.QuitRequested)
	assert.False(t, state.Loading)
	assert.Equal(t, types.TabCurrentMonth, state.SelectedTab)
	assert.Equal(t, 1, state.SelectedRow)
	assert.Equal(t, 1, screen.finis)
}

func TestRun_LoadingFrameShownWhileFetching(t *testing.T) {
	screen := newScriptedScreen(key('q'))
	var during string
	src := &fakeSource{current: summary("March 2025", "EC2")}
	src.onCurrent = func() {
		cells, width, _ := screen.GetContents()
		var b strings.Builder
		for i, c := range cells {
			if i > 0 && i%width == 0 {
				b.WriteByte('\n')
			}
			if len(c.Runes) > 0 {
				b.WriteRune(c.Runes[0])
			}
		}
		during = b.String()
	}

	a := New(screen, src, ui.DefaultSettings(), logger.Nop())
	require.NoError(t, a.Run(context.Background()))

	assert.Contains(t, during, "Loading cost data")
	assert.False(t, a.State().Loading)
}

func TestRun_FatalLoadStillNavigable(t *testing.T) {
	src := &fakeSource{currentErr: assert.AnError}
	screen := newScriptedScreen(
		tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
	)

	a := New(screen, src, ui.DefaultSettings(), logger.Nop())
	require.NoError(t, a.Run(context.Background()))

	state := a.State()
	assert.Error(t, state.Err)
	assert.Equal(t, types.TabPreviousMonth, state.SelectedTab)
	assert.Equal(t, 1, screen.finis)
}

func TestRun_PanicReleasesScreen(t *testing.T) {
	screen := newScriptedScreen()
	screen.panicOnShow = true

	a := New(screen, &fakeSource{}, ui.DefaultSettings(), logger.Nop())
	err := a.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "draw failed")
	assert.Equal(t, 1, screen.finis)
}

func TestRun_StopsWhenContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	screen := newScriptedScreen()
	a := New(screen, &fakeSource{current: summary("March 2025", "EC2")}, ui.DefaultSettings(), logger.Nop())

	require.NoError(t, a.Run(ctx))
	assert.False(t, a.State().QuitRequested)
	assert.Equal(t, 1, screen.finis)
}
