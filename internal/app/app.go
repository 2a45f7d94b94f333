package app

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gdamore/tcell/v2"
	"github.com/jdlms/aws-costs/internal/types"
	"github.com/jdlms/aws-costs/internal/ui"
	"go.uber.org/zap"
)

// pollInterval bounds how long the loop waits for input before redrawing
const pollInterval = 100 * time.Millisecond

// App owns the terminal for the lifetime of one dashboard session
type App struct {
	screen   tcell.Screen
	source   Source
	settings ui.Settings
	log      *zap.SugaredLogger
	state    types.DashboardState
}

// New creates an App drawing to screen with data from source
func New(screen tcell.Screen, source Source, settings ui.Settings, log *zap.SugaredLogger) *App {
	return &App{
		screen:   screen,
		source:   source,
		settings: settings,
		log:      log,
		state:    types.NewDashboardState(),
	}
}

// State returns a copy of the current dashboard state
func (a *App) State() types.DashboardState {
	return a.state
}

// Run takes over the terminal, loads the cost data and handles input until
// the user quits. The terminal is restored on every exit path, panics
// included; a panic is returned as an error.
func (a *App) Run(ctx context.Context) (err error) {
	ui.SetupRosePineTheme()

	if err := a.screen.Init(); err != nil {
		return errors.Wrap(err, "failed to initialize terminal")
	}
	defer func() {
		if r := recover(); r != nil {
			a.log.Errorw("dashboard crashed", "panic", r)
			err = errors.Newf("dashboard crashed: %v", r)
		}
	}()
	defer a.screen.Fini()

	a.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorReset))
	a.screen.HideCursor()

	// first frame shows the loading panel while the requests run
	ui.Render(a.screen, a.state, a.settings)
	Load(ctx, a.source, &a.state, a.settings.TrendMonths, a.log)

	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go a.screen.ChannelEvents(events, quit)

	for !a.state.QuitRequested {
		ui.Render(a.screen, a.state, a.settings)

		select {
		case <-ctx.Done():
			a.log.Infow("dashboard cancelled", "reason", ctx.Err())
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			a.handle(ev)
		case <-time.After(pollInterval):
		}
	}

	a.log.Infow("dashboard closed")
	return nil
}

func (a *App) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action := KeyAction(ev)
		if action == ActionNone {
			return
		}
		a.state = Step(a.state, action, a.settings.TopServices)
		a.log.Debugw("key handled",
			"action", action.String(),
			"tab", a.state.SelectedTab.String(),
			"row", a.state.SelectedRow,
		)
	case *tcell.EventResize:
		a.screen.Sync()
	}
}
