package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/jdlms/aws-costs/internal/aggregate"
	"github.com/rivo/tview"
)

// PaletteSize is the number of service colors before they repeat
const PaletteSize = 12

// Settings are the fixed presentation constants. Build them once with
// DefaultSettings and pass them down; nothing mutates them afterwards.
type Settings struct {
	Palette     [PaletteSize]tcell.Color
	TopServices int
	TrendMonths int
	NameWidth   int
	BarWidth    int
}

// DefaultSettings returns the dashboard's constants
func DefaultSettings() Settings {
	return Settings{
		Palette: [PaletteSize]tcell.Color{
			tcell.NewRGBColor(255, 107, 107), // coral red
			tcell.NewRGBColor(78, 205, 196),  // turquoise
			tcell.NewRGBColor(255, 230, 109), // yellow
			tcell.NewRGBColor(170, 128, 255), // purple
			tcell.NewRGBColor(255, 159, 243), // pink
			tcell.NewRGBColor(108, 255, 108), // lime
			tcell.NewRGBColor(255, 184, 77),  // orange
			tcell.NewRGBColor(77, 182, 255),  // sky blue
			tcell.NewRGBColor(255, 138, 101), // salmon
			tcell.NewRGBColor(129, 236, 236), // cyan
			tcell.NewRGBColor(162, 155, 254), // lavender
			tcell.NewRGBColor(0, 184, 148),   // teal
		},
		TopServices: aggregate.DefaultTopServices,
		TrendMonths: 6,
		NameWidth:   32,
		BarWidth:    20,
	}
}

// ServiceColor picks the palette entry for a row or service position
func (s Settings) ServiceColor(position int) tcell.Color {
	if position < 0 {
		position = -position
	}
	return s.Palette[position%PaletteSize]
}

var (
	colorRed      = tcell.NewRGBColor(255, 107, 107)
	colorOrange   = tcell.NewRGBColor(255, 184, 77)
	colorYellow   = tcell.NewRGBColor(255, 230, 109)
	colorGreen    = tcell.NewRGBColor(108, 255, 108)
	colorPurple   = tcell.NewRGBColor(170, 128, 255)
	colorTeal     = tcell.NewRGBColor(78, 205, 196)
	colorAWS      = tcell.NewRGBColor(255, 153, 0)
	colorDim      = tcell.NewRGBColor(110, 106, 134)
	colorSubtle   = tcell.NewRGBColor(170, 170, 170)
	colorText     = tcell.NewRGBColor(224, 222, 244)
	colorSelected = tcell.NewRGBColor(60, 60, 80)
)

// SeverityColor colors a cost by its magnitude band
func SeverityColor(cost float64) tcell.Color {
	switch aggregate.CostSeverity(cost) {
	case aggregate.SeverityCritical:
		return colorRed
	case aggregate.SeverityHigh:
		return colorOrange
	case aggregate.SeverityModerate:
		return colorYellow
	default:
		return colorGreen
	}
}

// ChangeColor colors a month-over-month change: spend going up is bad
func ChangeColor(change float64) tcell.Color {
	switch aggregate.ClassifyChange(change) {
	case aggregate.ChangeIncrease:
		return colorRed
	case aggregate.ChangeDecrease:
		return colorGreen
	default:
		return colorYellow
	}
}

// tag renders a color as a tview color tag value
func tag(c tcell.Color) string {
	return fmt.Sprintf("#%06x", c.Hex())
}

// SetupRosePineTheme configures the Rose Pine color theme for the TUI
func SetupRosePineTheme() {
	tview.Styles = tview.Theme{
		PrimitiveBackgroundColor:    tcell.NewRGBColor(35, 33, 54),    // base (#232136)
		ContrastBackgroundColor:     tcell.NewRGBColor(42, 39, 63),    // surface (#2a273f)
		MoreContrastBackgroundColor: tcell.NewRGBColor(57, 53, 82),    // overlay (#393552)
		BorderColor:                 tcell.NewRGBColor(110, 106, 134), // muted (#6e6a86)
		TitleColor:                  tcell.NewRGBColor(235, 188, 186), // rose (#ebbcba)
		GraphicsColor:               tcell.NewRGBColor(156, 207, 216), // foam (#9ccfd8)
		PrimaryTextColor:            tcell.NewRGBColor(224, 222, 244), // text (#e0def4)
		SecondaryTextColor:          tcell.NewRGBColor(144, 140, 170), // subtle (#908caa)
		TertiaryTextColor:           tcell.NewRGBColor(110, 106, 134), // muted (#6e6a86)
		InverseTextColor:            tcell.NewRGBColor(35, 33, 54),    // base (#232136)
		ContrastSecondaryTextColor:  tcell.NewRGBColor(224, 222, 244), // text (#e0def4)
	}
}
