package ui

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/jdlms/aws-costs/internal/aggregate"
	"github.com/jdlms/aws-costs/internal/types"
	"github.com/rivo/tview"
)

const (
	chartBarWidth = 2
	chartGroupGap = 3
)

// partial blocks from one to seven eighths of a cell
var eighths = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇'}

// BarChart draws one group of vertical bars per month, one bar per tracked
// service, all scaled against the largest single bar.
type BarChart struct {
	*tview.Box
	months   []types.CostSummary
	services []string
	settings Settings
}

// NewBarChart creates a grouped bar chart for the trend
func NewBarChart(months []types.CostSummary, services []string, settings Settings) *BarChart {
	chart := &BarChart{
		Box:      tview.NewBox(),
		months:   months,
		services: services,
		settings: settings,
	}
	chart.SetBorder(true).
		SetTitle(" Monthly Cost Trend by Service ").
		SetTitleColor(colorOrange).
		SetBorderColor(colorOrange)
	return chart
}

// Heights returns each bar's height in eighths of a cell for a chart body of
// the given number of rows, indexed by month then service
func (c *BarChart) Heights(rows int) [][]int {
	peak := 0.0
	for _, month := range c.months {
		for _, service := range c.services {
			peak = math.Max(peak, aggregate.ServiceCostIn(month, service))
		}
	}

	heights := make([][]int, len(c.months))
	for m, month := range c.months {
		heights[m] = make([]int, len(c.services))
		if peak == 0 {
			continue
		}
		for s, service := range c.services {
			cost := aggregate.ServiceCostIn(month, service)
			heights[m][s] = int(math.Round(cost / peak * float64(rows*8)))
		}
	}
	return heights
}

// Draw implements tview.Primitive
func (c *BarChart) Draw(screen tcell.Screen) {
	c.Box.DrawForSubclass(screen, c)
	x, y, width, height := c.GetInnerRect()
	if width <= 0 || height < 2 {
		return
	}

	rows := height - 1
	baseline := y + rows - 1
	groupWidth := len(c.services)*chartBarWidth + chartGroupGap
	background := tview.Styles.PrimitiveBackgroundColor
	labelStyle := tcell.StyleDefault.Foreground(colorText).Background(background).Bold(true)

	for m, bars := range c.Heights(rows) {
		groupX := x + 1 + m*groupWidth
		if groupX >= x+width {
			break
		}

		for s, h := range bars {
			style := tcell.StyleDefault.Foreground(c.settings.ServiceColor(s)).Background(background)
			for col := 0; col < chartBarWidth; col++ {
				bx := groupX + s*chartBarWidth + col
				if bx >= x+width {
					break
				}
				drawBar(screen, bx, baseline, rows, h, style)
			}
		}

		tview.PrintWithStyle(screen, ShortMonth(c.months[m].Period), groupX, y+rows, groupWidth-chartGroupGap, tview.AlignLeft, labelStyle)
	}
}

// drawBar fills a column upward from baseline with h eighths of a cell
func drawBar(screen tcell.Screen, x, baseline, rows, h int, style tcell.Style) {
	full, rest := h/8, h%8
	for r := 0; r < full && r < rows; r++ {
		screen.SetContent(x, baseline-r, '█', nil, style)
	}
	if rest > 0 && full < rows {
		screen.SetContent(x, baseline-full, eighths[rest-1], nil, style)
	}
}

// CreateTrendView lays out the chart above the legend and monthly totals
func CreateTrendView(trend []types.CostSummary, selectedRow int, settings Settings) *tview.Flex {
	services := aggregate.TopServicesAcrossMonths(trend, settings.TopServices)

	bottom := tview.NewFlex().
		AddItem(CreateLegend(services, selectedRow, settings), 0, 2, false).
		AddItem(CreateMonthlyTotalsTable(trend), 0, 3, false)

	return tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(NewBarChart(trend, services, settings), 0, 13, false).
		AddItem(bottom, 0, 7, false)
}
