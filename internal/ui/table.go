package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/jdlms/aws-costs/internal/aggregate"
	"github.com/jdlms/aws-costs/internal/types"
	"github.com/rivo/tview"
)

// headerCell builds a fixed, non-selectable column heading
func headerCell(text string) *tview.TableCell {
	return tview.NewTableCell(text).
		SetTextColor(colorYellow).
		SetAttributes(tcell.AttrBold).
		SetSelectable(false)
}

// dataCell builds a body cell that keeps its own color when highlighted
func dataCell(text string, fg tcell.Color, attrs tcell.AttrMask) *tview.TableCell {
	style := tcell.StyleDefault.
		Foreground(fg).
		Background(tview.Styles.PrimitiveBackgroundColor).
		Attributes(attrs)
	return tview.NewTableCell(tview.Escape(text)).
		SetStyle(style).
		SetSelectedStyle(style.Background(colorSelected))
}

// newTable creates a table with a fixed heading row
func newTable(title string, border tcell.Color, headings ...string) *tview.Table {
	table := tview.NewTable()
	table.SetBorder(true).SetTitle(title).SetBorderColor(border)
	table.SetFixed(1, 0)
	for col, h := range headings {
		table.SetCell(0, col, headerCell(h))
	}
	return table
}

// selectRow highlights body row `row` (0-based, below the heading) when it
// exists and scrolls it into view. Out-of-range rows highlight nothing.
func selectRow(table *tview.Table, row, rows int) {
	if row < 0 || row >= rows {
		table.SetSelectable(false, false)
		return
	}
	table.SetSelectable(true, false)
	table.Select(row+1, 0)
}

// CreateSummaryPanel shows a period's totals above its breakdown
func CreateSummaryPanel(summary types.CostSummary, accent tcell.Color) *tview.TextView {
	panel := tview.NewTextView()
	panel.SetBorder(true).
		SetTitle(" Cost Summary ").
		SetTitleColor(accent).
		SetBorderColor(accent).
		SetBorderPadding(0, 0, 1, 1)
	panel.SetDynamicColors(true)
	panel.SetText(fmt.Sprintf(
		"[%s]Period:[-] [white::b]%s[-::-]\n[%s]Total Cost:[-] [%s::b]%s[-::-] [%s]%s[-]  [%s](%d services)[-]",
		tag(colorSubtle), tview.Escape(summary.Period),
		tag(colorSubtle), tag(SeverityColor(summary.TotalCost)), FormatMoney(summary.TotalCost),
		tag(colorDim), tview.Escape(summary.Currency),
		tag(colorSubtle), len(summary.Breakdown),
	))
	return panel
}

// CreateBreakdownTable ranks a period's services by cost. Shares are
// recomputed from the summary total on every call.
func CreateBreakdownTable(summary types.CostSummary, selectedRow int, settings Settings) *tview.Table {
	table := newTable(" Service Breakdown ", colorTeal, "#", "", "Service", "Cost", "%", "Distribution")

	for i, s := range aggregate.ComputePercentages(summary) {
		row := i + 1
		color := settings.ServiceColor(i)
		table.SetCell(row, 0, dataCell(fmt.Sprintf("#%d", row), colorDim, 0))
		table.SetCell(row, 1, dataCell("██", color, 0))
		table.SetCell(row, 2, dataCell(TruncateServiceName(s.Service, settings.NameWidth), colorText, 0).SetExpansion(1))
		table.SetCell(row, 3, dataCell(FormatMoney(s.Cost), SeverityColor(s.Cost), tcell.AttrBold).
			SetAlign(tview.AlignRight))
		table.SetCell(row, 4, dataCell(FormatPercent(s.Percentage), colorSubtle, 0).SetAlign(tview.AlignRight))
		table.SetCell(row, 5, dataCell(ProportionBar(s.Percentage, settings.BarWidth), color, 0))
	}

	selectRow(table, selectedRow, len(summary.Breakdown))
	return table
}

// CreateBreakdownView stacks the summary panel over the ranked table
func CreateBreakdownView(summary types.CostSummary, selectedRow int, accent tcell.Color, settings Settings) *tview.Flex {
	return tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(CreateSummaryPanel(summary, accent), 4, 0, false).
		AddItem(CreateBreakdownTable(summary, selectedRow, settings), 0, 1, false)
}

// CreateMonthlyTotalsTable lists each trend month with its change from the
// month before. The newest month is emphasised.
func CreateMonthlyTotalsTable(trend []types.CostSummary) *tview.Table {
	table := newTable(" Monthly Totals ", colorYellow, "Period", "Total", "Change")
	last := len(trend) - 1

	for i, month := range trend {
		row := i + 1
		change := aggregate.MonthOverMonthChange(trend, i)

		periodColor := colorText
		var attrs tcell.AttrMask
		if i == last {
			periodColor = colorGreen
			attrs = tcell.AttrBold
		}

		table.SetCell(row, 0, dataCell(month.Period, periodColor, attrs).SetExpansion(1))
		table.SetCell(row, 1, dataCell(FormatMoney(month.TotalCost), SeverityColor(month.TotalCost), tcell.AttrBold).
			SetAlign(tview.AlignRight))
		table.SetCell(row, 2, dataCell(FormatChange(change, i == 0), ChangeColor(change), attrs).
			SetAlign(tview.AlignRight))
	}
	return table
}

// CreateLegend maps each tracked service's color to its name
func CreateLegend(services []string, selectedRow int, settings Settings) *tview.Table {
	table := tview.NewTable()
	table.SetBorder(true).SetTitle(" Services ").SetBorderColor(colorTeal)
	table.SetBorderPadding(0, 0, 1, 1)

	for i, service := range services {
		table.SetCell(i, 0, dataCell("██", settings.ServiceColor(i), 0))
		table.SetCell(i, 1, dataCell(TruncateServiceName(service, settings.NameWidth), colorText, 0).SetExpansion(1))
	}

	if selectedRow >= 0 && selectedRow < len(services) {
		table.SetSelectable(true, false)
		table.Select(selectedRow, 0)
	}
	return table
}
