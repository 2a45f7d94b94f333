package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"
)

// RemediationChecklist is shown whenever the current month cannot be loaded
var RemediationChecklist = []string{
	"Valid AWS credentials configured",
	"Cost Explorer API access enabled",
	"ce:GetCostAndUsage permission",
}

func messagePanel(lines []string, border string) *tview.TextView {
	panel := tview.NewTextView()
	panel.SetBorder(true)
	panel.SetDynamicColors(true)
	panel.SetWrap(true)
	panel.SetText(strings.Join(lines, "\n"))
	if border != "" {
		panel.SetTitle(border)
	}
	return panel
}

// CreateLoadingPanel is shown until the initial load completes
func CreateLoadingPanel() *tview.TextView {
	panel := messagePanel([]string{
		"",
		fmt.Sprintf("[%s::b]Loading cost data from AWS...[-::-]", tag(colorYellow)),
		"",
		fmt.Sprintf("[%s]This may take a few seconds[-]", tag(colorDim)),
	}, "")
	panel.SetBorderColor(colorYellow)
	return panel
}

// CreateErrorPanel shows a fatal load failure and what to check
func CreateErrorPanel(err error) *tview.TextView {
	lines := []string{
		fmt.Sprintf("[%s::b]Error[-::-]", tag(colorRed)),
		"",
		tview.Escape(err.Error()),
		"",
		fmt.Sprintf("[%s]Make sure you have:[-]", tag(colorYellow)),
	}
	for _, item := range RemediationChecklist {
		lines = append(lines, fmt.Sprintf("[%s]   • %s[-]", tag(colorSubtle), tview.Escape(item)))
	}

	panel := messagePanel(lines, " Error ")
	panel.SetBorderColor(colorRed)
	panel.SetTitleColor(colorRed)
	return panel
}

// CreateNoDataPanel marks a view with nothing to show
func CreateNoDataPanel() *tview.TextView {
	panel := messagePanel([]string{
		"",
		fmt.Sprintf("[%s]No data available[-]", tag(colorSubtle)),
	}, "")
	panel.SetBorderColor(colorDim)
	return panel
}
