package ui

import (
	"fmt"
	"strings"

	"github.com/jdlms/aws-costs/internal/types"
	"github.com/rivo/tview"
)

// CreateHeader creates the title banner
func CreateHeader() *tview.TextView {
	header := tview.NewTextView()
	header.SetBorder(true).SetBorderColor(colorAWS)
	header.SetDynamicColors(true)
	header.SetTextAlign(tview.AlignCenter)
	header.SetText(fmt.Sprintf("[%s::b]AWS[-::-] [white::b]Cost Explorer[-::-] [%s::b]TUI[-::-]",
		tag(colorAWS), tag(colorTeal)))
	return header
}

// tabAccent is the label color of each tab
var tabAccent = map[types.Tab]string{
	types.TabCurrentMonth:  tag(colorGreen),
	types.TabPreviousMonth: tag(colorPurple),
	types.TabTrend:         tag(colorOrange),
}

// CreateTabs creates the tab strip with the selected tab emphasised
func CreateTabs(selected types.Tab) *tview.TextView {
	labels := make([]string, 0, types.TabCount)
	for _, tab := range types.Tabs {
		if tab == selected {
			labels = append(labels, fmt.Sprintf("[white::bu]%s[-::-]", tab))
			continue
		}
		labels = append(labels, fmt.Sprintf("[%s]%s[-]", tabAccent[tab], tab))
	}

	tabs := tview.NewTextView()
	tabs.SetBorder(true).SetTitle(" Views ")
	tabs.SetDynamicColors(true)
	tabs.SetText(" " + strings.Join(labels, fmt.Sprintf(" [%s]│[-] ", tag(colorDim))))
	return tabs
}

// CreateFooter creates the footer text view with help text
func CreateFooter() *tview.TextView {
	keys := []struct{ key, label string }{
		{"q", "Quit"},
		{"←→", "Tab"},
		{"↑↓", "Navigate"},
		{"g/G", "Top/Bottom"},
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("[black:%s] %s [-:-] %s", tag(colorTeal), k.key, k.label))
	}

	footer := tview.NewTextView()
	footer.SetBorder(true).SetTitle(" Shortcuts ")
	footer.SetDynamicColors(true)
	footer.SetText(strings.Join(parts, "  "))
	return footer
}
