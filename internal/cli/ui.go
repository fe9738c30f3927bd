package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/postman/postman"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary values
	colorGreen = lipgloss.Color("35")  // Green - success
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - labels
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// StyleTitle for headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(12)
)

const (
	iconSuccess = "✓"
	iconArrow   = "→"
)

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+StyleValue.Render(value))
}

func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printResult writes the human-readable summary of a solve.
func printResult(w io.Writer, res *postman.Result) {
	fmt.Fprintln(w, StyleTitle.Render("Route inspection"))
	printKeyValue(w, "cost", StyleNumber.Render(fmt.Sprint(res.Cost)))
	printKeyValue(w, "edges", fmt.Sprint(max(len(res.Circuit)-1, 0)))
	if len(res.OddVertices) > 0 {
		printKeyValue(w, "odd", strings.Join(res.OddVertices, " "))
		printKeyValue(w, "matching", fmt.Sprintf("%s (+%d)", res.Pairing, res.MatchingCost))
	}
	printKeyValue(w, "tour", strings.Join(res.Circuit, " "+StyleDim.Render(iconArrow)+" "))
}
