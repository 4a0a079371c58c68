package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/cosmicstudio/cs-stellar/internal/evolution"
	"github.com/cosmicstudio/cs-stellar/internal/stellar"
)

// Styles for the colored summary output
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	ruleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	sparkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))

	remnantStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

// classStyles colors spectral class cells with the catalog display colors.
var classStyles = func() map[stellar.SpectralClass]lipgloss.Style {
	m := make(map[stellar.SpectralClass]lipgloss.Style, len(stellar.Classes))
	for _, ci := range stellar.Classes {
		m[ci.Class] = lipgloss.NewStyle().Foreground(lipgloss.Color(ci.Hex)).Bold(true)
	}
	return m
}()

// useColor resolves the color config key: "always", "never", or "auto",
// where auto means stdout is a terminal.
func useColor() bool {
	switch cfg.Color {
	case "always":
		return true
	case "never":
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// classCell pads the class label to width before styling it, keeping the
// escape codes out of the column alignment. Remnant labels have no catalog
// color and render dim.
func classCell(class string, width int) string {
	padded := fmt.Sprintf("%-*s", width, class)
	st, ok := classStyles[stellar.SpectralClass(class)]
	if !ok {
		st = remnantStyle
	}
	return st.Render(padded)
}

// swatch renders a small color sample, or nothing when color is off.
func swatch(hex string) string {
	if !useColor() {
		return ""
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██")
}

// renderSparkline styles a sparkline when color is wanted.
func renderSparkline(spark string) string {
	if !useColor() {
		return spark
	}
	return sparkStyle.Render(spark)
}

// renderSummary writes the phase table for a track. The plain path is the
// canonical table; the colored path mirrors it with styled cells.
func renderSummary(w io.Writer, t *evolution.Track, generatedAt time.Time, colored bool) {
	if !colored {
		evolution.WriteSummaryTable(w, t, generatedAt)
		return
	}

	title := fmt.Sprintf("Evolution of a %.2f Msun star [%s]", t.InitialMass, t.Regime)
	fmt.Fprintf(w, "%s @ %s\n", titleStyle.Render(title), generatedAt.Format(time.RFC3339))
	rule := ruleStyle.Render(strings.Repeat("─", 90))
	fmt.Fprintln(w, rule)

	rows := evolution.GenerateSummaryRows(t)
	if len(rows) == 0 {
		fmt.Fprintln(w, "No snapshots")
		return
	}

	header := fmt.Sprintf("%-24s %-10s %-10s %-10s %-12s %-12s %-5s",
		"Phase", "Start", "End", "Span", "L (Lsun)", "R (Rsun)", "Class")
	fmt.Fprintln(w, headerStyle.Render(header))
	fmt.Fprintln(w, rule)

	for _, r := range rows {
		fmt.Fprintf(w, "%-24s %-10s %-10s %-10s %-12s %-12s %s\n",
			r.Phase.Label(), r.Start, r.End, r.Span, r.Lum, r.Radius,
			classCell(r.Class, 5))
	}

	spark := evolution.ComputeLuminosityTrace(t, cfg.TraceWidth).Sparkline()
	fmt.Fprintf(w, "\nlog L  %s\n", sparkStyle.Render(spark))

	final := t.FinalState()
	fmt.Fprintf(w, "Final: %s (%s) after %s at %.2f Msun\n",
		final.Phase.Label(), classCell(string(final.SpectralClass), 0),
		evolution.FormatAge(final.Age), final.Mass)
	fmt.Fprintf(w, "Total: %d snapshots across %d phases, track %s\n",
		len(t.Snapshots), len(rows), t.ID)
}
