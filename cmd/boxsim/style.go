package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"

	"github.com/vovakirdan/boxsim/internal/physics"
	"github.com/vovakirdan/boxsim/internal/runner"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(10)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderColor = lipgloss.Color("240")
)

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(borderColor).
	Padding(0, 1)

// kindColors maps mass kinds to terminal colors.
var kindColors = map[physics.MassKind]lipgloss.Color{
	physics.MassInfinite: lipgloss.Color("8"),  // Gray
	physics.MassDensity:  lipgloss.Color("6"),  // Cyan
	physics.MassFixed:    lipgloss.Color("11"), // Bright yellow
}

// termWidth returns the stdout width, or 80 when stdout is not a terminal.
func termWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

func field(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
}

// renderReport formats the summary of a run.
func renderReport(rep runner.Report, width int) string {
	lines := []string{
		titleStyle.Render(rep.Title) + " (" + rep.Scene + ")",
		"",
		field("Ticks", fmt.Sprintf("%d simulated, %d steps", rep.Ticks, rep.Steps)),
		field("Bodies", strconv.Itoa(rep.Bodies)),
		field("Elapsed", fmt.Sprintf("%s (%.0f ticks/s)", rep.Elapsed.Round(time.Microsecond), rep.TicksPerSecond())),
		field("Momentum", fmt.Sprintf("(%.4f, %.4f)", rep.Momentum.X, rep.Momentum.Y)),
		field("Energy", fmt.Sprintf("%.4f", rep.Energy)),
		field("Hash", fmt.Sprintf("%016x", rep.Hash)),
	}
	if rep.Cancelled {
		lines = append(lines, "", warnStyle.Render("Run was cancelled before completion."))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	if width > 4 && lipgloss.Width(body)+4 > width {
		return boxStyle.Width(width - 2).Render(body)
	}
	return boxStyle.Render(body)
}

// renderBodies formats every body of a snapshot as a table, colored by mass
// kind.
func renderBodies(snap physics.Snapshot, width int) string {
	kinds := make([]physics.MassKind, len(snap.Bodies))
	rows := make([][]string, len(snap.Bodies))
	for i, b := range snap.Bodies {
		kinds[i] = b.Kind
		mass := "-"
		if b.Kind != physics.MassInfinite {
			mass = strconv.FormatFloat(b.Mass, 'g', 6, 64)
		}
		rows[i] = []string{
			strconv.FormatUint(uint64(b.Key), 10),
			b.Kind.String(),
			mass,
			fmt.Sprintf("%dx%d", b.Width, b.Height),
			fmt.Sprintf("%.2f", b.X),
			fmt.Sprintf("%.2f", b.Y),
			fmt.Sprintf("%.2f", b.VX),
			fmt.Sprintf("%.2f", b.VY),
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(borderColor)).
		Headers("KEY", "KIND", "MASS", "SIZE", "X", "Y", "VX", "VY").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 1 && row >= 0 && row < len(kinds) {
				return cellStyle.Foreground(kindColors[kinds[row]])
			}
			return cellStyle
		})
	if width > 0 && lipgloss.Width(t.String()) > width {
		t = t.Width(width)
	}
	return t.String()
}
