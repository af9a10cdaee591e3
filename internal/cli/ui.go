package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/treeview/pkg/layout"
)

// out receives all status output. The root command points it at
// cmd.OutOrStdout() before any subcommand runs.
var out io.Writer = os.Stdout

var (
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleValue   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	styleNumber  = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	styleWarning = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	styleKey     = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	styleCommand = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
)

// status marks the kind of a one-line status message.
type status struct {
	icon  string
	style lipgloss.Style
}

var (
	statusOK      = status{"✓", lipgloss.NewStyle().Foreground(lipgloss.Color("35"))}
	statusFailed  = status{"✗", lipgloss.NewStyle().Foreground(lipgloss.Color("167"))}
	statusWarning = status{"!", styleWarning}
	statusInfo    = status{"›", lipgloss.NewStyle().Foreground(lipgloss.Color("245"))}
	statusSpinner = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
)

func (s status) print(msg string) {
	fmt.Fprintln(out, s.style.Render(s.icon)+" "+msg)
}

func printSuccess(format string, args ...any) { statusOK.print(fmt.Sprintf(format, args...)) }
func printError(format string, args ...any)   { statusFailed.print(fmt.Sprintf(format, args...)) }
func printInfo(format string, args ...any)    { statusInfo.print(fmt.Sprintf(format, args...)) }

func printWarning(format string, args ...any) {
	statusWarning.print(styleWarning.Render(fmt.Sprintf(format, args...)))
}

// printDetail prints an indented, dimmed line.
func printDetail(format string, args ...any) {
	fmt.Fprintln(out, "  "+styleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints an output path under the preceding status line.
func printFile(path string) {
	fmt.Fprintln(out, "  "+styleDim.Render("→")+" "+styleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Fprintln(out, styleKey.Render(key)+" "+styleValue.Render(value))
}

// printNextStep suggests a command to run next.
func printNextStep(description, cmd string) {
	fmt.Fprintln(out, styleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

// printStats prints layout statistics on a single line.
func printStats(l layout.Layout) {
	printDetail("%s", strings.Join(layoutStats(l), " · "))
}

func layoutStats(l layout.Layout) []string {
	parts := []string{
		fmt.Sprintf("%d nodes", l.Len()),
		fmt.Sprintf("%d×%d grid", l.Bounds.Width(), l.Bounds.Height()),
		l.Strategy.String(),
	}
	if n := len(l.Overlaps()); n > 0 {
		parts = append(parts, fmt.Sprintf("%d shared cells", n))
	}
	return parts
}
