package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"chanedit/internal/app"
	"chanedit/internal/model"
)

var (
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	styleInfo    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	styleBorder  = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
)

// consoleReporter 终端消息输出
type consoleReporter struct {
	w     io.Writer
	color bool
}

func (r *consoleReporter) print(style lipgloss.Style, prefix, msg string) {
	line := prefix + " " + msg
	if r.color {
		line = style.Render(line)
	}
	fmt.Fprintln(r.w, line)
}

func (r *consoleReporter) Info(msg string)    { r.print(styleInfo, "ℹ", msg) }
func (r *consoleReporter) Success(msg string) { r.print(styleSuccess, "✓", msg) }
func (r *consoleReporter) Error(msg string)   { r.print(styleError, "✗", msg) }

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styleBorder).
		Headers(headers...)
}

// renderReport 提交结果表格
func renderReport(w io.Writer, report *app.Report) {
	rows := make([][]string, 0, len(report.Items))
	for _, it := range report.Items {
		rows = append(rows, []string{
			strconv.Itoa(it.Index + 1),
			it.Name,
			it.BaseURL,
			outcomeLabel(it.Kind),
			it.Message,
		})
	}
	fmt.Fprintln(w, newTable("#", "Name", "Base URL", "Result", "Message").Rows(rows...))
	fmt.Fprintf(w, "run %s: %d succeeded, %d failed\n", report.RunID, report.Succeeded(), report.Failed())
}

func outcomeLabel(k model.OutcomeKind) string {
	switch k {
	case model.OutcomeSuccess:
		return "✓ success"
	case model.OutcomeRejected:
		return "✗ rejected"
	case model.OutcomeTransportError:
		return "✗ error"
	}
	return string(k)
}
