package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Result 一次计数的输入与结果（Err 非空时 Count 无意义）
type Result struct {
	Name   string
	Deltas []int32
	Low    int64
	High   int64
	Count  int
	Err    error
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	countStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("2")) // 绿色

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1")) // 红色

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

// Title 报告标题
const Title = "Weather anomaly periods"

// Render 渲染报告，每个结果一行：
//
//	<name> Output: <count>  (<deltas> in [low, high])
//	<name>: <error message>
//
// color=false 时不输出任何 ANSI 序列。
func Render(results []Result, color bool) string {
	style := func(s lipgloss.Style, text string) string {
		if !color {
			return text
		}
		return s.Render(text)
	}

	var b strings.Builder
	b.WriteString(style(titleStyle, Title))
	b.WriteString("\n")
	for _, r := range results {
		if r.Err != nil {
			b.WriteString(fmt.Sprintf("%s: %s\n", r.Name, style(errStyle, r.Err.Error())))
			continue
		}
		b.WriteString(fmt.Sprintf("%s Output: %s  %s\n",
			r.Name,
			style(countStyle, fmt.Sprintf("%d", r.Count)),
			style(detailStyle, fmt.Sprintf("(%s in [%d, %d])", formatDeltas(r.Deltas), r.Low, r.High)),
		))
	}
	return b.String()
}

func formatDeltas(deltas []int32) string {
	if deltas == nil {
		return "nil"
	}
	parts := make([]string, len(deltas))
	for i, d := range deltas {
		parts[i] = fmt.Sprintf("%d", d)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
