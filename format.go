package parc

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	errorStyle    = color.New(color.FgRed, color.Bold)
	messageStyle  = color.New(color.FgYellow, color.Bold)
	locusStyle    = color.New(color.FgCyan, color.Bold)
	gutterStyle   = color.New(color.FgHiBlue, color.Bold)
	expectedStyle = color.New(color.FgGreen, color.Bold)
)

const tabWidth = 8

// FormatError renders err as a caret-style diagnostic against the source
// text the parse ran over: the failing line with a gutter-aligned line
// number, a caret under the failure column, and the expected alternatives.
func FormatError(src string, err *Error) string {
	var builder strings.Builder

	builder.WriteString(errorStyle.Sprint("error: "))
	builder.WriteString(messageStyle.Sprintf("%s\n", err.Message))

	lineNumWidth := len(fmt.Sprintf("%d", err.Pos.Line))
	padding := strings.Repeat(" ", lineNumWidth+1)

	builder.WriteString(gutterStyle.Sprintf("%s--> ", strings.Repeat(" ", lineNumWidth)))
	builder.WriteString(locusStyle.Sprintf("%d:%d\n", err.Pos.Line, err.Pos.Column))

	lines := strings.Split(src, "\n")
	if err.Pos.Line >= 1 && err.Pos.Line <= len(lines) {
		expandedLine := expandTabs(lines[err.Pos.Line-1])
		caretColumn := visualColumn(lines[err.Pos.Line-1], err.Pos.Column)

		builder.WriteString(gutterStyle.Sprintf("%s|\n", padding))
		builder.WriteString(gutterStyle.Sprintf("%*d | ", lineNumWidth, err.Pos.Line))
		builder.WriteString(expandedLine)
		builder.WriteString("\n")

		builder.WriteString(gutterStyle.Sprintf("%s| ", padding))
		builder.WriteString(strings.Repeat(" ", caretColumn))
		builder.WriteString(errorStyle.Sprint("^"))
		builder.WriteString("\n")
	}

	if len(err.Expected) > 0 {
		builder.WriteString(gutterStyle.Sprintf("%s= ", padding))
		builder.WriteString(expectedStyle.Sprintf("expected %s\n", strings.Join(err.Expected, ", ")))
	}

	return builder.String()
}

// expandTabs replaces tab characters with spaces, considering a tab width of 8.
func expandTabs(line string) string {
	var expanded strings.Builder
	column := 0
	for _, ch := range line {
		if ch == '\t' {
			spaceCount := tabWidth - (column % tabWidth)
			for i := 0; i < spaceCount; i++ {
				expanded.WriteByte(' ')
				column++
			}
		} else {
			expanded.WriteRune(ch)
			column++
		}
	}
	return expanded.String()
}

// visualColumn converts a 1-based source column into the on-screen column
// of the tab-expanded line, so the caret lines up under the failure site.
func visualColumn(line string, column int) int {
	visual := 0
	for i, ch := range line {
		if i+1 >= column {
			break
		}
		if ch == '\t' {
			visual += tabWidth - (visual % tabWidth)
		} else {
			visual++
		}
	}
	return visual
}
