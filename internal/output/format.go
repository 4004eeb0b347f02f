// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"refsync/internal/source"
)

// FormatProject formats a project line for the projects command.
func FormatProject(w io.Writer, p source.Project) {
	fmt.Fprintln(w, normalizeText(p.Name))
}

// FormatTask formats a task line for the tasks command.
// Format: "{N:>4}  {CONTENT}\n" (4-wide right-aligned number, two spaces, content)
func FormatTask(w io.Writer, num int, t source.Task) {
	fmt.Fprintf(w, "%4d  %s\n", num, normalizeText(t.Content))
}

// normalizeText normalizes free text for single-line display.
// - Empty or whitespace-only text becomes "(untitled)"
// - Newlines are replaced with spaces
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r", " ")
	text = strings.ReplaceAll(text, "\n", " ")

	if strings.TrimSpace(text) == "" {
		return "(untitled)"
	}
	return text
}
