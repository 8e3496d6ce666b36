// Package ui provides formatted output utilities for the shell.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/mpdsh/mpdsh/internal/protocol"
)

// Color functions for consistent styling.
var (
	Green  = color.New(color.FgGreen).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Blue   = color.New(color.FgBlue).SprintFunc()
	Cyan   = color.New(color.FgCyan).SprintFunc()
	Dim    = color.New(color.Faint).SprintFunc() // Dimmed text (more readable than gray)
	Bold   = color.New(color.Bold).SprintFunc()
)

// Output is the destination for UI output.
// Defaults to os.Stdout but can be overridden for testing.
var Output io.Writer = os.Stdout

// StateBadge returns a colored player state indicator with label.
func StateBadge(state string) string {
	switch state {
	case "play":
		return Green("▶ Playing")
	case "pause":
		return Yellow("‖ Paused")
	case "stop":
		return Dim("■ Stopped")
	default:
		return Red("? " + state)
	}
}

// TypeLabel colors an entry type tag.
func TypeLabel(typ string) string {
	switch typ {
	case "directory":
		return Blue(typ)
	case "playlist":
		return Yellow(typ)
	default:
		return Cyan(typ)
	}
}

// PrintName prints one browsing result as "type: name".
func PrintName(typ, name string) {
	fmt.Fprintf(Output, "%s: %s\n", padRight(TypeLabel(typ), typ, 12), name)
}

// PrintEntry prints an entry header followed by its metadata fields.
func PrintEntry(typ, name string, fields []protocol.Field) {
	PrintName(typ, name)
	for _, f := range fields {
		fmt.Fprintf(Output, " %s %-9s: %s\n", Dim("|"), f.Key, f.Value)
	}
}

// PrintQueueEntry prints one queue position with its current/next marker.
func PrintQueueEntry(flag string, pos int, typ, name string) {
	fmt.Fprintf(Output, "%2s%4d| %s: %s\n", Green(flag), pos, padRight(TypeLabel(typ), typ, 9), name)
}

// PrintQueueField prints a metadata field under a queue entry.
func PrintQueueField(key, value string) {
	fmt.Fprintf(Output, "      %s %-9s: %s\n", Dim("|"), key, value)
}

// PrintAdded prints one entry appended to the queue.
func PrintAdded(typ, name string) {
	fmt.Fprintf(Output, " %s %s: %s\n", Green("A"), padRight(TypeLabel(typ), typ, 9), name)
}

// PrintKV prints a right-aligned label and its value.
func PrintKV(label, value string) {
	fmt.Fprintf(Output, "%s: %s\n", padLeft(Bold(label), label, 10), value)
}

// PrintFields prints raw reply fields as "key: value".
func PrintFields(fields []protocol.Field) {
	for _, f := range fields {
		fmt.Fprintf(Output, "%s: %s\n", f.Key, f.Value)
	}
}

// PrintAck prints a daemon rejection.
func PrintAck(err *protocol.AckError) {
	fmt.Fprintf(Output, "%s error.. (%s)\n", Red("✗"), err.Error())
}

// PrintSuccess prints a success message with green checkmark.
func PrintSuccess(message string) {
	fmt.Fprintf(Output, "%s %s\n", Green("✓"), message)
}

// PrintError prints an error message with red X.
func PrintError(message string) {
	fmt.Fprintf(Output, "%s %s\n", Red("✗"), message)
}

// PrintWarning prints a warning message with yellow exclamation.
func PrintWarning(message string) {
	fmt.Fprintf(Output, "%s %s\n", Yellow("⚠"), message)
}

// PrintInfo prints an info message with blue dot.
func PrintInfo(message string) {
	fmt.Fprintf(Output, "%s %s\n", Blue("•"), message)
}

// Blank prints an empty line.
func Blank() {
	fmt.Fprintln(Output)
}

// padRight and padLeft align a colored string by the width of its plain text.
func padRight(colored, plain string, width int) string {
	return colored + spaces(width-utf8.RuneCountInString(plain))
}

func padLeft(colored, plain string, width int) string {
	return spaces(width-utf8.RuneCountInString(plain)) + colored
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
