package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// quiet suppresses non-essential output when set via SetQuietMode.
var quiet bool

// styled reports whether stdout is a terminal; plain text is emitted when
// output is piped so downstream consumers never see ANSI sequences.
var styled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

// SetQuietMode toggles suppression of non-essential output.
func SetQuietMode(q bool) {
	quiet = q
}

func render(style lipgloss.Style, msg string) string {
	if !styled {
		return msg
	}
	return style.Render(msg)
}

// Println prints an empty line.
func Println() {
	if quiet {
		return
	}
	fmt.Println()
}

// PrintSuccess prints a success message.
func PrintSuccess(format string, args ...interface{}) {
	if quiet {
		return
	}
	fmt.Println(render(SuccessStyle, "✓ "+fmt.Sprintf(format, args...)))
}

// PrintError prints an error message. Errors print even in quiet mode.
func PrintError(format string, args ...interface{}) {
	fmt.Println(render(ErrorStyle, "✗ "+fmt.Sprintf(format, args...)))
}

// PrintWarning prints a warning message.
func PrintWarning(format string, args ...interface{}) {
	if quiet {
		return
	}
	fmt.Println(render(WarningStyle, "⚠ "+fmt.Sprintf(format, args...)))
}

// PrintInfo prints an informational message.
func PrintInfo(format string, args ...interface{}) {
	if quiet {
		return
	}
	fmt.Println(render(InfoStyle, fmt.Sprintf(format, args...)))
}

// PrintDim prints a dimmed message.
func PrintDim(format string, args ...interface{}) {
	if quiet {
		return
	}
	fmt.Println(render(DimStyle, fmt.Sprintf(format, args...)))
}

// PrintItem prints one item of primary command output (for example a
// validation violation) in dim styling. Items print even in quiet mode.
func PrintItem(format string, args ...interface{}) {
	fmt.Println(render(DimStyle, "  - "+fmt.Sprintf(format, args...)))
}
