package util

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// IsTTY returns true if stdout is a terminal.
func IsTTY() bool {
	return isTerminal(os.Stdout)
}

// IsInputTTY returns true if stdin is a terminal. Interactive views need
// both ends attached.
func IsInputTTY() bool {
	return isTerminal(os.Stdin)
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// InitColor configures color output based on flags and terminal detection.
// NO_COLOR in the environment disables color as well.
func InitColor(noColor bool) {
	if noColor || os.Getenv("NO_COLOR") != "" || !IsTTY() {
		color.NoColor = true
	}
}
