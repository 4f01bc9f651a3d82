package main

import (
	"fmt"

	"github.com/fatih/color"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	addedColor   = color.New(color.FgGreen)
	removedColor = color.New(color.FgRed)
	changedColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed, color.Bold)
)

// applyColorMode sets the global color switch from an auto|on|off value.
// "auto" keeps fatih/color's terminal detection.
func applyColorMode(mode string) error {
	switch mode {
	case "", "auto":
	case "on", "always":
		color.NoColor = false
	case "off", "never":
		color.NoColor = true
	default:
		return fmt.Errorf("invalid color mode %q: expected auto, on or off", mode)
	}
	return nil
}
