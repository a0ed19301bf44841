//go:build darwin

// Package keyinput defines keyboard input injection interfaces.
package keyinput

import (
	"fmt"
	"os/exec"
	"strings"
)

// OsaInjector injects keyboard input through osascript System Events.
// Requires the Accessibility permission for the invoking terminal.
type OsaInjector struct{}

// NewInjector returns an osascript-backed keyboard injector.
func NewInjector() (Injector, error) {
	if _, err := exec.LookPath("osascript"); err != nil {
		return nil, fmt.Errorf("osascript not found on PATH: %w", err)
	}
	return &OsaInjector{}, nil
}

// PressChar injects one character key press into the focused window.
// Literal newline runes are delivered as the Return key.
func (o *OsaInjector) PressChar(r rune) error {
	if r == '\n' || r == '\r' {
		return o.Enter()
	}
	script := fmt.Sprintf(`tell application "System Events" to keystroke %s`, quoteAppleScript(string(r)))
	return exec.Command("osascript", "-e", script).Run()
}

// Enter sends an Enter key press.
func (o *OsaInjector) Enter() error {
	return exec.Command("osascript", "-e", `tell application "System Events" to keystroke return`).Run()
}

// quoteAppleScript wraps text in an AppleScript string literal.
func quoteAppleScript(text string) string {
	text = strings.ReplaceAll(text, `\`, `\\`)
	text = strings.ReplaceAll(text, `"`, `\"`)
	return `"` + text + `"`
}
