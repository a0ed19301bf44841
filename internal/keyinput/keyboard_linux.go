//go:build linux

// Package keyinput defines keyboard input injection interfaces.
package keyinput

import (
	"fmt"
	"os/exec"
)

// XdoInjector injects keyboard input through the xdotool binary.
type XdoInjector struct {
	path string
}

// NewInjector returns an xdotool-backed keyboard injector.
func NewInjector() (Injector, error) {
	path, err := exec.LookPath("xdotool")
	if err != nil {
		return nil, fmt.Errorf("xdotool not found on PATH: %w", err)
	}
	return &XdoInjector{path: path}, nil
}

// PressChar injects one character key press into the focused window.
// Literal newline runes are delivered as the Return key.
func (x *XdoInjector) PressChar(r rune) error {
	if r == '\n' || r == '\r' {
		return x.Enter()
	}
	return exec.Command(x.path, "type", "--delay", "0", "--", string(r)).Run()
}

// Enter sends an Enter key press.
func (x *XdoInjector) Enter() error {
	return exec.Command(x.path, "key", "--clearmodifiers", "Return").Run()
}
