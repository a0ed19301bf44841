//go:build !windows && !linux && !darwin

// Package keyinput defines keyboard input injection interfaces.
package keyinput

import "errors"

// ErrUnsupported indicates keyboard injection is not available on this platform.
var ErrUnsupported = errors.New("keyinput is not supported on this platform")

// NoopInjector is a placeholder injector for unsupported platforms.
type NoopInjector struct{}

// NewInjector returns a non-functional injector on unsupported platforms.
func NewInjector() (Injector, error) {
	return &NoopInjector{}, ErrUnsupported
}

// PressChar returns ErrUnsupported.
func (n *NoopInjector) PressChar(r rune) error {
	_ = r
	return ErrUnsupported
}

// Enter returns ErrUnsupported.
func (n *NoopInjector) Enter() error {
	return ErrUnsupported
}
