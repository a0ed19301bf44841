// Package keyinput defines keyboard input injection interfaces.
package keyinput

// Injector defines the key injection operations used by the simulator.
// Events are delivered to whichever window currently holds OS input focus.
type Injector interface {
	PressChar(r rune) error
	Enter() error
}
