package testutil

import "github.com/frudas24/ghosttype/internal/keyinput"

// Call records a single injected key event.
type Call struct {
	Name string
	Char rune
}

// FakeInjector implements keyinput.Injector and records calls for tests.
// When Err is set every call fails with it.
type FakeInjector struct {
	Calls []Call
	Err   error
}

// Ensure FakeInjector implements the interface.
var _ keyinput.Injector = (*FakeInjector)(nil)

// PressChar records a character key press.
func (f *FakeInjector) PressChar(r rune) error {
	if f.Err != nil {
		return f.Err
	}
	f.Calls = append(f.Calls, Call{Name: "PressChar", Char: r})
	return nil
}

// Enter records an Enter key press.
func (f *FakeInjector) Enter() error {
	if f.Err != nil {
		return f.Err
	}
	f.Calls = append(f.Calls, Call{Name: "Enter"})
	return nil
}

// Typed returns the pressed characters in order, ignoring Enter presses.
func (f *FakeInjector) Typed() string {
	var out []rune
	for _, c := range f.Calls {
		if c.Name == "PressChar" {
			out = append(out, c.Char)
		}
	}
	return string(out)
}
