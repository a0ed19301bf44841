//go:build windows

// Package keyinput defines keyboard input injection interfaces.
package keyinput

import "github.com/lxn/win"

// WinInjector injects keyboard input using WinAPI SendInput.
type WinInjector struct{}

// NewInjector returns a Windows keyboard injector.
func NewInjector() (Injector, error) {
	return &WinInjector{}, nil
}

// sendKeyboardInput dispatches a single keyboard input event.
func sendKeyboardInput(key win.KEYBDINPUT) error {
	input := win.INPUT{
		Type: win.INPUT_KEYBOARD,
		Ki:   key,
	}
	if win.SendInput(1, &input, int32(unsafeSizeofInput())) != 1 {
		return win.GetLastError()
	}
	return nil
}

// unsafeSizeofInput returns the input struct size for SendInput.
func unsafeSizeofInput() uintptr {
	return unsafeSizeofInputValue
}

var unsafeSizeofInputValue = uintptr(win.SizeofINPUT)
