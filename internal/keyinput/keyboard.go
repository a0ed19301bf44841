//go:build windows

// Package keyinput defines keyboard input injection interfaces.
package keyinput

import (
	"unicode/utf16"

	"github.com/lxn/win"
)

// PressChar injects one character key press into the focused window.
// Literal newline runes are delivered as the Return key, matching how the
// character types from a physical keyboard.
func (w *WinInjector) PressChar(r rune) error {
	if r == '\n' || r == '\r' {
		return w.Enter()
	}
	for _, code := range utf16.Encode([]rune{r}) {
		if err := sendKeyboardInput(win.KEYBDINPUT{WScan: code, DwFlags: win.KEYEVENTF_UNICODE}); err != nil {
			return err
		}
		if err := sendKeyboardInput(win.KEYBDINPUT{WScan: code, DwFlags: win.KEYEVENTF_UNICODE | win.KEYEVENTF_KEYUP}); err != nil {
			return err
		}
	}
	return nil
}

// Enter sends an Enter key press.
func (w *WinInjector) Enter() error {
	if err := sendKeyboardInput(win.KEYBDINPUT{WVk: win.VK_RETURN}); err != nil {
		return err
	}
	return sendKeyboardInput(win.KEYBDINPUT{WVk: win.VK_RETURN, DwFlags: win.KEYEVENTF_KEYUP})
}
