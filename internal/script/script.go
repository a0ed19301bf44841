// Package script loads typing scripts from plain text files.
package script

import (
	"os"
	"strings"
)

// commentMarker starts a line that is skipped entirely.
const commentMarker = '#'

// Load reads a script file and splits it into lines. Each line keeps its
// trailing newline when present; the final line may lack one. The returned
// slice preserves file order and is never mutated afterwards.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	lines := strings.SplitAfter(string(data), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

// IsComment reports whether a line produces no injected input. Empty lines
// and lines whose first byte is the comment marker are skipped; nothing is
// trimmed before the check.
func IsComment(line string) bool {
	return line == "" || line[0] == commentMarker
}
