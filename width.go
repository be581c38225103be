package prettytable

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ANSI SGR color sequences contribute zero display width.
var sgrRE = regexp.MustCompile("\x1b\\[[0-9;]*m")

// runeBlockWidth returns the number of terminal columns a single code point
// occupies. Backspace and delete are width-reducing so that overstruck text
// measures the way a terminal renders it.
func runeBlockWidth(r rune) int {
	switch r {
	case 0x0008, 0x007f:
		return -1
	case 0x0000, 0x000f, 0x001f:
		return 0
	}
	if 0x0021 <= r && r <= 0x007e {
		return 1
	}
	// East-Asian wide and combining classification.
	if w := runewidth.RuneWidth(r); w != 1 {
		return w
	}
	return 1
}

// stringWidth returns the display width of a single line of text.
// ANSI SGR escapes are stripped before measurement.
func stringWidth(s string) int {
	if strings.ContainsRune(s, 0x1b) {
		s = sgrRE.ReplaceAllString(s, "")
	}
	w := 0
	for _, r := range s {
		w += runeBlockWidth(r)
	}
	return w
}

// textSize returns the display size of a possibly multi-line text:
// the width of its widest line and the number of newline-delimited lines.
func textSize(s string) (width, height int) {
	lines := strings.Split(s, "\n")
	for _, line := range lines {
		if w := stringWidth(line); w > width {
			width = w
		}
	}
	return width, len(lines)
}
