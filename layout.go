package prettytable

import (
	"strings"
)

// justify pads text to the given display width. Centering splits excess
// padding with str.center semantics: when the excess is odd, the extra space
// goes right for odd-width content and left for even-width content.
func justify(text string, width int, align Align) string {
	excess := width - stringWidth(text)
	if excess <= 0 {
		return text
	}
	switch align {
	case AlignLeft:
		return text + strings.Repeat(" ", excess)
	case AlignRight:
		return strings.Repeat(" ", excess) + text
	default:
		half := excess / 2
		if excess%2 == 1 {
			if stringWidth(text)%2 == 1 {
				return strings.Repeat(" ", half) + text + strings.Repeat(" ", half+1)
			}
			return strings.Repeat(" ", half+1) + text + strings.Repeat(" ", half)
		}
		return strings.Repeat(" ", half) + text + strings.Repeat(" ", half)
	}
}

// hardBreak splits a single token that is wider than width into display-width
// sized chunks. Every chunk holds at least one rune so the split always
// terminates, even for widths narrower than one wide glyph.
func hardBreak(word string, width int) []string {
	var out []string
	var b strings.Builder
	w := 0
	for _, r := range word {
		rw := runeBlockWidth(r)
		if b.Len() > 0 && w+rw > width {
			out = append(out, b.String())
			b.Reset()
			w = 0
		}
		b.WriteRune(r)
		w += rw
	}
	if b.Len() > 0 {
		out = append(out, b.String())
	}
	return out
}

// wrapLine greedily word-wraps one line to the given display width, breaking
// on whitespace. A single token wider than the budget is hard-broken.
func wrapLine(line string, width int) []string {
	if width <= 0 || stringWidth(line) <= width {
		return []string{line}
	}
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	cur, curw := "", 0
	flush := func() {
		if curw > 0 || cur != "" {
			lines = append(lines, cur)
			cur, curw = "", 0
		}
	}
	for _, word := range words {
		ww := stringWidth(word)
		switch {
		case curw == 0:
			// fresh line
		case curw+1+ww <= width:
			cur += " " + word
			curw += 1 + ww
			continue
		default:
			flush()
		}
		if ww <= width {
			cur, curw = word, ww
			continue
		}
		parts := hardBreak(word, width)
		for _, part := range parts[:len(parts)-1] {
			lines = append(lines, part)
		}
		cur = parts[len(parts)-1]
		curw = stringWidth(cur)
	}
	flush()
	return lines
}

// wrapCell wraps a formatted cell value to the committed column width. The
// value is split on embedded newlines first; only sub-lines wider than the
// budget are wrapped, which makes wrapping idempotent.
func wrapCell(value string, width int) string {
	lines := strings.Split(value, "\n")
	var out []string
	for _, line := range lines {
		if stringWidth(line) > width {
			out = append(out, wrapLine(line, width)...)
		} else {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// valignLines pads lines with blanks to the row height: top pads after,
// bottom pads before, middle splits the deficit with the extra line after.
func valignLines(lines []string, height int, v VAlign) []string {
	deficit := height - len(lines)
	if deficit <= 0 {
		return lines
	}
	out := make([]string, 0, height)
	switch v {
	case VAlignMiddle:
		before := deficit / 2
		out = append(out, blankLines(before)...)
		out = append(out, lines...)
		out = append(out, blankLines(deficit-before)...)
	case VAlignBottom:
		out = append(out, blankLines(deficit)...)
		out = append(out, lines...)
	default:
		out = append(out, lines...)
		out = append(out, blankLines(deficit)...)
	}
	return out
}

func blankLines(n int) []string {
	return make([]string, n)
}
