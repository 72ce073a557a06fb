package imagepkg

import (
	"strings"
	"unicode"
)

// Wrap breaks text into lines no wider than maxWidth as measured by m.
//
// Words are appended greedily in one pass. An explicit newline always ends the
// current line. Words are never split, so a single word wider than maxWidth is
// placed alone on its own line and overflows.
func Wrap(text string, m Metric, maxWidth float64) []string {
	lines := []string{""}
	var word strings.Builder

	flush := func() {
		if word.Len() == 0 {
			return
		}
		w := word.String()
		word.Reset()

		last := lines[len(lines)-1]
		if last == "" {
			lines[len(lines)-1] = w
			return
		}
		candidate := last + " " + w
		if m.Width(candidate) > maxWidth {
			lines = append(lines, w)
			return
		}
		lines[len(lines)-1] = candidate
	}

	for _, r := range strings.TrimSpace(text) {
		switch {
		case r == '\n':
			flush()
			lines = append(lines, "")
		case unicode.IsSpace(r):
			flush()
		default:
			word.WriteRune(r)
		}
	}
	flush()

	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}
