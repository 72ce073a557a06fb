package menu

import "strings"

// ExportText renders entries as plain text suitable for an image's alt text:
// each title on its own line followed by its summary lines indented.
func ExportText(entries []Entry) string {
	lines := []string{}
	for _, e := range entries {
		lines = append(lines, e.Title)
		for _, s := range strings.Split(e.Summary, "\n") {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			lines = append(lines, "  "+s)
		}
	}
	return strings.Join(lines, "\n")
}
