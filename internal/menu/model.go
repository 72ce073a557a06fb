package menu

import (
	"strings"
	"time"
)

// Entry is one day of the menu: a title such as "Monday" and a summary that may
// span several lines.
type Entry struct {
	Title       string    `json:"title" yaml:"title" validate:"required"`
	Summary     string    `json:"summary" yaml:"summary"`
	PublishedAt time.Time `json:"published_at" yaml:"published_at"`
}

var lineBreaks = strings.NewReplacer(
	"<br />", "\n",
	"<br/>", "\n",
	"<br>", "\n",
	"\r\n", "\n",
)

// Normalize converts the HTML line breaks used by menu feeds into newlines and
// trims surrounding whitespace from the title and summary.
func Normalize(e Entry) Entry {
	e.Title = strings.TrimSpace(e.Title)
	e.Summary = strings.TrimSpace(lineBreaks.Replace(e.Summary))
	return e
}

// NormalizeAll applies Normalize to every entry, keeping the order.
func NormalizeAll(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = Normalize(e)
	}
	return out
}
