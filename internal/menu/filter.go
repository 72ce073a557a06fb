package menu

import (
	"fmt"
	"time"
)

// Selection modes accepted by Select.
const (
	ModeAll  = "all"
	ModeDay  = "day"
	ModeWeek = "week"
)

// SelectOptions picks which entries of a feed end up on the image.
type SelectOptions struct {
	Mode string
	Date time.Time
}

// Select returns the entries matching opt, preserving feed order.
// Entries without a publish date never match the day or week modes.
func Select(entries []Entry, opt SelectOptions) ([]Entry, error) {
	switch opt.Mode {
	case "", ModeAll:
		out := make([]Entry, len(entries))
		copy(out, entries)
		return out, nil
	case ModeDay, ModeWeek:
	default:
		return nil, fmt.Errorf("unknown selection mode %q", opt.Mode)
	}

	var out []Entry
	for _, e := range entries {
		if e.PublishedAt.IsZero() {
			continue
		}
		published := e.PublishedAt.In(opt.Date.Location())
		if opt.Mode == ModeDay && !sameDay(published, opt.Date) {
			continue
		}
		if opt.Mode == ModeWeek && !sameWeek(published, opt.Date) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func sameWeek(a, b time.Time) bool {
	ay, aw := a.ISOWeek()
	by, bw := b.ISOWeek()
	return ay == by && aw == bw
}
