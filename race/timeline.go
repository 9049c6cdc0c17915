package race

import "sort"

// timeline runs actions at fixed session times. Actions scheduled for the
// same instant run in the order they were scheduled.
type timeline struct {
	entries []scheduled
	seq     int
}

type scheduled struct {
	at  float64
	seq int
	fn  func()
}

func (tl *timeline) schedule(at float64, fn func()) {
	tl.seq++
	e := scheduled{at: at, seq: tl.seq, fn: fn}
	i := sort.Search(len(tl.entries), func(i int) bool {
		x := tl.entries[i]
		return x.at > at || (x.at == at && x.seq > e.seq)
	})
	tl.entries = append(tl.entries, scheduled{})
	copy(tl.entries[i+1:], tl.entries[i:])
	tl.entries[i] = e
}

// run fires every action due at or before now. Actions may schedule more.
func (tl *timeline) run(now float64) {
	for len(tl.entries) > 0 && tl.entries[0].at <= now {
		e := tl.entries[0]
		tl.entries = tl.entries[1:]
		e.fn()
	}
}

func (tl *timeline) pending() int {
	return len(tl.entries)
}
