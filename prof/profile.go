// Package prof collects wall-clock timings for the benchmark harness.
package prof

import (
	"sort"
	"sync"
	"time"
)

// Entry is the aggregate timing for one label.
type Entry struct {
	Label string
	Count int
	Total time.Duration
}

// Mean returns the average duration per tracked call.
func (e Entry) Mean() time.Duration {
	if e.Count == 0 {
		return 0
	}
	return e.Total / time.Duration(e.Count)
}

var (
	mu     sync.Mutex
	record map[string]*Entry
)

// Track logs the duration since start under the given label.
func Track(start time.Time, label string) {
	elapsed := time.Since(start)
	mu.Lock()
	if record == nil {
		record = make(map[string]*Entry)
	}
	e, ok := record[label]
	if !ok {
		e = &Entry{Label: label}
		record[label] = e
	}
	e.Count++
	e.Total += elapsed
	mu.Unlock()
}

// SnapshotAndReset returns the collected entries sorted by label and
// clears the record.
func SnapshotAndReset() []Entry {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Entry, 0, len(record))
	for _, e := range record {
		out = append(out, *e)
	}
	record = nil
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}
