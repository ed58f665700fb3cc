// Package availability answers overlap queries over a user's busy time.
//
// A Model is an immutable snapshot built once per request from persisted tasks
// and imported calendar events. A nil *Model behaves as an empty calendar.
package availability

import (
	"cmp"
	"iter"
	"slices"
	"sort"
	"time"

	"smart-task-scheduler/internal/model"
)

// Source tells where a busy entry came from.
type Source string

const (
	SourceTask     Source = "task"
	SourceCalendar Source = "calendar"
)

// Busy is one entry that blocks time.
type Busy struct {
	ID       string
	Title    string
	TaskType model.TaskType
	Source   Source
	Interval model.Interval
}

type Model struct {
	entries []Busy
	merged  []model.Interval
}

// New builds a snapshot. Entries with empty or inverted intervals are dropped.
func New(busy []Busy) *Model {
	entries := make([]Busy, 0, len(busy))
	for _, b := range busy {
		if b.Interval.Valid() {
			entries = append(entries, b)
		}
	}
	slices.SortStableFunc(entries, func(a, b Busy) int {
		if c := a.Interval.Start.Compare(b.Interval.Start); c != 0 {
			return c
		}
		if c := a.Interval.End.Compare(b.Interval.End); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	merged := make([]model.Interval, 0, len(entries))
	for _, e := range entries {
		n := len(merged)
		if n > 0 && !e.Interval.Start.After(merged[n-1].End) {
			if e.Interval.End.After(merged[n-1].End) {
				merged[n-1].End = e.Interval.End
			}
			continue
		}
		merged = append(merged, e.Interval)
	}

	return &Model{entries: entries, merged: merged}
}

// FromTasks converts persisted tasks into busy entries, skipping tasks that do
// not take part in overlap checks.
func FromTasks(tasks []model.Task) []Busy {
	busy := make([]Busy, 0, len(tasks))
	for _, t := range tasks {
		iv, ok := t.Interval()
		if !ok {
			continue
		}
		busy = append(busy, Busy{
			ID:       t.ID,
			Title:    t.Title,
			TaskType: t.TaskType,
			Source:   SourceTask,
			Interval: iv,
		})
	}
	return busy
}

// Len returns the number of busy entries in the snapshot.
func (m *Model) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// firstEndingAfter returns the index of the first merged interval with End > t.
func (m *Model) firstEndingAfter(t time.Time) int {
	return sort.Search(len(m.merged), func(i int) bool {
		return m.merged[i].End.After(t)
	})
}

// Overlaps reports whether [start, end) intersects any busy interval.
func (m *Model) Overlaps(start, end time.Time) bool {
	if m == nil || !start.Before(end) {
		return false
	}
	i := m.firstEndingAfter(start)
	return i < len(m.merged) && m.merged[i].Start.Before(end)
}

// Conflicts lists the individual busy entries intersecting [start, end),
// ordered by start.
func (m *Model) Conflicts(start, end time.Time) []Busy {
	if m == nil || !start.Before(end) {
		return nil
	}
	q := model.Interval{Start: start, End: end}
	var out []Busy
	for _, e := range m.entries {
		if !e.Interval.Start.Before(end) {
			break
		}
		if e.Interval.Overlaps(q) {
			out = append(out, e)
		}
	}
	return out
}

// BusyIntervals yields merged, non-overlapping busy intervals intersecting
// [from, to), clipped to that range, in ascending order. The sequence is lazy
// and can be ranged over any number of times.
func (m *Model) BusyIntervals(from, to time.Time) iter.Seq[model.Interval] {
	return func(yield func(model.Interval) bool) {
		if m == nil || !from.Before(to) {
			return
		}
		for i := m.firstEndingAfter(from); i < len(m.merged); i++ {
			iv := m.merged[i]
			if !iv.Start.Before(to) {
				return
			}
			if iv.Start.Before(from) {
				iv.Start = from
			}
			if iv.End.After(to) {
				iv.End = to
			}
			if !yield(iv) {
				return
			}
		}
	}
}
