package models

import "sort"

// Entry is one label/count pair of a FrequencyDistribution.
type Entry struct {
	Label string
	Count int
}

// FrequencyDistribution counts occurrences per label. Entries keep the order
// in which labels were first seen until Sorted is called.
type FrequencyDistribution struct {
	entries []Entry
	index   map[string]int
}

// NewFrequencyDistribution returns an empty distribution.
func NewFrequencyDistribution() *FrequencyDistribution {
	return &FrequencyDistribution{index: make(map[string]int)}
}

// Inc adds one occurrence of label.
func (d *FrequencyDistribution) Inc(label string) {
	d.Add(label, 1)
}

// Add adds n occurrences of label.
func (d *FrequencyDistribution) Add(label string, n int) {
	if i, ok := d.index[label]; ok {
		d.entries[i].Count += n
		return
	}
	d.index[label] = len(d.entries)
	d.entries = append(d.entries, Entry{Label: label, Count: n})
}

// Get returns the count for label and whether it is present.
func (d *FrequencyDistribution) Get(label string) (int, bool) {
	i, ok := d.index[label]
	if !ok {
		return 0, false
	}
	return d.entries[i].Count, true
}

// Len is the number of distinct labels.
func (d *FrequencyDistribution) Len() int {
	return len(d.entries)
}

// Total is the sum of all counts.
func (d *FrequencyDistribution) Total() int {
	total := 0
	for _, e := range d.entries {
		total += e.Count
	}
	return total
}

// Entries returns a copy of the entries in their current order.
func (d *FrequencyDistribution) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Labels returns the labels in their current order.
func (d *FrequencyDistribution) Labels() []string {
	out := make([]string, len(d.entries))
	for i, e := range d.entries {
		out[i] = e.Label
	}
	return out
}

// Sorted returns a new distribution ordered by count descending. Labels with
// equal counts keep their relative order.
func (d *FrequencyDistribution) Sorted() *FrequencyDistribution {
	entries := d.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	out := &FrequencyDistribution{entries: entries, index: make(map[string]int, len(entries))}
	for i, e := range entries {
		out.index[e.Label] = i
	}
	return out
}

// Top returns at most n leading entries; n <= 0 returns all of them.
func (d *FrequencyDistribution) Top(n int) []Entry {
	if n <= 0 || n >= len(d.entries) {
		return d.Entries()
	}
	out := make([]Entry, n)
	copy(out, d.entries[:n])
	return out
}

// AverageEntry is the mean review count of one group.
type AverageEntry struct {
	Label   string
	Average float64
	Apps    int
}

// AverageMetric is a list of per-group averages ordered by average descending.
type AverageMetric []AverageEntry

// Get returns the average for label and whether it is present.
func (m AverageMetric) Get(label string) (float64, bool) {
	for _, e := range m {
		if e.Label == label {
			return e.Average, true
		}
	}
	return 0, false
}

// SortByAverage orders m by average descending, keeping ties stable.
func (m AverageMetric) SortByAverage() {
	sort.SliceStable(m, func(i, j int) bool {
		return m[i].Average > m[j].Average
	})
}

// InstallEntry holds the install bucket counts of one group.
type InstallEntry struct {
	Label   string
	Buckets *FrequencyDistribution
}

// InstallDistribution lists install bucket distributions per group, in the
// order of the group frequency distribution it was built from.
type InstallDistribution []InstallEntry

// Get returns the bucket distribution for label, or nil.
func (d InstallDistribution) Get(label string) *FrequencyDistribution {
	for _, e := range d {
		if e.Label == label {
			return e.Buckets
		}
	}
	return nil
}
