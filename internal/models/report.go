package models

import "sort"

// Report maps a category name to the number of phrase tokens matched beneath it.
// Only positive counts are stored.
type Report map[string]int

// Add accumulates count under category. Non-positive counts are dropped.
func (r Report) Add(category string, count int) {
	if count <= 0 {
		return
	}
	r[category] += count
}

// Merge adds every entry of other into r. Repeated categories are summed, never overwritten.
func (r Report) Merge(other Report) {
	for category, count := range other {
		r.Add(category, count)
	}
}

// Categories returns the report's category names in alphabetical order.
func (r Report) Categories() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Total sums all counts in the report.
func (r Report) Total() int {
	total := 0
	for _, count := range r {
		total += count
	}
	return total
}
