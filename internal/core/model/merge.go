package model

// Merge collapses overlapping intervals into their unions. The log source
// occasionally emits overlapping reboot records, and a single pass over
// adjacent pairs is not enough when three or more consecutive records
// overlap, so the scan repeats until a full pass merges nothing.
//
// The input order is preserved (the source emits most-recent-first).
// Merge allocates a new slice and never mutates its input.
func Merge(intervals []TimeInterval) []TimeInterval {
	merged := make([]TimeInterval, len(intervals))
	copy(merged, intervals)

	for {
		next := make([]TimeInterval, 0, len(merged))
		changed := false
		for i := 0; i < len(merged); i++ {
			if i < len(merged)-1 && merged[i].Overlaps(merged[i+1]) {
				next = append(next, merged[i].Union(merged[i+1]))
				i++
				changed = true
			} else {
				next = append(next, merged[i])
			}
		}
		merged = next
		if !changed {
			return merged
		}
	}
}
