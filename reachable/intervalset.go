package reachable

import "sort"

// Interval is a closed-open range [Begin, End) of relabeled indices.
type Interval struct {
	Begin, End int32
}

// IntervalSet is a sorted, non-overlapping, non-adjacent set of
// Intervals — original_source's IntervalSet, used so LabelReachable can
// decide "is label L reachable from state s" with a binary search
// instead of a per-label membership set.
type IntervalSet struct {
	intervals []Interval
}

// Add inserts [begin, end) into the set, merging with any overlapping
// or adjacent interval already present.
func (is *IntervalSet) Add(begin, end int32) {
	if begin >= end {
		return
	}
	is.intervals = append(is.intervals, Interval{begin, end})
	sort.Slice(is.intervals, func(i, j int) bool { return is.intervals[i].Begin < is.intervals[j].Begin })

	merged := is.intervals[:0]
	for _, iv := range is.intervals {
		if len(merged) > 0 && iv.Begin <= merged[len(merged)-1].End {
			if iv.End > merged[len(merged)-1].End {
				merged[len(merged)-1].End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	is.intervals = merged
}

// Contains reports whether label is covered by some interval.
func (is *IntervalSet) Contains(label int32) bool {
	i := sort.Search(len(is.intervals), func(i int) bool { return is.intervals[i].End > label })
	return i < len(is.intervals) && is.intervals[i].Begin <= label
}

// Size returns the number of disjoint intervals.
func (is *IntervalSet) Size() int { return len(is.intervals) }

// Intervals returns the set's intervals in sorted order. Callers must
// not mutate the returned slice.
func (is *IntervalSet) Intervals() []Interval { return is.intervals }
