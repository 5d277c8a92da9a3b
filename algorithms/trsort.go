package algorithms

import (
	"sort"

	"github.com/katalvlaran/wfst/fst"
)

// SortKey picks which label TrSort orders by.
type SortKey int

const (
	// SortByILabel orders by (ilabel, olabel, next_state).
	SortByILabel SortKey = iota
	// SortByOLabel orders by (olabel, ilabel, next_state).
	SortByOLabel
)

// TrSort stably reorders every state's outgoing transitions in place by
// key, then marks the corresponding *LabelSorted property (spec §4.3: "a
// stable sort, not a reassignment of Tr identity").
//
// Grounded on original_source/rustfst/src/algorithms/tr_unique.rs's
// tr_compare ordering, widened here with a second SortKey variant since
// matcher.Sorted needs to binary-search on either label side depending on
// composition direction.
func TrSort(f fst.MutableFst, key SortKey) error {
	if f == nil {
		return ErrFstNil
	}
	for s := 0; s < f.NumStates(); s++ {
		sid := fst.StateId(s)
		trs := append([]fst.Tr(nil), f.GetTrs(sid)...)
		sort.SliceStable(trs, func(i, j int) bool {
			return trLess(trs[i], trs[j], key)
		})
		if err := f.SetTrs(sid, trs); err != nil {
			return err
		}
	}
	switch key {
	case SortByILabel:
		f.SetProperties(f.Properties() | fst.ILabelSorted)
	case SortByOLabel:
		f.SetProperties(f.Properties() | fst.OLabelSorted)
	}
	return nil
}

func trLess(a, b fst.Tr, key SortKey) bool {
	if key == SortByOLabel {
		if a.OLabel != b.OLabel {
			return a.OLabel < b.OLabel
		}
		if a.ILabel != b.ILabel {
			return a.ILabel < b.ILabel
		}
		return a.Next < b.Next
	}
	if a.ILabel != b.ILabel {
		return a.ILabel < b.ILabel
	}
	if a.OLabel != b.OLabel {
		return a.OLabel < b.OLabel
	}
	return a.Next < b.Next
}
