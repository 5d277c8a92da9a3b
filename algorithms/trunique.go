package algorithms

import (
	"sort"

	"github.com/katalvlaran/wfst/fst"
)

// TrUnique stably sorts, for every state, the outgoing transitions by
// (ilabel, olabel, next_state) and collapses transitions that share that
// key into one, whose weight is the Plus of the collapsed weights (spec
// §4.3). Grounded on original_source/rustfst/src/algorithms/tr_unique.rs's
// tr_unique — weight is deliberately excluded from the key, matching the
// original's tr_compare.
func TrUnique(f fst.MutableFst) error {
	if f == nil {
		return ErrFstNil
	}
	for s := 0; s < f.NumStates(); s++ {
		sid := fst.StateId(s)
		trs := append([]fst.Tr(nil), f.GetTrs(sid)...)
		sort.SliceStable(trs, func(i, j int) bool { return trs[i].Less(trs[j]) })
		kept := make([]fst.Tr, 0, len(trs))
		for _, t := range trs {
			if n := len(kept); n > 0 && kept[n-1].SameKey(t) {
				w, err := kept[n-1].Weight.Plus(t.Weight)
				if err != nil {
					return err
				}
				kept[n-1].Weight = w
				continue
			}
			kept = append(kept, t)
		}
		if err := f.SetTrs(sid, kept); err != nil {
			return err
		}
	}
	return nil
}
