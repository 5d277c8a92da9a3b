package matcher

import (
	"sort"

	"github.com/katalvlaran/wfst/fst"
)

// Sorted matches by binary search over a state's transitions, which must
// already be label-sorted on the relevant side (algorithms.TrSort).
type Sorted struct {
	f   fst.Fst
	typ MatchType
}

// NewSorted returns a Sorted matcher over f. f must advertise
// ILabelSorted (MatchInput) or OLabelSorted (MatchOutput);
// otherwise ErrUnsorted.
func NewSorted(f fst.Fst, typ MatchType) (*Sorted, error) {
	want := fst.ILabelSorted
	if typ == MatchOutput {
		want = fst.OLabelSorted
	}
	if !f.Properties().Has(want) {
		return nil, ErrUnsorted
	}
	return &Sorted{f: f, typ: typ}, nil
}

func (m *Sorted) Type() MatchType { return m.typ }

func (m *Sorted) label(t fst.Tr) fst.Label {
	if m.typ == MatchOutput {
		return t.OLabel
	}
	return t.ILabel
}

// Find returns every transition of s whose matched label equals label,
// located via two binary searches (lower and upper bound) over the
// sorted slice rather than a linear scan. fst.NoLabel is the any-match
// sentinel for the lookahead path: it returns every transition of s
// rather than searching for a literal label -1.
func (m *Sorted) Find(s fst.StateId, label fst.Label) ([]fst.Tr, error) {
	trs := m.f.GetTrs(s)
	if label == fst.NoLabel {
		return trs, nil
	}
	lo := sort.Search(len(trs), func(i int) bool { return m.label(trs[i]) >= label })
	hi := sort.Search(len(trs), func(i int) bool { return m.label(trs[i]) > label })
	if lo >= hi {
		return nil, nil
	}
	return trs[lo:hi], nil
}

var _ Matcher = (*Sorted)(nil)
