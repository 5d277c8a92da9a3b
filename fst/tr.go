package fst

import (
	"fmt"

	"github.com/katalvlaran/wfst/semiring"
)

// Tr is a single transition: the 4-tuple {ilabel, olabel, weight,
// next_state} of spec §3. The name mirrors the original_source's own `Tr`
// (a transducer's arc is not just a graph edge: it carries two labels).
type Tr struct {
	ILabel Label
	OLabel Label
	Weight semiring.Weight
	Next   StateId
}

// NewTr builds a Tr. A nil weight is treated as the semiring's own "no
// weight supplied" case; callers should pass w.One() for an unweighted
// transition rather than nil.
func NewTr(ilabel, olabel Label, w semiring.Weight, next StateId) Tr {
	return Tr{ILabel: ilabel, OLabel: olabel, Weight: w, Next: next}
}

// IsEpsilonInput reports ilabel == Eps.
func (t Tr) IsEpsilonInput() bool { return t.ILabel == Eps }

// IsEpsilonOutput reports olabel == Eps.
func (t Tr) IsEpsilonOutput() bool { return t.OLabel == Eps }

// IsEpsilon reports both labels are Eps ("full epsilon", spec §3).
func (t Tr) IsEpsilon() bool { return t.IsEpsilonInput() && t.IsEpsilonOutput() }

func (t Tr) String() string {
	return fmt.Sprintf("%d:%d/%s->%d", t.ILabel, t.OLabel, t.Weight, t.Next)
}

// Less orders transitions by (ilabel, olabel, next_state), the total
// order Tr-unique collapses duplicates under (spec §4.2).
func (t Tr) Less(other Tr) bool {
	if t.ILabel != other.ILabel {
		return t.ILabel < other.ILabel
	}
	if t.OLabel != other.OLabel {
		return t.OLabel < other.OLabel
	}
	return t.Next < other.Next
}

// SameKey reports whether t and other share the (ilabel, olabel,
// next_state) key that Tr-unique collapses on.
func (t Tr) SameKey(other Tr) bool {
	return t.ILabel == other.ILabel && t.OLabel == other.OLabel && t.Next == other.Next
}
