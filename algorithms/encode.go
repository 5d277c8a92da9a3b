package algorithms

import "github.com/katalvlaran/wfst/fst"

// EncodeFlags selects which components of a Tr are folded into the
// single encoded label (spec §4.3, grounded on
// original_source/rustfst/src/algorithms/encode/encode_static.rs's
// encode_labels/encode_weights flag pair).
type EncodeFlags struct {
	Labels  bool // fold (ilabel, olabel) into one label
	Weights bool // fold weight into the encoded label, replacing it with One()
}

type encodeKey struct {
	ilabel, olabel fst.Label
	weightHash     uint64
	hasWeight      bool
}

// EncodeTable is the bijective label<->tuple map Encode builds and
// Decode consumes. Unlike original_source's EncodeTable, the reverse
// direction stores the original Tr fields directly rather than a tuple
// type, since Go has no equivalent of the Rust enum the original
// tr_to_tuple/final_tr_to_tuple pair produce.
type EncodeTable struct {
	Flags   EncodeFlags
	keyToID map[encodeKey]fst.Label
	idToTr  []fst.Tr
}

func newEncodeTable(flags EncodeFlags) *EncodeTable {
	return &EncodeTable{Flags: flags, keyToID: make(map[encodeKey]fst.Label)}
}

func (et *EncodeTable) encode(t fst.Tr) fst.Label {
	k := encodeKey{ilabel: t.ILabel}
	if et.Flags.Labels {
		k.olabel = t.OLabel
	}
	if et.Flags.Weights {
		k.weightHash = t.Weight.Hash()
		k.hasWeight = true
	}
	if id, ok := et.keyToID[k]; ok {
		return id
	}
	id := fst.Label(len(et.idToTr) + 1)
	et.idToTr = append(et.idToTr, t)
	et.keyToID[k] = id
	return id
}

// Decode returns the original (ilabel, olabel, weight) a previously
// Encode-d label stood for.
func (et *EncodeTable) Decode(label fst.Label) (fst.Tr, bool) {
	i := int(label) - 1
	if i < 0 || i >= len(et.idToTr) {
		return fst.Tr{}, false
	}
	return et.idToTr[i], true
}

// Encode rewrites every transition of f in place, folding (ilabel,
// olabel) and/or weight into a single synthetic ilabel per flags, and
// returns the table needed to Decode the result back (spec §4.3: makes
// Determinize/Minimize applicable to transducers and weighted automata
// by momentarily treating them as unweighted acceptors).
func Encode(f fst.MutableFst, flags EncodeFlags) (*EncodeTable, error) {
	if f == nil {
		return nil, ErrFstNil
	}
	et := newEncodeTable(flags)
	for s := 0; s < f.NumStates(); s++ {
		sid := fst.StateId(s)
		trs := f.GetTrs(sid)
		out := make([]fst.Tr, len(trs))
		for i, t := range trs {
			label := et.encode(t)
			nt := t
			nt.ILabel = label
			if flags.Labels {
				nt.OLabel = label
			}
			if flags.Weights {
				nt.Weight = t.Weight.One()
			}
			out[i] = nt
		}
		if err := f.SetTrs(sid, out); err != nil {
			return nil, err
		}
	}
	f.SetProperties(0)
	return et, nil
}

// Decode reverses a prior Encode using the table it returned.
func Decode(f fst.MutableFst, et *EncodeTable) error {
	if f == nil || et == nil {
		return ErrFstNil
	}
	for s := 0; s < f.NumStates(); s++ {
		sid := fst.StateId(s)
		trs := f.GetTrs(sid)
		out := make([]fst.Tr, len(trs))
		for i, t := range trs {
			orig, ok := et.Decode(t.ILabel)
			if !ok {
				out[i] = t
				continue
			}
			nt := t
			nt.ILabel = orig.ILabel
			if et.Flags.Labels {
				nt.OLabel = orig.OLabel
			}
			if et.Flags.Weights {
				nt.Weight = orig.Weight
			}
			out[i] = nt
		}
		if err := f.SetTrs(sid, out); err != nil {
			return err
		}
	}
	f.SetProperties(0)
	return nil
}
