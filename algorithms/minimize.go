package algorithms

import (
	"strconv"

	"github.com/katalvlaran/wfst/fst"
)

// unionFind is path-compressed, union-by-rank disjoint sets, in the
// texture of prim_kruskal/kruskal.go's inline parent/rank maps —
// reshaped into a small struct since Minimize calls find/union far more
// times per run than Kruskal's single MST pass does.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(u int) int {
	for uf.parent[u] != u {
		uf.parent[u] = uf.parent[uf.parent[u]]
		u = uf.parent[u]
	}
	return u
}

func (uf *unionFind) union(u, v int) {
	ru, rv := uf.find(u), uf.find(v)
	if ru == rv {
		return
	}
	if uf.rank[ru] < uf.rank[rv] {
		ru, rv = rv, ru
	}
	uf.parent[rv] = ru
	if uf.rank[ru] == uf.rank[rv] {
		uf.rank[ru]++
	}
}

// Minimize reduces a deterministic weighted acceptor to the fewest
// states recognizing the same weighted language, via Moore-style
// partition refinement over (transition signature, final-weight class)
// backed by the unionFind above (spec §4.3). Returns ErrAcceptorRequired
// unless f advertises the Acceptor property; determinism and the
// semiring's idempotence are not checked.
func Minimize(f fst.MutableFst) error {
	if f == nil {
		return ErrFstNil
	}
	if !f.Properties().Has(fst.Acceptor) {
		return ErrAcceptorRequired
	}
	n := f.NumStates()
	if n == 0 {
		return nil
	}

	// initial partition: final vs non-final, subdivided by final weight
	// class (two final states with different final weight can never
	// merge).
	classOf := make([]string, n)
	for s := 0; s < n; s++ {
		if w, isFinal := f.FinalWeight(fst.StateId(s)); isFinal {
			classOf[s] = "F:" + w.String()
		} else {
			classOf[s] = "N"
		}
	}

	numClasses := func(classOf []string) int {
		seen := make(map[string]struct{}, n)
		for _, c := range classOf {
			seen[c] = struct{}{}
		}
		return len(seen)
	}

	for {
		classId := make(map[string]int)
		for s := 0; s < n; s++ {
			if _, ok := classId[classOf[s]]; !ok {
				classId[classOf[s]] = len(classId)
			}
		}

		newClassOf := make([]string, n)
		for s := 0; s < n; s++ {
			sig := classOf[s]
			for _, t := range f.GetTrs(fst.StateId(s)) {
				sig += "|" + strconv.Itoa(int(t.ILabel)) + ":" + t.Weight.String() + "->" + strconv.Itoa(classId[classOf[t.Next]])
			}
			newClassOf[s] = sig
		}

		if numClasses(newClassOf) == numClasses(classOf) {
			classOf = newClassOf
			break
		}
		classOf = newClassOf
	}

	classId := make(map[string]int)
	rep := make([]int, n)
	for s := 0; s < n; s++ {
		id, ok := classId[classOf[s]]
		if !ok {
			id = len(classId)
			classId[classOf[s]] = id
		}
		rep[s] = id
	}

	uf := newUnionFind(n)
	for s := 1; s < n; s++ {
		if rep[s] == rep[0] {
			uf.union(s, 0)
		}
	}
	for s := 0; s < n; s++ {
		for t := s + 1; t < n; t++ {
			if rep[s] == rep[t] {
				uf.union(s, t)
			}
		}
	}

	// pick one representative per union-find root and redirect every Tr.
	rootToNew := make(map[int]fst.StateId)
	var dead []fst.StateId
	keep := make([]fst.StateId, n)
	for s := 0; s < n; s++ {
		root := uf.find(s)
		if _, ok := rootToNew[root]; !ok {
			rootToNew[root] = fst.StateId(s)
		}
		keep[s] = rootToNew[root]
		if keep[s] != fst.StateId(s) {
			dead = append(dead, fst.StateId(s))
		}
	}
	for s := 0; s < n; s++ {
		sid := fst.StateId(s)
		if keep[s] != sid {
			continue
		}
		trs := f.GetTrs(sid)
		out := make([]fst.Tr, len(trs))
		for i, t := range trs {
			nt := t
			nt.Next = keep[t.Next]
			out[i] = nt
		}
		if err := f.SetTrs(sid, out); err != nil {
			return err
		}
	}
	if start := f.Start(); start != fst.NoStateId {
		if err := f.SetStart(keep[start]); err != nil {
			return err
		}
	}
	if len(dead) > 0 {
		if err := f.DeleteStates(dead); err != nil {
			return err
		}
	}
	f.SetProperties(0)
	return TrUnique(f)
}

