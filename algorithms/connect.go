package algorithms

import (
	"github.com/bits-and-blooms/bitset"

	ilog "github.com/katalvlaran/wfst/internal/log"
	"github.com/katalvlaran/wfst/fst"
)

// Connect trims f in place, removing every state that is not both
// accessible from the start state and coaccessible to some final state
// (spec §4.3). It combines a single explicit-stack DFS with Tarjan's
// strongly-connected-components bookkeeping, grounded on
// original_source/rustfst/src/algorithms/connect.rs's ConnectVisitor —
// translated from its recursive dfs_visit callback shape into an
// explicit-stack walk so recursion depth never tracks graph depth.
//
// access and coaccess markers are bitset.BitSet (not []bool): Connect is
// the one pass that runs over every state of a potentially large FST
// before any trimming has happened, so the packed representation matters
// here more than in the smaller per-call marker sets elsewhere.
func Connect(f fst.MutableFst) error {
	if f == nil {
		return ErrFstNil
	}
	log := ilog.Named("connect")
	n := f.NumStates()
	access := bitset.New(uint(n))
	coaccess := bitset.New(uint(n))
	start := f.Start()

	dfnumber := make([]int32, n)
	lowlink := make([]int32, n)
	onstack := bitset.New(uint(n))
	for i := range dfnumber {
		dfnumber[i] = -1
		lowlink[i] = -1
	}

	var sccStack []fst.StateId
	var nextDF int32

	type frame struct {
		s      fst.StateId
		parent fst.StateId
		hasP   bool
		trs    []fst.Tr
		i      int
	}
	var callStack []*frame

	visit := func(s fst.StateId, parent fst.StateId, hasParent bool) {
		sccStack = append(sccStack, s)
		dfnumber[s] = nextDF
		lowlink[s] = nextDF
		onstack.Set(uint(s))
		// Every state visit() is called on is reached by the DFS walk
		// rooted at start, so it is accessible by construction.
		access.Set(uint(s))
		nextDF++
		callStack = append(callStack, &frame{s: s, parent: parent, hasP: hasParent, trs: f.GetTrs(s)})
	}

	finish := func(fr *frame) {
		s := fr.s
		if w, isFinal := f.FinalWeight(s); isFinal && w != nil {
			coaccess.Set(uint(s))
		}
		if dfnumber[s] == lowlink[s] {
			sccCoaccess := false
			i := len(sccStack)
			for {
				i--
				t := sccStack[i]
				if coaccess.Test(uint(t)) {
					sccCoaccess = true
				}
				if t == s {
					break
				}
			}
			for {
				t := sccStack[len(sccStack)-1]
				if sccCoaccess {
					coaccess.Set(uint(t))
				}
				onstack.Clear(uint(t))
				sccStack = sccStack[:len(sccStack)-1]
				if t == s {
					break
				}
			}
		}
		if fr.hasP {
			p := fr.parent
			if coaccess.Test(uint(s)) {
				coaccess.Set(uint(p))
			}
			if lowlink[s] < lowlink[p] {
				lowlink[p] = lowlink[s]
			}
		}
	}

	if start != fst.NoStateId {
		visit(start, fst.NoStateId, false)
	}
	for len(callStack) > 0 {
		fr := callStack[len(callStack)-1]
		s := fr.s
		if fr.i >= len(fr.trs) {
			callStack = callStack[:len(callStack)-1]
			finish(fr)
			continue
		}
		t := fr.trs[fr.i]
		fr.i++
		next := t.Next
		if dfnumber[next] == -1 {
			visit(next, s, true)
			continue
		}
		if onstack.Test(uint(next)) {
			if dfnumber[next] < lowlink[s] {
				lowlink[s] = dfnumber[next]
			}
		}
		if coaccess.Test(uint(next)) {
			coaccess.Set(uint(s))
		}
	}

	var dead []fst.StateId
	for s := 0; s < n; s++ {
		if !access.Test(uint(s)) || !coaccess.Test(uint(s)) {
			dead = append(dead, fst.StateId(s))
		}
	}
	log.Debug().Int("total_states", n).Int("removed", len(dead)).Msg("connect: trimming")
	if len(dead) == 0 {
		f.SetProperties(f.Properties() | fst.Accessible | fst.Coaccessible)
		return nil
	}
	if err := f.DeleteStates(dead); err != nil {
		return err
	}
	f.SetProperties(fst.Accessible | fst.Coaccessible)
	return nil
}
