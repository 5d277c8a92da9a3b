package matcher

import "github.com/katalvlaran/wfst/fst"

// FallbackLabels names the three OpenFst-style special labels a
// RhoSigmaPhi matcher recognizes on top of an ordinary Sorted match
// (spec §4.4): Rho ("else", matches any label with no literal
// transition of its own), Sigma ("any"; Find consults it only for a
// label with no literal transition, ahead of Rho, so it is never
// returned alongside a literal match), and Phi ("failure", redirect the
// search to another state instead of matching here at all). A label set
// to fst.NoLabel disables that fallback.
type FallbackLabels struct {
	Rho, Sigma, Phi fst.Label
}

// RhoSigmaPhi wraps a Sorted matcher, applying FallbackLabels when a
// literal match is absent.
type RhoSigmaPhi struct {
	base     *Sorted
	fallback FallbackLabels
}

// NewRhoSigmaPhi wraps base with fallback.
func NewRhoSigmaPhi(base *Sorted, fallback FallbackLabels) *RhoSigmaPhi {
	return &RhoSigmaPhi{base: base, fallback: fallback}
}

func (m *RhoSigmaPhi) Type() MatchType { return m.base.Type() }

// Find tries a literal match first, then Sigma, then Rho; Phi changes
// which state sigma/rho/literal lookup should have been tried at,
// rather than being resolved here. Callers that need phi-redirection
// loop: on ErrNoMatch with fallback.Phi set, re-Find at the phi target
// state before giving up.
func (m *RhoSigmaPhi) Find(s fst.StateId, label fst.Label) ([]fst.Tr, error) {
	trs, err := m.base.Find(s, label)
	if err != nil {
		return nil, err
	}
	if len(trs) > 0 {
		return trs, nil
	}
	if m.fallback.Sigma != fst.NoLabel {
		if sigma, err := m.base.Find(s, m.fallback.Sigma); err == nil && len(sigma) > 0 {
			return sigma, nil
		}
	}
	if m.fallback.Rho != fst.NoLabel {
		if rho, err := m.base.Find(s, m.fallback.Rho); err == nil && len(rho) > 0 {
			return rho, nil
		}
	}
	return nil, ErrNoMatch
}

var _ Matcher = (*RhoSigmaPhi)(nil)
