package fst

import "fmt"

// SymbolTable is the bijective, append-only string<->Label map of spec §6
// item 3. It is an external collaborator in the sense that the core never
// requires one to operate (Labels are the real currency), but a minimal,
// shareable implementation lives here since nothing in the spec's
// Non-goals excludes it and every example/test needs one.
//
// A SymbolTable may be shared by reference across multiple Fsts (spec §3:
// "Symbol tables are shared by reference with lifetime = longest
// holder").
type SymbolTable struct {
	labelToSym []string
	symToLabel map[string]Label
}

// NewSymbolTable returns an empty table with Eps pre-registered at label 0,
// matching the reserved-label convention of spec §3.
func NewSymbolTable() *SymbolTable {
	st := &SymbolTable{
		labelToSym: []string{"<eps>"},
		symToLabel: map[string]Label{"<eps>": Eps},
	}
	return st
}

// AddSymbol returns the Label for sym, allocating a new one if sym is not
// yet present. Never reassigns an existing symbol's Label (append-only).
func (st *SymbolTable) AddSymbol(sym string) Label {
	if l, ok := st.symToLabel[sym]; ok {
		return l
	}
	l := Label(len(st.labelToSym))
	st.labelToSym = append(st.labelToSym, sym)
	st.symToLabel[sym] = l
	return l
}

// Find returns the Label for sym and whether it was present.
func (st *SymbolTable) Find(sym string) (Label, bool) {
	l, ok := st.symToLabel[sym]
	return l, ok
}

// String returns the symbol for l, or an error if l is not registered.
func (st *SymbolTable) String(l Label) (string, error) {
	if int(l) < 0 || int(l) >= len(st.labelToSym) {
		return "", fmt.Errorf("fst: symbol table has no entry for label %d", l)
	}
	return st.labelToSym[l], nil
}

// NumSymbols returns the number of registered symbols, including <eps>.
func (st *SymbolTable) NumSymbols() int { return len(st.labelToSym) }
