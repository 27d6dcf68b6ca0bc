package action

// Chain concatenates the semantic actions of labels compiled at
// different grammar-compile sites into a single Seq, evaluated without
// intermediate context materialization between them (see SPEC_FULL.md
// §12). Nil actions (an unlabeled arc, or a label with only a tag and
// no action) are skipped; a Chain of zero non-nil actions is nil,
// matching the "label is actual when it carries an executable action or
// non-zero tag" contract of spec §3: a Chain alone does not make a
// label actual.
func Chain(actions ...Expr) Expr {
	var kept []Expr
	for _, a := range actions {
		if a != nil {
			kept = append(kept, a)
		}
	}
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	default:
		return NewSeq(kept[0].Location(), kept...)
	}
}
