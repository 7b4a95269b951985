package rdf

// Triple is an immutable (subject, predicate, object) fact. Consumption state
// lives in the Store, not on the triple, so triples can be shared freely.
type Triple struct {
	Subject   Term
	Predicate IRI
	Object    Term
}

// Key returns the identity string used for deduplication and deterministic
// ordering. Identical triples have identical keys regardless of how or when
// they were asserted.
func (t Triple) Key() string {
	return t.Subject.Key() + " " + t.Predicate.Key() + " " + t.Object.Key()
}

// String returns a compact display form for diagnostics and residue reports.
func (t Triple) String() string {
	return t.Subject.String() + " " + t.Predicate.String() + " " + t.Object.String()
}
