package domain

// Query identifies a solver lookup: a game, one of its variants, and
// optionally a single position within that variant. Segments are taken
// verbatim from the URL path and interpolated into the solver command
// line without validation.
type Query struct {
	Game     string
	Variant  string
	Position string // empty for a getstart lookup
}
