package difflog

import "fmt"

// normalized is the canonical (kind, u, v, c) form of an atom: "x_u - x_v
// ⟨kind⟩ c", vertex ids already resolved against a vertexTable.
type normalized struct {
	rel Relation
	u   int
	v   int
	c   float64
}

// normalize rewrites atom into canonical form (spec §4.B). On the Integer
// domain, LessStrict is immediately rewritten to LessEq(c-1); Strict is
// never the canonical relation of an integer atom. vt must already contain
// (or be willing to intern, at Create time) both X and Y.
func normalize(atom Atom, dom Domain, vt *vertexTable, intern bool) (normalized, error) {
	if atom.X == "" {
		// "0 - y ⟨rel⟩ c" or a bare constant with no variable at all is not
		// a supported shape; every atom needs at least one named variable.
		return normalized{}, fmt.Errorf("%w: atom has no left-hand variable", ErrMalformedAtom)
	}
	resolve := vt.lookup
	if intern {
		resolve = func(name string) (int, bool) { return vt.intern(name), true }
	}
	u, ok := resolve(atom.X)
	if !ok {
		return normalized{}, fmt.Errorf("%w: %q", ErrUnknownVariable, atom.X)
	}
	v, ok := resolve(atom.Y)
	if !ok {
		return normalized{}, fmt.Errorf("%w: %q", ErrUnknownVariable, atom.Y)
	}
	if u == v {
		// x - x ⟨rel⟩ c: a legal self-loop atom (spec §8 boundary cases),
		// not malformed; falls through to the ordinary construction below.
	}

	rel, c := atom.Rel, atom.C
	if dom == Integer && rel == LessStrict {
		rel, c = LessEq, c-1
	}
	return normalized{rel: rel, u: u, v: v, c: c}, nil
}
