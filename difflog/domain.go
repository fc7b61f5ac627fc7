package difflog

// Domain selects the numeric universe variables range over. It changes how
// Strict (<) atoms are normalized and stored (see Integer).
type Domain int

const (
	// Real treats weights as exact rationals/doubles; Strict edges are kept
	// as Strict and compared with the lexicographic (weight, strictness)
	// tuple realization documented in DESIGN.md's open-question decisions.
	Real Domain = iota
	// Integer rewrites every Strict "< c" literal to NonStrict "≤ c-1"
	// before insertion; Strict is never created on this domain.
	Integer
)

func (d Domain) String() string {
	if d == Integer {
		return "Integer"
	}
	return "Real"
}

// Relation is the comparison operator of a source atom, before any
// domain-driven rewrite.
type Relation int

const (
	LessEq Relation = iota
	LessStrict
	Equal
)

// Strictness classifies a stored edge's bound as strict (<) or non-strict
// (≤). NonStrict is the zero value so a freshly zeroed edgeRecord reads as
// the more permissive bound.
type Strictness int

const (
	NonStrict Strictness = iota
	Strict
)

func (s Strictness) String() string {
	if s == Strict {
		return "<"
	}
	return "≤"
}

// strictCredit is s's contribution to a pq.Key's strict-credit component:
// one Strict edge crossed, zero for NonStrict.
func strictCredit(s Strictness) int64 {
	if s == Strict {
		return 1
	}
	return 0
}

// Atom is an input difference-logic literal of the shape "X - Y ⟨Rel⟩ C".
// Y == "" denotes the synthetic zero vertex, so a unary bound "X ⟨Rel⟩ C" is
// written as Atom{X: "X", Rel: ..., C: ...}.
type Atom struct {
	X   string
	Y   string
	Rel Relation
	C   float64
}

// AtomID indexes into the slice of atoms given to Create.
type AtomID int

// Literal identifies an atom or its negation. Negated literals are only
// meaningful for LessEq/LessStrict atoms (spec §3: "no explicit negation
// edge is generated" for Equal).
type Literal struct {
	Atom AtomID
	Neg  bool
}

// Negate returns the logical negation of p.
func (p Literal) Negate() Literal { return Literal{Atom: p.Atom, Neg: !p.Neg} }
