package cargs

import "fmt"

type arityKind uint8

const (
	aritySingle arityKind = iota
	arityZeroOrMore
	arityOneOrMore
	arityExactly
)

// Arity describes how many values a declaration may capture. The zero value
// is Single which captures exactly one scalar value.
type Arity struct {
	kind arityKind
	n    int
}

var (
	// Single captures one scalar value, default when no count is declared.
	Single = Arity{kind: aritySingle}
	// ZeroOrMore captures an open ended ordered sequence of values.
	ZeroOrMore = Arity{kind: arityZeroOrMore}
	// OneOrMore captures an open ended ordered sequence with at least one value.
	OneOrMore = Arity{kind: arityOneOrMore}
)

// Exactly captures an ordered sequence of exactly n values.
func Exactly(n int) Arity {
	return Arity{kind: arityExactly, n: n}
}

// Plural reports whether the arity accumulates an ordered sequence
// instead of a scalar value.
func (a Arity) Plural() bool {
	return a.kind != aritySingle
}

// Min returns the smallest number of values the arity requires.
func (a Arity) Min() int {
	switch a.kind {
	case arityOneOrMore:
		return 1
	case arityExactly:
		return a.n
	default:
		return 0
	}
}

// Closed reports whether the arity accepts no further values after
// have values were captured. Open ended arities never close.
func (a Arity) Closed(have int) bool {
	return a.kind == arityExactly && have >= a.n
}

func (a Arity) String() string {
	switch a.kind {
	case arityZeroOrMore:
		return "*"
	case arityOneOrMore:
		return "+"
	case arityExactly:
		return fmt.Sprintf("%d", a.n)
	default:
		return "1"
	}
}
