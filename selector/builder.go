package selector

import (
	"errors"
	"strings"
)

// ErrDuplicatePart is recorded if a single-occurrence part kind is supplied
// more than once for the same chain.
var ErrDuplicatePart = errors.New("element, id and pseudo-element should not occur more than one time inside the selector")

// ErrOutOfOrder is recorded if a part is supplied after a higher-ranked part
// has already been appended to the chain.
var ErrOutOfOrder = errors.New("selector parts should be arranged in the following order: element, id, class, attribute, pseudo-class, pseudo-element")

// Combinator is a token joining two selectors into a combined selector.
type Combinator string

const (
	Descendant Combinator = " "
	Child      Combinator = ">"
	Adjacent   Combinator = "+"
	Sibling    Combinator = "~"
)

// Builder accumulates the fragments of a compound selector. The zero value
// is an empty selector, ready for use, but clients will usually start a
// chain with one of the package-level entry functions:
//
//     selector.ID("main").Class("container").Class("editable")
//
// Each mutator returns its receiver for chaining. The first rule violation
// marks the builder as dead; all further mutations are ignored.
//
// Builders are not safe for concurrent use. The entry functions are: they
// share no state and every chain owns a private Builder.
type Builder struct {
	parts []Part
	used  uint8    // bitmask of kinds appended so far
	max   PartKind // highest rank appended so far, never decreases
	err   error    // first rule violation, sticky
}

// --- Entry points ----------------------------------------------------------

// Element starts a selector chain with an element fragment, e.g. "div".
func Element(value string) *Builder {
	return (&Builder{}).Element(value)
}

// ID starts a selector chain with an id fragment, rendered as "#value".
func ID(value string) *Builder {
	return (&Builder{}).ID(value)
}

// Class starts a selector chain with a class fragment, rendered as ".value".
func Class(value string) *Builder {
	return (&Builder{}).Class(value)
}

// Attr starts a selector chain with an attribute fragment, rendered
// as "[value]".
func Attr(value string) *Builder {
	return (&Builder{}).Attr(value)
}

// PseudoClass starts a selector chain with a pseudo-class fragment,
// rendered as ":value".
func PseudoClass(value string) *Builder {
	return (&Builder{}).PseudoClass(value)
}

// PseudoElement starts a selector chain with a pseudo-element fragment,
// rendered as "::value".
func PseudoElement(value string) *Builder {
	return (&Builder{}).PseudoElement(value)
}

// --- Chainable mutators ----------------------------------------------------

// Element appends an element fragment.
func (b *Builder) Element(value string) *Builder {
	return b.push(ElementKind, value)
}

// ID appends an id fragment.
func (b *Builder) ID(value string) *Builder {
	return b.push(IDKind, value)
}

// Class appends a class fragment. Classes may be appended repeatedly.
func (b *Builder) Class(value string) *Builder {
	return b.push(ClassKind, value)
}

// Attr appends an attribute fragment. Attributes may be appended repeatedly.
func (b *Builder) Attr(value string) *Builder {
	return b.push(AttributeKind, value)
}

// PseudoClass appends a pseudo-class fragment. Pseudo-classes may be
// appended repeatedly.
func (b *Builder) PseudoClass(value string) *Builder {
	return b.push(PseudoClassKind, value)
}

// PseudoElement appends a pseudo-element fragment.
func (b *Builder) PseudoElement(value string) *Builder {
	return b.push(PseudoElementKind, value)
}

// push guards and performs the state transition for appending a part of
// kind k. Kinds of equal rank may repeat; a rank below b.max is a
// violation, as is a second occurrence of a unique kind.
func (b *Builder) push(k PartKind, value string) *Builder {
	if b.err != nil {
		return b // dead chain
	}
	if k.unique() && b.used&k.flag() != 0 {
		tracer().Debugf("selector chain rejects duplicate %s '%s'", k, value)
		b.err = ErrDuplicatePart
		return b
	}
	if k < b.max {
		tracer().Debugf("selector chain rejects %s '%s' after %s", k, value, b.max)
		b.err = ErrOutOfOrder
		return b
	}
	b.parts = append(b.parts, Part{Kind: k, Value: value})
	b.used |= k.flag()
	b.max = k
	return b
}

// --- Combining -------------------------------------------------------------

// Combine joins two built selectors with a combinator token into a fresh
// builder:
//
//     div + span
//
// The combined text is held as a single opaque element-ranked fragment and
// is not re-validated against the ordering and uniqueness rules. It is
// meant to be read back via Stringify (or combined again); chaining further
// fragments onto it is possible but produces whatever the templates
// produce. If either input chain is dead, the combined chain is dead with
// the same error.
func Combine(left *Builder, comb Combinator, right *Builder) *Builder {
	c := &Builder{used: ElementKind.flag(), max: ElementKind}
	if left.err != nil {
		c.err = left.err
		return c
	}
	if right.err != nil {
		c.err = right.err
		return c
	}
	combined := left.String() + " " + string(comb) + " " + right.String()
	c.parts = []Part{{Kind: ElementKind, Value: combined}}
	tracer().Debugf("combined selector '%s'", combined)
	return c
}

// --- Reading ---------------------------------------------------------------

// Stringify renders the accumulated selector. For a dead chain it returns
// the empty string and the recorded rule violation.
func (b *Builder) Stringify() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	return b.String(), nil
}

// String renders the accumulated selector, empty for a dead chain.
// (fmt.Stringer)
func (b *Builder) String() string {
	if b.err != nil {
		return ""
	}
	var sb strings.Builder
	for _, p := range b.parts {
		sb.WriteString(p.fragment())
	}
	return sb.String()
}

// Err returns the rule violation which killed this chain, or nil while the
// chain is healthy.
func (b *Builder) Err() error {
	return b.err
}

// Parts returns a copy of the fragments appended so far, in order.
func (b *Builder) Parts() []Part {
	parts := make([]Part, len(b.parts))
	copy(parts, b.parts)
	return parts
}
