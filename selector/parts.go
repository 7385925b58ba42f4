package selector

// PartKind enumerates the fragment categories a compound selector may
// contain. The numeric value of a kind is its rank: fragments have to be
// appended in non-decreasing rank order.
type PartKind int

const (
	ElementKind PartKind = iota + 1
	IDKind
	ClassKind
	AttributeKind
	PseudoClassKind
	PseudoElementKind
)

const uniqueKinds = 1<<ElementKind | 1<<IDKind | 1<<PseudoElementKind

// flag returns the bit representing k in a used-kinds mask.
func (k PartKind) flag() uint8 {
	return 1 << k
}

// unique is true for kinds which may occur at most once per selector.
func (k PartKind) unique() bool {
	return uniqueKinds&k.flag() != 0
}

func (k PartKind) String() string {
	switch k {
	case ElementKind:
		return "element"
	case IDKind:
		return "id"
	case ClassKind:
		return "class"
	case AttributeKind:
		return "attribute"
	case PseudoClassKind:
		return "pseudo-class"
	case PseudoElementKind:
		return "pseudo-element"
	}
	return "<illegal part kind>"
}

// Part is a single fragment of a compound selector: a kind together with
// the client-supplied raw value. Combined selectors (see Combine) are
// held as a single element-ranked part containing the complete rendered
// text.
type Part struct {
	Kind  PartKind
	Value string
}

// fragment renders a part with the template for its kind.
func (p Part) fragment() string {
	switch p.Kind {
	case IDKind:
		return "#" + p.Value
	case ClassKind:
		return "." + p.Value
	case AttributeKind:
		return "[" + p.Value + "]"
	case PseudoClassKind:
		return ":" + p.Value
	case PseudoElementKind:
		return "::" + p.Value
	}
	return p.Value
}
