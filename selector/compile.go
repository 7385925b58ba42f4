package selector

import (
	"github.com/andybalholm/cascadia"
)

// Compile parses the rendered selector with cascadia, yielding a matcher
// for HTML parse trees (golang.org/x/net/html). Pseudo-elements are legal
// selector parts, so the pseudo-element-capable parser is used. For a dead
// chain the recorded rule violation is returned.
func (b *Builder) Compile() (cascadia.Sel, error) {
	if b.err != nil {
		return nil, b.err
	}
	return cascadia.ParseWithPseudoElement(b.String())
}
