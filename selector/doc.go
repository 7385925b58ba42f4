/*
Package selector builds CSS compound selectors programmatically.

Selectors are assembled from six kinds of fragments — element, id, class,
attribute, pseudo-class and pseudo-element — which have to appear in
exactly this order within a compound selector. Element, id and
pseudo-element may appear at most once. The builder enforces both rules
while clients chain fragment calls:

    sel, err := selector.Element("a").Attr(`href$=".png"`).PseudoClass("focus").Stringify()
    // sel == `a[href$=".png"]:focus`

Two built selectors may be joined with a combinator:

    sel, err := selector.Combine(
        selector.Element("div"), selector.Adjacent, selector.Element("span"),
    ).Stringify()
    // sel == "div + span"

A violation of the ordering or uniqueness rules marks the chain as dead:
subsequent calls are ignored and Stringify returns the recorded error.
Clients are expected to abandon a dead chain and start over.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package selector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'csskit.selector'.
func tracer() tracing.Trace {
	return tracing.Select("csskit.selector")
}
