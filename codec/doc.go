/*
Package codec provides thin JSON helpers: Encode wraps the standard JSON
codec, Decode reconstructs a typed value from a prototype exemplar and the
members of a JSON object, taken positionally in text order.

Positional reconstruction is deliberately fragile: it works if, and only
if, the prototype's constructor-argument order equals the JSON object's
member order. That coupling is part of the contract; this is not a
general-purpose deserializer.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package codec

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'csskit.codec'.
func tracer() tracing.Trace {
	return tracing.Select("csskit.codec")
}
