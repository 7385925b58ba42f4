package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrParse is reported if Decode is handed text which is not a JSON object.
var ErrParse = errors.New("cannot parse JSON object")

// ErrConstruct is reported if a prototype rejects the positional arguments
// extracted from a JSON object.
var ErrConstruct = errors.New("cannot construct value from JSON members")

// Prototype is an exemplar for a type T which can be constructed from
// positional arguments.
type Prototype[T any] interface {
	Construct(args []any) (T, error)
}

// Encode produces a JSON text representation of v, with standard JSON codec
// semantics. Member order is whatever encoding/json emits; clients must not
// rely on it beyond the codec's own guarantees.
func Encode(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Decode parses src as a JSON object and hands its member values, in text
// order, to the prototype's constructor. JSON numbers arrive as float64,
// nested values as the usual map/slice shapes of encoding/json.
//
// Decode reports ErrParse for text which is not a JSON object, and
// ErrConstruct if the prototype refuses the extracted arguments.
func Decode[T any](proto Prototype[T], src string) (T, error) {
	var zero T
	args, err := memberValues(src)
	if err != nil {
		return zero, err
	}
	tracer().Debugf("decoded %d member values from JSON object", len(args))
	v, err := proto.Construct(args)
	if err != nil {
		return zero, fmt.Errorf("%w: %s", ErrConstruct, err)
	}
	return v, nil
}

// memberValues scans the top-level JSON object of src with a token stream,
// collecting the member values in text order. Go maps randomize iteration
// order, so an intermediate map would lose exactly the order Decode's
// contract depends on.
func memberValues(src string) ([]any, error) {
	dec := json.NewDecoder(strings.NewReader(src))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrParse, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: top-level value is not an object", ErrParse)
	}
	var args []any
	for dec.More() {
		if _, err = dec.Token(); err != nil { // member key
			return nil, fmt.Errorf("%w: %s", ErrParse, err)
		}
		var v any
		if err = dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrParse, err)
		}
		args = append(args, v)
	}
	if _, err = dec.Token(); err != nil { // closing '}'
		return nil, fmt.Errorf("%w: %s", ErrParse, err)
	}
	if _, err = dec.Token(); err != io.EOF { // nothing may follow the object
		return nil, fmt.Errorf("%w: trailing data after object", ErrParse)
	}
	return args, nil
}
