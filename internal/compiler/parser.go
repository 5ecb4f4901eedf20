// Package compiler turns resolved document text into a validated top-level
// document map, delegating the JSON5 grammar to an external parser.
package compiler

import (
	"github.com/flynn/json5"

	"github.com/wavelint/wavelint/pkg/diagram"
)

// Parse decodes JSON5 document text into a map of top-level keys.
//
// Any failure the decoder reports is re-signaled as a diagram.ParseError so
// syntax-level failures stay distinct from the semantic checks that follow.
// A document that parses to anything other than an object (array, scalar,
// null) fails with a diagram.SemanticError.
func Parse(data []byte) (map[string]any, error) {
	var value any
	if err := json5.Unmarshal(data, &value); err != nil {
		return nil, &diagram.ParseError{Err: err}
	}

	doc, ok := value.(map[string]any)
	if !ok {
		return nil, &diagram.SemanticError{Msg: `the root has to be an Object: "{signal: [...]}"`}
	}
	return doc, nil
}
