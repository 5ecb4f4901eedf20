// Package classify determines the diagram kind of a parsed document.
package classify

import (
	"fmt"
	"strings"

	"github.com/wavelint/wavelint/pkg/diagram"
)

// rule pairs a recognized top-level key with the shape check its value must
// pass when that key wins classification. A nil check accepts any value.
type rule struct {
	kind  diagram.Kind
	check func(value any) error
}

// shapeChecks holds the per-kind checks. The "reg" entry is deliberately
// absent: the reference implementation accepts any value there and leaves
// deeper validation to the renderer.
var shapeChecks = map[diagram.Kind]func(any) error{
	diagram.KindSignal: mustBeArray(diagram.KindSignal),
	diagram.KindAssign: mustBeArray(diagram.KindAssign),
}

// rules is evaluated in order; the first key present in the document wins,
// regardless of which other recognized keys are also present. The order
// comes from diagram.Kinds(), which is the single source of classification
// priority.
var rules = buildRules()

func buildRules() []rule {
	out := make([]rule, 0, len(diagram.Kinds()))
	for _, kind := range diagram.Kinds() {
		out = append(out, rule{kind: kind, check: shapeChecks[kind]})
	}
	return out
}

// Classify inspects the document's top-level keys and returns its kind.
// A document containing none of the recognized keys, or whose winning key
// fails its shape check, yields a diagram.SemanticError.
func Classify(doc map[string]any) (diagram.Kind, error) {
	for _, r := range rules {
		value, ok := doc[string(r.kind)]
		if !ok {
			continue
		}
		if r.check != nil {
			if err := r.check(value); err != nil {
				return "", err
			}
		}
		return r.kind, nil
	}
	return "", missingKindKey()
}

// missingKindKey names every accepted key, in priority order.
func missingKindKey() *diagram.SemanticError {
	kinds := diagram.Kinds()
	quoted := make([]string, len(kinds))
	for i, kind := range kinds {
		quoted[i] = fmt.Sprintf("%q", string(kind)+":[...]")
	}
	last := len(quoted) - 1
	return &diagram.SemanticError{
		Msg: fmt.Sprintf("%s, or %s property is missing inside the root Object",
			strings.Join(quoted[:last], ", "), quoted[last]),
	}
}

func mustBeArray(kind diagram.Kind) func(any) error {
	return func(value any) error {
		if _, ok := value.([]any); !ok {
			return &diagram.SemanticError{
				Msg: fmt.Sprintf("%q has to be an Array: \"%s:[]\"", kind, kind),
			}
		}
		return nil
	}
}
