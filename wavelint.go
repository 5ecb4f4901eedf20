package wavelint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/wavelint/wavelint/internal/classify"
	"github.com/wavelint/wavelint/internal/compiler"
	"github.com/wavelint/wavelint/internal/resolver"
	"github.com/wavelint/wavelint/pkg/diagram"
)

// Version is the wavelint release version.
const Version = "0.1.0"

// Project is the validated result of loading a WaveDrom source.
//
// A Project is immutable after construction: wavelint never touches it
// again, and callers must not modify Source through the other fields'
// aliases. Config, Head, and Foot are the document's optional attributes;
// each defaults to an empty map when absent and is passed through without
// shape validation when present, so a malformed document can carry a
// non-map value there (the renderer, not this layer, rejects those).
type Project struct {
	// Source is the full parsed document.
	Source map[string]any
	// Kind is the diagram classification.
	Kind diagram.Kind
	// Config is the document's "config" attribute.
	Config any
	// Head is the document's "head" attribute.
	Head any
	// Foot is the document's "foot" attribute.
	Foot any
}

// New loads a WaveDrom source and constructs a Project.
//
// The input is either a path to a .json5/.json file (decided by suffix; see
// the package documentation for the implications) or the document text
// itself. Each call resolves from scratch: nothing is cached, at most one
// file is read, and concurrent calls are independent.
//
// On failure New returns one of the diagram error kinds and no Project.
func New(input string) (*Project, error) {
	text, err := resolver.Resolve(input)
	if err != nil {
		return nil, err
	}

	source, err := compiler.Parse([]byte(text))
	if err != nil {
		return nil, err
	}

	kind, err := classify.Classify(source)
	if err != nil {
		return nil, err
	}

	return &Project{
		Source: source,
		Kind:   kind,
		Config: attr(source, "config"),
		Head:   attr(source, "head"),
		Foot:   attr(source, "foot"),
	}, nil
}

// attr reads an optional attribute with an empty-map fallback. Present
// values pass through verbatim, whatever their type.
func attr(source map[string]any, key string) any {
	if value, ok := source[key]; ok {
		return value
	}
	return map[string]any{}
}

// Entries returns the diagram's lane list: the value under the winning
// diagram key when it is an array. For signal and assign diagrams this is
// always non-nil; for reg diagrams it is nil unless the reg value happens
// to be an array.
func (p *Project) Entries() []any {
	entries, _ := p.Source[string(p.Kind)].([]any)
	return entries
}

// Keys returns the document's top-level keys in sorted order.
func (p *Project) Keys() []string {
	keys := make([]string, 0, len(p.Source))
	for k := range p.Source {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (p *Project) String() string {
	return fmt.Sprintf("Project(kind=%s, keys=[%s])", p.Kind, strings.Join(p.Keys(), " "))
}
