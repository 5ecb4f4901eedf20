// Package resolver decides whether a wavelint input names a document file
// or is the document text itself, and produces the text to parse.
package resolver

import (
	"os"
	"strings"

	"github.com/wavelint/wavelint/pkg/diagram"
)

// suffixes are the recognized document-file suffixes, matched case-sensitively
// against the whole input string.
var suffixes = []string{".json5", ".json"}

// Resolve returns the document text for the given input.
//
// An input ending in a recognized suffix is treated as a file path: it must
// name an existing regular file (diagram.NotFoundError otherwise), and the
// file is read once as UTF-8 bytes (failures become diagram.InvalidInputError
// wrapping the cause). Any other input is returned verbatim as document text.
//
// The decision is purely syntactic. Raw document text that happens to end in
// ".json5" or ".json" is treated as a path and fails with NotFoundError; this
// mirrors the reference loader and is kept on purpose.
func Resolve(input string) (string, error) {
	if !hasDocumentSuffix(input) {
		return input, nil
	}

	info, err := os.Stat(input)
	if err != nil || !info.Mode().IsRegular() {
		return "", &diagram.NotFoundError{Path: input}
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return "", &diagram.InvalidInputError{Path: input, Err: err}
	}
	return string(data), nil
}

func hasDocumentSuffix(input string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(input, s) {
			return true
		}
	}
	return false
}
