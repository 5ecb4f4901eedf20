/*
Package wavelint loads, parses, and validates WaveDrom diagram sources.

It is the input front end of a WaveDrom toolchain: it resolves an input
string to document text, parses it as JSON5, classifies the document as a
signal, assign, or reg diagram, and extracts the optional config, head, and
foot attributes. Rendering and layout are out of scope; the result is a
validated, immutable Project for downstream consumers.

# Usage

The entire public surface is one constructor. The input is either a path to
a .json5/.json file or the document text itself:

	package main

	import (
		"fmt"
		"log"

		"github.com/wavelint/wavelint"
	)

	func main() {
		project, err := wavelint.New("{ signal: [{ name: 'clk', wave: 'p...' }] }")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(project.Kind) // signal
	}

# Errors

Failures carry one of four kinds, defined in pkg/diagram and branchable with
errors.Is: ErrNotFound (path named no file), ErrInvalidInput (file exists
but could not be read), ErrParse (text is not valid JSON5), and ErrSemantic
(parsed value violates a shape constraint). Construction is atomic: callers
either get a fully populated Project or an error, never a partial value.

# Input resolution

Whether an input is a path is decided purely by its suffix. Document text
that happens to end in ".json5" or ".json" is therefore treated as a path
and fails with ErrNotFound; this matches the reference loader's behavior.
*/
package wavelint
