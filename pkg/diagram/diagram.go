// Package diagram defines the caller-facing vocabulary of the wavelint
// loader: the diagram kinds a document can classify as, and the error
// taxonomy construction can fail with.
package diagram

// Kind identifies which family of WaveDrom diagram a document describes.
type Kind string

const (
	// KindSignal is a timing diagram ("signal" top-level key).
	KindSignal Kind = "signal"
	// KindAssign is a logic-assignment diagram ("assign" top-level key).
	KindAssign Kind = "assign"
	// KindReg is a register/bit-field diagram ("reg" top-level key).
	KindReg Kind = "reg"
)

// Kinds lists the recognized kinds in classification priority order.
// A document containing more than one of these keys classifies as the
// first one present.
func Kinds() []Kind {
	return []Kind{KindSignal, KindAssign, KindReg}
}
