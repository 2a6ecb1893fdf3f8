package pygments

import "errors"

// Sentinel errors for library operations.
var (
	// ErrInvalidColorFormat reports a colour value that is not a
	// well-formed 6-hex-digit RGB triple. Colours coming out of chroma
	// are already parsed; this surfaces from user-supplied style
	// definitions.
	ErrInvalidColorFormat = errors.New("invalid color format")

	// ErrUnknownColorReference reports a render-time reference to a
	// colour missing from the pre-built colour table. The table is built
	// from the same style resolution the renderer uses, so hitting this
	// means the two have desynchronized. It is an assertion, not an
	// input error.
	ErrUnknownColorReference = errors.New("unknown color reference")
)
