package themegen

import "errors"

// Sentinel errors for the two caller-visible failure modes.
var (
	// ErrInvalidColor indicates an accent override that is not a valid
	// 6-digit hex color.
	ErrInvalidColor = errors.New("invalid color")

	// ErrImageDecode indicates the wallpaper could not be opened or
	// decoded. No partial palette is ever produced.
	ErrImageDecode = errors.New("image decode error")
)
