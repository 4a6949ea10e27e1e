package loader

import "errors"

var (
	// ErrUnsupportedFormat is returned for an unknown vector format name.
	ErrUnsupportedFormat = errors.New("loader: unsupported vector format")

	// ErrUnsupportedScheme is returned for a location with an unknown scheme.
	ErrUnsupportedScheme = errors.New("loader: unsupported location scheme")

	// ErrNoLocation is returned for an empty location.
	ErrNoLocation = errors.New("loader: empty location")
)
