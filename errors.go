package tilestead

import "errors"

var (
	// ErrEmptyViewport is returned when a camera has no screen area to map from.
	ErrEmptyViewport = errors.New("tilestead: camera viewport is empty")
	// ErrSingularTransform is returned when an affine transform cannot be inverted.
	ErrSingularTransform = errors.New("tilestead: transform is not invertible")
)
