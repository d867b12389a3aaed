package mobject

import "errors"

var (
	// ErrCapability is returned when an operation needs a capability the
	// mobject's kind does not have, such as partial reveal of a point cloud.
	ErrCapability = errors.New("mobject does not support operation")
	// ErrCycle is returned when adding a mobject would make it its own ancestor.
	ErrCycle = errors.New("mobject cannot contain itself")
	// ErrPointCount is returned for point buffers whose length does not fit
	// the mobject kind, or when interpolating between unaligned buffers.
	ErrPointCount = errors.New("invalid point count")
)
