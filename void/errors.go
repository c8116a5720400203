// File: errors.go — sentinel errors for the void package.
package void

import "errors"

var (
	// ErrNotLeaf indicates Subdivide/SubdivideGrid/HostSubAssembly was
	// called on a void that is already subdivided or already hosts a
	// sub-assembly.
	ErrNotLeaf = errors.New("void: not a leaf")

	// ErrNotSubdivided indicates ClearSubdivision was called on a void with
	// no child voids.
	ErrNotSubdivided = errors.New("void: not subdivided")

	// ErrTooFewAxes indicates SubdivideGrid was called with zero axes.
	ErrTooFewAxes = errors.New("void: grid subdivision needs at least one axis")

	// ErrThreeAxisGrid indicates a three-axis grid was requested — spec
	// §4.2 forbids it as physically unassemblable.
	ErrThreeAxisGrid = errors.New("void: three-axis grid subdivision is not assemblable")

	// ErrPositionOutOfRange indicates a split position does not leave room
	// for the material thickness slab on both sides.
	ErrPositionOutOfRange = errors.New("void: split position leaves no room for material thickness")

	// ErrDuplicateAxis indicates the same axis was named twice in a grid
	// subdivision request.
	ErrDuplicateAxis = errors.New("void: duplicate axis in grid subdivision")

	// ErrAlreadyHosting indicates a void that already hosts a
	// sub-assembly. HostSubAssembly reports that case as ErrNotLeaf and
	// does not return this value.
	ErrAlreadyHosting = errors.New("void: already hosts a sub-assembly")

	// ErrNotHosting indicates RemoveSubAssembly was called on a void with
	// no hosted sub-assembly.
	ErrNotHosting = errors.New("void: not hosting a sub-assembly")
)
