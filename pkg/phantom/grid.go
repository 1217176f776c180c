package phantom

import (
	"fmt"
	"math"

	"github.com/voxphantom/voxphantom/pkg/phantom/geometry"
)

// Grid is the voxel label buffer of one session. The grid occupies a
// physical box centered at the origin; labels are stored row-major with
// the x index running fastest. Geometry is immutable after allocation.
type Grid struct {
	dims    geometry.Vec3DInt
	spacing geometry.Vec3D
	data    []uint16
}

// NewGrid allocates a nx*ny*nz grid with element sizes in millimeters,
// every voxel set to defaultLabel.
func NewGrid(dims geometry.Vec3DInt, spacing geometry.Vec3D, defaultLabel uint16) (*Grid, error) {
	if dims.X <= 0 || dims.Y <= 0 || dims.Z <= 0 {
		return nil, fmt.Errorf(
			"%w: grid dimensions must be positive, got %d %d %d",
			ErrInvalidGeometry, dims.X, dims.Y, dims.Z,
		)
	}
	if spacing.X <= 0 || spacing.Y <= 0 || spacing.Z <= 0 {
		return nil, fmt.Errorf(
			"%w: element sizes must be positive, got %g %g %g",
			ErrInvalidGeometry, spacing.X, spacing.Y, spacing.Z,
		)
	}

	grid := &Grid{
		dims:    dims,
		spacing: spacing,
		data:    make([]uint16, dims.X*dims.Y*dims.Z),
	}
	if defaultLabel != 0 {
		for i := range grid.data {
			grid.data[i] = defaultLabel
		}
	}
	return grid, nil
}

// Dims returns the grid dimensions.
func (g *Grid) Dims() geometry.Vec3DInt {
	return g.dims
}

// Spacing returns the element sizes in millimeters.
func (g *Grid) Spacing() geometry.Vec3D {
	return g.spacing
}

// VoxelCount returns the total number of voxels.
func (g *Grid) VoxelCount() int64 {
	return g.dims.X * g.dims.Y * g.dims.Z
}

// VoxelCenter returns the physical position of the center of voxel i, j, k.
func (g *Grid) VoxelCenter(i, j, k int64) geometry.Point {
	return geometry.Point{
		X: (float64(i)+0.5)*g.spacing.X - float64(g.dims.X)*g.spacing.X/2,
		Y: (float64(j)+0.5)*g.spacing.Y - float64(g.dims.Y)*g.spacing.Y/2,
		Z: (float64(k)+0.5)*g.spacing.Z - float64(g.dims.Z)*g.spacing.Z/2,
	}
}

// VoxelIndex returns the indices of the voxel containing the physical point
// p. ok is false when p falls outside the grid box.
func (g *Grid) VoxelIndex(p geometry.Point) (i, j, k int64, ok bool) {
	i = int64(math.Floor(p.X/g.spacing.X + float64(g.dims.X)/2))
	j = int64(math.Floor(p.Y/g.spacing.Y + float64(g.dims.Y)/2))
	k = int64(math.Floor(p.Z/g.spacing.Z + float64(g.dims.Z)/2))
	if i < 0 || i >= g.dims.X || j < 0 || j >= g.dims.Y || k < 0 || k >= g.dims.Z {
		return 0, 0, 0, false
	}
	return i, j, k, true
}

// Label returns the label of voxel i, j, k. Panics when the indices fall
// outside the grid.
func (g *Grid) Label(i, j, k int64) uint16 {
	return g.data[g.index(i, j, k)]
}

// SetLabel overwrites the label of voxel i, j, k. Panics when the indices
// fall outside the grid.
func (g *Grid) SetLabel(i, j, k int64, label uint16) {
	g.data[g.index(i, j, k)] = label
}

// Data exposes the raw row-major label buffer. The buffer is owned by the
// grid; callers must not retain it across draws.
func (g *Grid) Data() []uint16 {
	return g.data
}

func (g *Grid) index(i, j, k int64) int64 {
	// Per-axis checks; a raw flat index would let mixed signs alias another
	// in-range voxel.
	if i < 0 || i >= g.dims.X || j < 0 || j >= g.dims.Y || k < 0 || k >= g.dims.Z {
		panic(fmt.Sprintf(
			"voxel index %d %d %d out of range for %d %d %d grid",
			i, j, k, g.dims.X, g.dims.Y, g.dims.Z,
		))
	}
	return i + g.dims.X*(j+g.dims.Y*k)
}
