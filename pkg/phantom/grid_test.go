package phantom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxphantom/voxphantom/pkg/phantom/geometry"
)

func newTestGrid(t *testing.T, nx, ny, nz int64, sx, sy, sz float64) *Grid {
	t.Helper()
	grid, err := NewGrid(
		geometry.Vec3DInt{X: nx, Y: ny, Z: nz},
		geometry.Vec3D{X: sx, Y: sy, Z: sz},
		0,
	)
	require.NoError(t, err)
	return grid
}

func TestNewGridValidation(t *testing.T) {
	_, err := NewGrid(geometry.Vec3DInt{X: 0, Y: 4, Z: 4}, geometry.Vec3D{X: 1, Y: 1, Z: 1}, 0)
	assert.ErrorIs(t, err, ErrInvalidGeometry)

	_, err = NewGrid(geometry.Vec3DInt{X: 4, Y: 4, Z: 4}, geometry.Vec3D{X: 1, Y: -1, Z: 1}, 0)
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestNewGridDefaultLabel(t *testing.T) {
	grid, err := NewGrid(geometry.Vec3DInt{X: 2, Y: 2, Z: 2}, geometry.Vec3D{X: 1, Y: 1, Z: 1}, 3)
	require.NoError(t, err)

	assert.Equal(t, int64(8), grid.VoxelCount())
	for _, label := range grid.Data() {
		assert.Equal(t, uint16(3), label)
	}
}

func TestGridVoxelCenter(t *testing.T) {
	grid := newTestGrid(t, 4, 4, 4, 1, 1, 1)

	// 4 voxels of 1mm centered at origin: centers at -1.5, -0.5, 0.5, 1.5.
	assert.Equal(t, geometry.Point{X: -1.5, Y: -1.5, Z: -1.5}, grid.VoxelCenter(0, 0, 0))
	assert.Equal(t, geometry.Point{X: 1.5, Y: 1.5, Z: 1.5}, grid.VoxelCenter(3, 3, 3))
	assert.Equal(t, geometry.Point{X: 0.5, Y: -0.5, Z: 1.5}, grid.VoxelCenter(2, 1, 3))
}

func TestGridVoxelIndex(t *testing.T) {
	grid := newTestGrid(t, 4, 4, 4, 1, 1, 1)

	for i := int64(0); i < 4; i++ {
		for j := int64(0); j < 4; j++ {
			for k := int64(0); k < 4; k++ {
				gi, gj, gk, ok := grid.VoxelIndex(grid.VoxelCenter(i, j, k))
				require.True(t, ok)
				assert.Equal(t, i, gi)
				assert.Equal(t, j, gj)
				assert.Equal(t, k, gk)
			}
		}
	}
}

func TestGridVoxelIndexOutOfRange(t *testing.T) {
	grid := newTestGrid(t, 4, 4, 4, 1, 1, 1)

	_, _, _, ok := grid.VoxelIndex(geometry.Point{X: 2.5, Y: 0, Z: 0})
	assert.False(t, ok)

	_, _, _, ok = grid.VoxelIndex(geometry.Point{X: 0, Y: 0, Z: -3.0})
	assert.False(t, ok)
}

func TestGridSetLabel(t *testing.T) {
	grid := newTestGrid(t, 3, 3, 3, 1, 1, 1)

	grid.SetLabel(1, 2, 0, 7)
	assert.Equal(t, uint16(7), grid.Label(1, 2, 0))
	assert.Equal(t, uint16(0), grid.Label(0, 0, 0))

	// Row-major with x fastest: index = i + nx*(j + ny*k).
	assert.Equal(t, uint16(7), grid.Data()[1+3*2])
}

func TestGridAccessOutOfRange(t *testing.T) {
	grid := newTestGrid(t, 4, 4, 4, 1, 1, 1)
	grid.SetLabel(3, 0, 0, 9)

	// A negative x index with a positive y index would map onto voxel
	// (3, 0, 0) as a flat offset; it must fail instead of aliasing.
	assert.Panics(t, func() { grid.Label(-1, 1, 0) })
	assert.Panics(t, func() { grid.SetLabel(-1, 1, 0, 5) })
	assert.Panics(t, func() { grid.Label(0, 4, 0) })
	assert.Panics(t, func() { grid.SetLabel(0, 0, -1, 5) })

	assert.Equal(t, uint16(9), grid.Label(3, 0, 0))
}
