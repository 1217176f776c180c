package phantom

import (
	"math"
	"sync"
)

const maxRasterWorkers = 8

// rasterize tests every candidate voxel center against the placed shape and
// overwrites matching voxels with label. The z index range is partitioned
// into disjoint slabs drained by a bounded worker pool; workers of one solid
// never touch the same voxel, so the draw stays deterministic while
// solid-to-solid ordering remains strictly sequential in the caller.
func (m *CreatorManager) rasterize(shape Shape, placed *solid, label uint16) error {
	if err := m.ensureDrawable(); err != nil {
		return err
	}

	grid := m.grid
	dims := grid.Dims()
	worldMin, worldMax := placed.worldBounds(shape)

	iMin, iMax := clipAxis(worldMin.X, worldMax.X, grid.Spacing().X, dims.X)
	jMin, jMax := clipAxis(worldMin.Y, worldMax.Y, grid.Spacing().Y, dims.Y)
	kMin, kMax := clipAxis(worldMin.Z, worldMax.Z, grid.Spacing().Z, dims.Z)

	m.state = stateDrawing
	if iMin > iMax || jMin > jMax || kMin > kMax {
		return nil
	}

	slabSize := (kMax - kMin + 1 + maxRasterWorkers - 1) / maxRasterWorkers
	workerTokens := make(chan bool, maxRasterWorkers)
	for i := 0; i < maxRasterWorkers; i++ {
		workerTokens <- true
	}

	var waitGroup sync.WaitGroup
	for slabStart := kMin; slabStart <= kMax; slabStart += slabSize {
		slabEnd := slabStart + slabSize - 1
		if slabEnd > kMax {
			slabEnd = kMax
		}

		<-workerTokens
		waitGroup.Add(1)
		go func(kFrom, kTo int64) {
			defer func() {
				workerTokens <- true
				waitGroup.Done()
			}()
			rasterizeSlab(grid, shape, placed, label, iMin, iMax, jMin, jMax, kFrom, kTo)
		}(slabStart, slabEnd)
	}
	waitGroup.Wait()

	return nil
}

func rasterizeSlab(
	grid *Grid, shape Shape, placed *solid, label uint16,
	iMin, iMax, jMin, jMax, kMin, kMax int64,
) {
	for k := kMin; k <= kMax; k++ {
		for j := jMin; j <= jMax; j++ {
			for i := iMin; i <= iMax; i++ {
				center := grid.VoxelCenter(i, j, k)
				if shape.Contains(placed.toLocal(center)) {
					grid.SetLabel(i, j, k, label)
				}
			}
		}
	}
}

// clipAxis maps a physical bound interval to an inclusive index range,
// widened by one voxel on each side; the exact membership test decides the
// boundary voxels.
func clipAxis(boundMin, boundMax, spacing float64, dim int64) (int64, int64) {
	half := float64(dim) * spacing / 2
	low := int64(math.Floor((boundMin+half)/spacing)) - 1
	high := int64(math.Floor((boundMax+half)/spacing)) + 1
	if low < 0 {
		low = 0
	}
	if high > dim-1 {
		high = dim - 1
	}
	return low, high
}
