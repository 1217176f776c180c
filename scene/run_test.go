package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxphantom/voxphantom/pkg/phantom"
	"github.com/voxphantom/voxphantom/pkg/phantom/geometry"
)

func testScene(dir string) Scene {
	return Scene{
		Grid: GridSettings{
			Dimensions:   geometry.Vec3DInt{X: 4, Y: 4, Z: 4},
			ElementSizes: geometry.Vec3D{X: 1, Y: 1, Z: 1},
			Material:     "Air",
		},
		Output: OutputSettings{
			Volume:     filepath.Join(dir, "phantom"),
			RangeTable: filepath.Join(dir, "range_phantom"),
		},
		Solids: []Solid{
			{
				Label:    1,
				Material: "Water",
				Geometry: SolidGeometry{TubeGeometry{Height: 4, Radius: 1}},
			},
		},
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	manager := phantom.NewCreatorManager()
	require.NoError(t, Run(testScene(dir), manager))

	grid, dataType, err := phantom.ReadVolume(filepath.Join(dir, "phantom.mhd"))
	require.NoError(t, err)
	assert.Equal(t, "MET_USHORT", dataType)

	// Central 2x2 column of the tube across all z.
	labeled := 0
	for _, label := range grid.Data() {
		if label == 1 {
			labeled++
		}
	}
	assert.Equal(t, 2*2*4, labeled)

	rangeContent, err := os.ReadFile(filepath.Join(dir, "range_phantom.txt"))
	require.NoError(t, err)
	assert.Equal(t, "0 Air\n1 Water\n", string(rangeContent))
}

func TestRunSolidOrderResolvesOverlap(t *testing.T) {
	dir := t.TempDir()
	doc := testScene(dir)
	doc.Solids = append(doc.Solids, Solid{
		Label:    2,
		Material: "Calcium",
		Geometry: SolidGeometry{SphereGeometry{Radius: 0.9}}},
	)

	manager := phantom.NewCreatorManager()
	require.NoError(t, Run(doc, manager))

	grid := manager.Grid()
	// The sphere redraws the 2x2x2 block of central voxels.
	assert.Equal(t, uint16(2), grid.Label(1, 1, 1))
	assert.Equal(t, uint16(2), grid.Label(2, 2, 2))
	assert.Equal(t, uint16(1), grid.Label(1, 1, 0))
}

func TestRunInvalidSolid(t *testing.T) {
	dir := t.TempDir()
	doc := testScene(dir)
	doc.Solids[0].Geometry = SolidGeometry{TubeGeometry{Height: 4, Radius: -1}}

	manager := phantom.NewCreatorManager()
	err := Run(doc, manager)
	assert.ErrorIs(t, err, phantom.ErrInvalidGeometry)
}

func TestRunLabelConflict(t *testing.T) {
	dir := t.TempDir()
	doc := testScene(dir)
	doc.Solids = append(doc.Solids, Solid{
		Label:    1,
		Material: "Calcium",
		Geometry: SolidGeometry{SphereGeometry{Radius: 1}}},
	)

	manager := phantom.NewCreatorManager()
	assert.ErrorIs(t, Run(doc, manager), phantom.ErrLabelConflict)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.json")
	content := `{
		"grid": {
			"dimensions": {"x": 4, "y": 4, "z": 4},
			"elementSizes": {"x": 1, "y": 1, "z": 1},
			"material": "Air"
		},
		"output": {"volume": "phantom", "rangeTable": "range_phantom"},
		"solids": [
			{"label": 1, "material": "Water",
			 "position": {"x": 0, "y": 0, "z": 0},
			 "geometry": {"type": "tube", "height": 4, "radius": 1}}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(4), doc.Grid.Dimensions.X)
	require.Len(t, doc.Solids, 1)
	assert.Equal(t, TubeGeometry{Height: 4, Radius: 1}, doc.Solids[0].Geometry.SolidType)

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
