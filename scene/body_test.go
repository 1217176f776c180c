package scene

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voxphantom/voxphantom/pkg/phantom/geometry"
	test "github.com/voxphantom/voxphantom/test"
)

var solidTestCases = test.MarshallingCases{
	{
		&Solid{Label: 1, Material: "Water", Geometry: SolidGeometry{TubeGeometry{Height: 50, Radius: 20}}},
		`{
			"label": 1,
			"material": "Water",
			"position": {"x": 0, "y": 0, "z": 0},
			"geometry": {
				"type": "tube",
				"height": 50,
				"radius": 20
			}
		}`,
	},

	{
		&Solid{
			Label:    2,
			Material: "Calcium",
			Position: geometry.Point{X: 1.0, Y: -2.0, Z: 3.5},
			Rotation: &geometry.Vec3D{X: 90, Y: 0, Z: 0},
			Geometry: SolidGeometry{BoxGeometry{Size: geometry.Vec3D{X: 5, Y: 2, Z: 6}}},
		},
		`{
			"label": 2,
			"material": "Calcium",
			"position": {"x": 1, "y": -2, "z": 3.5},
			"rotation": {"x": 90, "y": 0, "z": 0},
			"geometry": {
				"type": "box",
				"size": {"x": 5, "y": 2, "z": 6}
			}
		}`,
	},

	{
		&Solid{Label: 3, Material: "Bone", Geometry: SolidGeometry{SphereGeometry{Radius: 7.5}}},
		`{
			"label": 3,
			"material": "Bone",
			"position": {"x": 0, "y": 0, "z": 0},
			"geometry": {"type": "sphere", "radius": 7.5}
		}`,
	},

	{
		&TubeGeometry{Height: 50, Radius: 5},
		`{"type":"tube","height":50,"radius":5}`,
	},

	{
		&SphereGeometry{Radius: 100},
		`{"type":"sphere","radius":100}`,
	},
}

func TestSolidMarshal(t *testing.T) {
	test.Marshal(t, solidTestCases)
}

func TestSolidUnmarshal(t *testing.T) {
	test.Unmarshal(t, solidTestCases)
}

func TestSolidUnmarshalMarshalled(t *testing.T) {
	test.UnmarshalMarshalled(t, solidTestCases)
}

func TestSolidGeometryUnknownType(t *testing.T) {
	entry := Solid{}
	err := json.Unmarshal([]byte(`{"label":1,"geometry":{"type":"torus"}}`), &entry)
	assert.Error(t, err)
}

var sceneTestCase = test.MarshallingCases{
	{
		&Scene{
			Grid: GridSettings{
				Dimensions:   geometry.Vec3DInt{X: 200, Y: 200, Z: 200},
				ElementSizes: geometry.Vec3D{X: 0.25, Y: 0.25, Z: 0.25},
				Material:     "Air",
				DataType:     "MET_USHORT",
			},
			Output: OutputSettings{Volume: "data/phantom", RangeTable: "data/range_phantom"},
			Solids: []Solid{
				{Label: 1, Material: "Water", Geometry: SolidGeometry{TubeGeometry{Height: 50, Radius: 20}}},
			},
		},
		`{
			"grid": {
				"dimensions": {"x": 200, "y": 200, "z": 200},
				"elementSizes": {"x": 0.25, "y": 0.25, "z": 0.25},
				"material": "Air",
				"dataType": "MET_USHORT"
			},
			"output": {"volume": "data/phantom", "rangeTable": "data/range_phantom"},
			"solids": [
				{
					"label": 1,
					"material": "Water",
					"position": {"x": 0, "y": 0, "z": 0},
					"geometry": {"type": "tube", "height": 50, "radius": 20}
				}
			]
		}`,
	},
}

func TestSceneMarshal(t *testing.T) {
	test.Marshal(t, sceneTestCase)
}

func TestSceneUnmarshal(t *testing.T) {
	test.Unmarshal(t, sceneTestCase)
}
