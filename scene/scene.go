// Package scene implement JSON phantom scene documents and their replay
// against a creation session. A scene is the declarative equivalent of the
// command sequence a caller would issue by hand: grid settings, output
// paths, then solids drawn in list order.
package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/voxphantom/voxphantom/pkg/phantom/geometry"
)

// Scene is a complete phantom description. All lengths are in millimeters.
type Scene struct {
	Grid   GridSettings   `json:"grid"`
	Output OutputSettings `json:"output"`
	Solids []Solid        `json:"solids"`
}

// GridSettings describe the voxel grid and its default fill.
type GridSettings struct {
	Dimensions   geometry.Vec3DInt `json:"dimensions"`
	ElementSizes geometry.Vec3D    `json:"elementSizes"`
	Material     string            `json:"material"`
	DataType     string            `json:"dataType,omitempty"`
}

// OutputSettings describe where Write emits the artifacts. Volume is a
// basename; the .mhd header and .raw payload extensions are appended.
type OutputSettings struct {
	Volume     string `json:"volume"`
	RangeTable string `json:"rangeTable"`
}

// Load reads and parses a scene document from path.
func Load(path string) (Scene, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("reading scene %s: %w", path, err)
	}
	scene := Scene{}
	if err := json.Unmarshal(content, &scene); err != nil {
		return Scene{}, fmt.Errorf("parsing scene %s: %w", path, err)
	}
	return scene, nil
}
