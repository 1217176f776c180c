package scene

import (
	"encoding/json"

	"github.com/voxphantom/voxphantom/pkg/phantom/geometry"
	"github.com/voxphantom/voxphantom/utils"
)

var solidType = struct {
	tube   string
	box    string
	sphere string
}{
	tube:   "tube",
	box:    "box",
	sphere: "sphere",
}

var solidTypeMapping = map[string]func() interface{}{
	solidType.tube:   func() interface{} { return &TubeGeometry{} },
	solidType.box:    func() interface{} { return &BoxGeometry{} },
	solidType.sphere: func() interface{} { return &SphereGeometry{} },
}

// Solid is one entry of the scene's ordered solid list. List order is draw
// order and decides overlap resolution.
type Solid struct {
	Label    int64          `json:"label"`
	Material string         `json:"material"`
	Position geometry.Point `json:"position"`
	// Rotation holds Euler angles in degrees, applied in x, y, z order.
	Rotation *geometry.Vec3D `json:"rotation,omitempty"`
	Geometry SolidGeometry   `json:"geometry"`
}

// SolidGeometry wraps one of the geometry variants for JSON dispatch on the
// "type" field.
type SolidGeometry struct {
	SolidType
}

// SolidType ...
type SolidType interface{}

// MarshalJSON json.Marshaller implementation.
func (g SolidGeometry) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.SolidType)
}

// UnmarshalJSON json.Unmarshaller implementation.
func (g *SolidGeometry) UnmarshalJSON(b []byte) error {
	parsed, err := utils.TypeBasedUnmarshallJSON(b, solidTypeMapping)
	if err != nil {
		return err
	}
	g.SolidType = parsed
	return nil
}

// TubeGeometry represent a z axis aligned cylinder; dimensions in mm.
type TubeGeometry struct {
	Height float64 `json:"height"`
	Radius float64 `json:"radius"`
}

// MarshalJSON json.Marshaller implementation.
func (t TubeGeometry) MarshalJSON() ([]byte, error) {
	type Alias TubeGeometry
	return json.Marshal(struct {
		Type string `json:"type"`
		Alias
	}{
		Type:  solidType.tube,
		Alias: Alias(t),
	})
}

// BoxGeometry represent an axis aligned cuboid; edge lengths in mm.
type BoxGeometry struct {
	Size geometry.Vec3D `json:"size"`
}

// MarshalJSON json.Marshaller implementation.
func (b BoxGeometry) MarshalJSON() ([]byte, error) {
	type Alias BoxGeometry
	return json.Marshal(struct {
		Type string `json:"type"`
		Alias
	}{
		Type:  solidType.box,
		Alias: Alias(b),
	})
}

// SphereGeometry represent a sphere; radius in mm.
type SphereGeometry struct {
	Radius float64 `json:"radius"`
}

// MarshalJSON json.Marshaller implementation.
func (s SphereGeometry) MarshalJSON() ([]byte, error) {
	type Alias SphereGeometry
	return json.Marshal(struct {
		Type string `json:"type"`
		Alias
	}{
		Type:  solidType.sphere,
		Alias: Alias(s),
	})
}
