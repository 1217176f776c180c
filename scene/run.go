package scene

import (
	"fmt"

	conf "github.com/voxphantom/voxphantom/config"
	"github.com/voxphantom/voxphantom/pkg/phantom"
)

var log = conf.NamedLogger("scene")

// Run replays the scene against manager: configuration, initialize, one
// initialize+draw+delete sequence per solid in list order, then write.
func Run(s Scene, manager *phantom.CreatorManager) error {
	grid := s.Grid
	if err := manager.SetDimensions(grid.Dimensions.X, grid.Dimensions.Y, grid.Dimensions.Z); err != nil {
		return err
	}
	if err := manager.SetElementSizes(grid.ElementSizes.X, grid.ElementSizes.Y, grid.ElementSizes.Z, "mm"); err != nil {
		return err
	}
	if err := manager.SetMaterial(grid.Material); err != nil {
		return err
	}
	if grid.DataType != "" {
		if err := manager.SetDataType(grid.DataType); err != nil {
			return err
		}
	}
	if err := manager.SetOutput(s.Output.Volume); err != nil {
		return err
	}
	if err := manager.SetRangeOutput(s.Output.RangeTable); err != nil {
		return err
	}
	if err := manager.Initialize(); err != nil {
		return err
	}

	for position, entry := range s.Solids {
		if err := drawSolid(entry, manager); err != nil {
			return fmt.Errorf("solid %d (label %d): %w", position, entry.Label, err)
		}
	}

	return manager.Write()
}

func drawSolid(entry Solid, manager *phantom.CreatorManager) error {
	solid, err := buildSolid(entry, manager)
	if err != nil {
		return err
	}

	if err := solid.SetPosition(entry.Position.X, entry.Position.Y, entry.Position.Z, "mm"); err != nil {
		return err
	}
	if entry.Rotation != nil {
		rotation := *entry.Rotation
		if err := solid.SetRotation(rotation.X, rotation.Y, rotation.Z, "deg"); err != nil {
			return err
		}
	}
	if err := solid.SetLabelValue(entry.Label); err != nil {
		return err
	}
	solid.SetMaterial(entry.Material)

	if err := solid.Initialize(); err != nil {
		return err
	}
	if err := solid.Draw(); err != nil {
		return err
	}
	solid.Delete()

	log.Debugf("Drawn label %d material %q", entry.Label, entry.Material)
	return nil
}

// drawable is the shared builder surface of the analytical solids.
type drawable interface {
	SetPosition(x, y, z float64, lengthUnit string) error
	SetRotation(rx, ry, rz float64, angleUnit string) error
	SetLabelValue(label int64) error
	SetMaterial(name string)
	Initialize() error
	Draw() error
	Delete()
}

func buildSolid(entry Solid, manager *phantom.CreatorManager) (drawable, error) {
	switch g := entry.Geometry.SolidType.(type) {
	case TubeGeometry:
		tube := phantom.NewTube(manager)
		if err := tube.SetHeight(g.Height, "mm"); err != nil {
			return nil, err
		}
		if err := tube.SetRadius(g.Radius, "mm"); err != nil {
			return nil, err
		}
		return tube, nil
	case BoxGeometry:
		box := phantom.NewBox(manager)
		if err := box.SetSize(g.Size.X, g.Size.Y, g.Size.Z, "mm"); err != nil {
			return nil, err
		}
		return box, nil
	case SphereGeometry:
		sphere := phantom.NewSphere(manager)
		if err := sphere.SetRadius(g.Radius, "mm"); err != nil {
			return nil, err
		}
		return sphere, nil
	default:
		return nil, fmt.Errorf("geometry type %T drawing not implemented", entry.Geometry.SolidType)
	}
}
