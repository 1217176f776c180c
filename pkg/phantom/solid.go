package phantom

import (
	"fmt"

	"github.com/voxphantom/voxphantom/pkg/phantom/geometry"
	"github.com/voxphantom/voxphantom/pkg/phantom/unit"
)

// Shape is the closed-form membership test of an analytical solid, expressed
// in the solid's local frame.
type Shape interface {
	// Contains reports whether the local frame point p lies inside the
	// shape. The boundary is inclusive.
	Contains(p geometry.Point) bool
	// Bounds returns the local frame axis aligned bounding box hint used
	// to clip rasterization.
	Bounds() (min, max geometry.Point)
}

// solid is the placement, label and lifecycle state shared by all
// analytical solids. Solids are transient descriptors; their only lasting
// effect is on the manager's grid and material table.
type solid struct {
	manager     *CreatorManager
	position    geometry.Point
	rotation    geometry.Matrix3
	inverse     geometry.Matrix3
	rotated     bool
	label       int64
	material    string
	initialized bool
	released    bool
}

func newSolid(manager *CreatorManager) solid {
	return solid{
		manager:  manager,
		rotation: geometry.IdentityMatrix(),
		inverse:  geometry.IdentityMatrix(),
		label:    -1,
	}
}

// SetPosition translates the solid's local origin to x, y, z.
func (s *solid) SetPosition(x, y, z float64, lengthUnit string) error {
	cx, err := unit.Length(x, lengthUnit)
	if err != nil {
		return err
	}
	cy, err := unit.Length(y, lengthUnit)
	if err != nil {
		return err
	}
	cz, err := unit.Length(z, lengthUnit)
	if err != nil {
		return err
	}
	s.position = geometry.Point{X: cx, Y: cy, Z: cz}
	return nil
}

// SetRotation rotates the solid by Euler angles rx, ry, rz applied in
// x, y, z order.
func (s *solid) SetRotation(rx, ry, rz float64, angleUnit string) error {
	crx, err := unit.Angle(rx, angleUnit)
	if err != nil {
		return err
	}
	cry, err := unit.Angle(ry, angleUnit)
	if err != nil {
		return err
	}
	crz, err := unit.Angle(rz, angleUnit)
	if err != nil {
		return err
	}
	s.rotation = geometry.NewRotationMatrix(crx, cry, crz)
	s.inverse = s.rotation.Transposed()
	s.rotated = true
	return nil
}

// SetLabelValue assigns the voxel label written by Draw.
func (s *solid) SetLabelValue(label int64) error {
	if label < 0 || label > maxLabel {
		return fmt.Errorf(
			"%w: label must be in range [0, %d], got %d",
			ErrInvalidGeometry, maxLabel, label,
		)
	}
	s.label = label
	return nil
}

// SetMaterial assigns the material name bound to the solid's label.
func (s *solid) SetMaterial(name string) {
	s.material = name
}

// Delete releases the solid descriptor. The grid and the material table keep
// any effect of earlier draws.
func (s *solid) Delete() {
	s.manager = nil
	s.initialized = false
	s.released = true
}

func (s *solid) initialize() error {
	if s.released {
		return fmt.Errorf("%w: solid already deleted", ErrNotInitialized)
	}
	if s.label < 0 {
		return fmt.Errorf("%w: solid label not set", ErrMissingConfiguration)
	}
	if s.material == "" {
		return fmt.Errorf("%w: solid material not set", ErrMissingConfiguration)
	}
	if err := s.manager.bindSolid(uint16(s.label), s.material); err != nil {
		return err
	}
	s.initialized = true
	return nil
}

func (s *solid) draw(shape Shape) error {
	if s.released {
		return fmt.Errorf("%w: solid already deleted", ErrNotInitialized)
	}
	if !s.initialized {
		return fmt.Errorf("%w: draw requires prior initialize", ErrNotInitialized)
	}
	return s.manager.rasterize(shape, s, uint16(s.label))
}

// toLocal transforms a grid space point into the solid's local frame.
func (s *solid) toLocal(p geometry.Point) geometry.Point {
	translated := p.Sub(s.position)
	if !s.rotated {
		return translated
	}
	return s.inverse.Apply(translated)
}

// worldBounds returns the axis aligned box enclosing the placed shape in
// grid space.
func (s *solid) worldBounds(shape Shape) (min, max geometry.Point) {
	localMin, localMax := shape.Bounds()
	if !s.rotated {
		return localMin.Add(s.position), localMax.Add(s.position)
	}

	corners := [8]geometry.Point{
		{X: localMin.X, Y: localMin.Y, Z: localMin.Z},
		{X: localMin.X, Y: localMin.Y, Z: localMax.Z},
		{X: localMin.X, Y: localMax.Y, Z: localMin.Z},
		{X: localMin.X, Y: localMax.Y, Z: localMax.Z},
		{X: localMax.X, Y: localMin.Y, Z: localMin.Z},
		{X: localMax.X, Y: localMin.Y, Z: localMax.Z},
		{X: localMax.X, Y: localMax.Y, Z: localMin.Z},
		{X: localMax.X, Y: localMax.Y, Z: localMax.Z},
	}

	min = s.rotation.Apply(corners[0])
	max = min
	for _, corner := range corners[1:] {
		rotated := s.rotation.Apply(corner)
		if rotated.X < min.X {
			min.X = rotated.X
		}
		if rotated.Y < min.Y {
			min.Y = rotated.Y
		}
		if rotated.Z < min.Z {
			min.Z = rotated.Z
		}
		if rotated.X > max.X {
			max.X = rotated.X
		}
		if rotated.Y > max.Y {
			max.Y = rotated.Y
		}
		if rotated.Z > max.Z {
			max.Z = rotated.Z
		}
	}
	return min.Add(s.position), max.Add(s.position)
}

// Tube is an analytical cylinder aligned with the local z axis, centered at
// the local origin.
type Tube struct {
	solid
	height float64
	radius float64
}

// NewTube creates a tube descriptor bound to manager.
func NewTube(manager *CreatorManager) *Tube {
	return &Tube{solid: newSolid(manager)}
}

// SetHeight sets the tube height along the local z axis.
func (t *Tube) SetHeight(value float64, lengthUnit string) error {
	height, err := unit.Length(value, lengthUnit)
	if err != nil {
		return err
	}
	t.height = height
	return nil
}

// SetRadius sets the tube radius.
func (t *Tube) SetRadius(value float64, lengthUnit string) error {
	radius, err := unit.Length(value, lengthUnit)
	if err != nil {
		return err
	}
	t.radius = radius
	return nil
}

// Initialize validates the tube parameters and binds its label to its
// material in the session material table.
func (t *Tube) Initialize() error {
	if t.height <= 0 {
		return fmt.Errorf("%w: tube height must be positive, got %g mm", ErrInvalidGeometry, t.height)
	}
	if t.radius <= 0 {
		return fmt.Errorf("%w: tube radius must be positive, got %g mm", ErrInvalidGeometry, t.radius)
	}
	return t.solid.initialize()
}

// Draw rasterizes the tube into the session grid.
func (t *Tube) Draw() error {
	return t.solid.draw(t)
}

// Contains implements Shape.
func (t *Tube) Contains(p geometry.Point) bool {
	if p.Z < -t.height/2 || p.Z > t.height/2 {
		return false
	}
	return p.X*p.X+p.Y*p.Y <= t.radius*t.radius
}

// Bounds implements Shape.
func (t *Tube) Bounds() (min, max geometry.Point) {
	zMin, zMax := geometry.CenterAndSizeToMinAndMax(0, t.height)
	return geometry.Point{X: -t.radius, Y: -t.radius, Z: zMin},
		geometry.Point{X: t.radius, Y: t.radius, Z: zMax}
}

// Box is an analytical axis aligned cuboid centered at the local origin.
type Box struct {
	solid
	size geometry.Vec3D
}

// NewBox creates a box descriptor bound to manager.
func NewBox(manager *CreatorManager) *Box {
	return &Box{solid: newSolid(manager)}
}

// SetSize sets the box edge lengths.
func (b *Box) SetSize(x, y, z float64, lengthUnit string) error {
	sx, err := unit.Length(x, lengthUnit)
	if err != nil {
		return err
	}
	sy, err := unit.Length(y, lengthUnit)
	if err != nil {
		return err
	}
	sz, err := unit.Length(z, lengthUnit)
	if err != nil {
		return err
	}
	b.size = geometry.Vec3D{X: sx, Y: sy, Z: sz}
	return nil
}

// Initialize validates the box parameters and binds its label to its
// material in the session material table.
func (b *Box) Initialize() error {
	for _, axis := range []struct {
		name string
		size float64
	}{
		{"x", b.size.X},
		{"y", b.size.Y},
		{"z", b.size.Z},
	} {
		if axis.size <= 0 {
			return fmt.Errorf(
				"%w: box size in %s axis must be positive, got %g mm",
				ErrInvalidGeometry, axis.name, axis.size,
			)
		}
	}
	return b.solid.initialize()
}

// Draw rasterizes the box into the session grid.
func (b *Box) Draw() error {
	return b.solid.draw(b)
}

// Contains implements Shape.
func (b *Box) Contains(p geometry.Point) bool {
	return p.X >= -b.size.X/2 && p.X <= b.size.X/2 &&
		p.Y >= -b.size.Y/2 && p.Y <= b.size.Y/2 &&
		p.Z >= -b.size.Z/2 && p.Z <= b.size.Z/2
}

// Bounds implements Shape.
func (b *Box) Bounds() (min, max geometry.Point) {
	xMin, xMax := geometry.CenterAndSizeToMinAndMax(0, b.size.X)
	yMin, yMax := geometry.CenterAndSizeToMinAndMax(0, b.size.Y)
	zMin, zMax := geometry.CenterAndSizeToMinAndMax(0, b.size.Z)
	return geometry.Point{X: xMin, Y: yMin, Z: zMin},
		geometry.Point{X: xMax, Y: yMax, Z: zMax}
}

// Sphere is an analytical sphere centered at the local origin.
type Sphere struct {
	solid
	radius float64
}

// NewSphere creates a sphere descriptor bound to manager.
func NewSphere(manager *CreatorManager) *Sphere {
	return &Sphere{solid: newSolid(manager)}
}

// SetRadius sets the sphere radius.
func (s *Sphere) SetRadius(value float64, lengthUnit string) error {
	radius, err := unit.Length(value, lengthUnit)
	if err != nil {
		return err
	}
	s.radius = radius
	return nil
}

// Initialize validates the sphere parameters and binds its label to its
// material in the session material table.
func (s *Sphere) Initialize() error {
	if s.radius <= 0 {
		return fmt.Errorf("%w: sphere radius must be positive, got %g mm", ErrInvalidGeometry, s.radius)
	}
	return s.solid.initialize()
}

// Draw rasterizes the sphere into the session grid.
func (s *Sphere) Draw() error {
	return s.solid.draw(s)
}

// Contains implements Shape.
func (s *Sphere) Contains(p geometry.Point) bool {
	return p.X*p.X+p.Y*p.Y+p.Z*p.Z <= s.radius*s.radius
}

// Bounds implements Shape.
func (s *Sphere) Bounds() (min, max geometry.Point) {
	return geometry.Point{X: -s.radius, Y: -s.radius, Z: -s.radius},
		geometry.Point{X: s.radius, Y: s.radius, Z: s.radius}
}
