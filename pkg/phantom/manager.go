// Package phantom implement the voxelized phantom creation engine: analytical
// solids are rasterized in caller order into a label grid which is then
// written, together with its material range table, for a Monte Carlo
// transport engine.
package phantom

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	conf "github.com/voxphantom/voxphantom/config"
	"github.com/voxphantom/voxphantom/pkg/phantom/geometry"
	"github.com/voxphantom/voxphantom/pkg/phantom/unit"
)

var log = conf.NamedLogger("phantom")

type sessionState int

const (
	stateUnconfigured sessionState = iota
	stateConfigured
	stateInitialized
	stateDrawing
	stateWritten
)

// CreatorManager drive one phantom creation session. It owns the voxel grid
// and the material table; solids draw through it in caller order, later
// draws overwriting earlier ones inside overlapping regions.
type CreatorManager struct {
	state sessionState

	dims            geometry.Vec3DInt
	spacing         geometry.Vec3D
	outputBasename  string
	rangeOutputPath string
	defaultMaterial string
	dataType        string

	grid      *Grid
	materials *MaterialTable
}

// NewCreatorManager creates an unconfigured session.
func NewCreatorManager() *CreatorManager {
	return &CreatorManager{
		state:    stateUnconfigured,
		dataType: "MET_USHORT",
	}
}

// SetDimensions sets the number of voxels per axis.
func (m *CreatorManager) SetDimensions(nx, ny, nz int64) error {
	if err := m.ensureConfigurable("SetDimensions"); err != nil {
		return err
	}
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return fmt.Errorf(
			"%w: grid dimensions must be positive, got %d %d %d",
			ErrInvalidGeometry, nx, ny, nz,
		)
	}
	m.dims = geometry.Vec3DInt{X: nx, Y: ny, Z: nz}
	m.state = stateConfigured
	return nil
}

// SetElementSizes sets the physical voxel size per axis.
func (m *CreatorManager) SetElementSizes(sx, sy, sz float64, lengthUnit string) error {
	if err := m.ensureConfigurable("SetElementSizes"); err != nil {
		return err
	}
	csx, err := unit.Length(sx, lengthUnit)
	if err != nil {
		return err
	}
	csy, err := unit.Length(sy, lengthUnit)
	if err != nil {
		return err
	}
	csz, err := unit.Length(sz, lengthUnit)
	if err != nil {
		return err
	}
	if csx <= 0 || csy <= 0 || csz <= 0 {
		return fmt.Errorf(
			"%w: element sizes must be positive, got %g %g %g mm",
			ErrInvalidGeometry, csx, csy, csz,
		)
	}
	m.spacing = geometry.Vec3D{X: csx, Y: csy, Z: csz}
	m.state = stateConfigured
	return nil
}

// SetOutput sets the volume output basename; Write emits basename.mhd and
// basename.raw.
func (m *CreatorManager) SetOutput(path string) error {
	if err := m.ensureConfigurable("SetOutput"); err != nil {
		return err
	}
	m.outputBasename = strings.TrimSuffix(path, mhdExtension)
	m.state = stateConfigured
	return nil
}

// SetRangeOutput sets the material range table output path.
func (m *CreatorManager) SetRangeOutput(path string) error {
	if err := m.ensureConfigurable("SetRangeOutput"); err != nil {
		return err
	}
	if filepath.Ext(path) == "" {
		path += rangeExtension
	}
	m.rangeOutputPath = path
	m.state = stateConfigured
	return nil
}

// SetMaterial sets the default material filling the grid, bound to label 0.
func (m *CreatorManager) SetMaterial(name string) error {
	if err := m.ensureConfigurable("SetMaterial"); err != nil {
		return err
	}
	m.defaultMaterial = name
	m.state = stateConfigured
	return nil
}

// SetDataType sets the payload element type tag. Default is MET_USHORT.
func (m *CreatorManager) SetDataType(tag string) error {
	if err := m.ensureConfigurable("SetDataType"); err != nil {
		return err
	}
	if _, known := dataTypeWidth[tag]; !known {
		return fmt.Errorf("%w: data type %q is not supported", ErrInvalidDataType, tag)
	}
	m.dataType = tag
	m.state = stateConfigured
	return nil
}

// Initialize allocates the grid and seeds the material table with the
// default material. Grid geometry is immutable afterwards.
func (m *CreatorManager) Initialize() error {
	switch m.state {
	case stateWritten:
		return fmt.Errorf("%w: initialize after write", ErrSessionClosed)
	case stateInitialized, stateDrawing:
		return fmt.Errorf("%w: session already initialized", ErrInvalidState)
	}

	if m.dims == (geometry.Vec3DInt{}) {
		return fmt.Errorf("%w: dimensions not set", ErrMissingConfiguration)
	}
	if m.spacing == (geometry.Vec3D{}) {
		return fmt.Errorf("%w: element sizes not set", ErrMissingConfiguration)
	}
	if m.defaultMaterial == "" {
		return fmt.Errorf("%w: default material not set", ErrMissingConfiguration)
	}

	grid, err := NewGrid(m.dims, m.spacing, 0)
	if err != nil {
		return err
	}
	m.grid = grid
	m.materials = NewMaterialTable(m.defaultMaterial)
	m.state = stateInitialized

	log.Debugf(
		"Session initialized: %dx%dx%d voxels, %g %g %g mm, default material %q",
		m.dims.X, m.dims.Y, m.dims.Z,
		m.spacing.X, m.spacing.Y, m.spacing.Z,
		m.defaultMaterial,
	)
	return nil
}

// Write emits the volume header, the raw voxel payload and the material
// range table, then closes the session.
func (m *CreatorManager) Write() error {
	switch m.state {
	case stateWritten:
		return fmt.Errorf("%w: session already written", ErrSessionClosed)
	case stateUnconfigured, stateConfigured:
		return fmt.Errorf("%w: write requires prior initialize", ErrInvalidState)
	}

	if m.outputBasename == "" {
		return fmt.Errorf("%w: volume output path not set", ErrMissingConfiguration)
	}
	if m.rangeOutputPath == "" {
		return fmt.Errorf("%w: range output path not set", ErrMissingConfiguration)
	}

	headerPath := m.outputBasename + mhdExtension
	dataPath := m.outputBasename + rawExtension
	if err := WriteVolume(m.grid, m.dataType, headerPath, dataPath); err != nil {
		return err
	}
	if err := WriteRangeTable(m.materials, m.rangeOutputPath); err != nil {
		return err
	}

	m.state = stateWritten
	log.Infof("Volume written to %s, range table to %s", headerPath, m.rangeOutputPath)
	return nil
}

// Grid exposes the session grid for inspection. Nil before Initialize.
func (m *CreatorManager) Grid() *Grid {
	return m.grid
}

// Materials exposes the session material table. Nil before Initialize.
func (m *CreatorManager) Materials() *MaterialTable {
	return m.materials
}

// DataType returns the payload element type tag.
func (m *CreatorManager) DataType() string {
	return m.dataType
}

func (m *CreatorManager) ensureConfigurable(operation string) error {
	switch m.state {
	case stateUnconfigured, stateConfigured:
		return nil
	case stateWritten:
		return fmt.Errorf("%w: %s after write", ErrSessionClosed, operation)
	default:
		return fmt.Errorf("%w: %s after initialize", ErrInvalidState, operation)
	}
}

func (m *CreatorManager) ensureDrawable() error {
	switch m.state {
	case stateInitialized, stateDrawing:
		return nil
	case stateWritten:
		return fmt.Errorf("%w: draw after write", ErrSessionClosed)
	default:
		return fmt.Errorf("%w: draw requires prior session initialize", ErrInvalidState)
	}
}

// bindSolid records a solid's label -> material binding. Called by solid
// Initialize.
func (m *CreatorManager) bindSolid(label uint16, material string) error {
	if err := m.ensureDrawable(); err != nil {
		return err
	}
	return m.materials.Bind(label, material)
}

// ensureOutputDir creates the directory holding path when missing.
func ensureOutputDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: creating output directory %s: %v", ErrIO, dir, err)
	}
	return nil
}
