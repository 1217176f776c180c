package phantom

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/voxphantom/voxphantom/pkg/phantom/geometry"
)

// ReadVolume parses an emitted header and its payload back into a grid.
// The payload file is resolved relative to the header's directory.
func ReadVolume(headerPath string) (*Grid, string, error) {
	file, err := os.Open(headerPath)
	if err != nil {
		return nil, "", fmt.Errorf("%w: opening %s: %v", ErrIO, headerPath, err)
	}
	defer file.Close()

	fields := map[string]string{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			return nil, "", fmt.Errorf("malformed header line %q in %s", line, headerPath)
		}
		fields[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, "", fmt.Errorf("%w: reading %s: %v", ErrIO, headerPath, err)
	}

	if fields["NDims"] != "3" {
		return nil, "", fmt.Errorf("header %s: expected NDims = 3, got %q", headerPath, fields["NDims"])
	}

	dims, err := parseHeaderInts(fields["DimSize"])
	if err != nil {
		return nil, "", fmt.Errorf("header %s: DimSize: %v", headerPath, err)
	}
	spacing, err := parseHeaderFloats(fields["ElementSpacing"])
	if err != nil {
		return nil, "", fmt.Errorf("header %s: ElementSpacing: %v", headerPath, err)
	}

	dataType := fields["ElementType"]
	width, known := dataTypeWidth[dataType]
	if !known {
		return nil, "", fmt.Errorf("%w: header %s: element type %q is not supported", ErrInvalidDataType, headerPath, dataType)
	}

	dataFileName := fields["ElementDataFile"]
	if dataFileName == "" {
		return nil, "", fmt.Errorf("header %s: missing ElementDataFile", headerPath)
	}
	dataPath := filepath.Join(filepath.Dir(headerPath), dataFileName)

	payload, err := os.ReadFile(dataPath)
	if err != nil {
		return nil, "", fmt.Errorf("%w: reading %s: %v", ErrIO, dataPath, err)
	}

	grid, err := NewGrid(dims, spacing, 0)
	if err != nil {
		return nil, "", err
	}
	if int64(len(payload)) != grid.VoxelCount()*int64(width) {
		return nil, "", fmt.Errorf(
			"payload %s: expected %d bytes, got %d",
			dataPath, grid.VoxelCount()*int64(width), len(payload),
		)
	}

	labels := grid.Data()
	for voxel := range labels {
		element := payload[voxel*width:]
		switch width {
		case 1:
			labels[voxel] = uint16(element[0])
		case 2:
			labels[voxel] = binary.LittleEndian.Uint16(element)
		case 4:
			value := binary.LittleEndian.Uint32(element)
			if value > maxLabel {
				return nil, "", fmt.Errorf(
					"payload %s: element %d does not fit the label range", dataPath, value,
				)
			}
			labels[voxel] = uint16(value)
		}
	}

	return grid, dataType, nil
}

func parseHeaderInts(value string) (geometry.Vec3DInt, error) {
	tokens := strings.Fields(value)
	if len(tokens) != 3 {
		return geometry.Vec3DInt{}, fmt.Errorf("expected 3 values, got %q", value)
	}
	parsed := [3]int64{}
	for i, token := range tokens {
		number, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return geometry.Vec3DInt{}, err
		}
		parsed[i] = number
	}
	return geometry.Vec3DInt{X: parsed[0], Y: parsed[1], Z: parsed[2]}, nil
}

func parseHeaderFloats(value string) (geometry.Vec3D, error) {
	tokens := strings.Fields(value)
	if len(tokens) != 3 {
		return geometry.Vec3D{}, fmt.Errorf("expected 3 values, got %q", value)
	}
	parsed := [3]float64{}
	for i, token := range tokens {
		number, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return geometry.Vec3D{}, err
		}
		parsed[i] = number
	}
	return geometry.Vec3D{X: parsed[0], Y: parsed[1], Z: parsed[2]}, nil
}
