package phantom

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/voxphantom/voxphantom/format"
)

const (
	mhdExtension   = ".mhd"
	rawExtension   = ".raw"
	rangeExtension = ".txt"
)

// dataTypeWidth maps supported MetaImage element type tags to their payload
// element width in bytes.
var dataTypeWidth = map[string]int{
	"MET_UCHAR":  1,
	"MET_USHORT": 2,
	"MET_UINT":   4,
}

// SerializeVolumeHeader renders the MetaImage textual header describing
// grid. dataFileName is the payload file referenced by the header.
func SerializeVolumeHeader(grid *Grid, dataType, dataFileName string) string {
	writer := &bytes.Buffer{}
	dims := grid.Dims()
	spacing := grid.Spacing()

	fmt.Fprintln(writer, "ObjectType = Image")
	fmt.Fprintln(writer, "NDims = 3")
	fmt.Fprintln(writer, "BinaryData = True")
	fmt.Fprintln(writer, "BinaryDataByteOrderMSB = False")
	fmt.Fprintln(writer, "CompressedData = False")
	fmt.Fprintf(writer, "Offset = %s %s %s\n",
		format.FloatToString(-float64(dims.X)*spacing.X/2),
		format.FloatToString(-float64(dims.Y)*spacing.Y/2),
		format.FloatToString(-float64(dims.Z)*spacing.Z/2),
	)
	fmt.Fprintf(writer, "ElementSpacing = %s %s %s\n",
		format.FloatToString(spacing.X),
		format.FloatToString(spacing.Y),
		format.FloatToString(spacing.Z),
	)
	fmt.Fprintf(writer, "DimSize = %d %d %d\n", dims.X, dims.Y, dims.Z)
	fmt.Fprintf(writer, "ElementType = %s\n", dataType)
	fmt.Fprintf(writer, "ElementDataFile = %s\n", dataFileName)

	return writer.String()
}

// EncodeVolumeData encodes the grid labels as little-endian fixed-width
// integers in row-major order, one element per voxel, width per dataType.
func EncodeVolumeData(grid *Grid, dataType string) ([]byte, error) {
	width, known := dataTypeWidth[dataType]
	if !known {
		return nil, fmt.Errorf("%w: data type %q is not supported", ErrInvalidDataType, dataType)
	}

	labels := grid.Data()
	payload := make([]byte, 0, len(labels)*width)
	for _, label := range labels {
		switch width {
		case 1:
			if label > 0xFF {
				return nil, fmt.Errorf(
					"label %d does not fit data type %s", label, dataType,
				)
			}
			payload = append(payload, byte(label))
		case 2:
			payload = binary.LittleEndian.AppendUint16(payload, label)
		case 4:
			payload = binary.LittleEndian.AppendUint32(payload, uint32(label))
		}
	}
	return payload, nil
}

// SerializeRangeTable renders the material range table, one
// "label material" line per bound label in ascending label order.
func SerializeRangeTable(materials *MaterialTable) string {
	writer := &bytes.Buffer{}
	for _, label := range materials.Labels() {
		name, _ := materials.MaterialName(label)
		fmt.Fprintf(writer, "%d %s\n", label, name)
	}
	return writer.String()
}

// WriteVolume emits the textual header to headerPath and the raw voxel
// payload to dataPath.
func WriteVolume(grid *Grid, dataType, headerPath, dataPath string) error {
	payload, err := EncodeVolumeData(grid, dataType)
	if err != nil {
		return err
	}

	header := SerializeVolumeHeader(grid, dataType, filepath.Base(dataPath))
	if err := writeOutputFile(headerPath, []byte(header)); err != nil {
		return err
	}
	return writeOutputFile(dataPath, payload)
}

// WriteRangeTable emits the material range table to path.
func WriteRangeTable(materials *MaterialTable, path string) error {
	return writeOutputFile(path, []byte(SerializeRangeTable(materials)))
}

func writeOutputFile(path string, content []byte) error {
	if err := ensureOutputDir(path); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %v", ErrIO, path, err)
	}
	defer file.Close()

	if _, err := io.Copy(file, bytes.NewReader(content)); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrIO, path, err)
	}
	return nil
}
