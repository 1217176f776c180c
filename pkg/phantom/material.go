package phantom

import (
	"fmt"
	"sort"
)

// maxLabel is the largest assignable voxel label. Labels are stored in a
// 16-bit buffer, which is a format contract of the emitted volume.
const maxLabel = 0xFFFF

// MaterialTable store the label to material name mapping of one session.
// Label 0 is always the session default material; other labels are caller
// chosen and recorded in first-use order. Labels may be sparse.
type MaterialTable struct {
	names map[uint16]string
}

// NewMaterialTable creates a table with defaultMaterial bound to label 0.
func NewMaterialTable(defaultMaterial string) *MaterialTable {
	return &MaterialTable{
		names: map[uint16]string{0: defaultMaterial},
	}
}

// Bind records label -> name. Binding the same name to an already used label
// is idempotent; a different name fails with ErrLabelConflict.
func (t *MaterialTable) Bind(label uint16, name string) error {
	bound, used := t.names[label]
	if used && bound != name {
		return fmt.Errorf(
			"%w: label %d already bound to material %q, cannot rebind to %q",
			ErrLabelConflict, label, bound, name,
		)
	}
	t.names[label] = name
	return nil
}

// MaterialName returns the material bound to label.
func (t *MaterialTable) MaterialName(label uint16) (string, bool) {
	name, bound := t.names[label]
	return name, bound
}

// Len returns the number of distinct bound labels.
func (t *MaterialTable) Len() int {
	return len(t.names)
}

// Labels returns all bound labels in ascending order.
func (t *MaterialTable) Labels() []uint16 {
	labels := make([]uint16, 0, len(t.names))
	for label := range t.names {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	return labels
}
