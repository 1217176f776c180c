// Package format provide numeric formatting helpers for serialized output
// files.
package format

import "strconv"

// FloatToString formats n with the fewest digits reproducing the value,
// without trailing fraction zeros.
func FloatToString(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
