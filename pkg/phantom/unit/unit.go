// Package unit implement conversion of caller supplied values to canonical
// units. Canonical length unit is millimeter, canonical angle unit is radian.
package unit

import "fmt"

// ErrInvalidUnit unrecognized unit token.
var ErrInvalidUnit = fmt.Errorf("invalidunit")

var lengthInMillimeters = map[string]float64{
	"nm": 1e-6,
	"um": 1e-3,
	"mm": 1.0,
	"cm": 10.0,
	"m":  1000.0,
}

var angleInRadians = map[string]float64{
	"rad":  1.0,
	"mrad": 1e-3,
	"deg":  0.017453292519943295,
}

// Length converts value expressed in unit to millimeters.
func Length(value float64, unit string) (float64, error) {
	factor, known := lengthInMillimeters[unit]
	if !known {
		return 0, fmt.Errorf("%w: unknown length unit %q", ErrInvalidUnit, unit)
	}
	return value * factor, nil
}

// Angle converts value expressed in unit to radians.
func Angle(value float64, unit string) (float64, error) {
	factor, known := angleInRadians[unit]
	if !known {
		return 0, fmt.Errorf("%w: unknown angle unit %q", ErrInvalidUnit, unit)
	}
	return value * factor, nil
}
