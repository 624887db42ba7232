// SPDX-License-Identifier: EPL-2.0

package geom

import (
	"fmt"
	"math"
	"strings"
)

// AngleUnit names the unit an azimuth or elevation is expressed in.
type AngleUnit int

const (
	Radians AngleUnit = iota
	Degrees
)

func (u AngleUnit) String() string {
	switch u {
	case Radians:
		return "radians"
	case Degrees:
		return "degrees"
	default:
		return fmt.Sprintf("AngleUnit(%d)", int(u))
	}
}

// ParseAngleUnit accepts "rad", "radians", "deg" and "degrees" (any case).
// The empty string maps to Radians.
func ParseAngleUnit(s string) (AngleUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rad", "radian", "radians":
		return Radians, nil
	case "deg", "degree", "degrees":
		return Degrees, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAngleUnit, s)
	}
}

// ToRadians converts v, expressed in unit u, to radians.
func (u AngleUnit) ToRadians(v float64) float64 {
	if u == Degrees {
		return v * math.Pi / 180
	}
	return v
}

// FromSpherical returns the unit vector for azimuth az and elevation el,
// both in radians.
func FromSpherical(az, el float64) Vec3 {
	cosEl := math.Cos(el)
	return Vec3{
		X: cosEl * math.Cos(az),
		Y: cosEl * math.Sin(az),
		Z: math.Sin(el),
	}
}

// ToSpherical is the inverse of FromSpherical for a non-zero v. The returned
// azimuth is in (-π, π].
func ToSpherical(v Vec3) (az, el float64) {
	l := v.Len()
	if l == 0 {
		return 0, 0
	}
	return math.Atan2(v.Y, v.X), math.Asin(v.Z / l)
}
