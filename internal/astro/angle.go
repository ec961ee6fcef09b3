// Package astro implements the positional-astronomy core: angles, time
// scales, coordinate frame transformations, Sun/Moon/planet positions, and
// rise/set/twilight event finding. All operations are pure functions over
// immutable values and optionally narrate their work through a
// verbose.Ledger without affecting results.
package astro

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Angle is an immutable angular value backed by decimal degrees.
// The raw value is stored as constructed; use Normalize for the canonical
// [0,360) representation of azimuth/longitude-like angles.
type Angle struct {
	deg float64
}

// Degrees constructs an Angle from decimal degrees.
func Degrees(d float64) Angle { return Angle{deg: d} }

// Radians constructs an Angle from radians.
func Radians(r float64) Angle { return Angle{deg: r * 180 / math.Pi} }

// Hours constructs an Angle from hours of right ascension (24h = 360°).
func Hours(h float64) Angle { return Angle{deg: h * 15} }

// FromHMS constructs an Angle from hours, minutes, seconds.
// The sign of h applies to the whole value.
func FromHMS(h, m int, s float64) Angle {
	sign := 1.0
	if h < 0 {
		sign = -1
		h = -h
	}
	return Hours(sign * (float64(h) + float64(m)/60 + s/3600))
}

// FromDMS constructs an Angle from degrees, arcminutes, arcseconds.
// The sign of d applies to the whole value.
func FromDMS(d, m int, s float64) Angle {
	sign := 1.0
	if d < 0 {
		sign = -1
		d = -d
	}
	return Degrees(sign * (float64(d) + float64(m)/60 + s/3600))
}

// Degrees returns the value in decimal degrees, as stored.
func (a Angle) Degrees() float64 { return a.deg }

// Radians returns the value in radians.
func (a Angle) Radians() float64 { return a.deg * math.Pi / 180 }

// Hours returns the value in hours (360° = 24h).
func (a Angle) Hours() float64 { return a.deg / 15 }

// Sin returns the sine of the angle.
func (a Angle) Sin() float64 { return math.Sin(a.Radians()) }

// Cos returns the cosine of the angle.
func (a Angle) Cos() float64 { return math.Cos(a.Radians()) }

// Add returns a + b.
func (a Angle) Add(b Angle) Angle { return Angle{deg: a.deg + b.deg} }

// Sub returns a - b.
func (a Angle) Sub(b Angle) Angle { return Angle{deg: a.deg - b.deg} }

// Normalize wraps the angle into [0, 360). Idempotent.
func (a Angle) Normalize() Angle {
	d := math.Mod(a.deg, 360)
	if d < 0 {
		d += 360
	}
	return Angle{deg: d}
}

// NormalizeSigned wraps the angle into [-180, 180). Values already in
// range pass through unchanged, so wrapping never perturbs them.
func (a Angle) NormalizeSigned() Angle {
	if a.deg >= -180 && a.deg < 180 {
		return a
	}
	d := math.Mod(a.deg+180, 360)
	if d < 0 {
		d += 360
	}
	return Angle{deg: d - 180}
}

// CheckDeclination validates a declination-like angle (declination,
// latitude, altitude). Values outside [-90, 90] indicate an upstream bug
// and fail with a DomainError rather than being wrapped.
func CheckDeclination(quantity string, a Angle) error {
	if a.deg < -90 || a.deg > 90 {
		return &DomainError{Quantity: quantity, Value: a.deg, Min: -90, Max: 90}
	}
	return nil
}

// FormatDMS renders the angle as signed sexagesimal degrees, e.g.
// "+41d16m09.0s". secDecimals sets the number of decimals on seconds.
func (a Angle) FormatDMS(secDecimals int) string {
	sign := "+"
	d := a.deg
	if d < 0 {
		sign = "-"
		d = -d
	}
	deg, min, sec := sexagesimal(d, secDecimals)
	return fmt.Sprintf("%s%02dd%02dm%0*.*fs", sign, deg, min, secWidth(secDecimals), secDecimals, sec)
}

// FormatHMS renders the angle as hours of right ascension, e.g.
// "10h20m30.00s". secDecimals sets the number of decimals on seconds.
func (a Angle) FormatHMS(secDecimals int) string {
	h := a.Normalize().Hours()
	hr, min, sec := sexagesimal(h, secDecimals)
	return fmt.Sprintf("%02dh%02dm%0*.*fs", hr, min, secWidth(secDecimals), secDecimals, sec)
}

// String renders the angle in sexagesimal degrees with one decimal on
// seconds.
func (a Angle) String() string { return a.FormatDMS(1) }

// sexagesimal splits a non-negative value into whole units, minutes, and
// seconds, rounding seconds to the given decimals with carry so that
// 59.999... rolls over instead of printing "60".
func sexagesimal(v float64, secDecimals int) (int, int, float64) {
	scale := math.Pow10(secDecimals)
	totalSec := math.Round(v*3600*scale) / scale

	whole := int(totalSec / 3600)
	rem := totalSec - float64(whole)*3600
	min := int(rem / 60)
	sec := rem - float64(min)*60

	// Guard against floating point pushing seconds to exactly 60.
	if sec >= 60 {
		sec -= 60
		min++
	}
	if min >= 60 {
		min -= 60
		whole++
	}
	return whole, min, sec
}

func secWidth(decimals int) int {
	if decimals <= 0 {
		return 2
	}
	return 3 + decimals // "SS." plus decimals
}

var (
	hmsPattern = regexp.MustCompile(`^([+-]?\d+)h\s*(\d+)m\s*(\d+(?:\.\d+)?)s?$`)
	dmsPattern = regexp.MustCompile(`^([+-]?\d+)(?:d|°)\s*(\d+)(?:m|')\s*(\d+(?:\.\d+)?)(?:s|")?$`)
)

// ParseAngle parses a textual angle. Accepted forms:
//
//	"10h20m30s"     sexagesimal hours (right ascension)
//	"+41d16m09s"    sexagesimal degrees, also 41°16'09"
//	"-16.716"       decimal degrees
//
// Malformed input fails with a FormatError naming the offending token.
func ParseAngle(s string) (Angle, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Angle{}, &FormatError{Input: s, Token: s}
	}

	if m := hmsPattern.FindStringSubmatch(trimmed); m != nil {
		return parseSexagesimal(s, m, true)
	}
	if m := dmsPattern.FindStringSubmatch(trimmed); m != nil {
		return parseSexagesimal(s, m, false)
	}

	d, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return Angle{}, &FormatError{Input: s, Token: firstBadToken(trimmed)}
	}
	return Degrees(d), nil
}

func parseSexagesimal(input string, m []string, hours bool) (Angle, error) {
	whole, err := strconv.Atoi(m[1])
	if err != nil {
		return Angle{}, &FormatError{Input: input, Token: m[1]}
	}
	min, err := strconv.Atoi(m[2])
	if err != nil || min >= 60 {
		return Angle{}, &FormatError{Input: input, Token: m[2]}
	}
	sec, err := strconv.ParseFloat(m[3], 64)
	if err != nil || sec >= 60 {
		return Angle{}, &FormatError{Input: input, Token: m[3]}
	}
	// Preserve the sign for "-00d..." style input.
	negative := strings.HasPrefix(strings.TrimSpace(m[1]), "-")
	if whole < 0 {
		whole = -whole
	}
	v := float64(whole) + float64(min)/60 + sec/3600
	if negative {
		v = -v
	}
	if hours {
		return Hours(v), nil
	}
	return Degrees(v), nil
}

// firstBadToken picks the fragment of a failed decimal parse that is most
// useful in the error message.
func firstBadToken(s string) string {
	for _, f := range strings.Fields(s) {
		if _, err := strconv.ParseFloat(f, 64); err != nil {
			return f
		}
	}
	return s
}

// AngularSeparation computes the great-circle separation between two
// points on the celestial sphere using the haversine form, which stays
// accurate for small separations.
func AngularSeparation(ra1, dec1, ra2, dec2 Angle) Angle {
	dRA := ra2.Radians() - ra1.Radians()
	dDec := dec2.Radians() - dec1.Radians()

	h := math.Sin(dDec/2)*math.Sin(dDec/2) +
		dec1.Cos()*dec2.Cos()*math.Sin(dRA/2)*math.Sin(dRA/2)
	if h > 1 {
		h = 1
	}
	return Radians(2 * math.Asin(math.Sqrt(h)))
}
