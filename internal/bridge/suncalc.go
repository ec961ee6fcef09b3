// Package bridge cross-checks the native solar ephemeris against the
// independent suncalc implementation. It backs the --cross-check flag and
// the comparison tests; nothing in the core depends on it.
package bridge

import (
	"math"
	"time"

	"github.com/sixdouglas/suncalc"

	"github.com/litescript/starward/internal/astro"
)

// SunComparison holds the same solar quantities computed two ways.
type SunComparison struct {
	NativeAltitude Angle2 // degrees, both values
	NativeAzimuth  Angle2

	SunriseDeltaSec float64
	SunsetDeltaSec  float64
}

// Angle2 pairs a native value with its suncalc counterpart, in degrees.
type Angle2 struct {
	Native  float64
	Suncalc float64
}

// Delta returns the absolute difference in degrees.
func (a Angle2) Delta() float64 {
	return math.Abs(a.Native - a.Suncalc)
}

// ComparePosition computes the Sun's horizontal position with the native
// ephemeris and with suncalc for the same observer and instant.
func ComparePosition(obs astro.Observer, t astro.Instant) SunComparison {
	native := astro.EquatorialToHorizontal(astro.Sun(t, nil).Equatorial, obs, t, nil)

	pos := suncalc.GetPosition(t.Time(), obs.Latitude.Degrees(), obs.Longitude.Degrees())

	// suncalc measures azimuth from South westward; convert to the
	// North-eastward convention.
	scAz := astro.Radians(pos.Azimuth).Add(astro.Degrees(180)).Normalize()

	return SunComparison{
		NativeAltitude: Angle2{
			Native:  native.Alt.Degrees(),
			Suncalc: astro.Radians(pos.Altitude).Degrees(),
		},
		NativeAzimuth: Angle2{
			Native:  native.Az.Degrees(),
			Suncalc: scAz.Degrees(),
		},
	}
}

// CompareRiseSet computes sunrise and sunset both ways and reports the
// differences in seconds. The native result must carry both events.
func CompareRiseSet(obs astro.Observer, date astro.Instant) (SunComparison, error) {
	events, err := astro.SunRiseSet(obs, date, nil)
	if err != nil {
		return SunComparison{}, err
	}

	times := suncalc.GetTimes(date.Time(), obs.Latitude.Degrees(), obs.Longitude.Degrees())

	var cmp SunComparison
	if events.Rise.State == astro.EventAt {
		cmp.SunriseDeltaSec = deltaSeconds(events.Rise.Time.Time(), times["sunrise"].Value)
	}
	if events.Set.State == astro.EventAt {
		cmp.SunsetDeltaSec = deltaSeconds(events.Set.Time.Time(), times["sunset"].Value)
	}
	return cmp, nil
}

func deltaSeconds(a, b time.Time) float64 {
	return math.Abs(a.Sub(b).Seconds())
}
