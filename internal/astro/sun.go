package astro

import (
	"math"

	"github.com/litescript/starward/internal/verbose"
)

// Solar altitude thresholds in degrees. Rise/set uses the standard
// -0.8333° (atmospheric refraction plus solar semidiameter); twilight
// thresholds follow the usual civil/nautical/astronomical definitions.
const (
	SunRiseSetAltitude       = -0.8333
	CivilTwilightAltitude    = -6.0
	NauticalTwilightAltitude = -12.0
	AstroTwilightAltitude    = -18.0
)

// SunPosition is the apparent solar position at an instant.
//
// The low-precision series (Meeus chapter 25) is good to roughly 0.01° in
// the centuries around J2000; outside that range accuracy degrades but a
// value is still returned.
type SunPosition struct {
	Longitude  Angle      // apparent ecliptic longitude
	Equatorial Equatorial // apparent RA/Dec
	DistanceAU float64    // Earth-Sun distance

	// EquationOfTime is apparent minus mean solar time, in minutes.
	EquationOfTime float64
}

// sunMeanLongitude returns the Sun's geometric mean longitude
// (Meeus equation 25.2).
func sunMeanLongitude(t Instant, led *verbose.Ledger) Angle {
	T := t.JulianCenturies()
	l0 := 280.46646 + 36000.76983*T + 0.0003032*T*T
	a := Degrees(l0).Normalize()
	led.Record("Sun mean longitude", "L₀ = 280.46646 + 36000.76983·T + 0.0003032·T²", a.Degrees())
	return a
}

// sunMeanAnomaly returns the Sun's mean anomaly (Meeus equation 25.3).
func sunMeanAnomaly(t Instant, led *verbose.Ledger) Angle {
	T := t.JulianCenturies()
	m := 357.52911 + 35999.05029*T - 0.0001537*T*T
	a := Degrees(m).Normalize()
	led.Record("Sun mean anomaly", "M = 357.52911 + 35999.05029·T - 0.0001537·T²", a.Degrees())
	return a
}

// earthEccentricity returns the eccentricity of Earth's orbit.
func earthEccentricity(t Instant) float64 {
	T := t.JulianCenturies()
	return 0.016708634 - 0.000042037*T - 0.0000001267*T*T
}

// sunEquationOfCenter returns the Sun's equation of center
// (Meeus equation 25.4).
func sunEquationOfCenter(t Instant, led *verbose.Ledger) Angle {
	T := t.JulianCenturies()
	m := sunMeanAnomaly(t, nil).Radians()

	c := (1.914602-0.004817*T-0.000014*T*T)*math.Sin(m) +
		(0.019993-0.000101*T)*math.Sin(2*m) +
		0.000289*math.Sin(3*m)

	led.Record("Equation of center", "C = (1.9146 - 0.0048·T)·sin(M) + 0.0200·sin(2M) + 0.0003·sin(3M)", c)
	return Degrees(c)
}

// sunApparentLongitude returns the Sun's apparent ecliptic longitude,
// corrected for nutation and aberration.
func sunApparentLongitude(t Instant, led *verbose.Ledger) Angle {
	l0 := sunMeanLongitude(t, led)
	c := sunEquationOfCenter(t, led)
	trueLon := l0.Add(c).Normalize()
	led.Record("Sun true longitude", "☉ = L₀ + C", trueLon.Degrees())

	T := t.JulianCenturies()
	omega := 125.04 - 1934.136*T
	apparent := trueLon.Degrees() - 0.00569 - 0.00478*math.Sin(Degrees(omega).Radians())
	a := Degrees(apparent).Normalize()
	led.Record("Apparent longitude", "λ = ☉ - 0.00569 - 0.00478·sin(Ω)", a.Degrees())
	return a
}

// trueObliquity returns the obliquity of the ecliptic with the simplified
// nutation correction applied.
func trueObliquity(t Instant, led *verbose.Ledger) Angle {
	eps0 := MeanObliquity(t, led)
	T := t.JulianCenturies()
	omega := 125.04 - 1934.136*T
	eps := eps0.Degrees() + 0.00256*math.Cos(Degrees(omega).Radians())
	led.Record("True obliquity", "ε = ε₀ + 0.00256·cos(Ω)", eps)
	return Degrees(eps)
}

// EquationOfTime returns apparent minus mean solar time in minutes.
func EquationOfTime(t Instant, led *verbose.Ledger) float64 {
	l0 := sunMeanLongitude(t, nil).Radians()
	m := sunMeanAnomaly(t, nil).Radians()
	e := earthEccentricity(t)
	eps := MeanObliquity(t, nil).Radians()

	y := math.Tan(eps/2) * math.Tan(eps/2)

	eq := y*math.Sin(2*l0) -
		2*e*math.Sin(m) +
		4*e*y*math.Sin(m)*math.Cos(2*l0) -
		0.5*y*y*math.Sin(4*l0) -
		1.25*e*e*math.Sin(2*m)

	// Radians to degrees, then degrees to minutes of time (1° = 4 min).
	minutes := eq * 180 / math.Pi * 4
	led.Record("Equation of time", "E = y·sin(2L₀) - 2e·sin(M) + 4ey·sin(M)·cos(2L₀) - y²/2·sin(4L₀) - 5e²/4·sin(2M)", minutes)
	return minutes
}

// Sun computes the apparent solar position at an instant.
func Sun(t Instant, led *verbose.Ledger) SunPosition {
	led.Record("Julian centuries", "T = (JD - 2451545)/36525", t.JulianCenturies())

	lon := sunApparentLongitude(t, led)
	eps := trueObliquity(t, led)

	lonRad := lon.Radians()
	epsRad := eps.Radians()

	ra := Radians(math.Atan2(math.Cos(epsRad)*math.Sin(lonRad), math.Cos(lonRad))).Normalize()
	dec := Radians(math.Asin(clamp1(math.Sin(epsRad) * math.Sin(lonRad))))
	led.Record("Right ascension", "α = atan2(cos(ε)·sin(λ), cos(λ))", ra.Degrees())
	led.Record("Declination", "δ = asin(sin(ε)·sin(λ))", dec.Degrees())

	// Distance via the true anomaly (Meeus equation 25.5).
	e := earthEccentricity(t)
	v := sunMeanAnomaly(t, nil).Add(sunEquationOfCenter(t, nil)).Radians()
	r := (1.000001018 * (1 - e*e)) / (1 + e*math.Cos(v))
	led.Record("Sun distance", "R = a·(1-e²)/(1+e·cos(v))", r)

	return SunPosition{
		Longitude:      lon,
		Equatorial:     Equatorial{RA: ra, Dec: dec},
		DistanceAU:     r,
		EquationOfTime: EquationOfTime(t, led),
	}
}

// SunProvider adapts the solar ephemeris to the position-provider shape
// consumed by the event finder.
func SunProvider() PositionFunc {
	return func(t Instant, led *verbose.Ledger) Equatorial {
		return Sun(t, led).Equatorial
	}
}
