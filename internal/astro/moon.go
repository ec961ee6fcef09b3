package astro

import (
	"math"

	"github.com/litescript/starward/internal/verbose"
)

// SynodicMonth is the mean length of a lunation in days.
const SynodicMonth = 29.530589

// earthRadiusKm is the equatorial Earth radius used for lunar parallax.
const earthRadiusKm = 6378.14

// MoonPosition is the geocentric lunar position at an instant.
//
// Uses the truncated series from Meeus chapter 47; accuracy is about 10"
// in longitude and 4" in latitude, plenty for rise/set work.
type MoonPosition struct {
	Longitude  Angle      // geocentric ecliptic longitude
	Latitude   Angle      // geocentric ecliptic latitude
	Equatorial Equatorial // geocentric RA/Dec

	DistanceKm      float64
	AngularDiameter Angle
	Parallax        Angle // horizontal parallax
}

// PhaseName is one of the eight traditional lunar phases.
type PhaseName string

const (
	NewMoon        PhaseName = "New Moon"
	WaxingCrescent PhaseName = "Waxing Crescent"
	FirstQuarter   PhaseName = "First Quarter"
	WaxingGibbous  PhaseName = "Waxing Gibbous"
	FullMoon       PhaseName = "Full Moon"
	WaningGibbous  PhaseName = "Waning Gibbous"
	LastQuarter    PhaseName = "Last Quarter"
	WaningCrescent PhaseName = "Waning Crescent"
)

// MoonPhaseInfo describes the Moon's phase at an instant.
type MoonPhaseInfo struct {
	PhaseAngle   Angle     // 0 = new, 180 = full
	Illumination float64   // fraction illuminated, 0..1
	Name         PhaseName // nearest named phase
	AgeDays      float64   // days since last new moon
}

// Fundamental lunar arguments (Meeus chapter 47), all wrapped to [0, 360).

func moonMeanLongitude(t Instant, led *verbose.Ledger) Angle {
	T := t.JulianCenturies()
	l := 218.3164477 + 481267.88123421*T - 0.0015786*T*T + T*T*T/538841 - T*T*T*T/65194000
	a := Degrees(l).Normalize()
	led.Record("Moon mean longitude", "L' = 218.3164 + 481267.8812·T", a.Degrees())
	return a
}

func moonMeanAnomaly(t Instant, led *verbose.Ledger) Angle {
	T := t.JulianCenturies()
	m := 134.9633964 + 477198.8675055*T + 0.0087414*T*T + T*T*T/69699 - T*T*T*T/14712000
	a := Degrees(m).Normalize()
	led.Record("Moon mean anomaly", "M' = 134.9634 + 477198.8675·T", a.Degrees())
	return a
}

func moonMeanElongation(t Instant, led *verbose.Ledger) Angle {
	T := t.JulianCenturies()
	d := 297.8501921 + 445267.1114034*T - 0.0018819*T*T + T*T*T/545868 - T*T*T*T/113065000
	a := Degrees(d).Normalize()
	led.Record("Mean elongation", "D = 297.8502 + 445267.1114·T", a.Degrees())
	return a
}

func moonArgumentOfLatitude(t Instant, led *verbose.Ledger) Angle {
	T := t.JulianCenturies()
	f := 93.2720950 + 483202.0175233*T - 0.0036539*T*T - T*T*T/3526000 + T*T*T*T/863310000
	a := Degrees(f).Normalize()
	led.Record("Argument of latitude", "F = 93.2721 + 483202.0175·T", a.Degrees())
	return a
}

// sunMeanAnomalyForMoon uses the slightly different coefficients Meeus
// gives in chapter 47 for lunar theory.
func sunMeanAnomalyForMoon(t Instant) Angle {
	T := t.JulianCenturies()
	m := 357.5291092 + 35999.0502909*T - 0.0001536*T*T + T*T*T/24490000
	return Degrees(m).Normalize()
}

// Moon computes the geocentric lunar position at an instant.
func Moon(t Instant, led *verbose.Ledger) MoonPosition {
	T := t.JulianCenturies()
	led.Record("Julian centuries", "T = (JD - 2451545)/36525", T)

	lPrime := moonMeanLongitude(t, led)
	d := moonMeanElongation(t, led).Radians()
	m := sunMeanAnomalyForMoon(t).Radians()
	mp := moonMeanAnomaly(t, led).Radians()
	f := moonArgumentOfLatitude(t, led).Radians()
	lRad := lPrime.Radians()

	// Planetary perturbation arguments.
	a1 := Degrees(119.75 + 131.849*T).Normalize().Radians()
	a2 := Degrees(53.09 + 479264.290*T).Normalize().Radians()
	a3 := Degrees(313.45 + 481266.484*T).Normalize().Radians()

	// Eccentricity factor for terms involving the solar anomaly.
	e := 1 - 0.002516*T - 0.0000074*T*T
	led.Record("Earth eccentricity factor", "E = 1 - 0.002516·T - 0.0000074·T²", e)

	// Principal terms of Meeus table 47.A (longitude, units 1e-6 deg).
	sigmaL := 6288774*math.Sin(mp) +
		1274027*math.Sin(2*d-mp) +
		658314*math.Sin(2*d) +
		213618*math.Sin(2*mp) -
		185116*e*math.Sin(m) -
		114332*math.Sin(2*f) +
		58793*math.Sin(2*d-2*mp) +
		57066*e*math.Sin(2*d-m-mp) +
		53322*math.Sin(2*d+mp) +
		45758*e*math.Sin(2*d-m) -
		40923*e*math.Sin(m-mp) -
		34720*math.Sin(d) -
		30383*e*math.Sin(m+mp) +
		15327*math.Sin(2*d-2*f) -
		12528*math.Sin(mp+2*f) +
		10980*math.Sin(mp-2*f) +
		10675*math.Sin(4*d-mp) +
		10034*math.Sin(3*mp) +
		8548*math.Sin(4*d-2*mp) -
		7888*e*math.Sin(2*d+m-mp) -
		6766*e*math.Sin(2*d+m) -
		5163*math.Sin(d-mp) +
		4987*e*math.Sin(d+m) +
		4036*e*math.Sin(2*d-m+mp)
	sigmaL += 3958*math.Sin(a1) + 1962*math.Sin(lRad-f) + 318*math.Sin(a2)

	// Distance terms of table 47.A (units 1e-3 km).
	sigmaR := -20905355*math.Cos(mp) -
		3699111*math.Cos(2*d-mp) -
		2955968*math.Cos(2*d) -
		569925*math.Cos(2*mp) +
		48888*e*math.Cos(m) -
		3149*math.Cos(2*f) +
		246158*math.Cos(2*d-2*mp) -
		152138*e*math.Cos(2*d-m-mp) -
		170733*math.Cos(2*d+mp) -
		204586*e*math.Cos(2*d-m) -
		129620*e*math.Cos(m-mp) +
		108743*math.Cos(d) +
		104755*e*math.Cos(m+mp) +
		79661*math.Cos(mp-2*f)

	// Latitude terms of table 47.B (units 1e-6 deg).
	sigmaB := 5128122*math.Sin(f) +
		280602*math.Sin(mp+f) +
		277693*math.Sin(mp-f) +
		173237*math.Sin(2*d-f) +
		55413*math.Sin(2*d-mp+f) +
		46271*math.Sin(2*d-mp-f) +
		32573*math.Sin(2*d+f) +
		17198*math.Sin(2*mp+f) +
		9266*math.Sin(2*d+mp-f) +
		8822*math.Sin(2*mp-f) +
		8216*e*math.Sin(2*d-m-f) +
		4324*math.Sin(2*d-2*mp-f) +
		4200*math.Sin(2*d+mp+f)
	sigmaB += -3359*math.Sin(a1-f) - 2463*e*math.Sin(2*d-m+mp+f) -
		1870*e*math.Sin(2*d-m-mp+f) + 1828*math.Sin(4*d-mp-f) - 1714*math.Sin(a3)

	lon := Degrees(lPrime.Degrees() + sigmaL/1e6).Normalize()
	lat := Degrees(sigmaB / 1e6)
	dist := 385000.56 + sigmaR/1000

	led.Record("Σl (longitude correction)", "Σl/10⁶", sigmaL/1e6)
	led.Record("Σb (latitude)", "Σb/10⁶", sigmaB/1e6)
	led.Record("Geocentric longitude", "λ = L' + Σl", lon.Degrees())
	led.Record("Geocentric latitude", "β = Σb", lat.Degrees())
	led.Record("Distance", "Δ = 385000.56 + Σr", dist)

	eq := EclipticToEquatorial(Ecliptic{Lon: lon, Lat: lat}, t, led)

	// Apparent size and parallax scale with the inverse distance.
	angDiam := 0.5181 * (384400.0 / dist)
	parallax := Radians(math.Asin(earthRadiusKm / dist))
	led.Record("Angular diameter", "θ = 0.5181°·(384400/Δ)", angDiam)
	led.Record("Horizontal parallax", "sin(π) = R_earth/Δ", parallax.Degrees())

	return MoonPosition{
		Longitude:       lon,
		Latitude:        lat,
		Equatorial:      eq,
		DistanceKm:      dist,
		AngularDiameter: Degrees(angDiam),
		Parallax:        parallax,
	}
}

// MoonPhase computes the Moon's phase from its mean elongation.
func MoonPhase(t Instant, led *verbose.Ledger) MoonPhaseInfo {
	d := moonMeanElongation(t, led)

	phase := d.Normalize()
	illum := (1 - phase.Cos()) / 2
	led.Record("Phase angle", "i = D", phase.Degrees())
	led.Record("Illumination", "k = (1 - cos(i))/2", illum)

	deg := phase.Degrees()
	var name PhaseName
	switch {
	case deg < 22.5 || deg >= 337.5:
		name = NewMoon
	case deg < 67.5:
		name = WaxingCrescent
	case deg < 112.5:
		name = FirstQuarter
	case deg < 157.5:
		name = WaxingGibbous
	case deg < 202.5:
		name = FullMoon
	case deg < 247.5:
		name = WaningGibbous
	case deg < 292.5:
		name = LastQuarter
	default:
		name = WaningCrescent
	}

	age := deg / 360 * SynodicMonth
	led.Note("Phase name", string(name))
	led.Record("Age", "age = i/360°·29.5306 d", age)

	return MoonPhaseInfo{
		PhaseAngle:   phase,
		Illumination: illum,
		Name:         name,
		AgeDays:      age,
	}
}

// MoonProvider adapts the lunar ephemeris to the position-provider shape
// consumed by the event finder. The Moon moves fast enough that the event
// finder re-evaluates this at every refinement step.
func MoonProvider() PositionFunc {
	return func(t Instant, led *verbose.Ledger) Equatorial {
		return Moon(t, led).Equatorial
	}
}
