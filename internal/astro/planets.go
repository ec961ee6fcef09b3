package astro

import (
	"math"
	"strings"

	"github.com/litescript/starward/internal/verbose"
)

// Planet identifies one of the eight major planets.
type Planet int

const (
	Mercury Planet = iota
	Venus
	Earth
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
)

var planetNames = [...]string{
	"Mercury", "Venus", "Earth", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune",
}

func (p Planet) String() string {
	if p < Mercury || p > Neptune {
		return "Unknown"
	}
	return planetNames[p]
}

// ParsePlanet resolves a planet by name (case-insensitive). Earth is
// rejected: there is no geocentric position of the Earth to compute.
func ParsePlanet(name string) (Planet, error) {
	for i, n := range planetNames {
		if strings.EqualFold(name, n) {
			p := Planet(i)
			if p == Earth {
				return 0, &FormatError{Input: name, Token: name}
			}
			return p, nil
		}
	}
	return 0, &FormatError{Input: name, Token: name}
}

// PlanetPosition is a geocentric planetary position with the auxiliary
// quantities observers care about.
type PlanetPosition struct {
	Equatorial Equatorial
	Ecliptic   Ecliptic

	DistanceAU    float64 // Earth-planet distance
	SunDistanceAU float64 // heliocentric distance
	Elongation    Angle   // angular separation from the Sun
	PhaseAngle    Angle   // Sun-planet-Earth angle
	Magnitude     float64 // approximate apparent visual magnitude
}

// orbitalElements are Keplerian elements at J2000 plus per-century rates,
// from the JPL approximate-ephemeris table. Valid 1800-2050; outside that
// the series still evaluates but degrades.
type orbitalElements struct {
	a, aDot         float64 // semi-major axis, AU
	e, eDot         float64 // eccentricity
	i, iDot         float64 // inclination, deg
	l, lDot         float64 // mean longitude, deg
	varpi, varpiDot float64 // longitude of perihelion, deg
	omega, omegaDot float64 // longitude of ascending node, deg
}

var planetElements = [...]orbitalElements{
	Mercury: {0.38709927, 0.00000037, 0.20563593, 0.00001906, 7.00497902, -0.00594749,
		252.25032350, 149472.67411175, 77.45779628, 0.16047689, 48.33076593, -0.12534081},
	Venus: {0.72333566, 0.00000390, 0.00677672, -0.00004107, 3.39467605, -0.00078890,
		181.97909950, 58517.81538729, 131.60246718, 0.00268329, 76.67984255, -0.27769418},
	Earth: {1.00000261, 0.00000562, 0.01671123, -0.00004392, -0.00001531, -0.01294668,
		100.46457166, 35999.37244981, 102.93768193, 0.32327364, 0, 0},
	Mars: {1.52371034, 0.00001847, 0.09339410, 0.00007882, 1.84969142, -0.00813131,
		-4.55343205, 19140.30268499, -23.94362959, 0.44441088, 49.55953891, -0.29257343},
	Jupiter: {5.20288700, -0.00011607, 0.04838624, -0.00013253, 1.30439695, -0.00183714,
		34.39644051, 3034.74612775, 14.72847983, 0.21252668, 100.47390909, 0.20469106},
	Saturn: {9.53667594, -0.00125060, 0.05386179, -0.00050991, 2.48599187, 0.00193609,
		49.95424423, 1222.49362201, 92.59887831, -0.41897216, 113.66242448, -0.28867794},
	Uranus: {19.18916464, -0.00196176, 0.04725744, -0.00004397, 0.77263783, -0.00242939,
		313.23810451, 428.48202785, 170.95427630, 0.40805281, 74.01692503, 0.04240589},
	Neptune: {30.06992276, 0.00026291, 0.00859048, 0.00005105, 1.77004347, 0.00035372,
		-55.12002969, 218.45945325, 44.96476227, -0.32241464, 131.78422574, -0.00508664},
}

// Absolute magnitudes and linear phase coefficients (mag per degree of
// phase angle) for the approximate brightness formula.
var planetMagnitude = [...]struct{ h, k float64 }{
	Mercury: {-0.42, 0.0380},
	Venus:   {-4.40, 0.0009},
	Earth:   {0, 0},
	Mars:    {-1.52, 0.0160},
	Jupiter: {-9.40, 0.0050},
	Saturn:  {-8.88, 0.0440},
	Uranus:  {-7.19, 0.0028},
	Neptune: {-6.87, 0.0010},
}

// heliocentric returns the J2000-ecliptic rectangular position of a planet
// in AU.
func heliocentric(p Planet, t Instant) (x, y, z, r float64) {
	el := planetElements[p]
	T := t.JulianCenturies()

	a := el.a + el.aDot*T
	e := el.e + el.eDot*T
	inc := Degrees(el.i + el.iDot*T).Radians()
	l := el.l + el.lDot*T
	varpi := el.varpi + el.varpiDot*T
	node := Degrees(el.omega + el.omegaDot*T).Radians()

	// Mean anomaly and argument of perihelion.
	m := Degrees(l - varpi).NormalizeSigned().Radians()
	argPeri := Degrees(varpi).Radians() - node

	ecc := solveKepler(m, e)

	// Position in the orbital plane.
	xp := a * (math.Cos(ecc) - e)
	yp := a * math.Sqrt(1-e*e) * math.Sin(ecc)

	// Rotate through argument of perihelion, inclination, and node.
	cosW, sinW := math.Cos(argPeri), math.Sin(argPeri)
	cosO, sinO := math.Cos(node), math.Sin(node)
	cosI, sinI := math.Cos(inc), math.Sin(inc)

	x = (cosW*cosO-sinW*sinO*cosI)*xp + (-sinW*cosO-cosW*sinO*cosI)*yp
	y = (cosW*sinO+sinW*cosO*cosI)*xp + (-sinW*sinO+cosW*cosO*cosI)*yp
	z = sinW*sinI*xp + cosW*sinI*yp
	r = math.Sqrt(x*x + y*y + z*z)
	return x, y, z, r
}

// solveKepler iterates E - e·sin(E) = M by Newton's method. Converges in
// a handful of steps for planetary eccentricities.
func solveKepler(m, e float64) float64 {
	ecc := m + e*math.Sin(m)
	for i := 0; i < 20; i++ {
		d := (ecc - e*math.Sin(ecc) - m) / (1 - e*math.Cos(ecc))
		ecc -= d
		if math.Abs(d) < 1e-10 {
			break
		}
	}
	return ecc
}

// Position computes the geocentric position of the planet at an instant.
// Calling it on Earth yields a DomainError.
func (p Planet) Position(t Instant, led *verbose.Ledger) (PlanetPosition, error) {
	if p == Earth {
		return PlanetPosition{}, &DomainError{Quantity: "planet", Value: float64(p), Min: float64(Mercury), Max: float64(Neptune)}
	}
	if p < Mercury || p > Neptune {
		return PlanetPosition{}, &DomainError{Quantity: "planet", Value: float64(p), Min: float64(Mercury), Max: float64(Neptune)}
	}

	led.Record("Julian centuries", "T = (JD - 2451545)/36525", t.JulianCenturies())

	px, py, pz, r := heliocentric(p, t)
	ex, ey, ez, re := heliocentric(Earth, t)
	led.Record("Heliocentric distance", "r = |r_planet|", r)

	// Geocentric ecliptic vector.
	gx, gy, gz := px-ex, py-ey, pz-ez
	delta := math.Sqrt(gx*gx + gy*gy + gz*gz)
	led.Record("Geocentric distance", "Δ = |r_planet - r_earth|", delta)

	lon := Radians(math.Atan2(gy, gx)).Normalize()
	lat := Radians(math.Asin(clamp1(gz / delta)))
	led.Record("Ecliptic longitude", "λ = atan2(y, x)", lon.Degrees())
	led.Record("Ecliptic latitude", "β = asin(z/Δ)", lat.Degrees())

	ecl := Ecliptic{Lon: lon, Lat: lat}
	eq := EclipticToEquatorial(ecl, t, led)

	// Phase angle from the Sun-planet-Earth triangle.
	cosPhase := clamp1((r*r + delta*delta - re*re) / (2 * r * delta))
	phase := Radians(math.Acos(cosPhase))
	led.Record("Phase angle", "cos(i) = (r² + Δ² - R²)/(2·r·Δ)", phase.Degrees())

	sun := Sun(t, nil)
	elong := AngularSeparation(sun.Equatorial.RA, sun.Equatorial.Dec, eq.RA, eq.Dec)
	led.Record("Elongation", "ψ = sep(☉, planet)", elong.Degrees())

	mag := planetMagnitude[p]
	magnitude := mag.h + 5*math.Log10(r*delta) + mag.k*phase.Degrees()
	led.Record("Magnitude", "m = H + 5·log10(r·Δ) + k·i", magnitude)

	return PlanetPosition{
		Equatorial:    eq,
		Ecliptic:      ecl,
		DistanceAU:    delta,
		SunDistanceAU: r,
		Elongation:    elong,
		PhaseAngle:    phase,
		Magnitude:     magnitude,
	}, nil
}

// Provider adapts the planetary ephemeris to the position-provider shape
// consumed by the event finder.
func (p Planet) Provider() PositionFunc {
	return func(t Instant, led *verbose.Ledger) Equatorial {
		pos, err := p.Position(t, led)
		if err != nil {
			return Equatorial{}
		}
		return pos.Equatorial
	}
}
