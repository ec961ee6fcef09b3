package astro

import (
	"math"

	"github.com/litescript/starward/internal/verbose"
)

// Coordinate frame values are distinct types on purpose: an Equatorial can
// only become a Horizontal through an explicit transform call, which keeps
// frame-confusion bugs out of the callers.

// Equatorial is an ICRS/J2000 equatorial position.
type Equatorial struct {
	RA  Angle // right ascension, canonical range [0, 360)
	Dec Angle // declination, [-90, +90]
}

// Horizontal is an observer-local position.
// Azimuth convention, used everywhere in this package: measured from
// North, increasing eastward (0=N, 90=E, 180=S, 270=W).
type Horizontal struct {
	Alt Angle // altitude above horizon, [-90, +90]
	Az  Angle // azimuth, [0, 360)
}

// Ecliptic is a geocentric ecliptic position.
type Ecliptic struct {
	Lon Angle // ecliptic longitude, [0, 360)
	Lat Angle // ecliptic latitude, [-90, +90]
}

// Galactic is an IAU 1958 galactic position.
type Galactic struct {
	Lon Angle // galactic longitude l, [0, 360)
	Lat Angle // galactic latitude b, [-90, +90]
}

// J2000 galactic frame constants: the north galactic pole in ICRS and the
// galactic longitude of the north celestial pole.
const (
	galacticPoleRA  = 192.85948
	galacticPoleDec = 27.12825
	galacticLonNCP  = 122.93192
)

// poleEpsilon bounds cos(latitude) below which an observer counts as
// standing on a pole for the azimuth degeneracy.
const poleEpsilon = 1e-12

// MeanObliquity returns the mean obliquity of the ecliptic at an instant
// (Meeus equation 22.2, arcsecond polynomial in Julian centuries).
func MeanObliquity(t Instant, led *verbose.Ledger) Angle {
	T := t.JulianCenturies()
	arcsec := 84381.448 - 46.8150*T - 0.00059*T*T + 0.001813*T*T*T
	eps := arcsec / 3600
	led.Record("Mean obliquity", "ε₀ = (84381.448 - 46.815·T - 0.00059·T² + 0.00181·T³)/3600", eps)
	return Degrees(eps)
}

// EquatorialToHorizontal converts an equatorial position to the horizontal
// frame for an observer at an instant.
//
// At the poles (latitude ±90°) azimuth is mathematically undefined; the
// transform returns azimuth 0° there rather than failing.
func EquatorialToHorizontal(eq Equatorial, obs Observer, t Instant, led *verbose.Ledger) Horizontal {
	lst := t.LST(obs.Longitude)
	led.Record("Local sidereal time", "θ = GMST + λ", lst.Degrees())

	ha := lst.Sub(eq.RA).Normalize()
	led.Record("Hour angle", "H = θ - α", ha.Degrees())

	lat := obs.Latitude.Radians()
	dec := eq.Dec.Radians()
	h := ha.Radians()

	sinAlt := math.Sin(lat)*math.Sin(dec) + math.Cos(lat)*math.Cos(dec)*math.Cos(h)
	alt := math.Asin(clamp1(sinAlt))
	led.Record("Altitude", "sin(h) = sin(φ)·sin(δ) + cos(φ)·cos(δ)·cos(H)", alt*180/math.Pi)

	// Azimuth from North, eastward positive.
	sinAz := -math.Cos(dec) * math.Sin(h)
	cosAz := math.Sin(dec)*math.Cos(lat) - math.Cos(dec)*math.Sin(lat)*math.Cos(h)

	// At the poles every direction lies on the meridian and azimuth is
	// undefined. cos(±90°) in floats is ~6e-17, never exactly zero, so the
	// degeneracy is detected with an epsilon.
	var az float64
	if math.Abs(math.Cos(lat)) > poleEpsilon {
		az = math.Atan2(sinAz, cosAz)
	}
	azAngle := Radians(az).Normalize()
	led.Record("Azimuth", "A = atan2(-cos(δ)·sin(H), sin(δ)·cos(φ) - cos(δ)·sin(φ)·cos(H))", azAngle.Degrees())

	return Horizontal{Alt: Radians(alt), Az: azAngle}
}

// HorizontalToEquatorial inverts EquatorialToHorizontal for the same
// observer and instant.
func HorizontalToEquatorial(hz Horizontal, obs Observer, t Instant, led *verbose.Ledger) Equatorial {
	lat := obs.Latitude.Radians()
	alt := hz.Alt.Radians()
	az := hz.Az.Radians()

	sinDec := math.Sin(lat)*math.Sin(alt) + math.Cos(lat)*math.Cos(alt)*math.Cos(az)
	dec := math.Asin(clamp1(sinDec))
	led.Record("Declination", "sin(δ) = sin(φ)·sin(h) + cos(φ)·cos(h)·cos(A)", dec*180/math.Pi)

	sinHA := -math.Cos(alt) * math.Sin(az)
	cosHA := math.Sin(alt)*math.Cos(lat) - math.Cos(alt)*math.Sin(lat)*math.Cos(az)
	ha := Radians(math.Atan2(sinHA, cosHA))
	led.Record("Hour angle", "H = atan2(-cos(h)·sin(A), sin(h)·cos(φ) - cos(h)·sin(φ)·cos(A))", ha.Normalize().Degrees())

	ra := t.LST(obs.Longitude).Sub(ha).Normalize()
	led.Record("Right ascension", "α = θ - H", ra.Degrees())

	return Equatorial{RA: ra, Dec: Radians(dec)}
}

// EquatorialToEcliptic rotates an equatorial position into the ecliptic
// frame using the mean obliquity at the instant.
func EquatorialToEcliptic(eq Equatorial, t Instant, led *verbose.Ledger) Ecliptic {
	eps := MeanObliquity(t, led).Radians()
	ra := eq.RA.Radians()
	dec := eq.Dec.Radians()

	sinLon := math.Sin(ra)*math.Cos(eps) + math.Tan(dec)*math.Sin(eps)
	lon := Radians(math.Atan2(sinLon, math.Cos(ra))).Normalize()
	led.Record("Ecliptic longitude", "λ = atan2(sin(α)·cos(ε) + tan(δ)·sin(ε), cos(α))", lon.Degrees())

	sinLat := math.Sin(dec)*math.Cos(eps) - math.Cos(dec)*math.Sin(eps)*math.Sin(ra)
	lat := Radians(math.Asin(clamp1(sinLat)))
	led.Record("Ecliptic latitude", "β = asin(sin(δ)·cos(ε) - cos(δ)·sin(ε)·sin(α))", lat.Degrees())

	return Ecliptic{Lon: lon, Lat: lat}
}

// EclipticToEquatorial rotates an ecliptic position back to the equatorial
// frame using the mean obliquity at the instant.
func EclipticToEquatorial(ec Ecliptic, t Instant, led *verbose.Ledger) Equatorial {
	eps := MeanObliquity(t, led).Radians()
	lon := ec.Lon.Radians()
	lat := ec.Lat.Radians()

	sinRA := math.Sin(lon)*math.Cos(eps) - math.Tan(lat)*math.Sin(eps)
	ra := Radians(math.Atan2(sinRA, math.Cos(lon))).Normalize()
	led.Record("Right ascension", "α = atan2(sin(λ)·cos(ε) - tan(β)·sin(ε), cos(λ))", ra.Degrees())

	sinDec := math.Sin(lat)*math.Cos(eps) + math.Cos(lat)*math.Sin(eps)*math.Sin(lon)
	dec := Radians(math.Asin(clamp1(sinDec)))
	led.Record("Declination", "δ = asin(sin(β)·cos(ε) + cos(β)·sin(ε)·sin(λ))", dec.Degrees())

	return Equatorial{RA: ra, Dec: dec}
}

// EquatorialToGalactic rotates an equatorial position into the galactic
// frame. The rotation is fixed (J2000 pole), so no instant is needed.
func EquatorialToGalactic(eq Equatorial, led *verbose.Ledger) Galactic {
	poleRA := Degrees(galacticPoleRA).Radians()
	poleDec := Degrees(galacticPoleDec).Radians()
	ra := eq.RA.Radians()
	dec := eq.Dec.Radians()

	sinB := math.Sin(poleDec)*math.Sin(dec) + math.Cos(poleDec)*math.Cos(dec)*math.Cos(ra-poleRA)
	b := Radians(math.Asin(clamp1(sinB)))
	led.Record("Galactic latitude", "sin(b) = sin(δ_G)·sin(δ) + cos(δ_G)·cos(δ)·cos(α - α_G)", b.Degrees())

	y := math.Cos(dec) * math.Sin(ra-poleRA)
	x := math.Sin(dec)*math.Cos(poleDec) - math.Cos(dec)*math.Sin(poleDec)*math.Cos(ra-poleRA)
	l := Degrees(galacticLonNCP).Sub(Radians(math.Atan2(y, x))).Normalize()
	led.Record("Galactic longitude", "l = l_NCP - atan2(cos(δ)·sin(α - α_G), sin(δ)·cos(δ_G) - cos(δ)·sin(δ_G)·cos(α - α_G))", l.Degrees())

	return Galactic{Lon: l, Lat: b}
}

// GalacticToEquatorial inverts EquatorialToGalactic.
func GalacticToEquatorial(g Galactic, led *verbose.Ledger) Equatorial {
	poleRA := Degrees(galacticPoleRA).Radians()
	poleDec := Degrees(galacticPoleDec).Radians()
	b := g.Lat.Radians()
	dl := Degrees(galacticLonNCP).Sub(g.Lon).Radians()

	sinDec := math.Sin(poleDec)*math.Sin(b) + math.Cos(poleDec)*math.Cos(b)*math.Cos(dl)
	dec := Radians(math.Asin(clamp1(sinDec)))
	led.Record("Declination", "sin(δ) = sin(δ_G)·sin(b) + cos(δ_G)·cos(b)·cos(l_NCP - l)", dec.Degrees())

	y := math.Cos(b) * math.Sin(dl)
	x := math.Sin(b)*math.Cos(poleDec) - math.Cos(b)*math.Sin(poleDec)*math.Cos(dl)
	ra := Radians(math.Atan2(y, x)).Add(Radians(poleRA)).Normalize()
	led.Record("Right ascension", "α = α_G + atan2(cos(b)·sin(l_NCP - l), sin(b)·cos(δ_G) - cos(b)·sin(δ_G)·cos(l_NCP - l))", ra.Degrees())

	return Equatorial{RA: ra, Dec: dec}
}

// clamp1 clamps to [-1, 1] before asin/acos to absorb floating point
// overshoot.
func clamp1(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
