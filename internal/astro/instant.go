package astro

import (
	"math"
	"time"
)

// Epoch constants in Julian days.
const (
	// JDJ2000 is the Julian Date of the J2000.0 epoch (2000-01-01 12:00 TT,
	// treated as UTC at this precision level).
	JDJ2000 = 2451545.0

	// JDUnixEpoch is the Julian Date of 1970-01-01 00:00 UTC.
	JDUnixEpoch = 2440587.5

	// MJDOffset converts between Julian Date and Modified Julian Date.
	MJDOffset = 2400000.5

	// DaysPerCentury is the length of a Julian century in days.
	DaysPerCentury = 36525.0
)

// Instant is an immutable point in time anchored to a Julian Date.
// Every derived quantity (MJD, sidereal time, J2000 centuries) is a pure
// function of the stored JD, so they can never drift out of sync.
type Instant struct {
	jd float64
}

// FromJD constructs an Instant from a Julian Date.
func FromJD(jd float64) Instant { return Instant{jd: jd} }

// FromMJD constructs an Instant from a Modified Julian Date.
func FromMJD(mjd float64) Instant { return Instant{jd: mjd + MJDOffset} }

// J2000 returns the J2000.0 epoch.
func J2000() Instant { return Instant{jd: JDJ2000} }

// Now returns the current instant.
func Now() Instant { return FromTime(time.Now()) }

// FromTime converts a time.Time to an Instant.
func FromTime(t time.Time) Instant {
	t = t.UTC()
	sec := float64(t.Unix()) + float64(t.Nanosecond())/1e9
	return Instant{jd: JDUnixEpoch + sec/86400}
}

// FromCalendar constructs an Instant from calendar components and a UTC
// offset in hours. Uses the standard Gregorian-to-JD algorithm
// (Meeus chapter 7), valid for all dates after 1582.
func FromCalendar(year, month, day, hour, minute int, sec, utcOffsetHours float64) Instant {
	y := float64(year)
	m := float64(month)
	if m <= 2 {
		y--
		m += 12
	}

	// Gregorian calendar correction
	a := math.Floor(y / 100)
	b := 2 - a + math.Floor(a/4)

	dayFrac := (float64(hour) + float64(minute)/60 + sec/3600 - utcOffsetHours) / 24

	jd := math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		float64(day) + dayFrac + b - 1524.5

	return Instant{jd: jd}
}

// JD returns the Julian Date.
func (i Instant) JD() float64 { return i.jd }

// MJD returns the Modified Julian Date.
func (i Instant) MJD() float64 { return i.jd - MJDOffset }

// JulianCenturies returns Julian centuries elapsed since J2000.0. This is
// the time argument of every low-precision ephemeris polynomial.
func (i Instant) JulianCenturies() float64 {
	return (i.jd - JDJ2000) / DaysPerCentury
}

// Time converts the Instant to a time.Time in UTC.
func (i Instant) Time() time.Time {
	sec := (i.jd - JDUnixEpoch) * 86400
	whole := math.Floor(sec)
	nanos := (sec - whole) * 1e9
	return time.Unix(int64(whole), int64(math.Round(nanos))).UTC()
}

// Calendar returns the UTC calendar components of the Instant.
func (i Instant) Calendar() (year, month, day, hour, minute int, sec float64) {
	t := i.Time()
	year, mo, day := t.Date()
	hour, minute, s := t.Clock()
	return year, int(mo), day, hour, minute, float64(s) + float64(t.Nanosecond())/1e9
}

// AddDays returns a new Instant offset by a duration in days.
func (i Instant) AddDays(days float64) Instant { return Instant{jd: i.jd + days} }

// Sub returns the difference i - o in days.
func (i Instant) Sub(o Instant) float64 { return i.jd - o.jd }

// Before reports whether i precedes o.
func (i Instant) Before(o Instant) bool { return i.jd < o.jd }

// After reports whether i follows o.
func (i Instant) After(o Instant) bool { return i.jd > o.jd }

// GMST returns the Greenwich Mean Sidereal Time as an angle in [0, 360).
// Uses the IAU 1982 polynomial in Julian Date.
func (i Instant) GMST() Angle {
	t := i.JulianCenturies()

	// GMST = 280.46061837 + 360.98564736629*(JD-2451545) + 0.000387933*T^2 - T^3/38710000
	gmst := 280.46061837 +
		360.98564736629*(i.jd-JDJ2000) +
		0.000387933*t*t -
		t*t*t/38710000.0

	return Degrees(gmst).Normalize()
}

// LST returns the Local Mean Sidereal Time for an observer longitude
// (east positive) as an angle in [0, 360).
func (i Instant) LST(longitude Angle) Angle {
	return i.GMST().Add(longitude).Normalize()
}
