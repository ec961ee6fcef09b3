package astro

import (
	"fmt"
	"math"

	"github.com/litescript/starward/internal/verbose"
)

// PositionFunc produces a geocentric equatorial position for a body at an
// instant. Providers are pure: the ledger is a side channel only.
type PositionFunc func(Instant, *verbose.Ledger) Equatorial

// FixedPosition returns a provider for a body that does not move (stars,
// catalog objects).
func FixedPosition(eq Equatorial) PositionFunc {
	return func(Instant, *verbose.Ledger) Equatorial { return eq }
}

// EventKind tags what an Event describes.
type EventKind int

const (
	KindRise EventKind = iota
	KindSet
	KindTransit
	KindTwilightCivil
	KindTwilightNautical
	KindTwilightAstro
)

func (k EventKind) String() string {
	switch k {
	case KindRise:
		return "rise"
	case KindSet:
		return "set"
	case KindTransit:
		return "transit"
	case KindTwilightCivil:
		return "civil twilight"
	case KindTwilightNautical:
		return "nautical twilight"
	case KindTwilightAstro:
		return "astronomical twilight"
	default:
		return "unknown"
	}
}

// EventState distinguishes a found crossing from the expected "no event
// today" outcomes. Circumpolar and never-rises are normal results, not
// errors.
type EventState int

const (
	// EventAt means the event occurred at Event.Time.
	EventAt EventState = iota

	// EventCircumpolar means the body never crosses the threshold from
	// above: it stays up all day at this latitude.
	EventCircumpolar

	// EventNeverRises means the body never crosses the threshold from
	// below.
	EventNeverRises
)

func (s EventState) String() string {
	switch s {
	case EventAt:
		return "at"
	case EventCircumpolar:
		return "circumpolar"
	case EventNeverRises:
		return "never rises"
	default:
		return "unknown"
	}
}

// Event is a tagged rise/set/transit/twilight result. Time is only
// meaningful when State is EventAt.
type Event struct {
	Kind  EventKind
	State EventState
	Time  Instant
}

// DayEvents is the full rise/transit/set picture for one local day.
type DayEvents struct {
	Rise    Event
	Transit Event
	Set     Event

	// MaxAltitude is the altitude at transit.
	MaxAltitude Angle
}

// TwilightTimes holds the morning and evening crossings of a twilight
// threshold.
type TwilightTimes struct {
	Dawn Event
	Dusk Event
}

// Search parameters. The scan step corresponds to 10° of hour angle,
// coarse enough to make at most one threshold crossing per cell for any
// body, including the Moon. The tolerance of one second of time is the
// documented convergence contract.
const (
	scanStepDays      = 1.0 / 36.0
	timeToleranceDays = 1.0 / 86400.0
	maxRefineIter     = 64
)

// Altitude computes the horizontal altitude of a body at an instant,
// composing the position provider with the equatorial-to-horizontal
// transform.
func Altitude(provider PositionFunc, obs Observer, t Instant, led *verbose.Ledger) Angle {
	eq := provider(t, led)
	return EquatorialToHorizontal(eq, obs, t, led).Alt
}

// localMidnight returns 0h local mean solar time for the observer on the
// calendar day containing t.
func localMidnight(t Instant, obs Observer) Instant {
	lonDays := obs.Longitude.Degrees() / 360
	local := t.JD() + lonDays
	return FromJD(math.Floor(local-0.5) + 0.5 - lonDays)
}

// RiseSet finds the instants within the observer's local day at which the
// body crosses the given altitude threshold (degrees), plus the transit.
//
// The provider is re-evaluated at every refinement step, so bodies with
// appreciable daily motion (the Moon) converge on the true crossing. The
// sentinel states circumpolar and never-rises are normal outcomes; only an
// exhausted refinement budget is an error.
func RiseSet(provider PositionFunc, obs Observer, date Instant, thresholdDeg float64, led *verbose.Ledger) (DayEvents, error) {
	start := localMidnight(date, obs)
	led.Record("Search start", "JD₀ = local midnight", start.JD())
	led.Record("Threshold altitude", "h₀", thresholdDeg)

	// Coarse scan: classify the day before attempting root isolation.
	n := int(math.Round(1/scanStepDays)) + 1
	alts := make([]float64, n)
	times := make([]Instant, n)

	minAlt, maxAlt := math.Inf(1), math.Inf(-1)
	maxIdx := 0
	for i := 0; i < n; i++ {
		ti := start.AddDays(float64(i) * scanStepDays)
		a := Altitude(provider, obs, ti, nil).Degrees()
		times[i] = ti
		alts[i] = a
		if a < minAlt {
			minAlt = a
		}
		if a > maxAlt {
			maxAlt = a
			maxIdx = i
		}
	}
	led.Record("Minimum sampled altitude", "min h", minAlt)
	led.Record("Maximum sampled altitude", "max h", maxAlt)

	transit, transitAlt := refineTransit(provider, obs, times[maxIdx])
	led.Record("Transit", "JD at max altitude", transit.JD())

	ev := DayEvents{
		Transit:     Event{Kind: KindTransit, State: EventAt, Time: transit},
		MaxAltitude: transitAlt,
	}

	if minAlt > thresholdDeg {
		led.Note("Classification", "circumpolar: altitude never drops below threshold")
		ev.Rise = Event{Kind: KindRise, State: EventCircumpolar}
		ev.Set = Event{Kind: KindSet, State: EventCircumpolar}
		return ev, nil
	}
	if maxAlt < thresholdDeg {
		led.Note("Classification", "never rises: altitude never reaches threshold")
		ev.Rise = Event{Kind: KindRise, State: EventNeverRises}
		ev.Set = Event{Kind: KindSet, State: EventNeverRises}
		return ev, nil
	}

	rise := Event{Kind: KindRise, State: EventNeverRises}
	set := Event{Kind: KindSet, State: EventCircumpolar}

	for i := 1; i < n; i++ {
		prev, curr := alts[i-1], alts[i]

		if rise.State != EventAt && prev < thresholdDeg && curr >= thresholdDeg {
			t, err := refineCrossing(provider, obs, times[i-1], times[i], thresholdDeg, true)
			if err != nil {
				return DayEvents{}, err
			}
			rise = Event{Kind: KindRise, State: EventAt, Time: t}
			led.Record("Rise", "altitude crosses h₀ upward", t.JD())
		}
		if set.State != EventAt && prev >= thresholdDeg && curr < thresholdDeg {
			t, err := refineCrossing(provider, obs, times[i-1], times[i], thresholdDeg, false)
			if err != nil {
				return DayEvents{}, err
			}
			set = Event{Kind: KindSet, State: EventAt, Time: t}
			led.Record("Set", "altitude crosses h₀ downward", t.JD())
		}
	}

	ev.Rise = rise
	ev.Set = set
	return ev, nil
}

// refineCrossing bisects the bracketing interval until the crossing time
// is known to within the time tolerance. rising selects the upward
// crossing orientation.
func refineCrossing(provider PositionFunc, obs Observer, lo, hi Instant, thresholdDeg float64, rising bool) (Instant, error) {
	for i := 0; i < maxRefineIter; i++ {
		if hi.Sub(lo) <= timeToleranceDays {
			return FromJD((lo.JD() + hi.JD()) / 2), nil
		}
		mid := FromJD((lo.JD() + hi.JD()) / 2)
		a := Altitude(provider, obs, mid, nil).Degrees()

		below := a < thresholdDeg
		if below == rising {
			// Still on the starting side of the crossing.
			lo = mid
		} else {
			hi = mid
		}
	}
	return Instant{}, fmt.Errorf("rise/set at threshold %.4f°: %w", thresholdDeg, ErrNonConvergence)
}

// refineTransit locates the altitude maximum near the coarse-scan peak by
// golden-section search over the two adjacent scan cells.
func refineTransit(provider PositionFunc, obs Observer, approx Instant) (Instant, Angle) {
	const phi = 0.6180339887498949

	lo := approx.AddDays(-scanStepDays)
	hi := approx.AddDays(scanStepDays)

	altAt := func(t Instant) float64 {
		return Altitude(provider, obs, t, nil).Degrees()
	}

	a := FromJD(hi.JD() - phi*(hi.JD()-lo.JD()))
	b := FromJD(lo.JD() + phi*(hi.JD()-lo.JD()))
	fa, fb := altAt(a), altAt(b)

	for i := 0; i < maxRefineIter && hi.Sub(lo) > timeToleranceDays; i++ {
		if fa < fb {
			lo = a
			a, fa = b, fb
			b = FromJD(lo.JD() + phi*(hi.JD()-lo.JD()))
			fb = altAt(b)
		} else {
			hi = b
			b, fb = a, fa
			a = FromJD(hi.JD() - phi*(hi.JD()-lo.JD()))
			fa = altAt(a)
		}
	}

	mid := FromJD((lo.JD() + hi.JD()) / 2)
	return mid, Degrees(altAt(mid))
}

// SunRiseSet finds sunrise and sunset (geometric altitude -0.8333°,
// accounting for refraction and solar semidiameter).
func SunRiseSet(obs Observer, date Instant, led *verbose.Ledger) (DayEvents, error) {
	return RiseSet(SunProvider(), obs, date, SunRiseSetAltitude, led)
}

// MoonRiseSet finds moonrise and moonset at the geometric horizon.
func MoonRiseSet(obs Observer, date Instant, led *verbose.Ledger) (DayEvents, error) {
	return RiseSet(MoonProvider(), obs, date, 0, led)
}

// TwilightKind selects a twilight definition.
type TwilightKind int

const (
	TwilightCivil TwilightKind = iota
	TwilightNautical
	TwilightAstronomical
)

func (k TwilightKind) String() string {
	switch k {
	case TwilightCivil:
		return "civil"
	case TwilightNautical:
		return "nautical"
	case TwilightAstronomical:
		return "astronomical"
	default:
		return "unknown"
	}
}

// Threshold returns the solar altitude defining this twilight, degrees.
func (k TwilightKind) Threshold() float64 {
	switch k {
	case TwilightCivil:
		return CivilTwilightAltitude
	case TwilightNautical:
		return NauticalTwilightAltitude
	default:
		return AstroTwilightAltitude
	}
}

func (k TwilightKind) eventKind() EventKind {
	switch k {
	case TwilightCivil:
		return KindTwilightCivil
	case TwilightNautical:
		return KindTwilightNautical
	default:
		return KindTwilightAstro
	}
}

// Twilight finds the morning and evening crossings of a twilight
// threshold. At high latitudes in summer the Sun may never reach the
// threshold; the sentinel states carry through unchanged.
func Twilight(obs Observer, date Instant, kind TwilightKind, led *verbose.Ledger) (TwilightTimes, error) {
	ev, err := RiseSet(SunProvider(), obs, date, kind.Threshold(), led)
	if err != nil {
		return TwilightTimes{}, err
	}
	dawn := ev.Rise
	dawn.Kind = kind.eventKind()
	dusk := ev.Set
	dusk.Kind = kind.eventKind()
	return TwilightTimes{Dawn: dawn, Dusk: dusk}, nil
}

// IsNight reports whether the Sun is below the given twilight threshold.
func IsNight(obs Observer, t Instant, kind TwilightKind, led *verbose.Ledger) bool {
	alt := Altitude(SunProvider(), obs, t, led)
	led.Record("Twilight threshold", kind.String(), kind.Threshold())
	dark := alt.Degrees() < kind.Threshold()
	if dark {
		led.Note("Is night", "yes")
	} else {
		led.Note("Is night", "no")
	}
	return dark
}

// TransitAltitude is the altitude a body with fixed declination reaches on
// the meridian: 90° - |φ - δ|.
func TransitAltitude(obs Observer, dec Angle, led *verbose.Ledger) Angle {
	alt := 90 - math.Abs(obs.Latitude.Degrees()-dec.Degrees())
	led.Record("Transit altitude", "h_transit = 90° - |φ - δ|", alt)
	return Degrees(alt)
}

// Airmass computes relative air mass using the Pickering (2002)
// interpolative formula, accurate down to the horizon. The second return
// is false when the target is below the horizon.
func Airmass(alt Angle, led *verbose.Ledger) (float64, bool) {
	h := alt.Degrees()
	if h <= 0 {
		led.Note("Airmass", "target below horizon")
		return 0, false
	}
	denom := 244.46 / (165.0 + 47.0*math.Pow(h, 1.1))
	sinTerm := math.Sin(Degrees(h + denom).Radians())
	if sinTerm <= 0 {
		return 0, false
	}
	x := 1 / sinTerm
	led.Record("Airmass (Pickering)", "X = 1/sin(h + 244.46/(165 + 47·h^1.1))", x)
	return x, true
}

// MoonSeparation is the angular separation between a target and the Moon
// at an instant.
func MoonSeparation(target Equatorial, t Instant, led *verbose.Ledger) Angle {
	moon := Moon(t, nil).Equatorial
	sep := AngularSeparation(target.RA, target.Dec, moon.RA, moon.Dec)
	led.Record("Moon-target separation", "θ = sep(target, Moon)", sep.Degrees())
	return sep
}

// DayLength returns the hours between sunrise and sunset, or false when
// the Sun does not both rise and set on the date.
func DayLength(obs Observer, date Instant, led *verbose.Ledger) (float64, bool, error) {
	ev, err := SunRiseSet(obs, date, led)
	if err != nil {
		return 0, false, err
	}
	if ev.Rise.State != EventAt || ev.Set.State != EventAt {
		return 0, false, nil
	}
	hours := ev.Set.Time.Sub(ev.Rise.Time) * 24
	if hours < 0 {
		hours += 24
	}
	led.Record("Day length", "(set - rise)·24", hours)
	return hours, true, nil
}
