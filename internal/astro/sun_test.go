package astro

import (
	"math"
	"testing"

	"github.com/litescript/starward/internal/verbose"
)

// The worked example from Meeus chapter 25: 1992 October 13.0 TD.
var meeusSunInstant = FromJD(2448908.5)

func TestSunMeeusExample(t *testing.T) {
	sun := Sun(meeusSunInstant, nil)

	if math.Abs(sun.Longitude.Degrees()-199.90895) > 0.01 {
		t.Errorf("apparent longitude = %v, want ~199.909", sun.Longitude.Degrees())
	}
	if math.Abs(sun.Equatorial.RA.Degrees()-198.38083) > 0.01 {
		t.Errorf("RA = %v, want ~198.381", sun.Equatorial.RA.Degrees())
	}
	if math.Abs(sun.Equatorial.Dec.Degrees()-(-7.78507)) > 0.01 {
		t.Errorf("Dec = %v, want ~-7.785", sun.Equatorial.Dec.Degrees())
	}
	if math.Abs(sun.DistanceAU-0.99766) > 0.0005 {
		t.Errorf("distance = %v AU, want ~0.99766", sun.DistanceAU)
	}
}

func TestSunSeasonalLongitudes(t *testing.T) {
	tests := []struct {
		name    string
		instant Instant
		wantLon float64
	}{
		// Equinoxes and solstices pin the apparent longitude to the
		// quadrant boundaries.
		{"march equinox 2024", FromCalendar(2024, 3, 20, 3, 6, 0, 0), 0},
		{"june solstice 2024", FromCalendar(2024, 6, 20, 20, 51, 0, 0), 90},
		{"september equinox 2024", FromCalendar(2024, 9, 22, 12, 44, 0, 0), 180},
		{"december solstice 2024", FromCalendar(2024, 12, 21, 9, 21, 0, 0), 270},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sun := Sun(tt.instant, nil)
			diff := math.Abs(sun.Longitude.Sub(Degrees(tt.wantLon)).NormalizeSigned().Degrees())
			if diff > 0.05 {
				t.Errorf("longitude = %v, want %v (±0.05)", sun.Longitude.Degrees(), tt.wantLon)
			}
		})
	}
}

func TestSunDistanceRange(t *testing.T) {
	// Perihelion early January, aphelion early July.
	jan := Sun(FromCalendar(2024, 1, 3, 0, 0, 0, 0), nil)
	jul := Sun(FromCalendar(2024, 7, 5, 0, 0, 0, 0), nil)

	if math.Abs(jan.DistanceAU-0.9833) > 0.001 {
		t.Errorf("perihelion distance = %v, want ~0.9833", jan.DistanceAU)
	}
	if math.Abs(jul.DistanceAU-1.0167) > 0.001 {
		t.Errorf("aphelion distance = %v, want ~1.0167", jul.DistanceAU)
	}
	if jan.DistanceAU >= jul.DistanceAU {
		t.Error("perihelion not closer than aphelion")
	}
}

func TestEquationOfTime(t *testing.T) {
	tests := []struct {
		name    string
		instant Instant
		want    float64
		tol     float64
	}{
		// The four annual extremes of the analemma.
		{"mid february minimum", FromCalendar(2024, 2, 11, 12, 0, 0, 0), -14.2, 0.5},
		{"mid may maximum", FromCalendar(2024, 5, 14, 12, 0, 0, 0), 3.6, 0.5},
		{"late july minimum", FromCalendar(2024, 7, 26, 12, 0, 0, 0), -6.5, 0.5},
		{"early november maximum", FromCalendar(2024, 11, 3, 12, 0, 0, 0), 16.4, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EquationOfTime(tt.instant, nil)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("EoT = %v min, want %v (±%v)", got, tt.want, tt.tol)
			}
		})
	}
}

func TestSunLedgerNonInterference(t *testing.T) {
	at := FromCalendar(2024, 10, 13, 0, 0, 0, 0)

	bare := Sun(at, nil)
	led := verbose.New()
	traced := Sun(at, led)

	if bare != traced {
		t.Errorf("ledger changed the result")
	}
	if led.Len() < 5 {
		t.Errorf("expected a full derivation, got %d steps", led.Len())
	}

	// Steps arrive in derivation order: the time argument first.
	entries := led.Entries()
	if entries[0].Name != "Julian centuries" {
		t.Errorf("first step = %q, want Julian centuries", entries[0].Name)
	}
}
