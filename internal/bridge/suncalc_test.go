package bridge

import (
	"testing"

	"github.com/litescript/starward/internal/astro"
)

func testObserver(t *testing.T) astro.Observer {
	t.Helper()
	obs, err := astro.NewObserver("london", 51.5074, -0.1278, 0)
	if err != nil {
		t.Fatal(err)
	}
	return obs
}

func TestComparePosition(t *testing.T) {
	obs := testObserver(t)

	// Sample through a full day; the two independent ephemerides should
	// agree to a fraction of a degree.
	for hour := 0; hour < 24; hour += 3 {
		at := astro.FromCalendar(2024, 6, 1, hour, 0, 0, 0)
		cmp := ComparePosition(obs, at)

		if d := cmp.NativeAltitude.Delta(); d > 0.5 {
			t.Errorf("hour %d: altitude delta %.3f° (native %.3f, suncalc %.3f)",
				hour, d, cmp.NativeAltitude.Native, cmp.NativeAltitude.Suncalc)
		}
		if d := cmp.NativeAzimuth.Delta(); d > 0.5 && d < 359.5 {
			t.Errorf("hour %d: azimuth delta %.3f° (native %.3f, suncalc %.3f)",
				hour, d, cmp.NativeAzimuth.Native, cmp.NativeAzimuth.Suncalc)
		}
	}
}

func TestCompareRiseSet(t *testing.T) {
	obs := testObserver(t)

	for _, date := range []astro.Instant{
		astro.FromCalendar(2024, 3, 20, 12, 0, 0, 0),
		astro.FromCalendar(2024, 6, 21, 12, 0, 0, 0),
		astro.FromCalendar(2024, 12, 21, 12, 0, 0, 0),
	} {
		cmp, err := CompareRiseSet(obs, date)
		if err != nil {
			t.Fatal(err)
		}

		// Different refraction models and solver tolerances put the two
		// within a couple of minutes of each other.
		if cmp.SunriseDeltaSec > 180 {
			t.Errorf("%v: sunrise delta %.0f s", date.JD(), cmp.SunriseDeltaSec)
		}
		if cmp.SunsetDeltaSec > 180 {
			t.Errorf("%v: sunset delta %.0f s", date.JD(), cmp.SunsetDeltaSec)
		}
	}
}

func TestAngle2Delta(t *testing.T) {
	a := Angle2{Native: 10.5, Suncalc: 10.2}
	if d := a.Delta(); d < 0.299 || d > 0.301 {
		t.Errorf("Delta = %v, want 0.3", d)
	}
}
