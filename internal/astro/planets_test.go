package astro

import (
	"errors"
	"math"
	"testing"
)

func TestParsePlanet(t *testing.T) {
	tests := []struct {
		in      string
		want    Planet
		wantErr bool
	}{
		{"Mars", Mars, false},
		{"mars", Mars, false},
		{"JUPITER", Jupiter, false},
		{"neptune", Neptune, false},
		{"Earth", 0, true},
		{"Pluto", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePlanet(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePlanet(%q) succeeded, want error", tt.in)
				}
				var fe *FormatError
				if !errors.As(err, &fe) {
					t.Fatalf("expected *FormatError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePlanet(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParsePlanet(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSolveKepler(t *testing.T) {
	// The solution must satisfy Kepler's equation to high accuracy.
	for _, e := range []float64{0, 0.0167, 0.0934, 0.2056} {
		for m := -3.0; m <= 3.0; m += 0.37 {
			ecc := solveKepler(m, e)
			if resid := math.Abs(ecc - e*math.Sin(ecc) - m); resid > 1e-9 {
				t.Fatalf("e=%v M=%v: residual %v", e, m, resid)
			}
		}
	}
}

func TestEarthPositionRejected(t *testing.T) {
	_, err := Earth.Position(J2000(), nil)
	if err == nil {
		t.Fatal("expected error for Earth")
	}
	var de *DomainError
	if !errors.As(err, &de) {
		t.Fatalf("expected *DomainError, got %T", err)
	}
}

func TestPlanetHeliocentricDistances(t *testing.T) {
	// Heliocentric distance must stay within the perihelion/aphelion
	// bounds of each orbit.
	bounds := map[Planet][2]float64{
		Mercury: {0.30, 0.47},
		Venus:   {0.71, 0.73},
		Mars:    {1.38, 1.67},
		Jupiter: {4.95, 5.46},
		Saturn:  {9.0, 10.1},
		Uranus:  {18.3, 20.1},
		Neptune: {29.8, 30.4},
	}

	for p, b := range bounds {
		for d := 0.0; d < 3650; d += 365 {
			pos, err := p.Position(J2000().AddDays(d), nil)
			if err != nil {
				t.Fatalf("%v: %v", p, err)
			}
			if pos.SunDistanceAU < b[0] || pos.SunDistanceAU > b[1] {
				t.Errorf("%v at +%vd: r = %v AU outside [%v, %v]",
					p, d, pos.SunDistanceAU, b[0], b[1])
			}
		}
	}
}

func TestInnerPlanetElongationBounds(t *testing.T) {
	// Mercury never strays more than ~28° from the Sun, Venus ~48°.
	maxElong := map[Planet]float64{
		Mercury: 29,
		Venus:   48.5,
	}

	for p, bound := range maxElong {
		for d := 0.0; d < 1200; d += 11 {
			pos, err := p.Position(J2000().AddDays(d), nil)
			if err != nil {
				t.Fatalf("%v: %v", p, err)
			}
			if pos.Elongation.Degrees() > bound {
				t.Errorf("%v at +%vd: elongation %v > %v",
					p, d, pos.Elongation.Degrees(), bound)
			}
		}
	}
}

func TestPlanetGeocentricConsistency(t *testing.T) {
	at := FromCalendar(2024, 6, 1, 0, 0, 0, 0)

	for _, p := range []Planet{Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune} {
		pos, err := p.Position(at, nil)
		if err != nil {
			t.Fatalf("%v: %v", p, err)
		}

		// Triangle inequality among Sun-Earth (~1 AU), Sun-planet, and
		// Earth-planet distances.
		if pos.DistanceAU > pos.SunDistanceAU+1.02 || pos.DistanceAU < math.Abs(pos.SunDistanceAU-1.02)-0.05 {
			t.Errorf("%v: Δ=%v r=%v violates triangle bounds", p, pos.DistanceAU, pos.SunDistanceAU)
		}

		// Phase angle shrinks with distance; outer planets stay under ~12°.
		if p >= Jupiter && pos.PhaseAngle.Degrees() > 12 {
			t.Errorf("%v: phase angle %v too large", p, pos.PhaseAngle.Degrees())
		}

		if err := CheckDeclination("declination", pos.Equatorial.Dec); err != nil {
			t.Errorf("%v: %v", p, err)
		}
	}
}

func TestPlanetMagnitudes(t *testing.T) {
	// The linear phase model is crude near inferior conjunction, so only
	// loose brightness envelopes are asserted.
	for d := 0.0; d < 584; d += 7 {
		at := J2000().AddDays(d)

		venus, err := Venus.Position(at, nil)
		if err != nil {
			t.Fatal(err)
		}
		if venus.Magnitude > -3.3 {
			t.Errorf("+%vd: Venus magnitude %v too faint", d, venus.Magnitude)
		}

		jupiter, err := Jupiter.Position(at, nil)
		if err != nil {
			t.Fatal(err)
		}
		if jupiter.Magnitude < -3.0 || jupiter.Magnitude > -1.5 {
			t.Errorf("+%vd: Jupiter magnitude %v outside [-3.0, -1.5]", d, jupiter.Magnitude)
		}
	}
}

func TestPlanetProvider(t *testing.T) {
	at := FromCalendar(2024, 6, 1, 0, 0, 0, 0)
	pos, err := Mars.Position(at, nil)
	if err != nil {
		t.Fatal(err)
	}
	eq := Mars.Provider()(at, nil)
	if eq != pos.Equatorial {
		t.Errorf("provider position %+v differs from Position %+v", eq, pos.Equatorial)
	}
}
