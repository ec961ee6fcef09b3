package astro

import (
	"errors"
	"math"
	"testing"
)

func TestAngleConstructors(t *testing.T) {
	tests := []struct {
		name string
		got  Angle
		want float64
		tol  float64
	}{
		{"degrees passthrough", Degrees(123.456), 123.456, 0},
		{"radians pi", Radians(math.Pi), 180, 1e-12},
		{"hours to degrees", Hours(6), 90, 1e-12},
		{"hms", FromHMS(10, 20, 30), 155.125, 1e-9},
		{"dms", FromDMS(41, 16, 9), 41.269167, 1e-6},
		{"negative dms", FromDMS(-16, 42, 58), -16.716111, 1e-6},
		{"negative hms", FromHMS(-1, 30, 0), -22.5, 1e-9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := math.Abs(tt.got.Degrees() - tt.want); diff > tt.tol {
				t.Errorf("Degrees() = %v, want %v (±%v)", tt.got.Degrees(), tt.want, tt.tol)
			}
		})
	}
}

func TestAngleUnitRoundTrip(t *testing.T) {
	for _, d := range []float64{-270, -90.5, 0, 0.25, 47.11, 180, 359.999} {
		a := Degrees(d)
		if got := Radians(a.Radians()).Degrees(); math.Abs(got-d) > 1e-12 {
			t.Errorf("radians round trip for %v: got %v", d, got)
		}
		if got := Hours(a.Hours()).Degrees(); math.Abs(got-d) > 1e-12 {
			t.Errorf("hours round trip for %v: got %v", d, got)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{360, 0},
		{-90, 270},
		{450, 90},
		{-720.5, 359.5},
		{359.999, 359.999},
	}

	for _, tt := range tests {
		got := Degrees(tt.in).Normalize()
		if math.Abs(got.Degrees()-tt.want) > 1e-9 {
			t.Errorf("Normalize(%v) = %v, want %v", tt.in, got.Degrees(), tt.want)
		}
		// Idempotent.
		if again := got.Normalize(); again.Degrees() != got.Degrees() {
			t.Errorf("Normalize not idempotent for %v", tt.in)
		}
	}
}

func TestNormalizeSigned(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{180, -180},
		{-180, -180},
		{190, -170},
		{-190, 170},
		{359, -1},
	}

	for _, tt := range tests {
		got := Degrees(tt.in).NormalizeSigned()
		if math.Abs(got.Degrees()-tt.want) > 1e-9 {
			t.Errorf("NormalizeSigned(%v) = %v, want %v", tt.in, got.Degrees(), tt.want)
		}
		if got.Degrees() < -180 || got.Degrees() >= 180 {
			t.Errorf("NormalizeSigned(%v) = %v out of [-180,180)", tt.in, got.Degrees())
		}
	}

	// In-range values must pass through bit-exact; the wrap arithmetic
	// would otherwise nudge them by an ulp or two.
	for _, d := range []float64{-0.1278, -179.999999, 0.0001, 151.2093, 179.999999} {
		if got := Degrees(d).NormalizeSigned().Degrees(); got != d {
			t.Errorf("NormalizeSigned(%v) = %v, want it unchanged", d, got)
		}
	}
}

func TestCheckDeclination(t *testing.T) {
	if err := CheckDeclination("declination", Degrees(89.999)); err != nil {
		t.Errorf("valid declination rejected: %v", err)
	}
	if err := CheckDeclination("declination", Degrees(-90)); err != nil {
		t.Errorf("pole declination rejected: %v", err)
	}

	err := CheckDeclination("declination", Degrees(91))
	if err == nil {
		t.Fatal("expected DomainError for 91°")
	}
	var de *DomainError
	if !errors.As(err, &de) {
		t.Fatalf("expected *DomainError, got %T", err)
	}
	if de.Quantity != "declination" || de.Value != 91 {
		t.Errorf("DomainError = %+v", de)
	}
}

func TestFormatDMS(t *testing.T) {
	tests := []struct {
		name string
		in   Angle
		dec  int
		want string
	}{
		{"positive", FromDMS(41, 16, 9), 1, "+41d16m09.0s"},
		{"negative", FromDMS(-16, 42, 58), 1, "-16d42m58.0s"},
		{"zero decimals", Degrees(10.5), 0, "+10d30m00s"},
		{"carry at sixty", Degrees(29.9999999), 1, "+30d00m00.0s"},
		{"small negative", Degrees(-0.5), 0, "-00d30m00s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.FormatDMS(tt.dec); got != tt.want {
				t.Errorf("FormatDMS(%d) = %q, want %q", tt.dec, got, tt.want)
			}
		})
	}
}

func TestFormatHMS(t *testing.T) {
	tests := []struct {
		name string
		in   Angle
		dec  int
		want string
	}{
		{"sirius ra", Degrees(101.287), 1, "06h45m08.9s"},
		{"wraps negative", Degrees(-15), 0, "23h00m00s"},
		{"two decimals", Hours(10.341666667), 2, "10h20m30.00s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.FormatHMS(tt.dec); got != tt.want {
				t.Errorf("FormatHMS(%d) = %q, want %q", tt.dec, got, tt.want)
			}
		})
	}
}

func TestParseAngle(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    float64
		tol     float64
		wantErr bool
	}{
		{name: "decimal", in: "-16.716", want: -16.716, tol: 1e-12},
		{name: "decimal with spaces", in: "  42.0  ", want: 42, tol: 1e-12},
		{name: "hms", in: "10h20m30s", want: 155.125, tol: 1e-9},
		{name: "hms no trailing s", in: "10h20m30", want: 155.125, tol: 1e-9},
		{name: "hms fractional", in: "06h45m08.9s", want: 101.287083, tol: 1e-5},
		{name: "dms", in: "+41d16m09s", want: 41.269167, tol: 1e-6},
		{name: "dms unicode", in: `41°16'09"`, want: 41.269167, tol: 1e-6},
		{name: "dms negative", in: "-16d42m58s", want: -16.716111, tol: 1e-6},
		{name: "negative zero degrees", in: "-00d30m00s", want: -0.5, tol: 1e-9},
		{name: "empty", in: "", wantErr: true},
		{name: "garbage", in: "north by northwest", wantErr: true},
		{name: "minutes overflow", in: "10h61m00s", wantErr: true},
		{name: "seconds overflow", in: "10d20m61s", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAngle(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseAngle(%q) succeeded, want error", tt.in)
				}
				var fe *FormatError
				if !errors.As(err, &fe) {
					t.Fatalf("expected *FormatError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAngle(%q): %v", tt.in, err)
			}
			if math.Abs(got.Degrees()-tt.want) > tt.tol {
				t.Errorf("ParseAngle(%q) = %v, want %v", tt.in, got.Degrees(), tt.want)
			}
		})
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, d := range []float64{-89.5, -16.716111, 0, 0.004, 41.269167, 89.9999} {
		s := Degrees(d).FormatDMS(3)
		back, err := ParseAngle(s)
		if err != nil {
			t.Fatalf("ParseAngle(%q): %v", s, err)
		}
		if math.Abs(back.Degrees()-d) > 1e-6 {
			t.Errorf("round trip %v -> %q -> %v", d, s, back.Degrees())
		}
	}
}

func TestAngularSeparation(t *testing.T) {
	tests := []struct {
		name                   string
		ra1, dec1, ra2, dec2   float64
		want                   float64
		tol                    float64
	}{
		{"coincident", 120, 45, 120, 45, 0, 1e-12},
		{"poles", 0, 90, 0, -90, 180, 1e-9},
		{"equator quarter", 0, 0, 90, 0, 90, 1e-9},
		// Alnitak to Alnilam, the belt of Orion, about 1.36 degrees.
		{"orion belt", 85.190, -1.943, 84.053, -1.202, 1.36, 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AngularSeparation(
				Degrees(tt.ra1), Degrees(tt.dec1),
				Degrees(tt.ra2), Degrees(tt.dec2))
			if math.Abs(got.Degrees()-tt.want) > tt.tol {
				t.Errorf("separation = %v, want %v (±%v)", got.Degrees(), tt.want, tt.tol)
			}
		})
	}
}

func TestAngularSeparationSymmetric(t *testing.T) {
	a := AngularSeparation(Degrees(10), Degrees(20), Degrees(200), Degrees(-50))
	b := AngularSeparation(Degrees(200), Degrees(-50), Degrees(10), Degrees(20))
	if math.Abs(a.Degrees()-b.Degrees()) > 1e-12 {
		t.Errorf("separation not symmetric: %v vs %v", a.Degrees(), b.Degrees())
	}
}
