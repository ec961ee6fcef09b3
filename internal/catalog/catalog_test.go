package catalog

import (
	"errors"
	"math"
	"testing"

	"github.com/litescript/starward/internal/astro"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenMemory()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSeedOnFirstOpen(t *testing.T) {
	s := openTestStore(t)

	n, err := s.Count()
	if err != nil {
		t.Fatal(err)
	}
	if n != len(seedObjects) {
		t.Errorf("seeded %d objects, want %d", n, len(seedObjects))
	}
}

func TestLookupByName(t *testing.T) {
	s := openTestStore(t)

	o, err := s.Lookup("Sirius")
	if err != nil {
		t.Fatal(err)
	}
	if o.Designation != "HR 2491" {
		t.Errorf("designation = %q, want HR 2491", o.Designation)
	}
	if math.Abs(o.Magnitude-(-1.46)) > 1e-9 {
		t.Errorf("magnitude = %v, want -1.46", o.Magnitude)
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	s := openTestStore(t)

	for _, q := range []string{"sirius", "SIRIUS", "  Sirius  "} {
		if _, err := s.Lookup(q); err != nil {
			t.Errorf("Lookup(%q): %v", q, err)
		}
	}
}

func TestLookupByDesignation(t *testing.T) {
	s := openTestStore(t)

	o, err := s.Lookup("M31")
	if err != nil {
		t.Fatal(err)
	}
	if o.Name != "Andromeda Galaxy" {
		t.Errorf("name = %q, want Andromeda Galaxy", o.Name)
	}
}

func TestLookupNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Lookup("Planet Nine")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSearch(t *testing.T) {
	s := openTestStore(t)

	got, err := s.Search("nebula", 50)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) == 0 {
		t.Fatal("no matches for nebula")
	}
	// Ordered by brightness.
	for i := 1; i < len(got); i++ {
		if got[i].Magnitude < got[i-1].Magnitude {
			t.Errorf("results out of magnitude order at %d: %v after %v",
				i, got[i].Magnitude, got[i-1].Magnitude)
		}
	}
}

func TestBrightest(t *testing.T) {
	s := openTestStore(t)

	stars, err := s.Brightest("star", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(stars) != 3 {
		t.Fatalf("got %d stars, want 3", len(stars))
	}
	if stars[0].Name != "Sirius" {
		t.Errorf("brightest star = %q, want Sirius", stars[0].Name)
	}
	for _, o := range stars {
		if o.Kind != "star" {
			t.Errorf("%s has kind %q", o.Name, o.Kind)
		}
	}

	any, err := s.Brightest("", 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(any) != 5 {
		t.Errorf("got %d objects, want 5", len(any))
	}
}

func TestAddUpsert(t *testing.T) {
	s := openTestStore(t)

	obj := Object{Name: "Test Star", Designation: "TS 1", Kind: "star", RADeg: 10, DecDeg: 20, Magnitude: 5}
	if err := s.Add(obj); err != nil {
		t.Fatal(err)
	}

	obj.Magnitude = 4.5
	if err := s.Add(obj); err != nil {
		t.Fatal(err)
	}

	got, err := s.Lookup("Test Star")
	if err != nil {
		t.Fatal(err)
	}
	if got.Magnitude != 4.5 {
		t.Errorf("magnitude after upsert = %v, want 4.5", got.Magnitude)
	}
}

func TestAddRejectsBadDeclination(t *testing.T) {
	s := openTestStore(t)

	err := s.Add(Object{Name: "Bad", Kind: "star", RADeg: 10, DecDeg: 95})
	if err == nil {
		t.Fatal("declination 95 accepted")
	}
	var de *astro.DomainError
	if !errors.As(err, &de) {
		t.Errorf("expected *astro.DomainError, got %T", err)
	}
}

func TestObjectEquatorial(t *testing.T) {
	o := Object{Name: "x", RADeg: 370, DecDeg: -5}
	eq := o.Equatorial()
	if math.Abs(eq.RA.Degrees()-10) > 1e-9 {
		t.Errorf("RA normalized to %v, want 10", eq.RA.Degrees())
	}
	if eq.Dec.Degrees() != -5 {
		t.Errorf("Dec = %v, want -5", eq.Dec.Degrees())
	}

	// The provider is time-independent.
	p := o.Provider()
	if p(astro.J2000(), nil) != p(astro.J2000().AddDays(1000), nil) {
		t.Error("fixed provider moved")
	}
}

func TestSeedCoordinatesValid(t *testing.T) {
	for _, o := range seedObjects {
		if o.RADeg < 0 || o.RADeg >= 360 {
			t.Errorf("%s: RA %v out of range", o.Name, o.RADeg)
		}
		if o.DecDeg < -90 || o.DecDeg > 90 {
			t.Errorf("%s: Dec %v out of range", o.Name, o.DecDeg)
		}
		if o.Name == "" || o.Kind == "" {
			t.Errorf("%+v: missing name or kind", o)
		}
	}
}
