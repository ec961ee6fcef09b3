package profiles

import (
	"math"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "observers.toml"))
}

func TestFirstProfileBecomesDefault(t *testing.T) {
	s := newTestStore(t)

	if err := s.Add(Profile{Name: "Home", Latitude: 51.5, Longitude: -0.12}); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(Profile{Name: "Cabin", Latitude: 60.1, Longitude: 24.9}); err != nil {
		t.Fatal(err)
	}

	p, ok, err := s.Default()
	if err != nil {
		t.Fatal(err)
	}
	if !ok || p.Name != "Home" {
		t.Errorf("default = %q (ok=%v), want Home", p.Name, ok)
	}
}

func TestAddReplacesByName(t *testing.T) {
	s := newTestStore(t)

	if err := s.Add(Profile{Name: "Home", Latitude: 51.5, Longitude: -0.12}); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(Profile{Name: "home", Latitude: 48.85, Longitude: 2.35}); err != nil {
		t.Fatal(err)
	}

	all, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 {
		t.Fatalf("got %d profiles, want 1", len(all))
	}
	if math.Abs(all[0].Latitude-48.85) > 1e-9 {
		t.Errorf("latitude = %v, want 48.85", all[0].Latitude)
	}
}

func TestAddValidatesCoordinates(t *testing.T) {
	s := newTestStore(t)

	if err := s.Add(Profile{Name: "Bad", Latitude: 95}); err == nil {
		t.Fatal("latitude 95 accepted")
	}
}

func TestRemoveReassignsDefault(t *testing.T) {
	s := newTestStore(t)

	for _, p := range []Profile{
		{Name: "Berlin", Latitude: 52.52, Longitude: 13.4},
		{Name: "Athens", Latitude: 37.98, Longitude: 23.7},
	} {
		if err := s.Add(p); err != nil {
			t.Fatal(err)
		}
	}

	ok, err := s.Remove("Berlin")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("Remove reported no such profile")
	}

	p, ok, err := s.Default()
	if err != nil {
		t.Fatal(err)
	}
	if !ok || p.Name != "Athens" {
		t.Errorf("default after removal = %q (ok=%v), want Athens", p.Name, ok)
	}
}

func TestRemoveMissing(t *testing.T) {
	s := newTestStore(t)

	ok, err := s.Remove("nowhere")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("Remove reported success for a missing profile")
	}
}

func TestSetDefault(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"A", "B"} {
		if err := s.Add(Profile{Name: name, Latitude: 10}); err != nil {
			t.Fatal(err)
		}
	}

	ok, err := s.SetDefault("B")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("SetDefault reported no such profile")
	}
	p, _, err := s.Default()
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "B" {
		t.Errorf("default = %q, want B", p.Name)
	}

	ok, err = s.SetDefault("missing")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("SetDefault succeeded for a missing profile")
	}
}

func TestListSorted(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"Zurich", "Athens", "Madrid"} {
		if err := s.Add(Profile{Name: name, Latitude: 10}); err != nil {
			t.Fatal(err)
		}
	}

	all, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, p := range all {
		names = append(names, p.Name)
	}
	if got := strings.Join(names, ","); got != "Athens,Madrid,Zurich" {
		t.Errorf("List order = %s", got)
	}
}

func TestResolve(t *testing.T) {
	s := newTestStore(t)

	if err := s.Add(Profile{Name: "Home", Latitude: 51.5, Longitude: -0.12, Elevation: 35}); err != nil {
		t.Fatal(err)
	}

	// Empty name resolves the default.
	obs, err := s.Resolve("")
	if err != nil {
		t.Fatal(err)
	}
	if obs.Name != "Home" || obs.ElevationM != 35 {
		t.Errorf("resolved %+v", obs)
	}

	// Names are matched case-insensitively through the key form.
	if _, err := s.Resolve("home"); err != nil {
		t.Errorf("Resolve(home): %v", err)
	}

	if _, err := s.Resolve("nowhere"); err == nil {
		t.Error("Resolve succeeded for a missing profile")
	}
}

func TestResolveNoDefault(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Resolve("")
	if err == nil {
		t.Fatal("expected error with no profiles")
	}
	if !strings.Contains(err.Error(), "no default observer") {
		t.Errorf("error = %v", err)
	}
}

func TestRoundTripThroughDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "observers.toml")

	if err := NewStore(path).Add(Profile{
		Name: "Mauna Kea", Latitude: 19.82, Longitude: -155.47,
		Elevation: 4205, Timezone: "Pacific/Honolulu",
	}); err != nil {
		t.Fatal(err)
	}

	// A fresh store reads what the first one wrote.
	p, ok, err := NewStore(path).Get("mauna kea")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("profile not found after reopen")
	}
	if p.Timezone != "Pacific/Honolulu" || p.Elevation != 4205 {
		t.Errorf("got %+v", p)
	}
}
