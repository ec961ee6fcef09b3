package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/starward/internal/astro"
	"github.com/litescript/starward/internal/catalog"
)

func testObserver(t *testing.T) astro.Observer {
	t.Helper()
	obs, err := astro.NewObserver("london", 51.5074, -0.1278, 0)
	if err != nil {
		t.Fatal(err)
	}
	return obs
}

func TestComputeSnapshot(t *testing.T) {
	obs := testObserver(t)
	at := astro.FromCalendar(2024, 3, 20, 22, 0, 0, 0)

	objects := []catalog.Object{
		// Sirius sits low in the southwest at this hour; Polaris is always up.
		{Name: "Sirius", Kind: "star", RADeg: 101.287, DecDeg: -16.716, Magnitude: -1.46},
		{Name: "Polaris", Kind: "star", RADeg: 37.955, DecDeg: 89.264, Magnitude: 1.98},
	}

	snap, err := ComputeSnapshot(obs, objects, at)
	if err != nil {
		t.Fatal(err)
	}

	// At 22:00 UTC the Sun is well down.
	if snap.SunHz.Alt.Degrees() > -10 {
		t.Errorf("sun altitude = %v, want below -10", snap.SunHz.Alt.Degrees())
	}
	if snap.SunEvents.Rise.State != astro.EventAt || snap.SunEvents.Set.State != astro.EventAt {
		t.Error("equinox sun should rise and set")
	}

	if len(snap.Planets) != 7 {
		t.Errorf("got %d planet rows, want 7", len(snap.Planets))
	}

	// Polaris at alt ~51° clears the 10° visibility cut.
	found := false
	for _, row := range snap.Objects {
		if row.Object.Name == "Polaris" {
			found = true
			if row.Hz.Alt.Degrees() < 50 || row.Hz.Alt.Degrees() > 53 {
				t.Errorf("Polaris altitude = %v, want ~51.5", row.Hz.Alt.Degrees())
			}
		}
	}
	if !found {
		t.Error("Polaris missing from visible objects")
	}

	if snap.MoonPhase.Illumination < 0 || snap.MoonPhase.Illumination > 1 {
		t.Errorf("moon illumination = %v", snap.MoonPhase.Illumination)
	}
}

func TestComputeSnapshotCapsObjects(t *testing.T) {
	obs := testObserver(t)
	at := astro.FromCalendar(2024, 3, 20, 22, 0, 0, 0)

	// 30 copies of a circumpolar position all pass the altitude cut.
	var objects []catalog.Object
	for i := 0; i < 30; i++ {
		objects = append(objects, catalog.Object{
			Name: "Polaris", Kind: "star", RADeg: 37.955, DecDeg: 89.264, Magnitude: 1.98,
		})
	}

	snap, err := ComputeSnapshot(obs, objects, at)
	if err != nil {
		t.Fatal(err)
	}
	if len(snap.Objects) > 12 {
		t.Errorf("object table has %d rows, want at most 12", len(snap.Objects))
	}
}

func TestModelUpdate(t *testing.T) {
	m := New(testObserver(t), nil)

	// A window size readies the view.
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	m = next.(Model)
	if !m.ready {
		t.Error("model not ready after WindowSizeMsg")
	}

	// A snapshot replaces any prior error.
	m.lastErr = errors.New("stale")
	at := astro.FromCalendar(2024, 3, 20, 22, 0, 0, 0)
	snap, err := ComputeSnapshot(m.observer, nil, at)
	if err != nil {
		t.Fatal(err)
	}
	next, _ = m.Update(SnapshotMsg{Snapshot: snap})
	m = next.(Model)
	if !m.haveSnap || m.lastErr != nil {
		t.Errorf("haveSnap=%v lastErr=%v after SnapshotMsg", m.haveSnap, m.lastErr)
	}

	// q quits.
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("no command for quit key")
	}

	// The view renders all sections without panicking.
	view := m.View()
	for _, want := range []string{"STARWARD", "Sun", "Moon", "Planets"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestAltTag(t *testing.T) {
	up := altTag(astro.Degrees(45.5))
	if !strings.HasPrefix(up, "▲") {
		t.Errorf("altTag(45.5) = %q, want ▲ prefix", up)
	}
	down := altTag(astro.Degrees(-3))
	if !strings.HasPrefix(down, "▽") {
		t.Errorf("altTag(-3) = %q, want ▽ prefix", down)
	}
}

func TestEventClock(t *testing.T) {
	if got := eventClock(astro.Event{State: astro.EventCircumpolar}); got != "always up" {
		t.Errorf("circumpolar = %q", got)
	}
	if got := eventClock(astro.Event{State: astro.EventNeverRises}); got != "never up" {
		t.Errorf("never rises = %q", got)
	}
	at := astro.FromCalendar(2024, 3, 20, 6, 2, 0, 0)
	got := eventClock(astro.Event{State: astro.EventAt, Time: at})
	if len(got) != 5 || got[2] != ':' {
		t.Errorf("event clock = %q, want HH:MM", got)
	}
}
