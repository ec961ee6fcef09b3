// Package ui provides the "tonight" terminal dashboard using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/starward/internal/astro"
	"github.com/litescript/starward/internal/catalog"
	"github.com/litescript/starward/internal/version"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	upStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46"))

	downStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("60"))
)

// Msg types for Bubble Tea
type (
	// TickMsg triggers a periodic recompute.
	TickMsg time.Time

	// SnapshotMsg carries a freshly computed sky snapshot.
	SnapshotMsg struct {
		Snapshot Snapshot
	}

	// ErrorMsg signals a compute error.
	ErrorMsg struct {
		Error error
	}
)

// PlanetRow is one line of the planets table.
type PlanetRow struct {
	Name      string
	Hz        astro.Horizontal
	Magnitude float64
}

// ObjectRow is one catalog object with its current altitude.
type ObjectRow struct {
	Object catalog.Object
	Hz     astro.Horizontal
}

// Snapshot is everything the dashboard shows, computed for one instant.
type Snapshot struct {
	Time astro.Instant

	SunHz     astro.Horizontal
	SunEvents astro.DayEvents
	Civil     astro.TwilightTimes
	Astro     astro.TwilightTimes

	MoonHz     astro.Horizontal
	MoonPhase  astro.MoonPhaseInfo
	MoonEvents astro.DayEvents

	Planets []PlanetRow
	Objects []ObjectRow
}

// ComputeSnapshot evaluates the whole sky picture for the observer now.
func ComputeSnapshot(obs astro.Observer, objects []catalog.Object, t astro.Instant) (Snapshot, error) {
	snap := Snapshot{Time: t}

	sun := astro.Sun(t, nil)
	snap.SunHz = astro.EquatorialToHorizontal(sun.Equatorial, obs, t, nil)

	var err error
	snap.SunEvents, err = astro.SunRiseSet(obs, t, nil)
	if err != nil {
		return Snapshot{}, err
	}
	snap.Civil, err = astro.Twilight(obs, t, astro.TwilightCivil, nil)
	if err != nil {
		return Snapshot{}, err
	}
	snap.Astro, err = astro.Twilight(obs, t, astro.TwilightAstronomical, nil)
	if err != nil {
		return Snapshot{}, err
	}

	moon := astro.Moon(t, nil)
	snap.MoonHz = astro.EquatorialToHorizontal(moon.Equatorial, obs, t, nil)
	snap.MoonPhase = astro.MoonPhase(t, nil)
	snap.MoonEvents, err = astro.MoonRiseSet(obs, t, nil)
	if err != nil {
		return Snapshot{}, err
	}

	for _, p := range []astro.Planet{astro.Mercury, astro.Venus, astro.Mars, astro.Jupiter, astro.Saturn, astro.Uranus, astro.Neptune} {
		pos, err := p.Position(t, nil)
		if err != nil {
			continue
		}
		snap.Planets = append(snap.Planets, PlanetRow{
			Name:      p.String(),
			Hz:        astro.EquatorialToHorizontal(pos.Equatorial, obs, t, nil),
			Magnitude: pos.Magnitude,
		})
	}

	for _, o := range objects {
		hz := astro.EquatorialToHorizontal(o.Equatorial(), obs, t, nil)
		if hz.Alt.Degrees() > 10 {
			snap.Objects = append(snap.Objects, ObjectRow{Object: o, Hz: hz})
		}
	}
	if len(snap.Objects) > 12 {
		snap.Objects = snap.Objects[:12]
	}

	return snap, nil
}

// Model is the tonight dashboard Bubble Tea model.
type Model struct {
	observer astro.Observer
	objects  []catalog.Object

	width  int
	height int
	ready  bool

	snapshot Snapshot
	haveSnap bool
	lastErr  error
}

// New creates the dashboard model for an observer. objects is the catalog
// selection considered for the "up tonight" table.
func New(obs astro.Observer, objects []catalog.Object) Model {
	return Model{observer: obs, objects: objects}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.computeCmd(), tickCmd())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m, m.computeCmd()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case TickMsg:
		return m, tea.Batch(tickCmd(), m.computeCmd())

	case SnapshotMsg:
		m.snapshot = msg.Snapshot
		m.haveSnap = true
		m.lastErr = nil

	case ErrorMsg:
		m.lastErr = msg.Error
	}

	return m, nil
}

func (m Model) computeCmd() tea.Cmd {
	obs := m.observer
	objects := m.objects
	return func() tea.Msg {
		snap, err := ComputeSnapshot(obs, objects, astro.Now())
		if err != nil {
			return ErrorMsg{Error: err}
		}
		return SnapshotMsg{Snapshot: snap}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(30*time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("STARWARD · Tonight"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  %s · v%s", m.observer.String(), version.Version)))
	b.WriteString("\n\n")

	if m.lastErr != nil {
		b.WriteString(errorStyle.Render("Error: " + m.lastErr.Error()))
		b.WriteString("\n\n")
	}
	if !m.haveSnap {
		b.WriteString("Computing sky picture...\n")
		return b.String()
	}

	b.WriteString(m.renderSun())
	b.WriteString("\n")
	b.WriteString(m.renderMoon())
	b.WriteString("\n")
	b.WriteString(m.renderPlanets())
	if len(m.snapshot.Objects) > 0 {
		b.WriteString("\n")
		b.WriteString(m.renderObjects())
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("  r: refresh | q: quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderSun() string {
	var b strings.Builder
	s := m.snapshot

	b.WriteString(headerStyle.Render("Sun"))
	b.WriteString("\n")
	b.WriteString("  " + rowStyle.Render(fmt.Sprintf("%s  az %s", altTag(s.SunHz.Alt), s.SunHz.Az.FormatDMS(0))))
	b.WriteString("\n")
	b.WriteString("  " + rowStyle.Render(fmt.Sprintf("rise %s  set %s", eventClock(s.SunEvents.Rise), eventClock(s.SunEvents.Set))))
	b.WriteString("\n")
	b.WriteString("  " + mutedStyle.Render(fmt.Sprintf("civil dusk %s  dark %s", eventClock(s.Civil.Dusk), eventClock(s.Astro.Dusk))))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderMoon() string {
	var b strings.Builder
	s := m.snapshot

	b.WriteString(headerStyle.Render("Moon"))
	b.WriteString("\n")
	b.WriteString("  " + rowStyle.Render(fmt.Sprintf("%s  az %s", altTag(s.MoonHz.Alt), s.MoonHz.Az.FormatDMS(0))))
	b.WriteString("\n")
	b.WriteString("  " + rowStyle.Render(fmt.Sprintf("%s  %.0f%% lit  %.1f days old",
		s.MoonPhase.Name, s.MoonPhase.Illumination*100, s.MoonPhase.AgeDays)))
	b.WriteString("\n")
	b.WriteString("  " + rowStyle.Render(fmt.Sprintf("rise %s  set %s", eventClock(s.MoonEvents.Rise), eventClock(s.MoonEvents.Set))))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderPlanets() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Planets"))
	b.WriteString("\n")
	for _, p := range m.snapshot.Planets {
		line := fmt.Sprintf("%-8s %s  az %-12s mag %+.1f",
			p.Name, altTag(p.Hz.Alt), p.Hz.Az.FormatDMS(0), p.Magnitude)
		if p.Hz.Alt.Degrees() > 0 {
			b.WriteString("  " + upStyle.Render(line))
		} else {
			b.WriteString("  " + downStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderObjects() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Up now"))
	b.WriteString("\n")
	for _, row := range m.snapshot.Objects {
		name := row.Object.Name
		if row.Object.Designation != "" {
			name = fmt.Sprintf("%s (%s)", name, row.Object.Designation)
		}
		b.WriteString("  " + rowStyle.Render(fmt.Sprintf("%-32s %s  mag %+.1f",
			name, altTag(row.Hz.Alt), row.Object.Magnitude)))
		b.WriteString("\n")
	}
	return b.String()
}

// altTag renders an altitude with an up/down marker.
func altTag(alt astro.Angle) string {
	if alt.Degrees() > 0 {
		return fmt.Sprintf("▲ %s", alt.FormatDMS(0))
	}
	return fmt.Sprintf("▽ %s", alt.FormatDMS(0))
}

// eventClock shows an event as local wall-clock time, or its sentinel.
func eventClock(ev astro.Event) string {
	switch ev.State {
	case astro.EventAt:
		return ev.Time.Time().Local().Format("15:04")
	case astro.EventCircumpolar:
		return "always up"
	case astro.EventNeverRises:
		return "never up"
	default:
		return "?"
	}
}

// Run starts the dashboard program and blocks until the user quits.
func Run(obs astro.Observer, objects []catalog.Object) error {
	p := tea.NewProgram(New(obs, objects), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
