package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/litescript/starward/internal/astro"
	"github.com/litescript/starward/internal/output"
)

var moonCmd = &cobra.Command{
	Use:   "moon",
	Short: "Lunar position and phase for an observer",
	RunE:  runMoon,
}

func init() {
	rootCmd.AddCommand(moonCmd)
}

func runMoon(cmd *cobra.Command, args []string) error {
	t, err := resolveTime(cmd)
	if err != nil {
		return err
	}
	obs, err := resolveObserver(cmd)
	if err != nil {
		return err
	}
	renderer, err := newRenderer(cmd)
	if err != nil {
		return err
	}
	led := newLedger(cmd)

	moon := astro.Moon(t, led)
	phase := astro.MoonPhase(t, led)
	hz := astro.EquatorialToHorizontal(moon.Equatorial, obs, t, led)

	rep := output.Report{Title: fmt.Sprintf("Moon · %s · %s", obs.Name, output.FormatInstant(t))}
	rep.AddRaw("Right ascension", "ra_deg", moon.Equatorial.RA.FormatHMS(1), moon.Equatorial.RA.Degrees())
	rep.AddRaw("Declination", "dec_deg", moon.Equatorial.Dec.FormatDMS(0), moon.Equatorial.Dec.Degrees())
	rep.AddRaw("Altitude", "alt_deg", hz.Alt.FormatDMS(0), hz.Alt.Degrees())
	rep.AddRaw("Azimuth", "az_deg", hz.Az.FormatDMS(0), hz.Az.Degrees())
	rep.AddRaw("Distance", "distance_km", fmt.Sprintf("%.0f km", moon.DistanceKm), moon.DistanceKm)
	rep.AddRaw("Angular diameter", "angular_diameter_deg", moon.AngularDiameter.FormatDMS(1), moon.AngularDiameter.Degrees())
	rep.AddRaw("Phase", "phase", string(phase.Name), string(phase.Name))
	rep.AddRaw("Illumination", "illumination", fmt.Sprintf("%.1f%%", phase.Illumination*100), phase.Illumination)
	rep.AddRaw("Age", "age_days", fmt.Sprintf("%.1f days", phase.AgeDays), phase.AgeDays)

	rep.Steps = steps(led)
	return renderer.Render(rep)
}
