package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/litescript/starward/internal/astro"
	"github.com/litescript/starward/internal/output"
)

var planetCmd = &cobra.Command{
	Use:   "planet <name>",
	Short: "Planetary position, elongation, and brightness",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlanet,
}

func init() {
	rootCmd.AddCommand(planetCmd)
}

func runPlanet(cmd *cobra.Command, args []string) error {
	p, err := astro.ParsePlanet(args[0])
	if err != nil {
		return err
	}
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

	pos, err := p.Position(t, led)
	if err != nil {
		return err
	}
	hz := astro.EquatorialToHorizontal(pos.Equatorial, obs, t, led)

	rep := output.Report{Title: fmt.Sprintf("%s · %s · %s", p, obs.Name, output.FormatInstant(t))}
	rep.AddRaw("Right ascension", "ra_deg", pos.Equatorial.RA.FormatHMS(1), pos.Equatorial.RA.Degrees())
	rep.AddRaw("Declination", "dec_deg", pos.Equatorial.Dec.FormatDMS(0), pos.Equatorial.Dec.Degrees())
	rep.AddRaw("Altitude", "alt_deg", hz.Alt.FormatDMS(0), hz.Alt.Degrees())
	rep.AddRaw("Azimuth", "az_deg", hz.Az.FormatDMS(0), hz.Az.Degrees())
	rep.AddRaw("Distance", "distance_au", fmt.Sprintf("%.4f AU", pos.DistanceAU), pos.DistanceAU)
	rep.AddRaw("Sun distance", "sun_distance_au", fmt.Sprintf("%.4f AU", pos.SunDistanceAU), pos.SunDistanceAU)
	rep.AddRaw("Elongation", "elongation_deg", pos.Elongation.FormatDMS(0), pos.Elongation.Degrees())
	rep.AddRaw("Phase angle", "phase_angle_deg", pos.PhaseAngle.FormatDMS(0), pos.PhaseAngle.Degrees())
	rep.AddRaw("Magnitude", "magnitude", fmt.Sprintf("%+.2f", pos.Magnitude), pos.Magnitude)

	rep.Steps = steps(led)
	return renderer.Render(rep)
}
