package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/litescript/starward/internal/astro"
	"github.com/litescript/starward/internal/bridge"
	"github.com/litescript/starward/internal/output"
)

var sunCmd = &cobra.Command{
	Use:   "sun",
	Short: "Solar position and geometry for an observer",
	RunE:  runSun,
}

func init() {
	sunCmd.Flags().Bool("cross-check", false, "compare against an independent solar implementation")
	rootCmd.AddCommand(sunCmd)
}

func runSun(cmd *cobra.Command, args []string) error {
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

	sun := astro.Sun(t, led)
	hz := astro.EquatorialToHorizontal(sun.Equatorial, obs, t, led)

	rep := output.Report{Title: fmt.Sprintf("Sun · %s · %s", obs.Name, output.FormatInstant(t))}
	rep.AddRaw("Right ascension", "ra_deg", sun.Equatorial.RA.FormatHMS(1), sun.Equatorial.RA.Degrees())
	rep.AddRaw("Declination", "dec_deg", sun.Equatorial.Dec.FormatDMS(0), sun.Equatorial.Dec.Degrees())
	rep.AddRaw("Ecliptic longitude", "ecliptic_lon_deg", sun.Longitude.FormatDMS(0), sun.Longitude.Degrees())
	rep.AddRaw("Altitude", "alt_deg", hz.Alt.FormatDMS(0), hz.Alt.Degrees())
	rep.AddRaw("Azimuth", "az_deg", hz.Az.FormatDMS(0), hz.Az.Degrees())
	rep.AddRaw("Distance", "distance_au", fmt.Sprintf("%.6f AU", sun.DistanceAU), sun.DistanceAU)
	rep.AddRaw("Equation of time", "equation_of_time_min", fmt.Sprintf("%+.2f min", sun.EquationOfTime), sun.EquationOfTime)

	if x, ok := astro.Airmass(hz.Alt, nil); ok {
		rep.AddRaw("Airmass", "airmass", fmt.Sprintf("%.3f", x), x)
	}

	if crossCheck, _ := cmd.Flags().GetBool("cross-check"); crossCheck {
		cmp := bridge.ComparePosition(obs, t)
		rep.AddRaw("Cross-check Δalt", "cross_check_alt_delta_deg",
			fmt.Sprintf("%.4f°", cmp.NativeAltitude.Delta()), cmp.NativeAltitude.Delta())
		rep.AddRaw("Cross-check Δaz", "cross_check_az_delta_deg",
			fmt.Sprintf("%.4f°", cmp.NativeAzimuth.Delta()), cmp.NativeAzimuth.Delta())
	}

	rep.Steps = steps(led)
	return renderer.Render(rep)
}
