package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/litescript/starward/internal/astro"
	"github.com/litescript/starward/internal/output"
	"github.com/litescript/starward/internal/verbose"
)

var convertCmd = &cobra.Command{
	Use:   "convert <coord1> <coord2>",
	Short: "Convert a coordinate pair between celestial frames",
	Long: "Convert a coordinate pair between the equatorial, horizontal,\n" +
		"ecliptic, and galactic frames. Coordinates accept sexagesimal\n" +
		"(12h30m49s, +41d16m09s) or decimal degrees.",
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("from", "equatorial", "source frame: equatorial, horizontal, ecliptic, galactic")
	convertCmd.Flags().String("to", "horizontal", "target frame")
	rootCmd.AddCommand(convertCmd)
}

// frameNeedsObserver reports whether the frame depends on site and time of
// observation beyond the rotation to the equator.
func frameNeedsObserver(frame string) bool {
	return frame == "horizontal"
}

func runConvert(cmd *cobra.Command, args []string) error {
	a1, err := astro.ParseAngle(args[0])
	if err != nil {
		return err
	}
	a2, err := astro.ParseAngle(args[1])
	if err != nil {
		return err
	}
	if err := astro.CheckDeclination("second coordinate", a2); err != nil {
		return err
	}

	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	from = strings.ToLower(from)
	to = strings.ToLower(to)

	t, err := resolveTime(cmd)
	if err != nil {
		return err
	}
	var obs astro.Observer
	if frameNeedsObserver(from) || frameNeedsObserver(to) {
		obs, err = resolveObserver(cmd)
		if err != nil {
			return err
		}
	}
	renderer, err := newRenderer(cmd)
	if err != nil {
		return err
	}
	led := newLedger(cmd)

	eq, err := toEquatorial(from, a1, a2, obs, t, led)
	if err != nil {
		return err
	}
	l1, l2, labels, err := fromEquatorial(to, eq, obs, t, led)
	if err != nil {
		return err
	}

	rep := output.Report{Title: fmt.Sprintf("%s → %s · %s", from, to, output.FormatInstant(t))}
	rep.AddRaw(labels[0], "coord1_deg", l1.FormatDMS(1), l1.Degrees())
	rep.AddRaw(labels[1], "coord2_deg", l2.FormatDMS(1), l2.Degrees())
	rep.Steps = steps(led)
	return renderer.Render(rep)
}

func toEquatorial(frame string, a1, a2 astro.Angle, obs astro.Observer, t astro.Instant, led *verbose.Ledger) (astro.Equatorial, error) {
	switch frame {
	case "equatorial":
		return astro.Equatorial{RA: a1.Normalize(), Dec: a2}, nil
	case "horizontal":
		return astro.HorizontalToEquatorial(astro.Horizontal{Alt: a2, Az: a1}, obs, t, led), nil
	case "ecliptic":
		return astro.EclipticToEquatorial(astro.Ecliptic{Lon: a1.Normalize(), Lat: a2}, t, led), nil
	case "galactic":
		return astro.GalacticToEquatorial(astro.Galactic{Lon: a1.Normalize(), Lat: a2}, led), nil
	default:
		return astro.Equatorial{}, &astro.FormatError{Input: frame, Token: frame}
	}
}

func fromEquatorial(frame string, eq astro.Equatorial, obs astro.Observer, t astro.Instant, led *verbose.Ledger) (astro.Angle, astro.Angle, [2]string, error) {
	switch frame {
	case "equatorial":
		return eq.RA, eq.Dec, [2]string{"Right ascension", "Declination"}, nil
	case "horizontal":
		hz := astro.EquatorialToHorizontal(eq, obs, t, led)
		return hz.Az, hz.Alt, [2]string{"Azimuth", "Altitude"}, nil
	case "ecliptic":
		ec := astro.EquatorialToEcliptic(eq, t, led)
		return ec.Lon, ec.Lat, [2]string{"Ecliptic longitude", "Ecliptic latitude"}, nil
	case "galactic":
		g := astro.EquatorialToGalactic(eq, led)
		return g.Lon, g.Lat, [2]string{"Galactic longitude", "Galactic latitude"}, nil
	default:
		return astro.Angle{}, astro.Angle{}, [2]string{}, &astro.FormatError{Input: frame, Token: frame}
	}
}
