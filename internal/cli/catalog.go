package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/litescript/starward/internal/astro"
	"github.com/litescript/starward/internal/catalog"
	"github.com/litescript/starward/internal/output"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse and extend the object catalog",
}

var catalogSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Find objects by name or designation",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogSearch,
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one object, with its current position for the observer",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogShow,
}

var catalogAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add or replace a user-defined object",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogAdd,
}

var catalogBrightestCmd = &cobra.Command{
	Use:   "brightest",
	Short: "List the brightest cataloged objects",
	RunE:  runCatalogBrightest,
}

func init() {
	catalogSearchCmd.Flags().Int("limit", 20, "maximum results")
	catalogBrightestCmd.Flags().Int("limit", 10, "maximum results")
	catalogBrightestCmd.Flags().String("kind", "", "restrict to one kind (star, galaxy, nebula, ...)")
	catalogAddCmd.Flags().String("ra", "", "right ascension (sexagesimal or decimal degrees)")
	catalogAddCmd.Flags().String("dec", "", "declination")
	catalogAddCmd.Flags().String("kind", "star", "object kind")
	catalogAddCmd.Flags().String("designation", "", "catalog designation")
	catalogAddCmd.Flags().Float64("mag", 0, "apparent magnitude")
	_ = catalogAddCmd.MarkFlagRequired("ra")
	_ = catalogAddCmd.MarkFlagRequired("dec")

	catalogCmd.AddCommand(catalogSearchCmd, catalogShowCmd, catalogAddCmd, catalogBrightestCmd)
	rootCmd.AddCommand(catalogCmd)
}

func renderObjects(cmd *cobra.Command, title string, objs []catalog.Object) error {
	renderer, err := newRenderer(cmd)
	if err != nil {
		return err
	}
	rep := output.Report{Title: title}
	for _, o := range objs {
		label := o.Name
		if o.Designation != "" {
			label = fmt.Sprintf("%s (%s)", o.Name, o.Designation)
		}
		rep.AddRaw(label, keyFor(o.Name),
			fmt.Sprintf("%s %s  mag %+.1f  %s",
				o.Equatorial().RA.FormatHMS(0), o.Equatorial().Dec.FormatDMS(0), o.Magnitude, o.Kind),
			map[string]any{
				"designation": o.Designation,
				"kind":        o.Kind,
				"ra_deg":      o.RADeg,
				"dec_deg":     o.DecDeg,
				"magnitude":   o.Magnitude,
			})
	}
	return renderer.Render(rep)
}

func runCatalogSearch(cmd *cobra.Command, args []string) error {
	store, err := openCatalog()
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	objs, err := store.Search(args[0], limit)
	if err != nil {
		return err
	}
	return renderObjects(cmd, fmt.Sprintf("Catalog matches for %q", args[0]), objs)
}

func runCatalogShow(cmd *cobra.Command, args []string) error {
	store, err := openCatalog()
	if err != nil {
		return err
	}
	defer store.Close()

	obj, err := store.Lookup(args[0])
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

	eq := obj.Equatorial()
	hz := astro.EquatorialToHorizontal(eq, obs, t, led)

	rep := output.Report{Title: fmt.Sprintf("%s · %s · %s", obj.Name, obs.Name, output.FormatInstant(t))}
	if obj.Designation != "" {
		rep.Add("Designation", "designation", obj.Designation)
	}
	rep.Add("Kind", "kind", obj.Kind)
	rep.AddRaw("Right ascension", "ra_deg", eq.RA.FormatHMS(1), eq.RA.Degrees())
	rep.AddRaw("Declination", "dec_deg", eq.Dec.FormatDMS(0), eq.Dec.Degrees())
	rep.AddRaw("Magnitude", "magnitude", fmt.Sprintf("%+.1f", obj.Magnitude), obj.Magnitude)
	rep.AddRaw("Altitude", "alt_deg", hz.Alt.FormatDMS(0), hz.Alt.Degrees())
	rep.AddRaw("Azimuth", "az_deg", hz.Az.FormatDMS(0), hz.Az.Degrees())
	rep.AddRaw("Transit altitude", "transit_altitude_deg",
		astro.TransitAltitude(obs, eq.Dec, led).FormatDMS(0),
		astro.TransitAltitude(obs, eq.Dec, nil).Degrees())
	if x, ok := astro.Airmass(hz.Alt, led); ok {
		rep.AddRaw("Airmass", "airmass", fmt.Sprintf("%.3f", x), x)
	}
	rep.AddRaw("Moon separation", "moon_separation_deg",
		astro.MoonSeparation(eq, t, led).FormatDMS(0),
		astro.MoonSeparation(eq, t, nil).Degrees())

	rep.Steps = steps(led)
	return renderer.Render(rep)
}

func runCatalogAdd(cmd *cobra.Command, args []string) error {
	raStr, _ := cmd.Flags().GetString("ra")
	decStr, _ := cmd.Flags().GetString("dec")
	ra, err := astro.ParseAngle(raStr)
	if err != nil {
		return err
	}
	dec, err := astro.ParseAngle(decStr)
	if err != nil {
		return err
	}

	kind, _ := cmd.Flags().GetString("kind")
	designation, _ := cmd.Flags().GetString("designation")
	mag, _ := cmd.Flags().GetFloat64("mag")

	store, err := openCatalog()
	if err != nil {
		return err
	}
	defer store.Close()

	obj := catalog.Object{
		Name:        args[0],
		Designation: designation,
		Kind:        kind,
		RADeg:       ra.Normalize().Degrees(),
		DecDeg:      dec.Degrees(),
		Magnitude:   mag,
	}
	if err := store.Add(obj); err != nil {
		return err
	}
	logger.WithPrefix("catalog").Info("cataloged %s at %s %s", obj.Name, ra.FormatHMS(1), dec.FormatDMS(0))
	return nil
}

func runCatalogBrightest(cmd *cobra.Command, args []string) error {
	store, err := openCatalog()
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	kind, _ := cmd.Flags().GetString("kind")
	objs, err := store.Brightest(kind, limit)
	if err != nil {
		return err
	}
	return renderObjects(cmd, "Brightest objects", objs)
}
