package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/litescript/starward/internal/astro"
	"github.com/litescript/starward/internal/output"
)

var twilightCmd = &cobra.Command{
	Use:   "twilight",
	Short: "Dawn and dusk times for each twilight definition",
	RunE:  runTwilight,
}

func init() {
	twilightCmd.Flags().String("kind", "", "civil, nautical, or astronomical (default: all three)")
	rootCmd.AddCommand(twilightCmd)
}

func parseTwilightKind(s string) (astro.TwilightKind, error) {
	switch strings.ToLower(s) {
	case "civil":
		return astro.TwilightCivil, nil
	case "nautical":
		return astro.TwilightNautical, nil
	case "astronomical", "astro":
		return astro.TwilightAstronomical, nil
	default:
		return 0, &astro.FormatError{Input: s, Token: s}
	}
}

func runTwilight(cmd *cobra.Command, args []string) error {
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

	kinds := []astro.TwilightKind{astro.TwilightCivil, astro.TwilightNautical, astro.TwilightAstronomical}
	if s, _ := cmd.Flags().GetString("kind"); s != "" {
		k, err := parseTwilightKind(s)
		if err != nil {
			return err
		}
		kinds = []astro.TwilightKind{k}
	}

	rep := output.Report{Title: fmt.Sprintf("Twilight · %s · %s", obs.Name, output.FormatInstant(t))}
	for _, k := range kinds {
		tw, err := astro.Twilight(obs, t, k, led)
		if err != nil {
			return err
		}
		key := strings.ReplaceAll(k.String(), " ", "_")
		rep.AddRaw(titleCase(k.String())+" dawn", key+"_dawn", output.FormatEvent(tw.Dawn), eventJSON(tw.Dawn))
		rep.AddRaw(titleCase(k.String())+" dusk", key+"_dusk", output.FormatEvent(tw.Dusk), eventJSON(tw.Dusk))
	}

	rep.Steps = steps(led)
	return renderer.Render(rep)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
