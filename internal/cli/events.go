package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/litescript/starward/internal/astro"
	"github.com/litescript/starward/internal/output"
)

var eventsCmd = &cobra.Command{
	Use:   "events <target>",
	Short: "Rise, transit, and set times for a body",
	Long: "Find the rise, transit, and set times of the Sun, the Moon, a\n" +
		"planet, or a catalog object on the observer's local day. At extreme\n" +
		"latitudes the result may be circumpolar or never-rises instead of a\n" +
		"time.",
	Args: cobra.ExactArgs(1),
	RunE: runEvents,
}

func init() {
	eventsCmd.Flags().Float64("threshold", defaultThreshold, "altitude threshold in degrees")
	rootCmd.AddCommand(eventsCmd)
}

// defaultThreshold marks an unset --threshold; the per-body default then
// applies (refraction plus semidiameter for the Sun, the geometric horizon
// for everything else).
const defaultThreshold = -999

func runEvents(cmd *cobra.Command, args []string) error {
	provider, name, err := resolveTarget(args[0])
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

	threshold, _ := cmd.Flags().GetFloat64("threshold")
	if threshold == defaultThreshold {
		if name == "Sun" {
			threshold = astro.SunRiseSetAltitude
		} else {
			threshold = 0
		}
	}

	ev, err := astro.RiseSet(provider, obs, t, threshold, led)
	if err != nil {
		return err
	}

	rep := output.Report{Title: fmt.Sprintf("%s events · %s · %s", name, obs.Name, output.FormatInstant(t))}
	rep.AddRaw("Rise", "rise", output.FormatEvent(ev.Rise), eventJSON(ev.Rise))
	rep.AddRaw("Transit", "transit", output.FormatEvent(ev.Transit), eventJSON(ev.Transit))
	rep.AddRaw("Set", "set", output.FormatEvent(ev.Set), eventJSON(ev.Set))
	rep.AddRaw("Max altitude", "max_altitude_deg", ev.MaxAltitude.FormatDMS(0), ev.MaxAltitude.Degrees())

	if name == "Sun" {
		if hours, ok, err := astro.DayLength(obs, t, nil); err == nil && ok {
			rep.AddRaw("Day length", "day_length_hours", fmt.Sprintf("%.2f h", hours), hours)
		}
	}

	rep.Steps = steps(led)
	return renderer.Render(rep)
}

// eventJSON is the machine-readable shape of an event: a state tag plus
// the time when one exists.
func eventJSON(ev astro.Event) map[string]any {
	m := map[string]any{"state": ev.State.String()}
	if ev.State == astro.EventAt {
		m["time"] = ev.Time.Time().UTC().Format("2006-01-02T15:04:05Z")
		m["jd"] = ev.Time.JD()
	}
	return m
}
