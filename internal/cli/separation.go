package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/litescript/starward/internal/astro"
	"github.com/litescript/starward/internal/output"
)

var separationCmd = &cobra.Command{
	Use:   "separation <target1> <target2>",
	Short: "Angular separation between two bodies",
	Args:  cobra.ExactArgs(2),
	RunE:  runSeparation,
}

func init() {
	rootCmd.AddCommand(separationCmd)
}

func runSeparation(cmd *cobra.Command, args []string) error {
	p1, name1, err := resolveTarget(args[0])
	if err != nil {
		return err
	}
	p2, name2, err := resolveTarget(args[1])
	if err != nil {
		return err
	}
	t, err := resolveTime(cmd)
	if err != nil {
		return err
	}
	renderer, err := newRenderer(cmd)
	if err != nil {
		return err
	}
	led := newLedger(cmd)

	eq1 := p1(t, led)
	eq2 := p2(t, led)
	sep := astro.AngularSeparation(eq1.RA, eq1.Dec, eq2.RA, eq2.Dec)
	led.Record("Angular separation", "θ = sep(target1, target2)", sep.Degrees())

	rep := output.Report{Title: fmt.Sprintf("%s ↔ %s · %s", name1, name2, output.FormatInstant(t))}
	rep.AddRaw("Separation", "separation_deg", sep.FormatDMS(1), sep.Degrees())
	rep.Steps = steps(led)
	return renderer.Render(rep)
}
