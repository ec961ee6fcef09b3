package cli

import (
	"github.com/spf13/cobra"

	"github.com/litescript/starward/internal/ui"
)

var tonightCmd = &cobra.Command{
	Use:   "tonight",
	Short: "Live dashboard of what is up tonight",
	RunE:  runTonight,
}

func init() {
	tonightCmd.Flags().Int("objects", 40, "number of catalog objects to consider")
	rootCmd.AddCommand(tonightCmd)
}

func runTonight(cmd *cobra.Command, args []string) error {
	obs, err := resolveObserver(cmd)
	if err != nil {
		return err
	}

	store, err := openCatalog()
	if err != nil {
		return err
	}
	limit, _ := cmd.Flags().GetInt("objects")
	objects, err := store.Brightest("", limit)
	store.Close()
	if err != nil {
		return err
	}

	logger.Debug("starting tonight dashboard for %s with %d objects", obs.Name, len(objects))
	return ui.Run(obs, objects)
}
