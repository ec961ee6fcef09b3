package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/litescript/starward/internal/output"
	"github.com/litescript/starward/internal/profiles"
)

var observerCmd = &cobra.Command{
	Use:   "observer",
	Short: "Manage stored observer locations",
}

var observerAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add or replace an observer profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runObserverAdd,
}

var observerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored observer profiles",
	RunE:  runObserverList,
}

var observerRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove an observer profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runObserverRemove,
}

var observerDefaultCmd = &cobra.Command{
	Use:   "set-default <name>",
	Short: "Make a profile the default observer",
	Args:  cobra.ExactArgs(1),
	RunE:  runObserverDefault,
}

func init() {
	observerAddCmd.Flags().Float64("latitude", 0, "latitude in degrees, north positive")
	observerAddCmd.Flags().Float64("longitude", 0, "longitude in degrees, east positive")
	observerAddCmd.Flags().Float64("elevation", 0, "elevation in meters")
	observerAddCmd.Flags().String("timezone", "", "IANA timezone name")
	_ = observerAddCmd.MarkFlagRequired("latitude")
	_ = observerAddCmd.MarkFlagRequired("longitude")

	observerCmd.AddCommand(observerAddCmd, observerListCmd, observerRemoveCmd, observerDefaultCmd)
	rootCmd.AddCommand(observerCmd)
}

func runObserverAdd(cmd *cobra.Command, args []string) error {
	lat, _ := cmd.Flags().GetFloat64("latitude")
	lon, _ := cmd.Flags().GetFloat64("longitude")
	elev, _ := cmd.Flags().GetFloat64("elevation")
	tz, _ := cmd.Flags().GetString("timezone")

	store, err := profileStore()
	if err != nil {
		return err
	}
	p := profiles.Profile{
		Name:      args[0],
		Latitude:  lat,
		Longitude: lon,
		Elevation: elev,
		Timezone:  tz,
	}
	if err := store.Add(p); err != nil {
		return err
	}
	logger.WithPrefix("observer").Info("saved observer %s (%.4f, %.4f)", p.Name, lat, lon)
	return nil
}

func runObserverList(cmd *cobra.Command, args []string) error {
	store, err := profileStore()
	if err != nil {
		return err
	}
	list, err := store.List()
	if err != nil {
		return err
	}
	def, hasDefault, err := store.Default()
	if err != nil {
		return err
	}

	renderer, err := newRenderer(cmd)
	if err != nil {
		return err
	}
	rep := output.Report{Title: "Observers"}
	for _, p := range list {
		obs, err := p.Observer()
		if err != nil {
			return err
		}
		value := obs.String()
		if hasDefault && p.Name == def.Name {
			value += "  (default)"
		}
		rep.AddRaw(p.Name, keyFor(p.Name), value, map[string]any{
			"latitude":  p.Latitude,
			"longitude": p.Longitude,
			"elevation": p.Elevation,
			"timezone":  p.Timezone,
			"default":   hasDefault && p.Name == def.Name,
		})
	}
	return renderer.Render(rep)
}

func runObserverRemove(cmd *cobra.Command, args []string) error {
	store, err := profileStore()
	if err != nil {
		return err
	}
	ok, err := store.Remove(args[0])
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("observer %q not found", args[0])
	}
	logger.WithPrefix("observer").Info("removed observer %s", args[0])
	return nil
}

func runObserverDefault(cmd *cobra.Command, args []string) error {
	store, err := profileStore()
	if err != nil {
		return err
	}
	ok, err := store.SetDefault(args[0])
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("observer %q not found", args[0])
	}
	logger.WithPrefix("observer").Info("default observer is now %s", args[0])
	return nil
}
