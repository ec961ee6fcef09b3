package cli

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/litescript/starward/internal/astro"
	"github.com/litescript/starward/internal/catalog"
	"github.com/litescript/starward/internal/output"
	"github.com/litescript/starward/internal/profiles"
	"github.com/litescript/starward/internal/verbose"
)

// noCoordinate marks an unset --lat/--lon flag.
const noCoordinate = math.MaxFloat64

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// resolveTime parses the --time flag. An empty value means now.
func resolveTime(cmd *cobra.Command) (astro.Instant, error) {
	s, _ := cmd.Flags().GetString("time")
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "now") {
		return astro.Now(), nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return astro.FromTime(t), nil
		}
	}
	return astro.Instant{}, &astro.FormatError{Input: s, Token: s}
}

// resolveObserver builds the observer from --lat/--lon, or falls back to
// the named (or default) profile.
func resolveObserver(cmd *cobra.Command) (astro.Observer, error) {
	lat, _ := cmd.Flags().GetFloat64("lat")
	lon, _ := cmd.Flags().GetFloat64("lon")
	elev, _ := cmd.Flags().GetFloat64("elev")

	if lat != noCoordinate || lon != noCoordinate {
		if lat == noCoordinate || lon == noCoordinate {
			return astro.Observer{}, fmt.Errorf("--lat and --lon must be given together")
		}
		return astro.NewObserver("command line", lat, lon, elev)
	}

	store, err := profileStore()
	if err != nil {
		return astro.Observer{}, err
	}
	name := viper.GetString("observer")
	if flagName, _ := cmd.Flags().GetString("observer"); flagName != "" {
		name = flagName
	}
	return store.Resolve(name)
}

func profileStore() (*profiles.Store, error) {
	path := viper.GetString("profiles_path")
	if path == "" {
		var err error
		path, err = profiles.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return profiles.NewStore(path), nil
}

func openCatalog() (*catalog.Store, error) {
	path := viper.GetString("catalog_path")
	if path == "" {
		var err error
		path, err = catalog.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return catalog.Open(path)
}

// newRenderer builds the renderer from the persistent output flags.
func newRenderer(cmd *cobra.Command) (*output.Renderer, error) {
	formatName := viper.GetString("format")
	if f, _ := cmd.Flags().GetString("format"); cmd.Flags().Changed("format") {
		formatName = f
	}
	format, err := output.ParseFormat(formatName)
	if err != nil {
		return nil, err
	}
	noColor := viper.GetBool("no_color")
	return output.NewRenderer(os.Stdout, format, noColor), nil
}

// newLedger returns a recording ledger when --show-work is set, nil
// otherwise. A nil ledger is valid everywhere and records nothing.
func newLedger(cmd *cobra.Command) *verbose.Ledger {
	if on, _ := cmd.Flags().GetBool("show-work"); on {
		return verbose.New()
	}
	return nil
}

// steps extracts ledger entries for a report; nil-safe.
func steps(led *verbose.Ledger) []verbose.Step {
	if led == nil {
		return nil
	}
	return led.Entries()
}

// keyFor lowercases a display name into a JSON object key.
func keyFor(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// resolveTarget turns a target name into a position provider. Sun, Moon,
// and planet names are built in; anything else is a catalog lookup.
func resolveTarget(name string) (astro.PositionFunc, string, error) {
	switch strings.ToLower(name) {
	case "sun":
		return astro.SunProvider(), "Sun", nil
	case "moon":
		return astro.MoonProvider(), "Moon", nil
	}
	if p, err := astro.ParsePlanet(name); err == nil {
		return p.Provider(), p.String(), nil
	}
	store, err := openCatalog()
	if err != nil {
		return nil, "", err
	}
	defer store.Close()
	obj, err := store.Lookup(name)
	if err != nil {
		return nil, "", err
	}
	return obj.Provider(), obj.Name, nil
}
