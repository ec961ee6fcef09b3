// Package cli implements the starward command tree.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/litescript/starward/internal/astro"
	"github.com/litescript/starward/internal/logging"
)

// Exit codes. Malformed input and out-of-range quantities are the caller's
// problem; a refinement that fails to converge is ours.
const (
	ExitOK       = 0
	ExitUsage    = 1
	ExitFormat   = 2
	ExitDomain   = 3
	ExitInternal = 4
)

var logger = logging.New(logging.LevelInfo)

var rootCmd = &cobra.Command{
	Use:   "starward",
	Short: "Positional astronomy from the command line",
	Long: "Starward computes positions of the Sun, Moon, and planets, converts\n" +
		"between celestial frames, and finds rise, set, transit, and twilight\n" +
		"times for any observer.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command tree and maps errors to exit codes.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "starward: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var fe *astro.FormatError
	var de *astro.DomainError
	switch {
	case errors.As(err, &fe):
		return ExitFormat
	case errors.As(err, &de):
		return ExitDomain
	case errors.Is(err, astro.ErrNonConvergence):
		return ExitInternal
	default:
		return ExitUsage
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .starward.toml)")
	rootCmd.PersistentFlags().StringP("format", "f", "plain", "output format: plain, json, latex")
	rootCmd.PersistentFlags().BoolP("show-work", "w", false, "show the computation steps behind the result")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable styled output")
	rootCmd.PersistentFlags().StringP("observer", "o", "", "observer profile name (default: the default profile)")
	rootCmd.PersistentFlags().Float64("lat", noCoordinate, "observer latitude in degrees (overrides profile)")
	rootCmd.PersistentFlags().Float64("lon", noCoordinate, "observer longitude in degrees, east positive")
	rootCmd.PersistentFlags().Float64("elev", 0, "observer elevation in meters")
	rootCmd.PersistentFlags().StringP("time", "t", "", "instant (RFC 3339, '2006-01-02 15:04:05', or '2006-01-02'; default now)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn, error")

	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("observer", rootCmd.PersistentFlags().Lookup("observer"))
	_ = viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".starward")
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("STARWARD")
	viper.AutomaticEnv()

	// Missing config file is fine; flags and defaults cover everything.
	_ = viper.ReadInConfig()

	logger.SetLevel(logging.ParseLevel(viper.GetString("log_level")))
}
