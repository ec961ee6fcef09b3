package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/litescript/starward/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the starward version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("starward %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
