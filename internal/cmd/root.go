package cmd

import (
	_ "embed"
	"os"

	"github.com/chiselstrike/termtris/internal/flags"
	"github.com/chiselstrike/termtris/internal/settings"
	"github.com/spf13/cobra"
)

//go:embed version.txt
var version string

var rootCmd = &cobra.Command{
	Use:     "termtris",
	Version: version,
	Long:    "termtris, falling blocks in your terminal",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flags.ResetConfig() {
			return settings.ResetSettings()
		}
		return nil
	},
}

func init() {
	cobra.CheckErr(flags.AddConfigPathFlag(rootCmd))
	cobra.CheckErr(flags.AddResetConfigFlag(rootCmd))
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
