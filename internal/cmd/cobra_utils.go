package cmd

import (
	"github.com/chiselstrike/termtris/internal/settings"
	"github.com/spf13/cobra"
)

func noFilesArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{}, cobra.ShellCompDirectiveNoFileComp
}

// configKeyArg completes the first argument with the names of the settings
func configKeyArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return []string{}, cobra.ShellCompDirectiveNoFileComp
	}
	return settings.ConfigKeys(), cobra.ShellCompDirectiveNoFileComp
}
