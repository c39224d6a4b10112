package flags

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configPath  string
	resetConfig bool
)

// AddConfigPathFlag lets every command read its settings from another
// directory. The value reaches the settings package through viper.
func AddConfigPathFlag(cmd *cobra.Command) error {
	cmd.PersistentFlags().StringVar(&configPath, "config-path", "", "Path to the directory holding settings.json")
	return viper.BindPFlag("config-path", cmd.PersistentFlags().Lookup("config-path"))
}

func AddResetConfigFlag(cmd *cobra.Command) error {
	cmd.PersistentFlags().BoolVar(&resetConfig, "reset-config", false, "")
	if err := cmd.PersistentFlags().MarkHidden("reset-config"); err != nil {
		return err
	}
	return nil
}

func ResetConfig() bool {
	return resetConfig
}
