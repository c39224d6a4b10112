package flags

import (
	"github.com/spf13/cobra"
)

var playerFlag string

func AddPlayer(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&playerFlag, "player", "p", "", "Name recorded with your scores")
}

func Player() string {
	return playerFlag
}
