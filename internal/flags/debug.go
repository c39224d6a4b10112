package flags

import (
	"github.com/spf13/cobra"
)

var debugFlag bool

func AddDebugFlag(cmd *cobra.Command) {
	usage := "If set, writes every engine tick to the log file."
	cmd.Flags().BoolVar(&debugFlag, "debug", false, usage)
	cmd.Flags().MarkHidden("debug")
}

func Debug() bool {
	return debugFlag
}
