package flags

import (
	"github.com/spf13/cobra"
)

var seedFlag int64

// AddSeed adds the --seed flag. 0 leaves the choice to the settings file.
func AddSeed(cmd *cobra.Command, desc string) {
	cmd.Flags().Int64Var(&seedFlag, "seed", 0, desc)
}

func Seed() int64 {
	return seedFlag
}
