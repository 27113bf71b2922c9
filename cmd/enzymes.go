package cmd

import (
	"github.com/spf13/cobra"
)

// enzymesCmd is for listing out all the restriction enzymes the plasmid
// command knows how to remove. Useful for writing a design file
var enzymesCmd = &cobra.Command{
	Use:   "enzymes [name]",
	Short: "List the restriction enzymes that can be removed",
	Run:   enzymeDB.ReadCmd,
	Long: `Lists the known restriction enzymes by name along with their recognition sequence.

	<Name>: <Recognition sequence>

With an argument, only enzymes whose name contains it are listed`,
	Aliases: []string{"enzyme"},
}

// set flags
func init() {
	rootCmd.AddCommand(enzymesCmd)

	// No flags for input, just for listing the enzymes available. If an
	// allowed site in a design file has no effect, this shows which names
	// are recognized
}
