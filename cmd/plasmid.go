package cmd

import (
	"github.com/DivyKalyani05/BBL-434-Assignment1/internal/redesign"
	"github.com/spf13/cobra"
)

// plasmidCmd is for redesigning a plasmid against a design specification file.
var plasmidCmd = &cobra.Command{
	Use:                        "plasmid",
	Short:                      "Redesign a plasmid to match a design file",
	Run:                        redesign.PlasmidCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Redesign the plasmid in the input FASTA file to match the design file.

The most AT-rich window of the sequence is treated as the origin of
replication and protected from editing. Every known restriction site not
allowed by the design file is removed from the rest of the sequence. The
redesigned plasmid is written as FASTA with the detected ORI interval and
the allowed sites in its description line`,
	Aliases: []string{"build"},
}

// set flags
func init() {
	plasmidCmd.Flags().StringP("in", "i", "", "input FASTA file name")
	plasmidCmd.Flags().StringP("design", "d", "", "design specification file name")
	plasmidCmd.Flags().StringP("out", "o", "", "output FASTA file name")
	plasmidCmd.Flags().IntP("window", "w", 100, "ORI detection window length (bp)")

	rootCmd.AddCommand(plasmidCmd)
}
