package cmd

import (
	"github.com/DivyKalyani05/BBL-434-Assignment1/internal/redesign"
	"github.com/spf13/cobra"
)

// oriCmd is for detecting and printing a plasmid's origin of replication.
var oriCmd = &cobra.Command{
	Use:                        "ori",
	Short:                      "Detect a plasmid's origin of replication",
	Run:                        redesign.ORICmd,
	SuggestionsMinimumDistance: 2,
	Long: `Detect the origin of replication of the sequence in the input FASTA file.

The ORI is approximated as the most AT-rich (lowest GC-content) window of
the sequence. Writes the sequence name, the half-open ORI interval, and
the window's GC fraction to stdout`,
}

// set flags
func init() {
	oriCmd.Flags().StringP("in", "i", "", "input FASTA file name")
	oriCmd.Flags().IntP("window", "w", 100, "ORI detection window length (bp)")

	rootCmd.AddCommand(oriCmd)
}
