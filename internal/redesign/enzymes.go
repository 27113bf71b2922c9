package redesign

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// restrictionSites maps a restriction enzyme's name to its recognition
// sequence. These are the common polylinker enzymes.
var restrictionSites = map[string]string{
	"EcoRI":   "GAATTC",
	"BamHI":   "GGATCC",
	"HindIII": "AAGCTT",
	"PstI":    "CTGCAG",
	"KpnI":    "GGTACC",
	"SacI":    "GAGCTC",
	"SalI":    "GTCGAC",
	"XbaI":    "TCTAGA",
	"NotI":    "GCGGCCGC",
	"SmaI":    "CCCGGG",
}

// EnzymeDB is a struct for accessing the restriction enzymes known to redesign.
type EnzymeDB struct {
	// enzymes is a map between an enzyme's name and its recognition sequence
	enzymes map[string]string
}

// NewEnzymeDB returns a new copy of the enzymes db.
func NewEnzymeDB() *EnzymeDB {
	enzymes := make(map[string]string, len(restrictionSites))
	for name, seq := range restrictionSites {
		enzymes[name] = seq
	}

	return &EnzymeDB{enzymes: enzymes}
}

// ReadCmd writes enzymes and their recognition sequences to stdout.
// Without an argument, every enzyme is listed. With an argument, only the
// enzymes whose names contain it are listed.
func (f *EnzymeDB) ReadCmd(cmd *cobra.Command, args []string) {
	// from https://golang.org/pkg/text/tabwriter/
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.TabIndent)

	enzymeNames := make([]string, 0, len(f.enzymes))
	for name := range f.enzymes {
		enzymeNames = append(enzymeNames, name)
	}
	sort.Strings(enzymeNames)

	if len(args) < 1 {
		for _, name := range enzymeNames {
			fmt.Fprintf(w, "%s\t%s\n", name, f.enzymes[name])
		}
		w.Flush()
		return
	}

	query := strings.ToUpper(args[0])
	matched := false
	for _, name := range enzymeNames {
		if strings.Contains(strings.ToUpper(name), query) {
			fmt.Fprintf(w, "%s\t%s\n", name, f.enzymes[name])
			matched = true
		}
	}
	w.Flush()

	if !matched {
		stderr.Fatalf("failed to find an enzyme with a name like %s", args[0])
	}
}
