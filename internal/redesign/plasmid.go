package redesign

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/DivyKalyani05/BBL-434-Assignment1/config"
	"github.com/spf13/cobra"
)

// Flags contains parsed cobra flags like "in", "design", "out" that are
// used by the redesign commands.
type Flags struct {
	// the path to the input FASTA file
	in string

	// the path to the design specification file
	design string

	// the path to write the redesigned plasmid to
	out string

	// the ORI scan window length in bp
	window int
}

// NewFlags makes a new flags object manually. for testing.
func NewFlags(in, design, out string, window int) *Flags {
	return &Flags{
		in:     in,
		design: design,
		out:    out,
		window: window,
	}
}

// inputParser contains methods for parsing flags from the input &cobra.Command.
type inputParser struct{}

// parseCmdFlags gathers the in path, design path, etc from a cobra cmd object.
func parseCmdFlags(cmd *cobra.Command, needsDesign, needsOut bool) *Flags {
	var err error
	fs := &Flags{} // parsed flags
	p := inputParser{}
	c := config.New()

	if fs.in, err = cmd.Flags().GetString("in"); fs.in == "" || err != nil {
		// check whether an input file can be found in the cwd
		if fs.in, err = p.guessInput(); err != nil {
			cmd.Help()
			stderr.Fatal(err)
		}
	}

	if needsDesign {
		if fs.design, err = cmd.Flags().GetString("design"); fs.design == "" || err != nil {
			cmd.Help()
			stderr.Fatal("no design file passed")
		}
	}

	if needsOut {
		if fs.out, err = cmd.Flags().GetString("out"); fs.out == "" || err != nil {
			fs.out = p.guessOutput(fs.in) // guess at an output name
		}
	}

	fs.window = c.ORI.Window
	if cmd.Flags().Changed("window") {
		if fs.window, err = cmd.Flags().GetInt("window"); err != nil {
			cmd.Help()
			stderr.Fatalf("failed to parse window flag: %v", err)
		}
	}

	return fs
}

// guessInput returns the first fasta file in the current directory. Is used
// if the user hasn't specified an input file.
func (p *inputParser) guessInput() (in string, err error) {
	dir, _ := filepath.Abs(".")
	files, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}

		ext := strings.ToUpper(filepath.Ext(file.Name()))
		if ext == ".FA" || ext == ".FASTA" {
			return file.Name(), nil
		}
	}

	return "", fmt.Errorf("failed: no input argument set and no fasta file found in %s", dir)
}

// guessOutput gets an output path from an input path (if no output path is
// specified). It uses the same name as the input path to create an output.
func (p *inputParser) guessOutput(in string) (out string) {
	ext := filepath.Ext(in)
	noExt := in[0 : len(in)-len(ext)]
	return noExt + ".redesigned.fa"
}

// PlasmidCmd runs the full redesign pipeline against a plasmid: detect
// the ORI, remove the disallowed restriction sites, write the result.
func PlasmidCmd(cmd *cobra.Command, args []string) {
	fs := parseCmdFlags(cmd, true, true)

	if err := Redesign(fs); err != nil {
		stderr.Fatal(err)
	}
}

// Redesign edits the plasmid in the input FASTA to match the design file
// and writes the redesigned plasmid to the output path.
func Redesign(fs *Flags) error {
	p, err := read(fs.in)
	if err != nil {
		return err
	}

	design, err := readDesign(fs.design)
	if err != nil {
		return err
	}

	db := NewEnzymeDB()
	for _, name := range sortedNames(design.AllowedSites) {
		if _, known := db.enzymes[name]; !known {
			stderr.Printf("warning: allowed site %s is not a known enzyme, ignoring", name)
		}
	}

	if markers := sortedNames(design.RequiredMarkers); len(markers) > 0 {
		stderr.Printf("required markers: %s", strings.Join(markers, ","))
	}

	ori, err := DetectORI(p.Seq, fs.window)
	if err != nil {
		return err
	}

	edited := RemoveSites(p.Seq, db.enzymes, design.AllowedSites, []Region{ori})

	return write(fs.out, &Plasmid{
		ID:          p.ID,
		Description: annotation(ori, design.AllowedSites),
		Seq:         edited,
	})
}

// ORICmd detects and prints the ORI of the input sequence.
func ORICmd(cmd *cobra.Command, args []string) {
	fs := parseCmdFlags(cmd, false, false)

	p, err := read(fs.in)
	if err != nil {
		stderr.Fatal(err)
	}

	ori, err := DetectORI(p.Seq, fs.window)
	if err != nil {
		stderr.Fatal(err)
	}

	fmt.Printf("%s\t%s\tGC=%.3f\n", p.ID, ori, gcFraction(p.Seq[ori.Start:ori.End]))
}

// sortedNames returns a set's names, sorted.
func sortedNames(set map[string]bool) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
