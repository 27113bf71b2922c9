package redesign

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// Plasmid is a single named sequence from a FASTA file.
type Plasmid struct {
	// ID from the FASTA header. In ">pUC19 example" it's "pUC19"
	ID string

	// Description is the rest of the FASTA header after the ID
	Description string

	// Seq is the uppercased sequence
	Seq string
}

// read a FASTA file (by its path on local FS) to a Plasmid. Only the
// first record is read: this is a single-plasmid tool.
func read(path string) (p *Plasmid, err error) {
	if !filepath.IsAbs(path) {
		path, err = filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create path to input file: %s", err)
		}
	}

	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %s", err)
	}

	return readFasta(path, string(dat))
}

// readFasta parses the first record of a FASTA file to a Plasmid.
//
// Symbols other than A, C, G and T are kept as-is. They never count
// toward GC content and never match a recognition site, but removing
// them would shift every coordinate downstream.
func readFasta(path, contents string) (*Plasmid, error) {
	lines := strings.Split(contents, "\n")

	headerIndex := -1
	for i, line := range lines {
		if strings.HasPrefix(line, ">") {
			headerIndex = i
			break
		}
	}
	if headerIndex < 0 {
		return nil, fmt.Errorf("failed to parse %s: no FASTA header", path)
	}

	header := strings.Fields(lines[headerIndex][1:])
	if len(header) == 0 {
		return nil, fmt.Errorf("failed to parse %s: empty FASTA header", path)
	}
	id := header[0]
	description := strings.Join(header[1:], " ")

	// accumulate the sequence up to the next header (if any)
	var seqBuilder strings.Builder
	for _, line := range lines[headerIndex+1:] {
		if strings.HasPrefix(line, ">") {
			break
		}
		seqBuilder.WriteString(strings.Join(strings.Fields(line), ""))
	}
	seq := strings.ToUpper(seqBuilder.String())

	if seq == "" {
		return nil, fmt.Errorf("failed to parse a sequence from %s", path)
	}

	return &Plasmid{
		ID:          id,
		Description: description,
		Seq:         seq,
	}, nil
}
