package redesign

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// fastaLineLength is the column at which output sequences wrap.
const fastaLineLength = 60

// write the plasmid to a FASTA file at the path requested.
func write(path string, p *Plasmid) error {
	var contents strings.Builder

	if p.Description != "" {
		fmt.Fprintf(&contents, ">%s %s\n", p.ID, p.Description)
	} else {
		fmt.Fprintf(&contents, ">%s\n", p.ID)
	}

	for i := 0; i < len(p.Seq); i += fastaLineLength {
		end := i + fastaLineLength
		if end > len(p.Seq) {
			end = len(p.Seq)
		}
		contents.WriteString(p.Seq[i:end])
		contents.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(contents.String()), 0666); err != nil {
		return fmt.Errorf("failed to write plasmid to %s: %s", path, err)
	}

	return nil
}

// annotation builds the output record's description: the detected ORI
// interval and the sorted, comma-joined allowed site names.
func annotation(ori Region, allowed map[string]bool) string {
	names := make([]string, 0, len(allowed))
	for name := range allowed {
		names = append(names, name)
	}
	sort.Strings(names)

	return fmt.Sprintf(
		"Modified plasmid | ORI:%d-%d | Allowed sites: %s",
		ori.Start, ori.End, strings.Join(names, ","),
	)
}
