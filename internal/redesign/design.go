package redesign

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrMalformedDesignLine is returned when a design file line does not
// split into exactly one comma separated key, value pair.
var ErrMalformedDesignLine = errors.New("malformed design line")

// DesignSpec is a parsed plasmid design file. The design file is the
// final specification of what features the plasmid should contain.
type DesignSpec struct {
	// AllowedSites are the names of restriction sites that may remain in
	// the plasmid. Every other known site is removed
	AllowedSites map[string]bool

	// RequiredMarkers are the names of selection markers the design calls
	// for. They are reported but do not change the edit
	RequiredMarkers map[string]bool

	// RequiredORI is the declared ORI type. Declarative only: detection
	// does not consult it
	RequiredORI string
}

// readDesign reads and parses the design file at path.
func readDesign(path string) (*DesignSpec, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read design file: %s", err)
	}

	return parseDesign(string(dat))
}

// parseDesign parses the line-oriented design format. Each non-blank line
// is one comma separated "key, value" pair. Keys ending in _site allow a
// restriction site, keys ending in _gene require a marker, and keys
// beginning with ori declare the ORI type.
func parseDesign(contents string) (*DesignSpec, error) {
	spec := &DesignSpec{
		AllowedSites:    make(map[string]bool),
		RequiredMarkers: make(map[string]bool),
	}

	for i, line := range strings.Split(contents, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedDesignLine, i+1, strings.TrimSpace(line))
		}

		key := strings.TrimSpace(fields[0])
		value := strings.TrimSpace(fields[1])

		switch {
		case strings.HasSuffix(key, "_site"):
			spec.AllowedSites[value] = true
		case strings.HasSuffix(key, "_gene"):
			spec.RequiredMarkers[value] = true
		case strings.HasPrefix(key, "ori"):
			spec.RequiredORI = value
		}
	}

	return spec, nil
}
