package redesign

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidWindow is returned when an ORI scan window is non-positive or
// is not shorter than the sequence being scanned.
var ErrInvalidWindow = errors.New("invalid ORI window")

// DetectORI returns the window of the sequence with the lowest GC fraction,
// as a half-open region. Plasmid origins of replication are frequently
// AT-rich, so the most AT-rich (lowest GC) window is a pragmatic stand-in
// for the ORI. This is a heuristic, not a biological guarantee.
//
// Matching is case-insensitive. Ties go to the lowest offset: a later
// window with an equal GC fraction never replaces the recorded minimum.
func DetectORI(seq string, window int) (Region, error) {
	if window < 1 {
		return Region{}, fmt.Errorf("%w: %dbp", ErrInvalidWindow, window)
	}
	if len(seq) <= window {
		return Region{}, fmt.Errorf(
			"%w: %dbp window is not shorter than the %dbp sequence",
			ErrInvalidWindow, window, len(seq),
		)
	}

	seq = strings.ToUpper(seq)
	minGC := 1.0
	oriStart := 0

	// window offsets 0 through len(seq)-window-1
	for i := 0; i < len(seq)-window; i++ {
		fragment := seq[i : i+window]

		if gc := gcFraction(fragment); gc < minGC {
			minGC = gc
			oriStart = i
		}
	}

	return Region{Start: oriStart, End: oriStart + window}, nil
}

// gcFraction returns the proportion of G and C symbols in the fragment.
// Symbols other than G and C, ambiguous bases included, count as AT-like.
func gcFraction(fragment string) float64 {
	gc := 0
	for i := 0; i < len(fragment); i++ {
		if fragment[i] == 'G' || fragment[i] == 'C' {
			gc++
		}
	}

	return float64(gc) / float64(len(fragment))
}
