package redesign

import "fmt"

// Region is a half-open interval [Start, End) over sequence coordinates.
type Region struct {
	Start int
	End   int
}

// overlaps returns whether the occurrence [start, end) overlaps the region.
func (r Region) overlaps(start, end int) bool {
	return start < r.End && end > r.Start
}

// String returns the region as "start-end".
func (r Region) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}
