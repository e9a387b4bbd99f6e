// Package grid maps ball numbers onto the 6x10 ticket layout used by the
// spatial filters.
package grid

const (
	Rows    = 6
	Columns = 10
	// MaxNumber is the highest ball on the ticket.
	MaxNumber = Rows * Columns
)

// Position is the location of a ball on the ticket.
type Position struct {
	Row      int
	Column   int
	Quadrant int
}

// Row returns the ticket row (1-6) of n. n must be in [1,60].
func Row(n int) int {
	return (n-1)/Columns + 1
}

// Column returns the ticket column (1-10) of n. n must be in [1,60].
func Column(n int) int {
	return (n-1)%Columns + 1
}

// Quadrant splits the ticket at row 3 and column 5:
//
//	1 | 2
//	--+--
//	3 | 4
func Quadrant(n int) int {
	q := 1
	if Column(n) > Columns/2 {
		q++
	}
	if Row(n) > Rows/2 {
		q += 2
	}
	return q
}

// Locate returns row, column and quadrant of n in one call.
func Locate(n int) Position {
	return Position{Row: Row(n), Column: Column(n), Quadrant: Quadrant(n)}
}

// Valid reports whether n is a ball on the ticket.
func Valid(n int) bool {
	return n >= 1 && n <= MaxNumber
}
