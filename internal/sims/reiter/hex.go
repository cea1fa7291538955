package reiter

// Six hexagonal directions approximated on the square lattice
// (0°, 60°, 120°, 180°, 240°, 300°). The offsets are independent of grid
// position and the set is closed under negation, so adjacency is symmetric.
var (
	hexDX = [6]int{1, 1, 0, -1, -1, 0}
	hexDY = [6]int{0, -1, -1, 0, 1, 1}
)

// Neighbors returns the six hex neighbor candidates of (x, y). Candidates
// may fall outside the lattice; callers bounds-check and skip those.
func Neighbors(x, y int) [6][2]int {
	var out [6][2]int
	for d := 0; d < 6; d++ {
		out[d] = [2]int{x + hexDX[d], y + hexDY[d]}
	}
	return out
}
