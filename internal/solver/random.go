package solver

// Random returns one of empty, uniformly.
func (that *Solver) Random(empty []int) int {
	return empty[that.intn(len(empty))]
}
