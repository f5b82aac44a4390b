package raster

// shellSort orders cells lexicographically by (Y, X) in place. The
// common case, an outline decomposed top-to-bottom, arrives already
// nearly ordered by Y, which is shell sort's best case; the fixed gap
// table keeps it small and costs no pool space.
func shellSort(cells []Cell) {
	gaps := []int{9, 5, 3, 1}
	n := len(cells)
	for _, gap := range gaps {
		for i := gap; i < n; i++ {
			c := cells[i]
			j := i
			for j >= gap && cellLess(c, cells[j-gap]) {
				cells[j] = cells[j-gap]
				j -= gap
			}
			cells[j] = c
		}
	}
}

func cellLess(a, b Cell) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}
