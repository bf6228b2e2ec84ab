package matrix

// SetRoute overwrites R[y][x] so tests can build malformed route matrices.
func SetRoute(r *Routes, y, x, k int) { r.data[y*r.n+x] = k }
