package matrixops

// RotateScale rotates a square matrix 90° clockwise (reverse row order, then
// transpose) and multiplies each cell (i, j) of the rotated matrix by i+j.
// The indices are post-rotation indices.
func RotateScale(matrix [][]int) [][]int {
	n := len(matrix)
	rotated := make([][]int, n)
	for i := range rotated {
		rotated[i] = make([]int, n)
		for j := 0; j < n; j++ {
			rotated[i][j] = matrix[n-1-j][i]
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			rotated[i][j] *= i + j
		}
	}
	return rotated
}
