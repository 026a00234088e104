package engine

import "github.com/rocketscienceinc/notakto/internal/entity"

const NoRotations = 8

// Rotations returns the images of a grid under the 8 symmetries of the square.
// Self-symmetric grids yield duplicates.
func Rotations(grid entity.Grid) [NoRotations]entity.Grid {
	const last = entity.GridSize - 1

	var images [NoRotations]entity.Grid
	for i := range entity.GridSize {
		for j := range entity.GridSize {
			images[0][i][j] = grid[i][j]
			images[1][i][j] = grid[i][last-j]

			images[2][i][j] = grid[j][i]
			images[3][i][j] = grid[j][last-i]

			images[4][i][j] = grid[last-i][j]
			images[5][i][j] = grid[last-i][last-j]

			images[6][i][j] = grid[last-j][i]
			images[7][i][j] = grid[last-j][last-i]
		}
	}
	return images
}

// equivalent reports whether grid is one of the images of pattern.
func equivalent(grid, pattern entity.Grid) bool {
	for _, image := range Rotations(pattern) {
		if image == grid {
			return true
		}
	}
	return false
}
