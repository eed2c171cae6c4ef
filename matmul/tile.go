// SPDX-License-Identifier: MIT

package matmul

// Tile is one tile triple of the blocked iteration space: output rows
// [I0,I1), output columns [J0,J1) and reduction indices [K0,K1).
// Upper bounds are clamped to the true extents, so edge tiles may be smaller.
type Tile struct {
	I0, I1 int
	J0, J1 int
	K0, K1 int
}

// forEachTile visits tile triples in the fixed order row-tile → col-tile →
// k-tile. Sequential kernels rely on this order: k-tiles of one output tile
// are visited in ascending k.
func forEachTile(rows, cols, inner, tile int, fn func(Tile)) {
	var bi, bj, bk int
	for bi = 0; bi < rows; bi += tile {
		for bj = 0; bj < cols; bj += tile {
			for bk = 0; bk < inner; bk += tile {
				fn(Tile{
					I0: bi, I1: min(bi+tile, rows),
					J0: bj, J1: min(bj+tile, cols),
					K0: bk, K1: min(bk+tile, inner),
				})
			}
		}
	}
}

// belowDiagonal reports whether every (i,k) of the tile has k < i, i.e. the
// lhs sub-block of an upper-triangular operand is provably zero.
func (t Tile) belowDiagonal() bool { return t.K1 <= t.I0 }
