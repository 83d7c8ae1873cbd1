package sparse

import "sort"

// Triplet is a coordinate-format (COO) assembly buffer. Entries may be
// appended in any order; duplicates at the same (row, col) position are
// summed when the buffer is frozen into a CSR.
type Triplet struct {
	rows, cols int
	entries    []entry
}

type entry struct {
	i, j int
	v    float64
}

// NewTriplet returns an empty assembly buffer for an r×c matrix.
// It returns ErrBadShape when either dimension is not positive.
func NewTriplet(r, c int) (*Triplet, error) {
	if r <= 0 || c <= 0 {
		return nil, ErrBadShape
	}

	return &Triplet{rows: r, cols: c}, nil
}

// Dims returns the matrix dimensions.
func (t *Triplet) Dims() (r, c int) { return t.rows, t.cols }

// Append records value v at position (i, j). Appending to an already
// occupied position accumulates rather than overwrites.
// It returns ErrOutOfRange for indices outside the matrix bounds.
func (t *Triplet) Append(i, j int, v float64) error {
	if i < 0 || i >= t.rows || j < 0 || j >= t.cols {
		return ErrOutOfRange
	}
	t.entries = append(t.entries, entry{i: i, j: j, v: v})

	return nil
}

// ToCSR freezes the buffer into a compressed-row matrix, summing duplicate
// positions. The buffer remains valid and can keep accumulating afterwards.
func (t *Triplet) ToCSR() *CSR {
	// Stable order: row-major with ascending columns. Duplicates end up
	// adjacent and collapse in one pass.
	es := make([]entry, len(t.entries))
	copy(es, t.entries)
	sort.SliceStable(es, func(a, b int) bool {
		if es[a].i != es[b].i {
			return es[a].i < es[b].i
		}

		return es[a].j < es[b].j
	})

	c := &CSR{
		rows:   t.rows,
		cols:   t.cols,
		RowPtr: make([]int, t.rows+1),
	}
	for k := 0; k < len(es); {
		i, j := es[k].i, es[k].j
		sum := 0.0
		for ; k < len(es) && es[k].i == i && es[k].j == j; k++ {
			sum += es[k].v
		}
		c.ColInd = append(c.ColInd, j)
		c.Data = append(c.Data, sum)
		c.RowPtr[i+1]++
	}
	for i := 0; i < t.rows; i++ {
		c.RowPtr[i+1] += c.RowPtr[i]
	}

	return c
}
