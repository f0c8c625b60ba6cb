package tweetprep

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// A FeatureMatrix is a sparse document-term matrix. Columns holds the
// vocabulary in lexicographic order and Index holds, for each row, the index
// of the label it is aligned with.
//
// FeatureMatrix implements mat.Matrix.
type FeatureMatrix struct {
	Columns []string
	Index   []int

	rows []sparseRow
}

// sparseRow holds the non-zero entries of one row, ordered by column.
type sparseRow struct {
	cols []int
	vals []float64
}

var _ mat.Matrix = (*FeatureMatrix)(nil)

// Dims returns the number of rows and columns.
func (m *FeatureMatrix) Dims() (r, c int) {
	return len(m.rows), len(m.Columns)
}

// At returns the weight of column j in row i.
func (m *FeatureMatrix) At(i, j int) float64 {
	if i < 0 || i >= len(m.rows) || j < 0 || j >= len(m.Columns) {
		panic(mat.ErrIndexOutOfRange)
	}
	row := m.rows[i]
	k := sort.SearchInts(row.cols, j)
	if k < len(row.cols) && row.cols[k] == j {
		return row.vals[k]
	}
	return 0
}

// T returns the transpose of the matrix.
func (m *FeatureMatrix) T() mat.Matrix {
	return mat.Transpose{Matrix: m}
}

// Row returns the non-zero entries of row i as parallel column and value
// slices. The slices must not be modified.
func (m *FeatureMatrix) Row(i int) (cols []int, vals []float64) {
	return m.rows[i].cols, m.rows[i].vals
}

// NNZ returns the number of stored non-zero entries.
func (m *FeatureMatrix) NNZ() int {
	n := 0
	for _, r := range m.rows {
		n += len(r.cols)
	}
	return n
}

// ColumnIndex returns the column of term.
func (m *FeatureMatrix) ColumnIndex(term string) (int, bool) {
	j := sort.SearchStrings(m.Columns, term)
	if j < len(m.Columns) && m.Columns[j] == term {
		return j, true
	}
	return -1, false
}

// Value returns the weight of term in the row aligned with label index idx.
func (m *FeatureMatrix) Value(idx int, term string) float64 {
	j, ok := m.ColumnIndex(term)
	if !ok {
		return 0
	}
	for i, rowIdx := range m.Index {
		if rowIdx == idx {
			return m.At(i, j)
		}
	}
	return 0
}

// Dense returns a dense copy of the matrix.
func (m *FeatureMatrix) Dense() *mat.Dense {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return &mat.Dense{}
	}
	d := mat.NewDense(r, c, nil)
	for i, row := range m.rows {
		for k, j := range row.cols {
			d.Set(i, j, row.vals[k])
		}
	}
	return d
}
