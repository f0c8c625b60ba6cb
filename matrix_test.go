package tweetprep

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func testMatrix() *FeatureMatrix {
	return &FeatureMatrix{
		Columns: []string{"apple", "kiwi", "mango"},
		Index:   []int{5, 9},
		rows: []sparseRow{
			{cols: []int{0, 2}, vals: []float64{1, 3}},
			{cols: []int{1}, vals: []float64{2}},
		},
	}
}

func TestFeatureMatrixAt(t *testing.T) {
	m := testMatrix()
	want := mat.NewDense(2, 3, []float64{
		1, 0, 3,
		0, 2, 0,
	})

	if !mat.Equal(m, want) {
		t.Errorf("matrix = %v, want %v", mat.Formatted(m), mat.Formatted(want))
	}
	if !mat.Equal(m.Dense(), want) {
		t.Errorf("Dense() = %v, want %v", mat.Formatted(m.Dense()), mat.Formatted(want))
	}
	if !mat.Equal(m.T(), want.T()) {
		t.Error("T() does not match the transpose")
	}
	if got := m.NNZ(); got != 3 {
		t.Errorf("NNZ() = %d, want 3", got)
	}
}

func TestFeatureMatrixAtPanicsOutOfRange(t *testing.T) {
	defer func() {
		if r := recover(); r != mat.ErrIndexOutOfRange {
			t.Errorf("recovered %v, want %v", r, mat.ErrIndexOutOfRange)
		}
	}()
	testMatrix().At(0, 3)
}

func TestFeatureMatrixLookup(t *testing.T) {
	m := testMatrix()

	if j, ok := m.ColumnIndex("kiwi"); !ok || j != 1 {
		t.Errorf("ColumnIndex(kiwi) = %d, %v", j, ok)
	}
	if _, ok := m.ColumnIndex("banana"); ok {
		t.Error("ColumnIndex(banana) should not be found")
	}

	tests := []struct {
		idx  int
		term string
		want float64
	}{
		{5, "mango", 3},
		{9, "kiwi", 2},
		{9, "apple", 0},
		{6, "apple", 0},
		{5, "banana", 0},
	}
	for _, tt := range tests {
		if got := m.Value(tt.idx, tt.term); got != tt.want {
			t.Errorf("Value(%d, %q) = %v, want %v", tt.idx, tt.term, got, tt.want)
		}
	}
}

func TestFeatureMatrixEmptyDense(t *testing.T) {
	m := &FeatureMatrix{}
	d := m.Dense()
	if !d.IsEmpty() {
		t.Errorf("Dense() of an empty matrix should be empty")
	}
}
