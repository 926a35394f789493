package preprocessing

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestAddBias(t *testing.T) {
	X := mat.NewDense(2, 2, []float64{
		3, 4,
		5, 6,
	})

	augmented, err := AddBias(X)
	if err != nil {
		t.Fatalf("Failed to add bias column: %v", err)
	}

	r, c := augmented.Dims()
	if r != 2 || c != 3 {
		t.Fatalf("Augmented shape = (%d, %d), want (2, 3)", r, c)
	}

	want := [][]float64{
		{1, 3, 4},
		{1, 5, 6},
	}
	for i := range want {
		for j := range want[i] {
			if augmented.At(i, j) != want[i][j] {
				t.Errorf("Augmented(%d, %d) = %v, want %v", i, j, augmented.At(i, j), want[i][j])
			}
		}
	}
}

func TestAddBias_LargeInput(t *testing.T) {
	// Above the parallel threshold the result must still be row-correct.
	const rows = 5000
	data := make([]float64, rows)
	for i := range data {
		data[i] = float64(i)
	}
	X := mat.NewDense(rows, 1, data)

	augmented, err := AddBias(X)
	if err != nil {
		t.Fatalf("Failed to add bias column: %v", err)
	}

	for i := 0; i < rows; i++ {
		if augmented.At(i, 0) != 1 {
			t.Fatalf("Row %d bias = %v, want 1", i, augmented.At(i, 0))
		}
		if augmented.At(i, 1) != float64(i) {
			t.Fatalf("Row %d feature = %v, want %v", i, augmented.At(i, 1), float64(i))
		}
	}
}

// emptyMatrix reports zero dimensions; gonum cannot construct a zero-row
// Dense directly.
type emptyMatrix struct{}

func (emptyMatrix) Dims() (int, int)    { return 0, 0 }
func (emptyMatrix) At(_, _ int) float64 { return 0 }
func (m emptyMatrix) T() mat.Matrix     { return m }

func TestAddBias_EmptyInput(t *testing.T) {
	if _, err := AddBias(emptyMatrix{}); err == nil {
		t.Error("Empty input should fail")
	}
}
