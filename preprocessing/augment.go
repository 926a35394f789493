// Package preprocessing provides data preparation utilities.
package preprocessing

import (
	"github.com/koyama-ml/logit/core/parallel"
	"github.com/koyama-ml/logit/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Threshold below which row copying runs sequentially.
const parallelThreshold = 1000

// AddBias returns a copy of X with a leading constant-1 column, aligning
// each row with a weight vector whose first entry is the bias term.
func AddBias(X mat.Matrix) (*mat.Dense, error) {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "AddBias")
	}

	augmented := mat.NewDense(r, c+1, nil)

	parallel.ParallelizeWithThreshold(r, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			augmented.Set(i, 0, 1.0)
			for j := 0; j < c; j++ {
				augmented.Set(i, j+1, X.At(i, j))
			}
		}
	})

	return augmented, nil
}
