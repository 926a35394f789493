// Package metrics provides evaluation metrics for binary classifiers.
package metrics

import (
	"github.com/koyama-ml/logit/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// AccuracyScore computes the fraction of predictions equal to the true
// labels. Labels are compared exactly, so it expects the ±1 encoding used
// throughout this library.
func AccuracyScore(yTrue, yPred mat.Vector) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("AccuracyScore", "empty vector")
	}

	if yPred.Len() != n {
		return 0, errors.NewDimensionError("AccuracyScore", n, yPred.Len(), 0)
	}

	correct := 0
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == yPred.AtVec(i) {
			correct++
		}
	}

	return float64(correct) / float64(n), nil
}

// ZeroOneLoss computes the fraction of misclassified samples, the
// complement of AccuracyScore.
func ZeroOneLoss(yTrue, yPred mat.Vector) (float64, error) {
	accuracy, err := AccuracyScore(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return 1 - accuracy, nil
}
