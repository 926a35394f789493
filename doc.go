// Package logit provides a binary logistic-regression classifier for Go,
// built on gonum matrices.
//
// The model consumes bias-augmented feature matrices (a leading constant-1
// column) and labels encoded as +1/-1, trains by full-batch gradient
// descent, and persists its weights as a flat float32 binary file.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/koyama-ml/logit/logistic"
//	    "github.com/koyama-ml/logit/preprocessing"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    features := mat.NewDense(2, 2, []float64{
//	        1, 1,
//	        -1, -1,
//	    })
//	    X, err := preprocessing.AddBias(features)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    y := mat.NewVecDense(2, []float64{1, -1})
//
//	    model, err := logistic.New(2)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if err := model.Fit(X, y, 0.5, 1000); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    labels, err := model.Classify(X)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println("Labels:", labels)
//	}
//
// # Packages
//
//   - logistic: the LogisticModel classifier
//   - metrics: classification metrics (accuracy, zero-one loss)
//   - preprocessing: bias-column augmentation
//   - core/model: fitted-state tracking and the float32 weight codec
//   - core/parallel: parallel processing utilities
//   - pkg/errors: structured error types
//   - pkg/log: structured logging setup
package logit
