// Package logistic implements a binary logistic-regression classifier over
// bias-augmented feature matrices with labels in {+1, -1}.
package logistic

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/koyama-ml/logit/core/model"
	"github.com/koyama-ml/logit/core/parallel"
	"github.com/koyama-ml/logit/pkg/errors"
	"github.com/koyama-ml/logit/pkg/log"
	"gonum.org/v1/gonum/mat"
)

// WeightInit selects the weight-initialization policy used at construction.
type WeightInit int

const (
	// Zeros initializes every weight to 0.
	Zeros WeightInit = iota
	// Ones initializes every weight to 1.
	Ones
	// Uniform draws each weight independently from [0, 1).
	Uniform
	// Gaussian draws each weight from a normal distribution with mean 0
	// and standard deviation 0.1.
	Gaussian
)

// gaussianStdDev is the standard deviation used by the Gaussian policy.
const gaussianStdDev = 0.1

// String returns the policy name.
func (w WeightInit) String() string {
	switch w {
	case Zeros:
		return "zeros"
	case Ones:
		return "ones"
	case Uniform:
		return "uniform"
	case Gaussian:
		return "gaussian"
	default:
		return "unknown"
	}
}

// ParseWeightInit maps a policy name to its WeightInit value. Unrecognized
// names are a validation error rather than a silent fallthrough.
func ParseWeightInit(s string) (WeightInit, error) {
	switch s {
	case "zeros":
		return Zeros, nil
	case "ones":
		return Ones, nil
	case "uniform":
		return Uniform, nil
	case "gaussian":
		return Gaussian, nil
	default:
		return 0, errors.NewValidationError("w_init", "unknown weight initialization policy", s)
	}
}

// LogisticModel is a binary logistic-regression classifier.
//
// The model owns a single weight vector of length ndims+1 whose first entry
// is the bias term; feature matrices passed to it must carry a leading
// constant-1 column so their column count equals the weight length.
type LogisticModel struct {
	state *model.StateManager

	ndims       int
	wInit       WeightInit
	randomState int64

	// weights is [bias, w1, w2, ...], length ndims+1.
	weights *mat.VecDense

	rand *rand.Rand
}

// parallelThreshold is the row count above which per-sample loops run on
// multiple cores.
const parallelThreshold = 1000

// New creates a LogisticModel with ndims feature dimensions. The weight
// vector has length ndims+1 and is filled according to the configured
// initialization policy (Zeros by default).
func New(ndims int, opts ...Option) (*LogisticModel, error) {
	if ndims < 1 {
		return nil, errors.NewValidationError("ndims", "must be a positive integer", ndims)
	}

	m := &LogisticModel{
		state:       model.NewStateManager(),
		ndims:       ndims,
		wInit:       Zeros,
		randomState: -1,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.randomState >= 0 {
		m.rand = rand.New(rand.NewSource(m.randomState))
	} else {
		m.rand = rand.New(rand.NewSource(rand.Int63()))
	}

	if err := m.initializeWeights(); err != nil {
		return nil, err
	}

	return m, nil
}

// initializeWeights fills the weight vector per the configured policy.
func (m *LogisticModel) initializeWeights() error {
	n := m.ndims + 1
	data := make([]float64, n)

	switch m.wInit {
	case Zeros:
		// already zero
	case Ones:
		for i := range data {
			data[i] = 1.0
		}
	case Uniform:
		for i := range data {
			data[i] = m.rand.Float64()
		}
	case Gaussian:
		for i := range data {
			data[i] = m.rand.NormFloat64() * gaussianStdDev
		}
	default:
		return errors.NewValidationError("w_init", "unknown weight initialization policy", m.wInit)
	}

	m.weights = mat.NewVecDense(n, data)
	return nil
}

// NDims returns the number of feature dimensions, excluding the bias.
func (m *LogisticModel) NDims() int {
	return m.ndims
}

// IsFitted returns whether Fit has been run or weights have been loaded.
func (m *LogisticModel) IsFitted() bool {
	return m.state.IsFitted()
}

// Weights returns a copy of the weight vector, bias first.
func (m *LogisticModel) Weights() []float64 {
	weights := make([]float64, m.weights.Len())
	for i := 0; i < m.weights.Len(); i++ {
		weights[i] = m.weights.AtVec(i)
	}
	return weights
}

// SetWeights replaces the weight vector. The slice length must be ndims+1.
func (m *LogisticModel) SetWeights(weights []float64) error {
	if len(weights) != m.ndims+1 {
		return errors.NewDimensionError("LogisticModel.SetWeights", m.ndims+1, len(weights), 1)
	}

	data := make([]float64, len(weights))
	copy(data, weights)
	m.weights = mat.NewVecDense(len(data), data)
	return nil
}

// Sigmoid computes the logistic function 1 / (1 + exp(-z)), mapping any
// real number into (0, 1).
func Sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}

// score computes the linear score dot(W, x) for row i of X.
func (m *LogisticModel) score(X mat.Matrix, i int) float64 {
	var z float64
	for j := 0; j < m.weights.Len(); j++ {
		z += m.weights.AtVec(j) * X.At(i, j)
	}
	return z
}

// checkFeatures validates that X is non-empty and its column count matches
// the weight vector length.
func (m *LogisticModel) checkFeatures(op string, X mat.Matrix) (nSamples int, err error) {
	nSamples, nCols := X.Dims()
	if nSamples == 0 {
		return 0, errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}
	if nCols != m.weights.Len() {
		return 0, errors.NewDimensionError(op, m.weights.Len(), nCols, 1)
	}
	return nSamples, nil
}

// Forward computes the probability of the positive class for every sample
// row of X: sigmoid(dot(W, x)). The result has one entry per sample.
func (m *LogisticModel) Forward(X mat.Matrix) (*mat.VecDense, error) {
	nSamples, err := m.checkFeatures("LogisticModel.Forward", X)
	if err != nil {
		return nil, err
	}

	probs := mat.NewVecDense(nSamples, nil)
	parallel.ParallelizeWithThreshold(nSamples, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			probs.SetVec(i, Sigmoid(m.score(X, i)))
		}
	})

	return probs, nil
}

// Backward computes the gradient of the logistic loss sum(log(1+exp(-y*D)))
// with respect to the weights, where D is the per-sample linear score.
//
// The per-sample factor is computed as -y*sigmoid(-y*D), which equals the
// textbook -y*exp(-y*D)/(1+exp(-y*D)) but stays bounded in [-1, 1] for
// scores of any magnitude.
func (m *LogisticModel) Backward(X mat.Matrix, y mat.Vector) (*mat.VecDense, error) {
	nSamples, err := m.checkFeatures("LogisticModel.Backward", X)
	if err != nil {
		return nil, err
	}
	if y.Len() != nSamples {
		return nil, errors.NewDimensionError("LogisticModel.Backward", nSamples, y.Len(), 0)
	}

	nWeights := m.weights.Len()
	grad := mat.NewVecDense(nWeights, nil)

	for i := 0; i < nSamples; i++ {
		yi := y.AtVec(i)
		f := -yi * Sigmoid(-yi*m.score(X, i))
		for j := 0; j < nWeights; j++ {
			grad.SetVec(j, grad.AtVec(j)+f*X.At(i, j))
		}
	}

	return grad, nil
}

// Classify predicts a label in {+1, -1} for every sample row of X. A sample
// is labeled +1 exactly when its Forward probability exceeds 0.5.
func (m *LogisticModel) Classify(X mat.Matrix) (*mat.VecDense, error) {
	probs, err := m.Forward(X)
	if err != nil {
		return nil, err
	}

	labels := mat.NewVecDense(probs.Len(), nil)
	for i := 0; i < probs.Len(); i++ {
		if probs.AtVec(i) > 0.5 {
			labels.SetVec(i, 1)
		} else {
			labels.SetVec(i, -1)
		}
	}

	return labels, nil
}

// Fit runs exactly maxIters iterations of full-batch gradient descent,
// updating W <- W - learnRate*G each step. There is no convergence check
// and no early stopping; the weights after the final iteration are the
// terminal state.
func (m *LogisticModel) Fit(X mat.Matrix, y mat.Vector, learnRate float64, maxIters int) error {
	if maxIters < 0 {
		return errors.NewValidationError("max_iters", "must be non-negative", maxIters)
	}

	nSamples, err := m.checkFeatures("LogisticModel.Fit", X)
	if err != nil {
		return err
	}
	if y.Len() != nSamples {
		return errors.NewDimensionError("LogisticModel.Fit", nSamples, y.Len(), 0)
	}

	for iter := 0; iter < maxIters; iter++ {
		grad, err := m.Backward(X, y)
		if err != nil {
			return err
		}
		if err := errors.CheckNumericalStability("gradient_update", grad.RawVector().Data, iter); err != nil {
			return err
		}

		m.weights.AddScaledVec(m.weights, -learnRate, grad)

		slog.Debug("gradient descent step",
			log.ModelNameKey, "LogisticModel",
			log.OperationKey, log.OperationFit,
			log.IterationKey, iter,
		)
	}

	m.state.SetDimensions(m.ndims, nSamples)
	m.state.SetFitted()

	slog.Info("training finished",
		log.ModelNameKey, "LogisticModel",
		log.OperationKey, log.OperationFit,
		log.SamplesKey, nSamples,
		log.FeaturesKey, m.ndims,
		log.LearningRateKey, learnRate,
		log.IterationKey, maxIters,
	)

	return nil
}
