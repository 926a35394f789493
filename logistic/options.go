package logistic

// Option is a function that configures a LogisticModel.
type Option func(*LogisticModel)

// WithWeightInit sets the weight-initialization policy.
func WithWeightInit(init WeightInit) Option {
	return func(m *LogisticModel) {
		m.wInit = init
	}
}

// WithRandomState sets the random seed used by the Uniform and Gaussian
// initialization policies. Negative seeds select a non-deterministic source.
func WithRandomState(seed int64) Option {
	return func(m *LogisticModel) {
		m.randomState = seed
	}
}
