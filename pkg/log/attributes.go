// Package log defines standard attribute keys for model operations.
//
// Using a fixed key set keeps training and inference logs uniform, so a
// single query can follow a model through fit, predict and persistence.
package log

// Model and operation context.
const (
	// ModelNameKey identifies the model type, e.g. "LogisticModel".
	ModelNameKey = "model.name"

	// OperationKey names the operation being performed.
	// Standard values: "fit", "save", "load"
	OperationKey = "ml.operation"

	// PathKey is the file path for persistence operations.
	PathKey = "model.path"
)

// Data shape.
const (
	// SamplesKey is the number of samples (rows) being processed.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of feature dimensions, excluding the bias.
	FeaturesKey = "data.features"
)

// Training context.
const (
	// IterationKey is the current gradient-descent iteration.
	IterationKey = "training.iteration"

	// LearningRateKey is the gradient-descent step size.
	LearningRateKey = "hyperparams.learning_rate"

	// RandomSeedKey records the random seed for reproducibility.
	RandomSeedKey = "config.random_seed"

	// AccuracyKey records classification accuracy.
	AccuracyKey = "metrics.accuracy"
)

// Standard operation values.
const (
	OperationFit  = "fit"
	OperationSave = "save"
	OperationLoad = "load"
)
