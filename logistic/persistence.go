package logistic

import (
	"io"
	"log/slog"
	"os"

	"github.com/koyama-ml/logit/core/model"
	"github.com/koyama-ml/logit/pkg/errors"
	"github.com/koyama-ml/logit/pkg/log"
)

// Weight files are a flat sequence of float32 values in native byte order,
// bias first. A file written with one ndims can only be loaded into a model
// constructed with the same ndims; LoadModel enforces that at read time.

// SaveModel writes the weight vector to the file at path, overwriting any
// existing file.
func (m *LogisticModel) SaveModel(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "LogisticModel.SaveModel: failed to create file")
	}
	defer file.Close()

	if err := m.SaveModelTo(file); err != nil {
		return err
	}

	slog.Info("model saved",
		log.ModelNameKey, "LogisticModel",
		log.OperationKey, log.OperationSave,
		log.PathKey, path,
	)
	return nil
}

// SaveModelTo writes the weight vector to w.
func (m *LogisticModel) SaveModelTo(w io.Writer) error {
	return model.EncodeWeights(w, m.weights)
}

// LoadModel replaces the weight vector with the contents of the file at
// path. The file must contain exactly ndims+1 values.
func (m *LogisticModel) LoadModel(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "LogisticModel.LoadModel: failed to open file")
	}
	defer file.Close()

	if err := m.LoadModelFrom(file); err != nil {
		return err
	}

	slog.Info("model loaded",
		log.ModelNameKey, "LogisticModel",
		log.OperationKey, log.OperationLoad,
		log.PathKey, path,
	)
	return nil
}

// LoadModelFrom replaces the weight vector with the values read from r.
func (m *LogisticModel) LoadModelFrom(r io.Reader) error {
	weights, err := model.DecodeWeights(r)
	if err != nil {
		return err
	}

	if weights.Len() != m.ndims+1 {
		return errors.NewDimensionError("LogisticModel.LoadModel", m.ndims+1, weights.Len(), 1)
	}

	m.weights = weights
	m.state.SetFitted()
	return nil
}
