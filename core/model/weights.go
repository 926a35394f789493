package model

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/koyama-ml/logit/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Weight vectors persist as a flat sequence of 32-bit IEEE-754 values in
// native byte order, bias first. No header, no length prefix. Producer and
// consumer must agree on the dimension out of band; DecodeWeights recovers
// the count from the stream length alone.

// EncodeWeights writes the weight vector to w as float32 values.
func EncodeWeights(w io.Writer, weights *mat.VecDense) error {
	if weights == nil || weights.Len() == 0 {
		return errors.Wrap(errors.ErrEmptyData, "EncodeWeights")
	}

	buf := make([]byte, 4*weights.Len())
	for i := 0; i < weights.Len(); i++ {
		bits := math.Float32bits(float32(weights.AtVec(i)))
		binary.NativeEndian.PutUint32(buf[4*i:], bits)
	}

	if _, err := w.Write(buf); err != nil {
		return errors.Wrap(err, "EncodeWeights: write failed")
	}
	return nil
}

// DecodeWeights reads every float32 value from r and returns them as a
// weight vector, in stream order.
func DecodeWeights(r io.Reader) (*mat.VecDense, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "DecodeWeights: read failed")
	}

	if len(buf) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "DecodeWeights")
	}
	if len(buf)%4 != 0 {
		return nil, errors.Wrapf(errors.ErrTruncatedData, "DecodeWeights: %d bytes is not a whole number of float32 values", len(buf))
	}

	n := len(buf) / 4
	weights := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		bits := binary.NativeEndian.Uint32(buf[4*i:])
		weights.SetVec(i, float64(math.Float32frombits(bits)))
	}

	return weights, nil
}
