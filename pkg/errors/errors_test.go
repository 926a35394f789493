package errors

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestNewModelError(t *testing.T) {
	tests := []struct {
		name    string
		op      string
		kind    string
		err     error
		wantMsg string
	}{
		{
			name:    "with original error",
			op:      "LoadModel",
			kind:    "read failed",
			err:     fmt.Errorf("test error"),
			wantMsg: "logit: LoadModel: read failed: test error",
		},
		{
			name:    "without original error",
			op:      "SaveModel",
			kind:    "write failed",
			err:     nil,
			wantMsg: "logit: SaveModel: write failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewModelError(tt.op, tt.kind, tt.err)

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			formatted := fmt.Sprintf("%+v", err)
			if !strings.Contains(formatted, "errors_test.go") {
				t.Error("Expected stack trace to contain test file name")
			}

			var modelErr *ModelError
			if !As(err, &modelErr) {
				t.Error("Error should be castable to *ModelError")
			}
		})
	}
}

func TestNewDimensionError(t *testing.T) {
	err := NewDimensionError("Forward", 3, 2, 1)

	want := "logit: Forward: dimension mismatch on axis 1 (features). Expected 3, got 2"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var dimErr *DimensionError
	if !As(err, &dimErr) {
		t.Error("Error should be castable to *DimensionError")
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("w_init", "unknown weight initialization policy", "random")

	msg := err.Error()
	if !strings.Contains(msg, "w_init") || !strings.Contains(msg, "random") {
		t.Errorf("Error message should mention parameter and value, got %v", msg)
	}

	var valErr *ValidationError
	if !As(err, &valErr) {
		t.Error("Error should be castable to *ValidationError")
	}
}

func TestNewNumericalInstabilityError(t *testing.T) {
	err := NewNumericalInstabilityError("gradient_update", []float64{math.NaN(), 1.5}, 7)

	msg := err.Error()
	if !strings.Contains(msg, "gradient_update") || !strings.Contains(msg, "iteration 7") {
		t.Errorf("Error message should mention operation and iteration, got %v", msg)
	}

	var numErr *NumericalInstabilityError
	if !As(err, &numErr) {
		t.Error("Error should be castable to *NumericalInstabilityError")
	}
	if numErr.Iteration != 7 {
		t.Errorf("Iteration = %d, want 7", numErr.Iteration)
	}
}

func TestCheckNumericalStability(t *testing.T) {
	if err := CheckNumericalStability("forward", []float64{0.1, -2.5, 3.0}, 0); err != nil {
		t.Errorf("Finite values should pass stability check: %v", err)
	}

	if err := CheckNumericalStability("forward", []float64{0.1, math.Inf(1)}, 0); err == nil {
		t.Error("Inf value should fail stability check")
	}

	if err := CheckNumericalStability("forward", []float64{math.NaN()}, 0); err == nil {
		t.Error("NaN value should fail stability check")
	}
}

func TestStabilizeExp(t *testing.T) {
	if v := StabilizeExp(1000); math.IsInf(v, 0) {
		t.Errorf("StabilizeExp(1000) should not overflow, got %v", v)
	}

	if v := StabilizeExp(-1000); v != 0 {
		t.Errorf("StabilizeExp(-1000) = %v, want 0", v)
	}

	if v := StabilizeExp(1); math.Abs(v-math.E) > 1e-12 {
		t.Errorf("StabilizeExp(1) = %v, want e", v)
	}
}

func TestClipGradient(t *testing.T) {
	grad := []float64{3, 4} // norm 5
	clipped := ClipGradient(grad, 1.0)

	var norm float64
	for _, g := range clipped {
		norm += g * g
	}
	norm = math.Sqrt(norm)

	if math.Abs(norm-1.0) > 1e-12 {
		t.Errorf("Clipped gradient norm = %v, want 1.0", norm)
	}

	// Below the limit the gradient is returned unchanged.
	small := []float64{0.1, 0.2}
	if got := ClipGradient(small, 1.0); got[0] != 0.1 || got[1] != 0.2 {
		t.Errorf("Gradient below maxNorm should be unchanged, got %v", got)
	}
}
