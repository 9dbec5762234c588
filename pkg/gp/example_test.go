package gp_test

import (
	"fmt"
	"log"

	"github.com/bitjungle/gogp/pkg/gp"
	"github.com/bitjungle/gogp/pkg/kernels"
	"github.com/bitjungle/gogp/pkg/matrix"
)

// Fit a noiseless 1-D GP and query it at the training points: the posterior
// reproduces the observations exactly, with zero uncertainty.
func Example() {
	kern := kernels.NewRBF([]float64{1.0}, 1.0)

	model, err := gp.New(kern, 0.0)
	if err != nil {
		log.Fatal(err)
	}

	// Training inputs are 1x2: one dimension, two observation columns.
	x := matrix.NewDenseData(1, 2, []float64{0, 1})
	y := []float64{1, 2}

	compiled, err := model.Compile(x, y)
	if err != nil {
		log.Fatal(err)
	}

	mean, variance, err := compiled.Predict(x)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("mean: [%.3f %.3f]\n", mean[0], mean[1])
	fmt.Printf("variance: [%.3f %.3f]\n", variance[0], variance[1])
	// Output:
	// mean: [1.000 2.000]
	// variance: [0.000 0.000]
}

// Duplicate observation columns with zero noise produce a singular
// covariance matrix, which compilation reports instead of factorizing.
func ExampleGP_Compile_nonPositiveDefinite() {
	kern := kernels.NewRBF([]float64{1.0}, 1.0)

	model, err := gp.New(kern, 0.0)
	if err != nil {
		log.Fatal(err)
	}

	x := matrix.NewDenseData(1, 2, []float64{1, 1})
	_, err = model.Compile(x, []float64{0, 1})

	fmt.Println(err)
	// Output:
	// non_positive_definite error: covariance matrix is not positive-definite
}
