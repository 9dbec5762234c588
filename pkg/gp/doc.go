// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

// Package gp implements Gaussian Process regression over an arbitrary
// covariance kernel: compile training data once into an immutable posterior,
// then query its mean, per-point variance, or full predictive covariance.
//
// # Orientation
//
// Every matrix on the API boundary is (dimensions x observations): training
// inputs for n points in d dimensions are d x n, and so are query inputs.
// Transposing the convention silently produces wrong answers, not errors.
//
// # Usage
//
//	kern := kernels.NewRBF([]float64{1.0}, 1.0)
//	model, err := gp.New(kern, 0.1)
//	if err != nil { ... }
//
//	compiled, err := model.Compile(x, y)
//	if err != nil { ... }
//
//	mean, variance, err := compiled.Predict(xq)
//
// A CompiledGP has a single state: constructed, usable indefinitely, safe
// for concurrent queries from any goroutine.
package gp
