// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package intersect finds intersections of two parametric curves using
// Newton's method.
package intersect

import (
	"errors"
	"fmt"
	"math"

	"honnef.co/go/curve"
)

const (
	// Tolerance is the largest distance between the two curves' points that
	// still counts as an intersection.
	Tolerance = 1e-3
	// MaxIterations is the number of parameter updates after which Solve
	// gives up.
	MaxIterations = 20

	maxStep1 = math.Pi / 4
	maxStep2 = 2
)

// ErrNoConvergence is matched by every error returned by Solve.
var ErrNoConvergence = errors.New("intersection did not converge")

// ConvergenceError describes a failed search.
type ConvergenceError struct {
	// Iterations is the number of parameter updates that were performed.
	Iterations int
	// T1 and T2 are the last parameters tried.
	T1, T2 float64
	// Distance is the distance between the curves' points at T1 and T2.
	Distance float64
	// Singular is set if the search stopped because the Jacobian had no
	// inverse.
	Singular bool
}

func (err *ConvergenceError) Error() string {
	if err.Singular {
		return fmt.Sprintf("intersection did not converge: singular jacobian at t1=%g, t2=%g after %d iterations",
			err.T1, err.T2, err.Iterations)
	}
	return fmt.Sprintf("intersection did not converge: distance %g at t1=%g, t2=%g after %d iterations",
		err.Distance, err.T1, err.T2, err.Iterations)
}

func (err *ConvergenceError) Unwrap() error { return ErrNoConvergence }

// Curve is a differentiable parametric curve.
type Curve interface {
	Eval(t float64) curve.Point
	Deriv(t float64) curve.Vec2
}

// Func is a curve given by its coordinate functions and their derivatives.
type Func struct {
	F, G   func(t float64) float64
	DF, DG func(t float64) float64
}

var _ Curve = Func{}

func (fn Func) Eval(t float64) curve.Point { return curve.Pt(fn.F(t), fn.G(t)) }
func (fn Func) Deriv(t float64) curve.Vec2 { return curve.Vec(fn.DF(t), fn.DG(t)) }

// Solve searches for parameters t1 and t2 such that c1.Eval(t1) and
// c2.Eval(t2) are at most [Tolerance] apart, starting at the
// estimates t1e and t2e.
//
// Each step solves the linearized system J·Δ = c2(t2) - c1(t1), where J has
// the columns c1'(t1) and -c2'(t2). Steps are clamped to ±π/4 for t1 and ±2
// for t2. The returned error is a *ConvergenceError.
func Solve(c1, c2 Curve, t1e, t2e float64) (t1, t2 float64, err error) {
	t1, t2 = t1e, t2e
	for i := 1; ; i++ {
		p1 := c1.Eval(t1)
		p2 := c2.Eval(t2)
		b := p2.Sub(p1)
		dist := b.Hypot()
		if dist <= Tolerance {
			return t1, t2, nil
		}
		if i > MaxIterations || math.IsNaN(dist) {
			return t1, t2, &ConvergenceError{Iterations: i - 1, T1: t1, T2: t2, Distance: dist}
		}

		d1 := c1.Deriv(t1)
		d2 := c2.Deriv(t2).Negate()
		// Cramer's rule on [[d1.X, d2.X], [d1.Y, d2.Y]].
		det := d1.Cross(d2)
		if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
			return t1, t2, &ConvergenceError{Iterations: i - 1, T1: t1, T2: t2, Distance: dist, Singular: true}
		}
		dt1 := b.Cross(d2) / det
		dt2 := d1.Cross(b) / det

		t1 += clamp(dt1, maxStep1)
		t2 += clamp(dt2, maxStep2)
	}
}

func clamp(v, limit float64) float64 {
	return max(-limit, min(v, limit))
}
