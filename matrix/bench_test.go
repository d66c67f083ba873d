// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the design-matrix kernel,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/nec/matrix"
	"github.com/katalvlaran/nec/scalar"
)

// sinks to defeat dead-code elimination
var (
	sinkF []scalar.Float
	sinkD []scalar.Dual
)

// randDesign builds an n×k design with a fixed seed.
func randDesign(b *testing.B, n, k int) *matrix.Dense {
	b.Helper()
	rng := rand.New(rand.NewSource(1337))
	m, err := matrix.NewDense(n, k)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			if err = m.Set(i, j, rng.NormFloat64()); err != nil {
				b.Fatal(err)
			}
		}
	}

	return m
}

func BenchmarkMatVec(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{100, 1000, 10000} {
		b.Run(fmt.Sprintf("float/n=%d", n), func(b *testing.B) {
			X := randDesign(b, n, 4)
			x := scalar.Floats([]float64{1, 2, 3, 4})
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				y, err := matrix.MatVec(X, x)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = y
			}
		})
		b.Run(fmt.Sprintf("dual/n=%d", n), func(b *testing.B) {
			X := randDesign(b, n, 4)
			x := scalar.Seed([]float64{1, 2, 3, 4}, 0)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				y, err := matrix.MatVec(X, x)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = y
			}
		})
	}
}
