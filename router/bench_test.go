// SPDX-License-Identifier: MIT

package router_test

import (
	"testing"

	"github.com/katalvlaran/transport-catalogue/router"
)

// BenchmarkBuild compares both strategies on sparse graphs of growing size.
func BenchmarkBuild(b *testing.B) {
	cases := []struct {
		name string
		n    int
		p    float64
	}{
		{"V=100", 100, 0.05},
		{"V=300", 300, 0.02},
	}
	for _, tc := range cases {
		g := randomGraph(b, tc.n, tc.p, 42)
		for _, s := range strategies {
			b.Run(tc.name+"/"+s.String(), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := router.Build(g, router.WithStrategy(s)); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
