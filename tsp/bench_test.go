package tsp_test

import (
	"testing"

	"github.com/katalvlaran/mrta/tsp"
)

// BenchmarkTwoOpt_n40 measures 2-opt from an interleaved order on 40 stops.
func BenchmarkTwoOpt_n40(b *testing.B) {
	p := singleRobot(b, euclid(randomPoints(41, 7)))
	sites := make([]int, 0, 40)
	for i := 1; i <= 20; i++ {
		sites = append(sites, i, 41-i)
	}
	in := siteRoute(sites...)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tsp.TwoOpt(p, in)
	}
}

// BenchmarkBranchAndBound_n9 measures the exact search warm-started from 2-opt.
func BenchmarkBranchAndBound_n9(b *testing.B) {
	p := singleRobot(b, euclid(randomPoints(10, 7)))
	warm := tsp.TwoOpt(p, siteRoute(9, 1, 8, 2, 7, 3, 6, 4, 5))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.BranchAndBound(p, warm, tsp.DefaultOptions()); err != nil {
			b.Fatal(err)
		}
	}
}
