package gossip_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/mrta/gossip"
	"github.com/katalvlaran/mrta/rng"
)

// BenchmarkNegotiate_Plain measures a full plain negotiation on the fleet instance.
func BenchmarkNegotiate_Plain(b *testing.B) {
	benchmarkNegotiate(b, gossip.DefaultOptions())
}

// BenchmarkNegotiate_BranchAndBound measures the branch-and-bound variant.
func BenchmarkNegotiate_BranchAndBound(b *testing.B) {
	opts := gossip.DefaultOptions()
	opts.UseBranchAndBound = true
	benchmarkNegotiate(b, opts)
}

func benchmarkNegotiate(b *testing.B, opts gossip.Options) {
	p := fleetProblem(b)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gossip.Negotiate(ctx, p, rng.FromSeed(int64(i+1)), opts); err != nil {
			b.Fatal(err)
		}
	}
}
