package life

import "testing"

func benchmarkAdvance(b *testing.B, workers int) {
	g, err := New(2000, 2000, 10, false, WithSeed(1), WithWorkers(workers))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Advance()
	}
}

func BenchmarkAdvance(b *testing.B)         { benchmarkAdvance(b, 1) }
func BenchmarkAdvanceParallel(b *testing.B) { benchmarkAdvance(b, 4) }

func BenchmarkNeighborCount(b *testing.B) {
	g, _ := New(500, 500, 10, false, WithSeed(1))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.NeighborCount(i%50, (i/50)%50)
	}
}
