// Package life implements the Game of Life engine: cells, the bounded grid and
// the B3/S23 generation step.
//
// The package exposes a small set of types:
//
//   - [Cell]: a life flag plus an optional, sticky display colour
//   - [Grid]: a fixed-size, non-wrapping board of cells
//   - [Snapshot]: an immutable view of one fully-computed generation
//   - [Palette]: the colour seeding policy used when colour mode is on
//
// # Example
//
//	g, err := life.New(700, 700, 10, true, life.WithSeed(42))
//	if err != nil {
//	    return err
//	}
//	g.Advance()
//	snap := g.Snapshot()
//	fmt.Println(snap.Generation(), snap.Population())
//
// # Edges
//
// The board is bounded. Border cells simply have fewer neighbours: a corner
// has 3 candidates, an edge cell 5 and an interior cell 8.
//
// # Thread Safety
//
// Advance must be called from a single goroutine. Snapshot may be called from
// any goroutine: every generation is built in fresh storage and published with
// a single atomic swap, so readers never observe a half-built board.
package life
