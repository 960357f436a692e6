// Package analysis characterises how a Game of Life run evolves.
//
//   - [CycleDetector]: spots extinction, still lifes and oscillators by
//     remembering recent generations
//   - [PowerSpectrum]: FFT magnitude of a population series
//   - [DominantPeriod]: strongest periodicity of a population series
//
// # Cycle Detection
//
// Attach a detector to a session and inspect the verdict afterwards:
//
//	det := analysis.NewCycleDetector(64)
//	s.AddObserver(det)
//	_ = s.Run(ctx, 0)
//	fmt.Println(det.Result())
package analysis
