// Package realtime drives a lifex.Engine at a fixed tick rate.
//
// The runtime owns the only goroutine that ticks the engine. Renderers run on
// their own goroutines and interact with it in two ways:
//   - Snapshot returns a copy of the current generation
//   - Send queues a Command that is applied at the next tick boundary
//
// # Example Usage
//
//	buf, _ := lifex.NewBuffer(128, nil)
//	rt := realtime.NewRuntime(lifex.NewEngine(buf), realtime.Config{
//		TickRate: 16667 * time.Microsecond, // 60 FPS
//		Workers:  4,
//	})
//	rt.Start(ctx)
//	defer rt.Stop()
//	rt.Send(realtime.Command{Kind: realtime.Pause})
//
// # Tick Phases
//
//  1. Collect queued commands atomically
//  2. Sort them: higher priority first, then sequence number (FIFO)
//  3. Apply them to the current generation
//  4. Advance one generation unless paused (a Step command overrides pause)
//  5. Publish a GenerationEvent
//
// Given the same sequence of Send calls between ticks, the simulation always
// evolves the same way, regardless of goroutine scheduling.
//
// # Failure Handling
//
// A failed ParallelTick leaves the generation unchanged; the error is logged
// and carried on the published event. Panics inside a tick are recovered and
// logged so the loop keeps running.
package realtime
