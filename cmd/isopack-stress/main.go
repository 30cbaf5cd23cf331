// Command isopack-stress plays random games headlessly as fast as possible
// and prints a Markdown report of throughput, outcomes and memory use.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/isopack/crate"
	"github.com/plus3/isopack/loop"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	gridSize := flag.Int("grid", 6, "Container floor size in cells.")
	maxHeight := flag.Int("height", 8, "Container height in cells.")
	seed := flag.Uint64("seed", 1, "Seed for pieces and autoplay moves.")
	rotateChance := flag.Float64("rotate-chance", 0.25, "Probability of rotating before each placement.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting isopack stress test...")

	cfg := crate.DefaultConfig()
	cfg.GridSize = *gridSize
	cfg.MaxHeight = *maxHeight

	factory, err := crate.NewFactory(crate.DefaultCatalog(), rand.New(rand.NewPCG(*seed, 0)), crate.SequentialIDs("piece"))
	if err != nil {
		log.Fatalf("Failed to create factory: %v", err)
	}
	session, err := crate.NewSession(cfg, factory)
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	scheduler := loop.NewScheduler(session)
	autoplay := NewAutoplaySystem(rand.New(rand.NewPCG(*seed, 1)), *rotateChance)
	scheduler.Register(autoplay)

	report := &Report{
		Duration:       *duration,
		Config:         cfg,
		Seed:           *seed,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running autoplay for %s on a %dx%dx%d container...\n", *duration, cfg.GridSize, cfg.GridSize, cfg.MaxHeight)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			scheduler.Once(deltaTime.Seconds())
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
		}
	}

	report.TotalTime = time.Since(startTime)
	report.Collect(scheduler.Stats(), session.Stats(), autoplay.Games)
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Autoplay finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
