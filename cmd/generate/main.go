// Command generate batch-produces Akari puzzle descriptors across a
// worker pool and writes them as the JSON file cmd/server loads at
// startup.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"akari-engine/internal/akari/game"
	"akari-engine/internal/akari/rng"
	"akari-engine/internal/puzzles"
)

func main() {
	count := flag.Int("n", 1000, "Number of puzzles to generate")
	output := flag.String("o", "puzzles.json", "Output file path")
	workers := flag.Int("w", 0, "Number of worker goroutines (default: num CPUs)")
	params := flag.String("params", "", "Params string to generate for (default: the game package's default preset)")
	seedPrefix := flag.String("seed-prefix", "batch", "Prefix mixed into each puzzle's deterministic seed")
	flag.Parse()

	if *workers <= 0 {
		*workers = runtime.NumCPU()
	}

	p := game.DefaultParams()
	if *params != "" {
		decoded, err := game.DecodeParams(*params)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -params: %v\n", err)
			os.Exit(1)
		}
		p = decoded
	}
	if err := game.ValidateParams(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generating %d puzzles (%s) with %d workers...\n", *count, game.EncodeParams(p, true), *workers)
	start := time.Now()

	entries := make([]puzzles.Entry, *count)
	var generated int64
	var failed int64

	work := make(chan int, *count)
	for i := 0; i < *count; i++ {
		work <- i
	}
	close(work)

	done := make(chan bool)
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				g := atomic.LoadInt64(&generated)
				elapsed := time.Since(start)
				rate := float64(g) / elapsed.Seconds()
				remaining := float64(*count-int(g)) / rate
				fmt.Printf("  Progress: %d/%d (%.1f/sec, ~%.0fs remaining)\n", g, *count, rate, remaining)
			case <-done:
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for idx := range work {
				seed := fmt.Sprintf("%s-%d", *seedPrefix, idx)
				descriptor, err := game.NewDescription(p, rng.New(seed))
				if err != nil {
					atomic.AddInt64(&failed, 1)
					fmt.Fprintf(os.Stderr, "worker %d: puzzle %d failed: %v\n", workerID, idx, err)
					continue
				}
				entries[idx] = puzzles.Entry{Params: game.EncodeParams(p, true), Descriptor: descriptor}
				atomic.AddInt64(&generated, 1)
			}
		}(w)
	}

	wg.Wait()
	done <- true

	elapsed := time.Since(start)
	fmt.Printf("Generated %d puzzles (%d failed) in %v (%.1f puzzles/sec)\n",
		generated, failed, elapsed, float64(generated)/elapsed.Seconds())

	fmt.Printf("Writing to %s...\n", *output)

	file := puzzles.PuzzleFile{
		Version: 1,
		Count:   len(entries),
		Puzzles: entries,
	}

	data, err := json.Marshal(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*output, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	info, _ := os.Stat(*output)
	sizeMB := float64(info.Size()) / 1024 / 1024
	fmt.Printf("Done! File size: %.2f MB\n", sizeMB)
}
