// flake-sweep runs the diffusion growth model headlessly across a grid of
// alpha/beta/gamma tunings and reports which ones grow the widest dendrites.
package main

import (
	"flag"
	"fmt"
	"math"
	"runtime"
	"sort"
	"sync"
	"time"

	"snowlab/internal/sims/reiter"
)

type paramSet struct {
	alpha float64
	beta  float64
	gamma float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("alpha=%.2f beta=%.2f gamma=%.4f", p.alpha, p.beta, p.gamma)
}

type scenarioResult struct {
	params      paramSet
	maxRadius   float64
	frozen      int
	firstFreeze int
	steps       int
	stalled     bool
}

func main() {
	steps := flag.Int("steps", 400, "growth steps per scenario")
	size := flag.Int("size", 33, "lattice side length")
	margin := flag.Int("margin", 2, "reservoir margin width")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	alphaOptions := []float64{0.5, 1.0, 1.5, 2.0, 3.0}
	betaOptions := []float64{0.3, 0.4, 0.5, 0.6, 0.8}
	gammaOptions := []float64{0.0, 0.001, 0.01, 0.05}

	var sets []paramSet
	for _, a := range alphaOptions {
		for _, b := range betaOptions {
			for _, g := range gammaOptions {
				sets = append(sets, paramSet{alpha: a, beta: b, gamma: g})
			}
		}
	}

	fmt.Printf("Sweeping %d tunings (%d workers, %d steps, %dx%d lattice)\n",
		len(sets), *workers, *steps, *size, *size)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(*size, *margin, params, *steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].maxRadius > all[j].maxRadius })
	elapsed := time.Since(start)

	fmt.Printf("\nTop 10 results (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 10; i++ {
		res := all[i]
		state := "grew"
		if res.stalled {
			state = "stalled"
		}
		fmt.Printf("%2d) radius=%.2f frozen=%d firstFreeze=%d steps=%d %s %s\n",
			i+1, res.maxRadius, res.frozen, res.firstFreeze, res.steps, state, res.params)
	}
}

func runScenario(size, margin int, params paramSet, steps int) scenarioResult {
	cfg := reiter.DefaultConfig()
	cfg.Size = size
	cfg.Margin = margin
	cfg.Params = reiter.Params{Alpha: params.alpha, Beta: params.beta, Gamma: params.gamma}

	flake, err := reiter.NewWithConfig(cfg)
	if err != nil {
		return scenarioResult{params: params, stalled: true}
	}

	n := flake.Size().W
	center := float64(n / 2)
	firstFreeze := 0
	barren := 0
	ran := 0

	for step := 1; step <= steps; step++ {
		ran = step
		grown := flake.Grow()
		if grown > 0 {
			barren = 0
			if firstFreeze == 0 {
				firstFreeze = step
			}
		} else {
			barren++
			// A long barren streak after initial growth means the tuning
			// has converged; further steps only repeat the stall.
			if barren >= 50 {
				break
			}
		}
	}

	maxRadius := 0.0
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			cell, err := flake.CellAt(x, y)
			if err != nil || !cell.Frozen {
				continue
			}
			r := math.Hypot(float64(x)-center, float64(y)-center)
			if r > maxRadius {
				maxRadius = r
			}
		}
	}

	return scenarioResult{
		params:      params,
		maxRadius:   maxRadius,
		frozen:      flake.FrozenCount(),
		firstFreeze: firstFreeze,
		steps:       ran,
		stalled:     firstFreeze == 0,
	}
}
