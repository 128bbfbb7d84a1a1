package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/fzft/go-openset/hashset"
	"github.com/fzft/go-openset/internal/pcg"
)

// BenchCmd implements the 'bench' command. Each round refills a pool of
// Universe random ints in [0, Universe) and times Inserts adds of the
// first entries into both containers. The containers are kept across
// rounds, so later rounds mostly hit elements that are already present.
type BenchCmd struct {
	Bits     int    `help:"Open set size as a power of two" default:"20" env:"OASET_BENCH_BITS"`
	Universe int    `help:"Size of the random pool and upper bound of its values" default:"100000"`
	Inserts  int    `help:"Adds per round" default:"50000"`
	Rounds   int    `short:"n" help:"Measured rounds" default:"10"`
	Seed     uint64 `help:"PRNG seed, 0 seeds from the clock" default:"0"`
}

// BenchResult is the timing summary for one container, in microseconds.
type BenchResult struct {
	Name   string
	Mean   float64
	StdDev float64
	Size   int
}

var errBenchConfig = errors.New("invalid bench configuration")

func (c *BenchCmd) validate() error {
	switch {
	case c.Universe <= 0:
		return fmt.Errorf("%w: universe must be positive", errBenchConfig)
	case c.Inserts <= 0 || c.Inserts > c.Universe:
		return fmt.Errorf("%w: inserts must be in 1..%d", errBenchConfig, c.Universe)
	case c.Rounds <= 0:
		return fmt.Errorf("%w: rounds must be positive", errBenchConfig)
	}
	return nil
}

func (c *BenchCmd) Run(g *Globals) error {
	results, err := c.run(g.logger())
	if err != nil {
		return err
	}
	return writeBenchResults(os.Stdout, c, results)
}

func (c *BenchCmd) run(logger *zap.Logger) ([]BenchResult, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	open, err := hashset.New[int](c.Bits, hashset.WithLogger[int](logger))
	if err != nil {
		return nil, err
	}
	containers := []struct {
		name string
		set  hashset.Container[int]
	}{
		{"hashset.Set", open},
		{"hashset.MapSet", hashset.NewMapSet[int](0)},
	}

	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := pcg.New(seed, 0)
	pool := make([]int, c.Universe)
	samples := make([][]float64, len(containers))

	logger.Info("bench starting",
		zap.Int("bits", c.Bits),
		zap.Int("universe", c.Universe),
		zap.Int("inserts", c.Inserts),
		zap.Int("rounds", c.Rounds),
		zap.Uint64("seed", seed))

	for round := 0; round < c.Rounds; round++ {
		rng.Fill(pool, c.Universe)
		for i, ct := range containers {
			start := time.Now()
			for _, v := range pool[:c.Inserts] {
				if _, err := ct.set.Add(v); err != nil {
					return nil, fmt.Errorf("round %d, %s: %w", round, ct.name, err)
				}
			}
			elapsed := time.Since(start)
			samples[i] = append(samples[i], float64(elapsed.Nanoseconds())/1e3)
			logger.Debug("round done",
				zap.Int("round", round),
				zap.String("container", ct.name),
				zap.Duration("elapsed", elapsed))
		}
	}

	results := make([]BenchResult, len(containers))
	for i, ct := range containers {
		mean, std := stat.MeanStdDev(samples[i], nil)
		if len(samples[i]) < 2 {
			std = 0
		}
		results[i] = BenchResult{Name: ct.name, Mean: mean, StdDev: std, Size: ct.set.Size()}
	}
	return results, nil
}

func writeBenchResults(w io.Writer, c *BenchCmd, results []BenchResult) error {
	fmt.Fprintf(w, "%d rounds of %d adds from a pool of %d\n\n", c.Rounds, c.Inserts, c.Universe)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "container\tmean (us/round)\tstddev\tsize")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%.1f\t%.1f\t%d\n", r.Name, r.Mean, r.StdDev, r.Size)
	}
	return tw.Flush()
}
