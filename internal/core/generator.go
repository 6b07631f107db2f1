package core

import "math/rand"

// GeneratorConfig bounds the random process sets used for experimentation.
// Zero-valued bounds fall back to the defaults below. Seed 0 draws a fresh
// source; any other seed makes the set reproducible.
type GeneratorConfig struct {
	Count       int
	MinBurst    int
	MaxBurst    int
	MinPriority int
	MaxPriority int
	MaxArrival  int
	Seed        int64
}

func (c *GeneratorConfig) normalize() {
	if c.Count < 1 {
		c.Count = 5
	}
	if c.MinBurst < 1 {
		c.MinBurst = 1
	}
	if c.MaxBurst < c.MinBurst {
		c.MaxBurst = c.MinBurst + 9
	}
	if c.MinPriority < 1 {
		c.MinPriority = 1
	}
	if c.MaxPriority < c.MinPriority {
		c.MaxPriority = c.MinPriority + 4
	}
	if c.MaxArrival < 0 {
		c.MaxArrival = 0
	}
}

// GenerateProcesses builds a random process set with ids 1..Count and
// attributes drawn uniformly within the configured bounds.
func GenerateProcesses(cfg GeneratorConfig) []*Process {
	cfg.normalize()

	var rng *rand.Rand
	if cfg.Seed == 0 {
		rng = rand.New(rand.NewSource(rand.Int63()))
	} else {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}

	processes := make([]*Process, 0, cfg.Count)
	for i := 1; i <= cfg.Count; i++ {
		processes = append(processes, NewProcess(
			i,
			cfg.MinBurst+rng.Intn(cfg.MaxBurst-cfg.MinBurst+1),
			cfg.MinPriority+rng.Intn(cfg.MaxPriority-cfg.MinPriority+1),
			rng.Intn(cfg.MaxArrival+1),
		))
	}
	return processes
}
