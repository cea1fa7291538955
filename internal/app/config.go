package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Sim    string
	Preset string
	Scale  int
	Seed   int64
	Size   int
	Repeat int
	Debug  bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "reiter", Scale: 8, Seed: 42, Repeat: 12}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (reiter, stochastic)")
	fs.StringVar(&c.Preset, "preset", c.Preset, "path to a TOML tuning preset")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Size, "size", c.Size, "grid side length (0 = sim default)")
	fs.IntVar(&c.Repeat, "repeat", c.Repeat, "growth repeats per second while the step key is held")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "log growth steps")
}
