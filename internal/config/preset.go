// Package config loads tuning presets from TOML files. The simulator
// historically shipped as a handful of hand-tuned builds; a preset captures
// one such tuning (grid geometry plus growth constants) and feeds it to the
// sim factories as string overrides.
package config

import (
	"fmt"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Preset is a named tuning loaded from disk. Values holds only the keys the
// file actually defined, so sim defaults survive partial presets.
type Preset struct {
	Sim    string
	Values map[string]string
}

type filePreset struct {
	Sim    string  `toml:"sim"`
	Size   int     `toml:"size"`
	Margin int     `toml:"margin"`
	Seed   int64   `toml:"seed"`
	Alpha  float64 `toml:"alpha"`
	Beta   float64 `toml:"beta"`
	Gamma  float64 `toml:"gamma"`
	Chance float64 `toml:"chance"`
}

// Load reads a preset file. Geometry values must be positive when present;
// tuning values are passed through for the sim to clamp.
func Load(path string) (Preset, error) {
	var raw filePreset
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Preset{}, fmt.Errorf("load preset %s: %w", path, err)
	}

	p := Preset{Sim: raw.Sim, Values: map[string]string{}}

	if meta.IsDefined("size") {
		if raw.Size <= 0 {
			return Preset{}, fmt.Errorf("preset %s: size must be positive, got %d", path, raw.Size)
		}
		p.Values["size"] = strconv.Itoa(raw.Size)
	}
	if meta.IsDefined("margin") {
		if raw.Margin < 0 {
			return Preset{}, fmt.Errorf("preset %s: margin must not be negative, got %d", path, raw.Margin)
		}
		p.Values["margin"] = strconv.Itoa(raw.Margin)
	}
	if meta.IsDefined("seed") {
		p.Values["seed"] = strconv.FormatInt(raw.Seed, 10)
	}
	if meta.IsDefined("alpha") {
		p.Values["alpha"] = formatFloat(raw.Alpha)
	}
	if meta.IsDefined("beta") {
		p.Values["beta"] = formatFloat(raw.Beta)
	}
	if meta.IsDefined("gamma") {
		p.Values["gamma"] = formatFloat(raw.Gamma)
	}
	if meta.IsDefined("chance") {
		p.Values["chance"] = formatFloat(raw.Chance)
	}
	return p, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
