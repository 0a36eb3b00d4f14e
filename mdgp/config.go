package mdgp

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Tunables holds the population-manager schedule constants from §4.7: the
// kick-strength decay bounds, the population size bounds, the directed
// perturbation repeat count, and the local-search improvement epsilon. A
// zero Tunables is not meaningful; use DefaultTunables or LoadTunables.
type Tunables struct {
	ThetaMax       float64 `toml:"theta_max"`
	ThetaMin       float64 `toml:"theta_min"`
	PopSizeInitial int     `toml:"pop_size_initial"`
	PopSizeMin     int     `toml:"pop_size_min"`
	LMax           int     `toml:"l_max"`
	Eps            float64 `toml:"eps"`
}

// DefaultTunables returns the schedule §4.7 prescribes, branching on problem
// size n exactly as specified: n <= 400 uses the conservative schedule,
// larger instances use the wider one.
func DefaultTunables(n int) Tunables {
	t := Tunables{
		PopSizeInitial: 15,
		LMax:           3,
		Eps:            1e-4,
	}
	if n <= 400 {
		t.ThetaMax = 1.2
		t.ThetaMin = 0.1
		t.PopSizeMin = 2
	} else {
		t.ThetaMax = 2.0
		t.ThetaMin = 1.0
		t.PopSizeMin = 1
	}
	return t
}

// LoadTunables reads TOML-encoded Tunables from path. A missing file is not
// an error: it falls back to DefaultTunables(n). A present-but-malformed
// file returns a wrapped error alongside the defaults.
func LoadTunables(path string, n int) (Tunables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultTunables(n), nil
		}
		return DefaultTunables(n), fmt.Errorf("mdgp: failed to read tunables file: %w", err)
	}

	tun := DefaultTunables(n)
	if err := toml.Unmarshal(data, &tun); err != nil {
		return DefaultTunables(n), fmt.Errorf("mdgp: failed to parse tunables file: %w", err)
	}
	return tun, nil
}
