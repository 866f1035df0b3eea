// Package scenario provides YAML definitions and loaders for named
// simulation setups: the dice on the table, their weight overrides, and how
// many times to roll them.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/dicelab/internal/dice"
)

// WeightOverride changes one face's weight away from the default.
type WeightOverride struct {
	Face   string  `yaml:"face"`
	Weight float64 `yaml:"weight"`
}

// DieDef defines a single die in a scenario.
type DieDef struct {
	Faces   []string         `yaml:"faces"`
	Weights []WeightOverride `yaml:"weights"` // optional; unlisted faces stay at the default weight
}

// Def defines a complete scenario loaded from YAML.
type Def struct {
	Name  string   `yaml:"name"`
	Rolls int      `yaml:"rolls"` // 0 = use the configured default
	Dice  []DieDef `yaml:"dice"`
}

// Validate reports an error if the scenario is missing required fields or
// contains illegal values.
//
// Postcondition: Returns nil iff the def is well-formed; does not check that
// the dice share a face set, which Build surfaces through game construction.
func (d *Def) Validate() error {
	var errs []string
	if d.Name == "" {
		errs = append(errs, "name must not be empty")
	}
	if d.Rolls < 0 {
		errs = append(errs, fmt.Sprintf("rolls must be >= 0, got %d", d.Rolls))
	}
	if len(d.Dice) == 0 {
		errs = append(errs, "at least one die is required")
	}
	for i, die := range d.Dice {
		if len(die.Faces) == 0 {
			errs = append(errs, fmt.Sprintf("die[%d] must have at least one face", i))
		}
		seen := make(map[string]struct{}, len(die.Faces))
		for _, f := range die.Faces {
			if _, dup := seen[f]; dup {
				errs = append(errs, fmt.Sprintf("die[%d] has duplicate face %q", i, f))
			}
			seen[f] = struct{}{}
		}
		for j, w := range die.Weights {
			if _, ok := seen[w.Face]; !ok {
				errs = append(errs, fmt.Sprintf("die[%d] weight[%d] names unknown face %q", i, j, w.Face))
			}
			if w.Weight <= 0 {
				errs = append(errs, fmt.Sprintf("die[%d] weight[%d] must be > 0, got %v", i, j, w.Weight))
			}
		}
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Build constructs the scenario's dice and game. Every die draws from src;
// a nil src selects the crypto-backed default.
//
// Precondition: d must have passed Validate.
// Postcondition: Returns a game whose dice carry the scenario's weight
// overrides, or an error from die or game construction.
func (d *Def) Build(src dice.Source) (*dice.Game[string], error) {
	built := make([]*dice.Die[string], len(d.Dice))
	for i, def := range d.Dice {
		die, err := dice.New(def.Faces, src)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: die %d: %w", d.Name, i, err)
		}
		for _, w := range def.Weights {
			if err := die.ChangeWeight(w.Face, w.Weight); err != nil {
				return nil, fmt.Errorf("scenario %q: die %d: %w", d.Name, i, err)
			}
		}
		built[i] = die
	}
	game, err := dice.NewGame(built)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", d.Name, err)
	}
	return game, nil
}

// LoadFile reads and validates a single scenario YAML file.
//
// Postcondition: Returns a def that passes Validate, or a non-nil error.
func LoadFile(path string) (*Def, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile: cannot read file %q: %w", path, err)
	}
	var d Def
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("LoadFile: cannot parse file %q: %w", path, err)
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("LoadFile: invalid scenario in %q: %w", path, err)
	}
	return &d, nil
}

// LoadDir reads all .yaml files in dir and returns the parsed scenarios.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns non-nil slice and nil error on success; all
// returned defs pass Validate.
func LoadDir(dir string) ([]*Def, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadDir: cannot read directory %q: %w", dir, err)
	}

	var defs []*Def
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}
		def, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	if defs == nil {
		defs = []*Def{}
	}
	return defs, nil
}
