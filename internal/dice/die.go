// Package dice provides the weighted-die sampling model, the multi-die game,
// and the analyzer that derives statistical summaries from a game's roll
// history.
package dice

import (
	"cmp"
	"fmt"
	"math"
	"sort"
)

// DefaultWeight is the weight assigned to every face at construction.
const DefaultWeight = 1.0

// Side is one row of a die's face/weight table.
type Side[F cmp.Ordered] struct {
	Face   F
	Weight float64
}

// Die models a single weighted die: a fixed set of distinguishable faces,
// each with a mutable positive weight.
//
// Invariant: the face set never changes after construction; every weight is
// finite and > 0.
type Die[F cmp.Ordered] struct {
	faces   []F       // construction order
	weights []float64 // parallel to faces
	index   map[F]int // face -> position in faces
	src     Source
}

// New constructs a Die from a sequence of unique faces, each at
// DefaultWeight. A nil src selects the crypto-backed default source; tests
// and reproducible runs inject a seeded Source instead.
//
// Precondition: faces must be non-empty and free of duplicates.
// Postcondition: returns a Die with len(faces) sides, or an error wrapping
// ErrValidation.
func New[F cmp.Ordered](faces []F, src Source) (*Die[F], error) {
	if len(faces) == 0 {
		return nil, fmt.Errorf("dice: face list must not be empty: %w", ErrValidation)
	}
	index := make(map[F]int, len(faces))
	for i, f := range faces {
		if _, dup := index[f]; dup {
			return nil, fmt.Errorf("dice: faces must be unique, got duplicate %v: %w", f, ErrValidation)
		}
		index[f] = i
	}
	if src == nil {
		src = NewCryptoSource()
	}

	d := &Die[F]{
		faces:   append([]F(nil), faces...),
		weights: make([]float64, len(faces)),
		index:   index,
		src:     src,
	}
	for i := range d.weights {
		d.weights[i] = DefaultWeight
	}
	return d, nil
}

// ChangeWeight sets the weight of a single face.
//
// Precondition: face must be on the die; weight must be finite and > 0.
// Postcondition: only that face's weight changes; on error no state changes.
func (d *Die[F]) ChangeWeight(face F, weight float64) error {
	i, ok := d.index[face]
	if !ok {
		return fmt.Errorf("dice: no face %v on die: %w", face, ErrNotFound)
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("dice: weight for face %v must be finite, got %v: %w", face, weight, ErrValidation)
	}
	if weight <= 0 {
		return fmt.Errorf("dice: weight for face %v must be > 0, got %v: %w", face, weight, ErrValidation)
	}
	d.weights[i] = weight
	return nil
}

// Roll draws n independent weighted samples with replacement.
//
// Each draw selects one face with probability weight/total. Weights are read
// once at the start of the call, so a weight change never affects an
// in-flight roll sequence.
//
// Precondition: n >= 1.
// Postcondition: returns exactly n faces drawn from the die's face set; die
// state is not mutated.
func (d *Die[F]) Roll(n int) ([]F, error) {
	if n < 1 {
		return nil, fmt.Errorf("dice: roll count must be >= 1, got %d: %w", n, ErrValidation)
	}

	cumulative := make([]float64, len(d.weights))
	total := 0.0
	for i, w := range d.weights {
		total += w
		cumulative[i] = total
	}

	outcomes := make([]F, n)
	for i := range outcomes {
		target := d.src.Float64() * total
		// First face whose cumulative weight exceeds the target.
		j := sort.SearchFloat64s(cumulative, target)
		if j == len(cumulative) {
			j--
		}
		outcomes[i] = d.faces[j]
	}
	return outcomes, nil
}

// Sides returns the face/weight table in construction order.
//
// Postcondition: one Side per face; mutating the returned slice does not
// affect the die.
func (d *Die[F]) Sides() []Side[F] {
	sides := make([]Side[F], len(d.faces))
	for i, f := range d.faces {
		sides[i] = Side[F]{Face: f, Weight: d.weights[i]}
	}
	return sides
}

// Faces returns the die's faces in construction order.
func (d *Die[F]) Faces() []F {
	return append([]F(nil), d.faces...)
}
