package dice

import (
	"cmp"
	"fmt"
)

// Form selects the shape of a game's play-results table.
type Form string

const (
	// FormWide is one row per roll_number with one face column per die.
	FormWide Form = "wide"
	// FormNarrow is one row per (roll_number, die_index) with a single
	// face_value column.
	FormNarrow Form = "narrow"
)

// WideRow is one roll event in wide form: the face shown by each die, in
// die-index order. Roll numbers are 1-based.
type WideRow[F cmp.Ordered] struct {
	Roll  int
	Faces []F
}

// NarrowRow is one (roll, die) observation in narrow form.
type NarrowRow[F cmp.Ordered] struct {
	Roll int
	Die  int
	Face F
}

// PlayResults is the play-history table in the requested form. Exactly one
// of Wide or Narrow is populated, matching Form.
type PlayResults[F cmp.Ordered] struct {
	Form   Form
	Wide   []WideRow[F]
	Narrow []NarrowRow[F]
}

// Game owns an ordered collection of dice sharing one face set and retains
// the outcome of the most recent Play call.
//
// Game holds the supplied dice by reference, not by copy: mutating a die's
// weights after construction is permitted and affects subsequent Play calls.
//
// Invariant: all dice share the identical face set (weights may differ);
// history, when present, is rectangular with one face per (roll, die).
type Game[F cmp.Ordered] struct {
	dice    []*Die[F]
	history [][]F // history[roll][die]; nil until first successful Play
}

// NewGame constructs a Game from a non-empty list of dice.
//
// Precondition: every die's face set must equal the first die's face set,
// compared as sets (construction order and weights ignored).
// Postcondition: returns a Game referencing the given dice, or an error
// wrapping ErrValidation.
func NewGame[F cmp.Ordered](dice []*Die[F]) (*Game[F], error) {
	if len(dice) == 0 {
		return nil, fmt.Errorf("dice: game requires at least one die: %w", ErrValidation)
	}

	want := make(map[F]struct{}, len(dice[0].faces))
	for _, f := range dice[0].faces {
		want[f] = struct{}{}
	}
	for i, d := range dice[1:] {
		if len(d.faces) != len(want) {
			return nil, fmt.Errorf("dice: die %d has %d faces, want %d: %w", i+1, len(d.faces), len(want), ErrValidation)
		}
		for _, f := range d.faces {
			if _, ok := want[f]; !ok {
				return nil, fmt.Errorf("dice: die %d has face %v not on die 0: %w", i+1, f, ErrValidation)
			}
		}
	}

	return &Game[F]{dice: append([]*Die[F](nil), dice...)}, nil
}

// Dice returns the game's dice in play order.
func (g *Game[F]) Dice() []*Die[F] {
	return append([]*Die[F](nil), g.dice...)
}

// Faces returns the shared face set in the first die's construction order.
func (g *Game[F]) Faces() []F {
	return g.dice[0].Faces()
}

// Play rolls every die `rolls` times and replaces the roll history with the
// combined outcome.
//
// Precondition: rolls >= 1.
// Postcondition: history has exactly `rolls` rows with one face per die; on
// error the prior history, if any, is left intact.
func (g *Game[F]) Play(rolls int) error {
	if rolls < 1 {
		return fmt.Errorf("dice: play rolls must be >= 1, got %d: %w", rolls, ErrValidation)
	}

	perDie := make([][]F, len(g.dice))
	for i, d := range g.dice {
		outcomes, err := d.Roll(rolls)
		if err != nil {
			return fmt.Errorf("dice: rolling die %d: %w", i, err)
		}
		perDie[i] = outcomes
	}

	history := make([][]F, rolls)
	for roll := range history {
		row := make([]F, len(g.dice))
		for die := range g.dice {
			row[die] = perDie[die][roll]
		}
		history[roll] = row
	}
	g.history = history
	return nil
}

// Rolls returns the number of roll events in the current history, 0 before
// the first Play.
func (g *Game[F]) Rolls() int {
	return len(g.history)
}

// ShowPlayResults returns the latest roll history as a table in wide or
// narrow form. Both forms encode identical outcome data; roll numbers are
// 1-based.
//
// Precondition: form must be FormWide or FormNarrow; Play must have
// succeeded at least once.
// Postcondition: wide tables have Rolls() rows of len(dice) faces; narrow
// tables have Rolls()*len(dice) rows.
func (g *Game[F]) ShowPlayResults(form Form) (*PlayResults[F], error) {
	switch form {
	case FormWide, FormNarrow:
	default:
		return nil, fmt.Errorf("dice: unknown results form %q: %w", form, ErrValidation)
	}
	if g.history == nil {
		return nil, fmt.Errorf("dice: game has not been played: %w", ErrNoResults)
	}

	results := &PlayResults[F]{Form: form}
	switch form {
	case FormWide:
		results.Wide = make([]WideRow[F], len(g.history))
		for roll, row := range g.history {
			results.Wide[roll] = WideRow[F]{
				Roll:  roll + 1,
				Faces: append([]F(nil), row...),
			}
		}
	case FormNarrow:
		results.Narrow = make([]NarrowRow[F], 0, len(g.history)*len(g.dice))
		for roll, row := range g.history {
			for die, face := range row {
				results.Narrow = append(results.Narrow, NarrowRow[F]{
					Roll: roll + 1,
					Die:  die,
					Face: face,
				})
			}
		}
	}
	return results, nil
}
