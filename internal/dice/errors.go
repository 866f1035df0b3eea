package dice

import "errors"

// ErrValidation is returned when a constructor or method argument is
// malformed: duplicate faces, a non-positive or non-finite weight, a
// non-positive roll count, mismatched face sets across a game's dice, or an
// unknown result form.
var ErrValidation = errors.New("invalid argument")

// ErrNotFound is returned when a face is not present on the die.
var ErrNotFound = errors.New("face not found")

// ErrNoResults is returned when play results are requested before any
// Play call has produced a roll history.
var ErrNoResults = errors.New("no play results")
