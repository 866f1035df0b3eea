package dice

import (
	"cmp"
	"fmt"
	"slices"
)

// JackpotRow marks whether one roll event was a jackpot: 1 when every die in
// the roll showed the identical face, else 0.
type JackpotRow struct {
	Roll    int
	Jackpot int
}

// ComboRow is one observed combination: the sorted multiset of faces shown
// in a roll event, and how many rolls produced exactly that multiset.
type ComboRow[F cmp.Ordered] struct {
	Faces []F // sorted ascending; len == number of dice
	Count int
}

// FaceCountRow is one roll event's tally: for every face in the game's face
// set, the number of dice that showed it (zero-filled for unobserved faces).
type FaceCountRow[F cmp.Ordered] struct {
	Roll   int
	Counts map[F]int
}

// Analyzer derives statistical summaries from one game's current roll
// history. Each analysis method recomputes from scratch and caches its table
// in the corresponding exported field; the caches go stale if the game is
// replayed without rerunning the analysis, and refreshing them is the
// caller's responsibility.
type Analyzer[F cmp.Ordered] struct {
	game *Game[F]

	// Jackpots is the table cached by the last Jackpot call.
	Jackpots []JackpotRow
	// Combos is the table cached by the last Combo call.
	Combos []ComboRow[F]
	// FaceCounts is the table cached by the last FaceCountsPerRoll call.
	FaceCounts []FaceCountRow[F]
}

// NewAnalyzer constructs an Analyzer bound to game. The game is held by
// reference, not copied.
//
// Precondition: game must be non-nil.
func NewAnalyzer[F cmp.Ordered](game *Game[F]) (*Analyzer[F], error) {
	if game == nil {
		return nil, fmt.Errorf("dice: analyzer requires a game: %w", ErrValidation)
	}
	return &Analyzer[F]{game: game}, nil
}

// Faces returns the column order used by face-count tables: the game's face
// set in the first die's construction order.
func (a *Analyzer[F]) Faces() []F {
	return a.game.Faces()
}

// Jackpot recomputes the per-roll jackpot table and returns the total number
// of jackpot rolls.
//
// Precondition: the game must have been played.
// Postcondition: a.Jackpots has one row per roll event; the return value is
// the sum of the Jackpot column and is <= the number of rolls.
func (a *Analyzer[F]) Jackpot() (int, error) {
	if a.game.history == nil {
		return 0, fmt.Errorf("dice: game has not been played: %w", ErrNoResults)
	}

	jackpots := make([]JackpotRow, len(a.game.history))
	total := 0
	for roll, row := range a.game.history {
		hit := 1
		for _, face := range row[1:] {
			if face != row[0] {
				hit = 0
				break
			}
		}
		jackpots[roll] = JackpotRow{Roll: roll + 1, Jackpot: hit}
		total += hit
	}
	a.Jackpots = jackpots
	return total, nil
}

// Combo recomputes the combination-frequency table: each roll's multiset of
// faces is normalized by sorting, so permutations of the same values
// collapse to one key. Only observed combinations appear; rows are ordered
// lexicographically by their sorted faces.
//
// Precondition: the game must have been played.
// Postcondition: sum of all Count values equals the number of rolls.
func (a *Analyzer[F]) Combo() ([]ComboRow[F], error) {
	if a.game.history == nil {
		return nil, fmt.Errorf("dice: game has not been played: %w", ErrNoResults)
	}

	// A sorted multiset over a fixed face set is equivalent to a count
	// vector over that set, which makes a collision-free map key.
	faces := a.game.Faces()
	slices.Sort(faces)
	faceIndex := make(map[F]int, len(faces))
	for i, f := range faces {
		faceIndex[f] = i
	}

	rows := make(map[string]*ComboRow[F])
	for _, row := range a.game.history {
		vec := make([]int, len(faces))
		for _, face := range row {
			vec[faceIndex[face]]++
		}
		key := fmt.Sprint(vec)
		if existing, ok := rows[key]; ok {
			existing.Count++
			continue
		}
		sorted := make([]F, 0, len(row))
		for i, n := range vec {
			for ; n > 0; n-- {
				sorted = append(sorted, faces[i])
			}
		}
		rows[key] = &ComboRow[F]{Faces: sorted, Count: 1}
	}

	combos := make([]ComboRow[F], 0, len(rows))
	for _, row := range rows {
		combos = append(combos, *row)
	}
	slices.SortFunc(combos, func(x, y ComboRow[F]) int {
		return slices.Compare(x.Faces, y.Faces)
	})
	a.Combos = combos
	return combos, nil
}

// FaceCountsPerRoll recomputes the per-roll face tally: for each roll event
// and each face in the game's face set, the number of dice showing that
// face. Columns cover the full face set, zero-filled where a face was not
// observed.
//
// Precondition: the game must have been played.
// Postcondition: every row's counts sum to the number of dice in the game.
func (a *Analyzer[F]) FaceCountsPerRoll() ([]FaceCountRow[F], error) {
	if a.game.history == nil {
		return nil, fmt.Errorf("dice: game has not been played: %w", ErrNoResults)
	}

	faces := a.game.Faces()
	rows := make([]FaceCountRow[F], len(a.game.history))
	for roll, row := range a.game.history {
		counts := make(map[F]int, len(faces))
		for _, face := range faces {
			counts[face] = 0
		}
		for _, face := range row {
			counts[face]++
		}
		rows[roll] = FaceCountRow[F]{Roll: roll + 1, Counts: counts}
	}
	a.FaceCounts = rows
	return rows, nil
}
