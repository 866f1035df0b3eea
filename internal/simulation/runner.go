// Package simulation executes scenarios end to end: build the dice, play
// the game, and run every analysis over the resulting history.
package simulation

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/dicelab/internal/config"
	"github.com/cory-johannsen/dicelab/internal/dice"
	"github.com/cory-johannsen/dicelab/internal/scenario"
)

// Report summarizes one completed simulation run.
type Report struct {
	RunID    uuid.UUID
	Scenario string
	Rolls    int
	Dice     int

	TotalJackpots int
	Combos        []dice.ComboRow[string]
	FaceCounts    []dice.FaceCountRow[string]
	// FaceTotals aggregates FaceCounts over all rolls, one entry per face
	// in the game's face set.
	FaceTotals map[string]int
}

// Runner executes scenarios with the configured defaults.
type Runner struct {
	cfg    config.SimulationConfig
	logger *zap.Logger
}

// NewRunner creates a Runner.
//
// Precondition: logger must be non-nil.
func NewRunner(cfg config.SimulationConfig, logger *zap.Logger) *Runner {
	return &Runner{cfg: cfg, logger: logger}
}

// source returns the randomness source selected by the configuration: a
// seeded deterministic source when Seed != 0, else the crypto default.
func (r *Runner) source() dice.Source {
	if r.cfg.Seed != 0 {
		return dice.NewSeededSource(r.cfg.Seed)
	}
	return dice.NewCryptoSource()
}

// Run builds def's game, plays it, and runs the jackpot, combo, and
// face-count analyses.
//
// Precondition: def must have passed Validate.
// Postcondition: Returns a Report with all three analysis results, or a
// non-nil error; nothing is persisted.
func (r *Runner) Run(def *scenario.Def) (*Report, error) {
	runID := uuid.New()
	rolls := def.Rolls
	if rolls == 0 {
		rolls = r.cfg.DefaultRolls
	}

	logger := r.logger.With(
		zap.String("run_id", runID.String()),
		zap.String("scenario", def.Name),
		zap.Int("rolls", rolls),
	)
	logger.Info("starting simulation", zap.Int("dice", len(def.Dice)))

	game, err := def.Build(r.source())
	if err != nil {
		return nil, fmt.Errorf("simulation: building scenario: %w", err)
	}

	played := dice.NewLoggedGame(game, logger)
	if err := played.Play(rolls); err != nil {
		return nil, fmt.Errorf("simulation: playing game: %w", err)
	}

	analyzer, err := dice.NewAnalyzer(game)
	if err != nil {
		return nil, fmt.Errorf("simulation: creating analyzer: %w", err)
	}

	totalJackpots, err := analyzer.Jackpot()
	if err != nil {
		return nil, fmt.Errorf("simulation: jackpot analysis: %w", err)
	}
	combos, err := analyzer.Combo()
	if err != nil {
		return nil, fmt.Errorf("simulation: combo analysis: %w", err)
	}
	faceCounts, err := analyzer.FaceCountsPerRoll()
	if err != nil {
		return nil, fmt.Errorf("simulation: face count analysis: %w", err)
	}

	faceTotals := make(map[string]int, len(game.Faces()))
	for _, face := range game.Faces() {
		faceTotals[face] = 0
	}
	for _, row := range faceCounts {
		for face, n := range row.Counts {
			faceTotals[face] += n
		}
	}

	logger.Info("simulation complete",
		zap.Int("jackpots", totalJackpots),
		zap.Int("distinct_combos", len(combos)),
	)

	return &Report{
		RunID:         runID,
		Scenario:      def.Name,
		Rolls:         rolls,
		Dice:          len(def.Dice),
		TotalJackpots: totalJackpots,
		Combos:        combos,
		FaceCounts:    faceCounts,
		FaceTotals:    faceTotals,
	}, nil
}
