package dice

import (
	"cmp"
	"fmt"

	"go.uber.org/zap"
)

// LoggedGame wraps a Game and a logger so every play is logged. Outcomes are
// logged at debug level with roll count, dice count, and per-roll faces.
type LoggedGame[F cmp.Ordered] struct {
	game   *Game[F]
	logger *zap.Logger
}

// NewLoggedGame creates a LoggedGame that plays on game and logs each play
// to logger.
//
// Precondition: game and logger must be non-nil.
func NewLoggedGame[F cmp.Ordered](game *Game[F], logger *zap.Logger) *LoggedGame[F] {
	return &LoggedGame[F]{game: game, logger: logger}
}

// Game returns the wrapped game.
func (l *LoggedGame[F]) Game() *Game[F] {
	return l.game
}

// Play rolls every die and logs the full outcome at debug level.
//
// Postcondition: identical game state to calling l.Game().Play(rolls)
// directly; failures are logged at warn level and returned.
func (l *LoggedGame[F]) Play(rolls int) error {
	if err := l.game.Play(rolls); err != nil {
		l.logger.Warn("play failed",
			zap.Int("rolls", rolls),
			zap.Error(err),
		)
		return err
	}

	fields := []zap.Field{
		zap.Int("rolls", rolls),
		zap.Int("dice", len(l.game.dice)),
	}
	for roll, row := range l.game.history {
		fields = append(fields, zap.String(
			fmt.Sprintf("roll_%d", roll+1),
			fmt.Sprintf("%v", row),
		))
	}
	l.logger.Debug("play", fields...)
	return nil
}
