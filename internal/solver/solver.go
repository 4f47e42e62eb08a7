// Package solver picks the bot's move on a 3x3 tic-tac-toe board.
//
// Three policies of increasing strength are available: a uniform random pick,
// a one-ply win/block heuristic and an exhaustive minimax search. Every policy
// may mark cells of the board it is given while probing, but restores it before
// returning; the caller applies the chosen move itself.
package solver

import (
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

const (
	WinScore  = 10
	LossScore = -10
	DrawScore = 0

	// NoMove is the cell of a Move evaluated on a terminal board.
	NoMove = -1
)

// Move - a cell paired with its game value from the bot's point of view.
type Move struct {
	Cell  int `json:"cell"`
	Score int `json:"score"`
}

type Option func(*Solver)

// WithRandom replaces the source used by the random policy. intn must return a value in [0, n).
func WithRandom(intn func(n int) int) Option {
	return func(that *Solver) {
		that.intn = intn
	}
}

// Solver holds no per-call state, so a single value may serve many games
// as long as each call works on its own board.
type Solver struct {
	bot   entity.Mark
	human entity.Mark
	intn  func(n int) int
}

func New(bot entity.Mark, opts ...Option) *Solver {
	that := &Solver{
		bot:   bot,
		human: bot.Opponent(),
		intn:  rand.Intn,
	}

	for _, opt := range opts {
		opt(that)
	}

	return that
}

func (that *Solver) Bot() entity.Mark {
	return that.bot
}

func (that *Solver) Human() entity.Mark {
	return that.human
}

// ChooseMove routes to the policy of the given level and returns a cell from empty.
// Unknown levels play like easy. empty must be non-empty and match board.
func (that *Solver) ChooseMove(board *entity.Board, empty []int, level entity.Difficulty) int {
	switch level {
	case entity.DifficultyMedium:
		return that.Heuristic(board, empty)
	case entity.DifficultyHard:
		return that.Best(board)
	default:
		return that.Random(empty)
	}
}
