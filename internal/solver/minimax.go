package solver

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

// Best returns the cell the bot should play: the minimax choice with the bot to move.
func (that *Solver) Best(board *entity.Board) int {
	return that.Minimax(board, that.bot).Cell
}

// Minimax searches the full game tree below board with toMove playing next.
// The bot maximizes and the human minimizes; on equal scores the lowest cell wins.
// Terminal boards yield NoMove with a fixed score.
func (that *Solver) Minimax(board *entity.Board, toMove entity.Mark) Move {
	switch {
	case board.HasWon(that.human):
		return Move{Cell: NoMove, Score: LossScore}
	case board.HasWon(that.bot):
		return Move{Cell: NoMove, Score: WinScore}
	}

	empty := board.EmptyCells()
	if len(empty) == 0 {
		return Move{Cell: NoMove, Score: DrawScore}
	}

	maximizing := toMove == that.bot

	best := Move{Cell: NoMove, Score: math.MaxInt}
	if maximizing {
		best.Score = math.MinInt
	}

	for _, cell := range empty {
		board[cell] = toMove
		score := that.Minimax(board, toMove.Opponent()).Score
		board[cell] = entity.EmptyCell

		if (maximizing && score > best.Score) || (!maximizing && score < best.Score) {
			best = Move{Cell: cell, Score: score}
		}
	}

	return best
}
