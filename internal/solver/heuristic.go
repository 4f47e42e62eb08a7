package solver

import "github.com/rocketscienceinc/tictactoe-bot/internal/entity"

// Heuristic takes an immediate win, else blocks the human's immediate win,
// else falls back to Random. Cells are probed in the order of empty.
//
// Only the first blocking cell is found; a double threat still loses.
func (that *Solver) Heuristic(board *entity.Board, empty []int) int {
	if cell, ok := winningCell(board, empty, that.bot); ok {
		return cell
	}

	if cell, ok := winningCell(board, empty, that.human); ok {
		return cell
	}

	return that.Random(empty)
}

// winningCell finds the first cell that completes a line for mark.
func winningCell(board *entity.Board, empty []int, mark entity.Mark) (int, bool) {
	for _, cell := range empty {
		board[cell] = mark
		won := board.HasWon(mark)
		board[cell] = entity.EmptyCell

		if won {
			return cell, true
		}
	}

	return NoMove, false
}
