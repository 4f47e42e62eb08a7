package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

func lastCell(n int) int { return n - 1 }

func TestSolver_Random(t *testing.T) {
	t.Run("Every empty cell is reachable and nothing else is returned", func(t *testing.T) {
		// Given: three empty cells
		solver := New(o)
		empty := []int{1, 4, 7}
		seen := make(map[int]int)

		// When: picking many times
		for i := 0; i < 3000; i++ {
			seen[solver.Random(empty)]++
		}

		// Then: only listed cells come back, each of them at least once
		require.Len(t, seen, len(empty))
		for _, cell := range empty {
			assert.Positive(t, seen[cell], "cell %d never chosen", cell)
		}
	})

	t.Run("Uses the injected source", func(t *testing.T) {
		solver := New(o, WithRandom(lastCell))

		assert.Equal(t, 7, solver.Random([]int{1, 4, 7}))
	})
}

func TestSolver_Heuristic(t *testing.T) {
	t.Run("Completes its own line", func(t *testing.T) {
		// Given: the bot O already holds cells 0 and 1
		board := entity.Board{o, o, e, e, e, e, e, e, e}
		solver := New(o, WithRandom(lastCell))

		// When: the heuristic runs
		cell := solver.Heuristic(&board, board.EmptyCells())

		// Then: it takes the win
		assert.Equal(t, 2, cell)
	})

	t.Run("Winning beats blocking", func(t *testing.T) {
		board := entity.Board{o, o, e, x, x, e, e, e, e}
		solver := New(o, WithRandom(lastCell))

		assert.Equal(t, 2, solver.Heuristic(&board, board.EmptyCells()))
	})

	t.Run("Blocks the human's line", func(t *testing.T) {
		// Given: the human X threatens the top row and the bot cannot win
		board := entity.Board{x, x, e, e, e, e, e, e, e}
		solver := New(o, WithRandom(lastCell))

		// When: the heuristic runs
		cell := solver.Heuristic(&board, board.EmptyCells())

		// Then: it blocks
		assert.Equal(t, 2, cell)
	})

	t.Run("Blocks only the first of two threats", func(t *testing.T) {
		// Given: X threatens both cell 1 and cell 3
		board := entity.Board{x, e, x, e, o, e, x, e, e}
		solver := New(o, WithRandom(lastCell))

		// Then: the lowest threatened cell is chosen and the other threat stays open
		assert.Equal(t, 1, solver.Heuristic(&board, board.EmptyCells()))
	})

	t.Run("Falls back to random without threats", func(t *testing.T) {
		board := entity.Board{x, e, e, e, e, e, e, e, e}
		solver := New(o, WithRandom(lastCell))

		assert.Equal(t, 8, solver.Heuristic(&board, board.EmptyCells()))
	})

	t.Run("Bot playing X", func(t *testing.T) {
		board := entity.Board{o, e, e, o, x, e, e, e, x}
		solver := New(x, WithRandom(lastCell))

		// X has no line to finish, O threatens column 0,3,6
		assert.Equal(t, 6, solver.Heuristic(&board, board.EmptyCells()))
	})

	t.Run("Board is restored", func(t *testing.T) {
		board := entity.Board{x, e, x, e, o, e, e, e, e}
		before := board

		New(o).Heuristic(&board, board.EmptyCells())

		assert.Equal(t, before, board)
	})
}

func TestSolver_Minimax(t *testing.T) {
	t.Run("Empty board is a draw", func(t *testing.T) {
		// Given: an empty board and the bot to move
		var board entity.Board
		solver := New(o)

		// When: searching the whole tree
		move := solver.Minimax(&board, o)

		// Then: optimal play draws; the first corner is the first best cell
		assert.Equal(t, DrawScore, move.Score)
		assert.Equal(t, 0, move.Cell)
		assert.Equal(t, entity.Board{}, board)
	})

	t.Run("Terminal boards have fixed scores and no move", func(t *testing.T) {
		solver := New(o)

		humanWon := entity.Board{x, x, x, o, o, e, e, e, e}
		assert.Equal(t, Move{Cell: NoMove, Score: LossScore}, solver.Minimax(&humanWon, o))

		botWon := entity.Board{o, o, o, x, x, e, x, e, e}
		assert.Equal(t, Move{Cell: NoMove, Score: WinScore}, solver.Minimax(&botWon, x))

		draw := entity.Board{x, o, x, x, x, o, o, x, o}
		assert.Equal(t, Move{Cell: NoMove, Score: DrawScore}, solver.Minimax(&draw, o))
	})

	t.Run("Takes an immediate win", func(t *testing.T) {
		board := entity.Board{o, o, e, x, x, e, e, e, e}

		move := New(o).Minimax(&board, o)

		assert.Equal(t, Move{Cell: 2, Score: WinScore}, move)
	})

	t.Run("Human to move minimizes", func(t *testing.T) {
		board := entity.Board{o, o, e, x, x, e, e, e, e}

		move := New(o).Minimax(&board, x)

		assert.Equal(t, LossScore, move.Score)
		assert.Contains(t, board.EmptyCells(), move.Cell)
	})

	t.Run("Blocks a forced loss", func(t *testing.T) {
		board := entity.Board{x, x, e, e, e, e, e, e, e}

		assert.Equal(t, 2, New(o).Best(&board))
	})

	t.Run("Board is restored", func(t *testing.T) {
		board := entity.Board{x, e, e, e, o, e, e, e, x}
		before := board

		New(o).Minimax(&board, o)

		assert.Equal(t, before, board)
	})
}

// playOut walks every line of human play against the hard bot and fails
// as soon as the human completes a line.
func playOut(t *testing.T, solver *Solver, board *entity.Board, toMove entity.Mark) {
	t.Helper()

	outcome, winner := board.Result()
	if outcome != entity.OutcomeOngoing {
		if outcome == entity.OutcomeWin && winner == solver.Human() {
			t.Fatalf("bot %s lost:\n%s", solver.Bot(), board)
		}
		return
	}

	if toMove == solver.Bot() {
		cell := solver.ChooseMove(board, board.EmptyCells(), entity.DifficultyHard)
		board[cell] = toMove
		playOut(t, solver, board, toMove.Opponent())
		board[cell] = entity.EmptyCell
		return
	}

	for _, cell := range board.EmptyCells() {
		board[cell] = toMove
		playOut(t, solver, board, toMove.Opponent())
		board[cell] = entity.EmptyCell
	}
}

func TestSolver_HardNeverLoses(t *testing.T) {
	t.Run("Human moves first", func(t *testing.T) {
		var board entity.Board
		playOut(t, New(o), &board, x)
	})

	t.Run("Bot moves first", func(t *testing.T) {
		var board entity.Board
		playOut(t, New(x), &board, x)
	})
}

func TestSolver_ChooseMove(t *testing.T) {
	board := entity.Board{x, x, e, e, e, e, e, e, e}
	empty := board.EmptyCells()
	solver := New(o, WithRandom(lastCell))

	tests := []struct {
		name     string
		level    entity.Difficulty
		expected int
	}{
		{name: "easy picks randomly", level: entity.DifficultyEasy, expected: 8},
		{name: "medium blocks", level: entity.DifficultyMedium, expected: 2},
		{name: "hard blocks", level: entity.DifficultyHard, expected: 2},
		{name: "unknown level plays easy", level: entity.Difficulty("nightmare"), expected: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := board

			cell := solver.ChooseMove(&board, empty, tt.level)

			assert.Equal(t, tt.expected, cell)
			assert.Contains(t, empty, cell)
			assert.Equal(t, before, board)
		})
	}
}
