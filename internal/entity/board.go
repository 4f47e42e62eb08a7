package entity

import (
	"errors"
	"fmt"
)

type Mark string

const (
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	PlayerTie Mark = "-"

	EmptyCell Mark = ""
)

const BoardSize = 9

type Outcome int

const (
	OutcomeOngoing Outcome = iota
	OutcomeWin
	OutcomeDraw
)

var (
	ErrInvalidCell = errors.New("invalid cell index")
	ErrInvalidMark = errors.New("invalid mark")

	// WinLines - rows, columns and both diagonals of the 3x3 board.
	WinLines = [8][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}
)

// Board - 9 cells in row-major order.
type Board [BoardSize]Mark

// Opponent returns the other playing mark.
func (m Mark) Opponent() Mark {
	if m == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// IsPlayable reports whether m is X or O.
func (m Mark) IsPlayable() bool {
	return m == PlayerX || m == PlayerO
}

// ParseMark - accepts "X"/"O" (any case); empty input yields the fallback.
func ParseMark(raw string, fallback Mark) (Mark, error) {
	switch raw {
	case "":
		return fallback, nil
	case "X", "x":
		return PlayerX, nil
	case "O", "o":
		return PlayerO, nil
	default:
		return EmptyCell, fmt.Errorf("%w: %q", ErrInvalidMark, raw)
	}
}

// ParseBoard builds a board from its wire form: exactly 9 cells of "X", "O" or "".
func ParseBoard(cells []string) (Board, error) {
	var board Board

	if len(cells) != BoardSize {
		return board, fmt.Errorf("%w: expected %d cells, got %d", ErrInvalidCell, BoardSize, len(cells))
	}

	for i, raw := range cells {
		mark, err := ParseMark(raw, EmptyCell)
		if err != nil {
			return board, fmt.Errorf("cell %d: %w", i, err)
		}
		board[i] = mark
	}

	return board, nil
}

// HasWon reports whether mark occupies every cell of any win line.
func (that *Board) HasWon(mark Mark) bool {
	for _, line := range WinLines {
		if that[line[0]] == mark && that[line[1]] == mark && that[line[2]] == mark {
			return true
		}
	}
	return false
}

// IsFull reports whether no empty cell is left. It only means a draw when nobody has won.
func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}
	return true
}

// EmptyCells returns the indices of empty cells in ascending order.
func (that *Board) EmptyCells() []int {
	empty := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			empty = append(empty, i)
		}
	}
	return empty
}

// Result derives the outcome from the board; the mark is set only for OutcomeWin.
func (that *Board) Result() (Outcome, Mark) {
	for _, mark := range [...]Mark{PlayerX, PlayerO} {
		if that.HasWon(mark) {
			return OutcomeWin, mark
		}
	}

	if that.IsFull() {
		return OutcomeDraw, EmptyCell
	}

	return OutcomeOngoing, EmptyCell
}

func (that *Board) String() string {
	out := make([]byte, 0, 3*(BoardSize+1))
	for i, cell := range that {
		switch cell {
		case EmptyCell:
			out = append(out, '.')
		default:
			out = append(out, string(cell)...)
		}
		if i%3 == 2 {
			out = append(out, '\n')
		}
	}
	return string(out)
}
