package entity

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game - one round between a human player and the bot.
type Game struct {
	ID         string     `json:"id"`
	Board      Board      `json:"board"`
	Winner     Mark       `json:"winner"`
	Status     string     `json:"status"`
	Turn       Mark       `json:"player_turn"`
	Difficulty Difficulty `json:"difficulty"`
	PlayerMark Mark       `json:"player_mark,omitempty"`
	BotMark    Mark       `json:"bot_mark,omitempty"`
}

func NewGame(id string, difficulty Difficulty) *Game {
	return &Game{
		ID:         id,
		Turn:       PlayerX,
		Status:     StatusWaiting,
		Difficulty: difficulty,
	}
}

// Start assigns marks and opens the game for turns. X always moves first.
func (that *Game) Start(playerMark Mark) {
	that.PlayerMark = playerMark
	that.BotMark = playerMark.Opponent()
	that.Status = StatusOngoing
	that.Turn = PlayerX
}

func (that *Game) UpdateGameState() {
	switch outcome, winner := that.Board.Result(); outcome {
	case OutcomeWin:
		that.Winner = winner
		that.Status = StatusFinished
		that.Turn = EmptyCell
	case OutcomeDraw:
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = EmptyCell
	default:
		that.Status = StatusOngoing
	}
}

func (that *Game) MakeTurn(playerMark Mark, cell int) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	if cell < 0 || cell >= len(that.Board) {
		return fmt.Errorf("%w: cell %d", ErrInvalidCell, cell)
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if that.Board[cell] != EmptyCell {
		return apperror.ErrCellOccupied
	}

	that.Board[cell] = playerMark
	that.Turn = playerMark.Opponent()

	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) IsBotTurn() bool {
	return that.IsOngoing() && that.Turn == that.BotMark
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// RandomPlayerMark picks the human's mark for a new game.
func RandomPlayerMark() Mark {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return PlayerX
	}
	return PlayerO
}
