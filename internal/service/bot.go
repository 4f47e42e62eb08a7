package service

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bot/internal/solver"
)

type BotService interface {
	MakeTurn(game *entity.Game) (int, error)

	SuggestMove(board entity.Board, bot entity.Mark, difficulty entity.Difficulty) (int, error)
	Evaluate(board entity.Board, bot, toMove entity.Mark) (solver.Move, error)
}

type botService struct {
	options []solver.Option
}

func NewBotService(options ...solver.Option) BotService {
	return &botService{
		options: options,
	}
}

// MakeTurn plays the bot's mark on the game at its difficulty and returns the chosen cell.
func (that *botService) MakeTurn(game *entity.Game) (int, error) {
	if !game.BotMark.IsPlayable() {
		return solver.NoMove, apperror.ErrBotNotFound
	}

	if err := game.ConfirmOngoingState(); err != nil {
		return solver.NoMove, fmt.Errorf("bot cannot play: %w", err)
	}

	availableCells := game.Board.EmptyCells()
	if len(availableCells) == 0 {
		return solver.NoMove, apperror.ErrNoAvailableMoves
	}

	bot := solver.New(game.BotMark, that.options...)
	chosenCell := bot.ChooseMove(&game.Board, availableCells, game.Difficulty)

	if err := game.MakeTurn(game.BotMark, chosenCell); err != nil {
		return solver.NoMove, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return chosenCell, nil
}

// SuggestMove picks the bot's cell on a detached board without touching any game.
func (that *botService) SuggestMove(board entity.Board, bot entity.Mark, difficulty entity.Difficulty) (int, error) {
	if !bot.IsPlayable() {
		return solver.NoMove, apperror.ErrBotNotFound
	}

	xWon, oWon := board.HasWon(entity.PlayerX), board.HasWon(entity.PlayerO)
	switch {
	case xWon && oWon:
		return solver.NoMove, fmt.Errorf("%w: both marks own a line", apperror.ErrInvalidBoard)
	case xWon || oWon:
		return solver.NoMove, apperror.ErrBoardDecided
	}

	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return solver.NoMove, apperror.ErrNoAvailableMoves
	}

	return solver.New(bot, that.options...).ChooseMove(&board, availableCells, difficulty), nil
}

// Evaluate returns the raw minimax result for toMove; terminal boards give solver.NoMove.
func (that *botService) Evaluate(board entity.Board, bot, toMove entity.Mark) (solver.Move, error) {
	if !bot.IsPlayable() || !toMove.IsPlayable() {
		return solver.Move{Cell: solver.NoMove}, entity.ErrInvalidMark
	}

	return solver.New(bot, that.options...).Minimax(&board, toMove), nil
}
