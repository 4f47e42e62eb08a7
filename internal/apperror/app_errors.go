package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrNoActiveGame     = errors.New("no active game")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrGameNotFound     = errors.New("game not found")
	ErrPlayerNotFound   = errors.New("player not found")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrBotNotFound      = errors.New("bot mark is not assigned")
	ErrInvalidBoard     = errors.New("invalid board")
	ErrBoardDecided     = errors.New("board is already decided")
)
